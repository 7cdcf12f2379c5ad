// internal/handlers/address.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/spareshub/spareshub-backend/internal/i18n"
	"github.com/spareshub/spareshub-backend/internal/services"
	"github.com/spareshub/spareshub-backend/internal/utils"
)

type AddressHandler struct {
	addressService *services.AddressService
}

func NewAddressHandler(addressService *services.AddressService) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
	}
}

// POST /addresses
func (h *AddressHandler) AddAddress(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req services.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	address, err := h.addressService.AddAddress(userID, &req)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAddressAdded),
		"address": address,
	})
}

// GET /addresses
func (h *AddressHandler) ListAddresses(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	addresses, err := h.addressService.ListAddresses(userID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"addresses": addresses,
	})
}

// PUT /addresses/:id
func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	addressID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	address, err := h.addressService.UpdateAddress(userID, addressID, &req)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAddressUpdated),
		"address": address,
	})
}

// DELETE /addresses/:id
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	addressID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.addressService.DeleteAddress(userID, addressID); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAddressRemoved),
	})
}
