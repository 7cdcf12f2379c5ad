// internal/handlers/vendor.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/spareshub/spareshub-backend/internal/i18n"
	"github.com/spareshub/spareshub-backend/internal/services"
	"github.com/spareshub/spareshub-backend/internal/utils"
)

type VendorHandler struct {
	vendorService  *services.VendorService
	storageService *services.StorageService
}

func NewVendorHandler(vendorService *services.VendorService, storageService *services.StorageService) *VendorHandler {
	return &VendorHandler{
		vendorService:  vendorService,
		storageService: storageService,
	}
}

// POST /vendors/register
func (h *VendorHandler) Register(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.RegisterVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	vendor, err := h.vendorService.Register(&req)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyVendorRegistered),
		"vendor":  vendor,
	})
}

// POST /vendors/documents
// Uploads one KYC document (PAN card or cancelled cheque) ahead of
// registration; the returned URL goes into the registration payload.
func (h *VendorHandler) UploadDocument(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationRequired, "file"), nil)
		return
	}
	defer file.Close()

	options := h.storageService.GetDefaultUploadOptions("kyc_documents")
	result, err := h.storageService.UploadFile(file, header, options)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyFileUploadSuccess),
		"file":    result,
	})
}

// GET /vendors/me
func (h *VendorHandler) GetProfile(c *gin.Context) {
	vendorID, ok := vendorIDFromContext(c)
	if !ok {
		return
	}

	vendor, err := h.vendorService.GetVendor(vendorID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"vendor": vendor,
	})
}

// PUT /vendors/me
func (h *VendorHandler) UpdateProfile(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	vendorID, ok := vendorIDFromContext(c)
	if !ok {
		return
	}

	var req services.UpdateVendorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	vendor, err := h.vendorService.UpdateProfile(vendorID, &req)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyVendorProfileUpdated),
		"vendor":  vendor,
	})
}

// GET /vendors/me/dashboard
func (h *VendorHandler) GetDashboard(c *gin.Context) {
	vendorID, ok := vendorIDFromContext(c)
	if !ok {
		return
	}

	dashboard, err := h.vendorService.GetDashboard(vendorID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"dashboard": dashboard,
	})
}

// vendorIDFromContext resolves the authenticated vendor's ID or writes the
// error response itself.
func vendorIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	idStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vendor ID", nil)
		return uuid.Nil, false
	}

	return id, true
}
