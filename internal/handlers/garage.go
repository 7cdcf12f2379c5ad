// internal/handlers/garage.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/spareshub/spareshub-backend/internal/i18n"
	"github.com/spareshub/spareshub-backend/internal/services"
	"github.com/spareshub/spareshub-backend/internal/utils"
)

type GarageHandler struct {
	garageService *services.GarageService
}

func NewGarageHandler(garageService *services.GarageService) *GarageHandler {
	return &GarageHandler{
		garageService: garageService,
	}
}

// POST /garage/vehicles
func (h *GarageHandler) AddVehicle(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req services.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	vehicle, err := h.garageService.AddVehicle(userID, &req)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyVehicleAdded),
		"vehicle": vehicle,
	})
}

// GET /garage/vehicles
func (h *GarageHandler) ListVehicles(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	vehicles, err := h.garageService.ListVehicles(userID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"vehicles": vehicles,
	})
}

// PUT /garage/vehicles/:id
func (h *GarageHandler) UpdateVehicle(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	vehicleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	vehicle, err := h.garageService.UpdateVehicle(userID, vehicleID, &req)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyVehicleUpdated),
		"vehicle": vehicle,
	})
}

// DELETE /garage/vehicles/:id
func (h *GarageHandler) DeleteVehicle(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	vehicleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.garageService.DeleteVehicle(userID, vehicleID); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyVehicleRemoved),
	})
}
