// internal/handlers/admin.go
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/spareshub/spareshub-backend/internal/i18n"
	"github.com/spareshub/spareshub-backend/internal/models"
	"github.com/spareshub/spareshub-backend/internal/services"
	"github.com/spareshub/spareshub-backend/internal/utils"
)

type AdminHandler struct {
	adminService   *services.AdminService
	storageService *services.StorageService
}

type moderationRequest struct {
	Remarks string `json:"remarks"`
}

type rejectProductRequest struct {
	Reason string `json:"reason"`
}

func NewAdminHandler(adminService *services.AdminService, storageService *services.StorageService) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		storageService: storageService,
	}
}

// GET /admin/dashboard
func (h *AdminHandler) GetDashboard(c *gin.Context) {
	stats, err := h.adminService.GetDashboardStats()
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"stats": stats,
	})
}

// GET /admin/vendors
func (h *AdminHandler) GetVendors(c *gin.Context) {
	filter := services.AdminVendorFilter{
		PaginationParams: utils.GetPaginationParams(c),
		City:             c.Query("city"),
	}
	if v := c.Query("status"); v != "" {
		status := models.VendorStatus(v)
		filter.Status = &status
	}

	vendors, total, err := h.adminService.GetVendors(filter)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	result := utils.CreatePaginationResult(vendors, total, filter.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// GET /admin/vendors/:id
func (h *AdminHandler) GetVendorDetail(c *gin.Context) {
	vendorID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	vendor, err := h.adminService.GetVendorDetail(vendorID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"vendor": vendor,
	})
}

// GET /admin/vendors/:id/documents
// Returns short-lived links to the vendor's KYC documents.
func (h *AdminHandler) GetVendorDocuments(c *gin.Context) {
	vendorID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	vendor, err := h.adminService.GetVendorDetail(vendorID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	documents := gin.H{}
	if vendor.PanDocumentURL != "" {
		if url, err := h.storageService.GeneratePresignedURL(vendor.PanDocumentURL, 15*time.Minute); err == nil {
			documents["pan_document"] = url
		} else {
			documents["pan_document"] = vendor.PanDocumentURL
		}
	}
	if vendor.ChequeDocumentURL != "" {
		if url, err := h.storageService.GeneratePresignedURL(vendor.ChequeDocumentURL, 15*time.Minute); err == nil {
			documents["cheque_document"] = url
		} else {
			documents["cheque_document"] = vendor.ChequeDocumentURL
		}
	}

	utils.SuccessResponse(c, gin.H{
		"documents": documents,
	})
}

// POST /admin/vendors/:id/approve
func (h *AdminHandler) ApproveVendor(c *gin.Context) {
	h.moderateVendor(c, i18n.KeyVendorApproved, h.adminService.ApproveVendor)
}

// POST /admin/vendors/:id/reject
func (h *AdminHandler) RejectVendor(c *gin.Context) {
	h.moderateVendor(c, i18n.KeyVendorRejected, h.adminService.RejectVendor)
}

// POST /admin/vendors/:id/suspend
func (h *AdminHandler) SuspendVendor(c *gin.Context) {
	h.moderateVendor(c, i18n.KeyVendorSuspended, h.adminService.SuspendVendor)
}

// POST /admin/vendors/:id/unsuspend
func (h *AdminHandler) UnsuspendVendor(c *gin.Context) {
	h.moderateVendor(c, i18n.KeyVendorApproved, h.adminService.UnsuspendVendor)
}

// DELETE /admin/vendors/:id
func (h *AdminHandler) DeleteVendor(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	vendorID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req moderationRequest
	c.ShouldBindJSON(&req)

	if err := h.adminService.DeleteVendor(actorFromContext(c), vendorID, req.Remarks); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyVendorDeleted),
	})
}

// GET /admin/products
func (h *AdminHandler) GetProducts(c *gin.Context) {
	filter := services.AdminProductFilter{
		PaginationParams: utils.GetPaginationParams(c),
	}
	if v := c.Query("status"); v != "" {
		status := models.ProductStatus(v)
		filter.Status = &status
	}
	if v := c.Query("vendor_id"); v != "" {
		if vendorID, err := uuid.Parse(v); err == nil {
			filter.VendorID = &vendorID
		}
	}

	products, total, err := h.adminService.GetProducts(filter)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	result := utils.CreatePaginationResult(products, total, filter.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// GET /admin/products/queue
func (h *AdminHandler) GetReviewQueue(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	products, total, err := h.adminService.GetReviewQueue(params)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	result := utils.CreatePaginationResult(products, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /admin/products/:id/approve
func (h *AdminHandler) ApproveProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req moderationRequest
	c.ShouldBindJSON(&req)

	product, err := h.adminService.ApproveProduct(actorFromContext(c), productID, req.Remarks)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductApproved),
		"product": product,
	})
}

// POST /admin/products/:id/reject
func (h *AdminHandler) RejectProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req rejectProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationRequired, "reason"), nil)
		return
	}

	product, err := h.adminService.RejectProduct(actorFromContext(c), productID, req.Reason)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductRejected),
		"product": product,
	})
}

// GET /admin/users
func (h *AdminHandler) GetUsers(c *gin.Context) {
	filter := services.AdminUserFilter{
		PaginationParams: utils.GetPaginationParams(c),
	}
	if v := c.Query("user_type"); v != "" {
		userType := models.UserType(v)
		filter.UserType = &userType
	}
	if v := c.Query("status"); v != "" {
		status := models.UserStatus(v)
		filter.Status = &status
	}

	users, total, err := h.adminService.GetUsers(filter)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	result := utils.CreatePaginationResult(users, total, filter.PaginationParams)
	utils.PaginatedResponse(c, result)
}

// PUT /admin/users/:id/status
func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status  models.UserStatus `json:"status" binding:"required"`
		Remarks string            `json:"remarks"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	user, err := h.adminService.SetUserStatus(actorFromContext(c), userID, req.Status, req.Remarks)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAdminActionSuccess),
		"user":    user,
	})
}

// GET /admin/logs
func (h *AdminHandler) GetAccountLogs(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	entityType := c.Query("entity_type")

	var entityID *uuid.UUID
	if v := c.Query("entity_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			entityID = &id
		}
	}

	logs, total, err := h.adminService.GetAccountLogs(params, entityType, entityID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	result := utils.CreatePaginationResult(logs, total, params)
	utils.PaginatedResponse(c, result)
}

// moderateVendor handles the shared shape of the four vendor transition
// endpoints.
func (h *AdminHandler) moderateVendor(c *gin.Context, messageKey string, action func(services.Actor, uuid.UUID, string) (*models.VendorAccount, error)) {
	lang := utils.GetLangFromContext(c)

	vendorID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req moderationRequest
	c.ShouldBindJSON(&req)

	vendor, err := action(actorFromContext(c), vendorID, req.Remarks)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, messageKey),
		"vendor":  vendor,
	})
}

func actorFromContext(c *gin.Context) services.Actor {
	actor := services.Actor{IPAddress: c.ClientIP()}
	if idStr, exists := utils.GetUserIDFromContext(c); exists {
		if id, err := uuid.Parse(idStr); err == nil {
			actor.ID = id
		}
	}
	if role, exists := utils.GetRoleFromContext(c); exists {
		actor.Role = role
	}
	return actor
}
