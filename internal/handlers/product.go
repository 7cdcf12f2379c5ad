// internal/handlers/product.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/spareshub/spareshub-backend/internal/i18n"
	"github.com/spareshub/spareshub-backend/internal/models"
	"github.com/spareshub/spareshub-backend/internal/services"
	"github.com/spareshub/spareshub-backend/internal/utils"
)

// ProductHandler serves the vendor-facing listing lifecycle. The customer
// storefront lives in CatalogHandler.
type ProductHandler struct {
	productService *services.ProductService
	storageService *services.StorageService
}

func NewProductHandler(productService *services.ProductService, storageService *services.StorageService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		storageService: storageService,
	}
}

// POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	vendorID, ok := vendorIDFromContext(c)
	if !ok {
		return
	}

	var req services.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	var product *models.Product
	var err error
	if req.Submit {
		product, err = h.productService.CreateSubmitted(vendorID, &req)
	} else {
		product, err = h.productService.CreateDraft(vendorID, &req)
	}
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	message := i18n.T(lang, i18n.KeyProductCreated)
	if req.Submit {
		message = i18n.T(lang, i18n.KeyProductSubmitted)
	}

	utils.CreatedResponse(c, gin.H{
		"message": message,
		"product": product,
	})
}

// GET /products
func (h *ProductHandler) List(c *gin.Context) {
	vendorID, ok := vendorIDFromContext(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	status := models.ProductStatus(c.Query("status"))

	result, err := h.productService.ListOwn(vendorID, status, params)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.PaginatedResponse(c, *result)
}

// GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	vendorID, ok := vendorIDFromContext(c)
	if !ok {
		return
	}

	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetOwnProduct(vendorID, productID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	vendorID, ok := vendorIDFromContext(c)
	if !ok {
		return
	}

	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	product, err := h.productService.Update(vendorID, productID, &req)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductUpdated),
		"product": product,
	})
}

// POST /products/:id/submit
func (h *ProductHandler) SubmitForReview(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	vendorID, ok := vendorIDFromContext(c)
	if !ok {
		return
	}

	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.SubmitForReview(vendorID, productID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductSubmitted),
		"product": product,
	})
}

// POST /products/:id/unpublish
func (h *ProductHandler) Unpublish(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	vendorID, ok := vendorIDFromContext(c)
	if !ok {
		return
	}

	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.Unpublish(vendorID, productID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductUnpublished),
		"product": product,
	})
}

// POST /products/:id/archive
func (h *ProductHandler) Archive(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	vendorID, ok := vendorIDFromContext(c)
	if !ok {
		return
	}

	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.Archive(vendorID, productID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductArchived),
		"product": product,
	})
}

// DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	vendorID, ok := vendorIDFromContext(c)
	if !ok {
		return
	}

	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.productService.DeleteDraft(vendorID, productID); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductDeleted),
	})
}

// POST /products/images
func (h *ProductHandler) UploadImage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if _, ok := vendorIDFromContext(c); !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationRequired, "file"), nil)
		return
	}
	defer file.Close()

	options := h.storageService.GetDefaultUploadOptions("product_images")
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

// parseIDParam parses a UUID path parameter or writes the error response
// itself.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}
