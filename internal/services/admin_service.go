// internal/services/admin_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/spareshub/spareshub-backend/internal/apperrors"
	"github.com/spareshub/spareshub-backend/internal/models"
	"github.com/spareshub/spareshub-backend/internal/utils"
)

// AdminService is the moderation facade. Every state transition on vendors and
// products initiated by an admin goes through here, paired with an append-only
// audit log entry.
type AdminService struct {
	db                  *gorm.DB
	notificationService *NotificationService
}

type AdminDashboardStats struct {
	TotalCustomers     int64 `json:"total_customers"`
	TotalVendors       int64 `json:"total_vendors"`
	PendingVendors     int64 `json:"pending_vendors"`
	ApprovedVendors    int64 `json:"approved_vendors"`
	SuspendedVendors   int64 `json:"suspended_vendors"`
	TotalProducts      int64 `json:"total_products"`
	PendingProducts    int64 `json:"pending_products"`
	LiveProducts       int64 `json:"live_products"`
	NewVendorsThisWeek int64 `json:"new_vendors_this_week"`
}

type AdminVendorFilter struct {
	utils.PaginationParams
	Status        *models.VendorStatus `json:"status,omitempty"`
	City          string               `json:"city,omitempty"`
	CreatedAfter  *time.Time           `json:"created_after,omitempty"`
	CreatedBefore *time.Time           `json:"created_before,omitempty"`
}

type AdminProductFilter struct {
	utils.PaginationParams
	Status   *models.ProductStatus `json:"status,omitempty"`
	VendorID *uuid.UUID            `json:"vendor_id,omitempty"`
}

type AdminUserFilter struct {
	utils.PaginationParams
	UserType *models.UserType   `json:"user_type,omitempty"`
	Status   *models.UserStatus `json:"status,omitempty"`
}

// Actor identifies the admin performing a moderation action, for the audit log.
type Actor struct {
	ID        uuid.UUID
	Role      string
	IPAddress string
}

func NewAdminService(db *gorm.DB, notificationService *NotificationService) *AdminService {
	return &AdminService{
		db:                  db,
		notificationService: notificationService,
	}
}

// Dashboard

func (s *AdminService) GetDashboardStats() (*AdminDashboardStats, error) {
	stats := &AdminDashboardStats{}
	weekStart := time.Now().AddDate(0, 0, -7)

	s.db.Model(&models.User{}).Where("user_type = ?", models.UserTypeCustomer).Count(&stats.TotalCustomers)

	s.db.Model(&models.VendorAccount{}).Count(&stats.TotalVendors)
	s.db.Model(&models.VendorAccount{}).Where("status = ?", models.VendorStatusPending).Count(&stats.PendingVendors)
	s.db.Model(&models.VendorAccount{}).Where("status = ?", models.VendorStatusApproved).Count(&stats.ApprovedVendors)
	s.db.Model(&models.VendorAccount{}).Where("status = ?", models.VendorStatusSuspended).Count(&stats.SuspendedVendors)
	s.db.Model(&models.VendorAccount{}).Where("created_at >= ?", weekStart).Count(&stats.NewVendorsThisWeek)

	s.db.Model(&models.Product{}).Count(&stats.TotalProducts)
	s.db.Model(&models.Product{}).Where("status = ?", models.ProductStatusPendingReview).Count(&stats.PendingProducts)
	s.db.Model(&models.Product{}).
		Joins("JOIN vendor_accounts ON vendor_accounts.id = products.vendor_id").
		Where("products.status = ? AND vendor_accounts.status = ?", models.ProductStatusApproved, models.VendorStatusApproved).
		Count(&stats.LiveProducts)

	return stats, nil
}

// Vendor moderation

func (s *AdminService) GetVendors(filter AdminVendorFilter) ([]models.VendorAccount, int64, error) {
	query := s.db.Model(&models.VendorAccount{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.Search != "" {
		searchTerm := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(business_name) LIKE ? OR LOWER(email) LIKE ?", searchTerm, searchTerm)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at <= ?", *filter.CreatedBefore)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count vendors: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "business_name", "city", "status"}
	query = utils.ApplySort(query, filter.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, filter.PaginationParams)

	var vendors []models.VendorAccount
	if err := query.Find(&vendors).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list vendors: %w", err)
	}

	return vendors, total, nil
}

// GetVendorDetail returns the full application including banking and KYC
// document references. Admin review is the only reader of those fields.
func (s *AdminService) GetVendorDetail(vendorID uuid.UUID) (*models.VendorAccount, error) {
	var vendor models.VendorAccount
	if err := s.db.First(&vendor, vendorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("vendor")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &vendor, nil
}

func (s *AdminService) ApproveVendor(actor Actor, vendorID uuid.UUID, remarks string) (*models.VendorAccount, error) {
	vendor, err := s.transitionVendor(vendorID, models.VendorStatusApproved)
	if err != nil {
		return nil, err
	}

	s.logAction(actor, "vendor.approve", "vendor", vendor.ID, remarks, nil)

	if err := s.notificationService.SendVendorApprovedEmail(vendor); err != nil {
		logrus.WithError(err).Warn("failed to send vendor approval email")
	}

	return vendor, nil
}

func (s *AdminService) RejectVendor(actor Actor, vendorID uuid.UUID, remarks string) (*models.VendorAccount, error) {
	vendor, err := s.transitionVendor(vendorID, models.VendorStatusRejected)
	if err != nil {
		return nil, err
	}

	s.logAction(actor, "vendor.reject", "vendor", vendor.ID, remarks, nil)

	if err := s.notificationService.SendVendorRejectedEmail(vendor, remarks); err != nil {
		logrus.WithError(err).Warn("failed to send vendor rejection email")
	}

	return vendor, nil
}

// SuspendVendor pauses an approved vendor. The vendor's approved products keep
// their own status; visibility queries exclude them while the suspension lasts.
func (s *AdminService) SuspendVendor(actor Actor, vendorID uuid.UUID, remarks string) (*models.VendorAccount, error) {
	vendor, err := s.transitionVendor(vendorID, models.VendorStatusSuspended)
	if err != nil {
		return nil, err
	}

	s.logAction(actor, "vendor.suspend", "vendor", vendor.ID, remarks, nil)

	if err := s.notificationService.SendVendorSuspendedEmail(vendor, remarks); err != nil {
		logrus.WithError(err).Warn("failed to send vendor suspension email")
	}

	return vendor, nil
}

func (s *AdminService) UnsuspendVendor(actor Actor, vendorID uuid.UUID, remarks string) (*models.VendorAccount, error) {
	vendor, err := s.transitionVendor(vendorID, models.VendorStatusApproved)
	if err != nil {
		return nil, err
	}

	s.logAction(actor, "vendor.unsuspend", "vendor", vendor.ID, remarks, nil)
	return vendor, nil
}

// DeleteVendor hard-deletes a vendor and its products. Intended for rejected
// applications; the audit log entry outlives the row.
func (s *AdminService) DeleteVendor(actor Actor, vendorID uuid.UUID, remarks string) error {
	vendor, err := s.GetVendorDetail(vendorID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vendor_id = ?", vendorID).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		return tx.Delete(vendor).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete vendor: %w", err)
	}

	s.logAction(actor, "vendor.delete", "vendor", vendorID, remarks, models.JSONB{
		"email":         vendor.Email,
		"business_name": vendor.BusinessName,
	})
	return nil
}

// Product moderation

func (s *AdminService) GetProducts(filter AdminProductFilter) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{}).Preload("Vendor")

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.VendorID != nil {
		query = query.Where("vendor_id = ?", *filter.VendorID)
	}
	if filter.Search != "" {
		searchTerm := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "name", "status", "price"}
	query = utils.ApplySort(query, filter.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, filter.PaginationParams)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	return products, total, nil
}

// GetReviewQueue lists products awaiting review, oldest first.
func (s *AdminService) GetReviewQueue(params utils.PaginationParams) ([]models.Product, int64, error) {
	status := models.ProductStatusPendingReview
	filter := AdminProductFilter{PaginationParams: params, Status: &status}
	filter.Sort = "created_at"
	filter.Order = "asc"
	return s.GetProducts(filter)
}

func (s *AdminService) ApproveProduct(actor Actor, productID uuid.UUID, remarks string) (*models.Product, error) {
	product, err := transitionProduct(s.db, productID, models.ProductStatusApproved, nil)
	if err != nil {
		return nil, err
	}

	s.logAction(actor, "product.approve", "product", product.ID, remarks, nil)
	s.notifyProductDecision(product, true, "")

	return product, nil
}

// RejectProduct requires a reason; the vendor sees it verbatim alongside the
// rejected listing.
func (s *AdminService) RejectProduct(actor Actor, productID uuid.UUID, reason string) (*models.Product, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, apperrors.NewValidationError("reason", "required")
	}

	product, err := transitionProduct(s.db, productID, models.ProductStatusRejected, map[string]interface{}{
		"rejection_reason": reason,
	})
	if err != nil {
		return nil, err
	}

	s.logAction(actor, "product.reject", "product", product.ID, reason, nil)
	s.notifyProductDecision(product, false, reason)

	return product, nil
}

// User management

func (s *AdminService) GetUsers(filter AdminUserFilter) ([]models.User, int64, error) {
	query := s.db.Model(&models.User{})

	if filter.UserType != nil {
		query = query.Where("user_type = ?", *filter.UserType)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Search != "" {
		searchTerm := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "full_name", "email", "status"}
	query = utils.ApplySort(query, filter.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, filter.PaginationParams)

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	return users, total, nil
}

func (s *AdminService) SetUserStatus(actor Actor, userID uuid.UUID, status models.UserStatus, remarks string) (*models.User, error) {
	if status != models.UserStatusActive && status != models.UserStatusDisabled {
		return nil, apperrors.NewValidationError("status", "must be active or disabled")
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Model(&user).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update user status: %w", err)
	}

	s.logAction(actor, "user.set_status", "user", user.ID, remarks, models.JSONB{"status": string(status)})
	return &user, nil
}

// Audit log

func (s *AdminService) GetAccountLogs(params utils.PaginationParams, entityType string, entityID *uuid.UUID) ([]models.AccountLog, int64, error) {
	query := s.db.Model(&models.AccountLog{})
	if entityType != "" {
		query = query.Where("entity_type = ?", entityType)
	}
	if entityID != nil {
		query = query.Where("entity_id = ?", *entityID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count account logs: %w", err)
	}

	query = query.Order("created_at DESC")
	query = utils.ApplyPagination(query, params)

	var logs []models.AccountLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list account logs: %w", err)
	}

	return logs, total, nil
}

// Helpers

// transitionVendor applies a vendor status transition with a compare-and-set
// update, same discipline as transitionProduct.
func (s *AdminService) transitionVendor(vendorID uuid.UUID, target models.VendorStatus) (*models.VendorAccount, error) {
	sources := models.VendorTransitionSources(target)

	res := s.db.Model(&models.VendorAccount{}).
		Where("id = ? AND status IN ?", vendorID, sources).
		Update("status", target)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update vendor status: %w", res.Error)
	}

	var vendor models.VendorAccount
	if err := s.db.First(&vendor, vendorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("vendor")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if res.RowsAffected == 0 {
		if vendor.Status.CanTransitionTo(target) {
			return nil, apperrors.NewConflict("vendor")
		}
		return nil, apperrors.NewInvalidTransition("vendor", string(vendor.Status), string(target))
	}

	return &vendor, nil
}

// logAction appends one audit entry. Audit rows are never updated or deleted.
func (s *AdminService) logAction(actor Actor, action, entityType string, entityID uuid.UUID, remarks string, detail models.JSONB) {
	actorID := actor.ID
	eid := entityID
	entry := &models.AccountLog{
		ActorID:    &actorID,
		ActorRole:  actor.Role,
		Action:     action,
		EntityType: entityType,
		EntityID:   &eid,
		Remarks:    remarks,
		Detail:     detail,
		IPAddress:  actor.IPAddress,
	}

	if err := s.db.Create(entry).Error; err != nil {
		logrus.WithError(err).WithField("action", action).Error("failed to write account log")
	}
}

func (s *AdminService) notifyProductDecision(product *models.Product, approved bool, reason string) {
	var vendor models.VendorAccount
	if err := s.db.First(&vendor, product.VendorID).Error; err != nil {
		logrus.WithError(err).Warn("failed to load vendor for product notification")
		return
	}

	var err error
	if approved {
		err = s.notificationService.SendProductApprovedEmail(&vendor, product)
	} else {
		err = s.notificationService.SendProductRejectedEmail(&vendor, product, reason)
	}
	if err != nil {
		logrus.WithError(err).Warn("failed to send product decision email")
	}
}
