// internal/services/address_service.go
package services

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/spareshub/spareshub-backend/internal/apperrors"
	"github.com/spareshub/spareshub-backend/internal/models"
)

type AddressService struct {
	db *gorm.DB
}

type AddressRequest struct {
	Label      string `json:"label"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	IsDefault  bool   `json:"is_default"`
}

var postalCodePattern = regexp.MustCompile(`^[0-9]{5,6}$`)

func (r *AddressRequest) Validate() error {
	if r.FullName == "" {
		return apperrors.NewValidationError("full_name", "required")
	}
	if r.Phone == "" {
		return apperrors.NewValidationError("phone", "required")
	}
	if r.Line1 == "" {
		return apperrors.NewValidationError("line1", "required")
	}
	if r.City == "" {
		return apperrors.NewValidationError("city", "required")
	}
	if !postalCodePattern.MatchString(r.PostalCode) {
		return apperrors.NewValidationError("postal_code", "must be a 5 or 6 digit code")
	}
	return nil
}

func NewAddressService(db *gorm.DB) *AddressService {
	return &AddressService{db: db}
}

func (s *AddressService) AddAddress(userID uuid.UUID, req *AddressRequest) (*models.Address, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	address := &models.Address{
		UserID:     userID,
		Label:      req.Label,
		FullName:   req.FullName,
		Phone:      req.Phone,
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		IsDefault:  req.IsDefault,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		tx.Model(&models.Address{}).Where("user_id = ?", userID).Count(&count)
		if count == 0 {
			address.IsDefault = true
		} else if req.IsDefault {
			if err := tx.Model(&models.Address{}).Where("user_id = ?", userID).Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(address).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add address: %w", err)
	}

	return address, nil
}

func (s *AddressService) ListAddresses(userID uuid.UUID) ([]models.Address, error) {
	var addresses []models.Address
	err := s.db.Where("user_id = ?", userID).
		Order("is_default DESC, created_at ASC").
		Find(&addresses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addresses, nil
}

func (s *AddressService) GetAddress(userID, addressID uuid.UUID) (*models.Address, error) {
	var address models.Address
	if err := s.db.First(&address, addressID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("address")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	if address.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return &address, nil
}

func (s *AddressService) UpdateAddress(userID, addressID uuid.UUID, req *AddressRequest) (*models.Address, error) {
	address, err := s.GetAddress(userID, addressID)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	address.Label = req.Label
	address.FullName = req.FullName
	address.Phone = req.Phone
	address.Line1 = req.Line1
	address.Line2 = req.Line2
	address.City = req.City
	address.State = req.State
	address.PostalCode = req.PostalCode

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if req.IsDefault && !address.IsDefault {
			if err := tx.Model(&models.Address{}).Where("user_id = ?", userID).Update("is_default", false).Error; err != nil {
				return err
			}
			address.IsDefault = true
		}
		return tx.Save(address).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update address: %w", err)
	}

	return address, nil
}

func (s *AddressService) DeleteAddress(userID, addressID uuid.UUID) error {
	address, err := s.GetAddress(userID, addressID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(address).Error; err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}
	return nil
}
