// internal/services/garage_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/spareshub/spareshub-backend/internal/apperrors"
	"github.com/spareshub/spareshub-backend/internal/models"
)

// GarageService manages a customer's saved vehicles. The default vehicle feeds
// the catalog fitment filter.
type GarageService struct {
	db *gorm.DB
}

type VehicleRequest struct {
	Make        string `json:"make"`
	Model       string `json:"model"`
	Variant     string `json:"variant"`
	Year        int    `json:"year"`
	PlateNumber string `json:"plate_number"`
	IsDefault   bool   `json:"is_default"`
}

func (r *VehicleRequest) Validate() error {
	if r.Make == "" {
		return apperrors.NewValidationError("make", "required")
	}
	if r.Model == "" {
		return apperrors.NewValidationError("model", "required")
	}
	if r.Year != 0 && (r.Year < 1980 || r.Year > time.Now().Year()+1) {
		return apperrors.NewValidationError("year", "out of range")
	}
	return nil
}

func NewGarageService(db *gorm.DB) *GarageService {
	return &GarageService{db: db}
}

func (s *GarageService) AddVehicle(ownerID uuid.UUID, req *VehicleRequest) (*models.Vehicle, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	vehicle := &models.Vehicle{
		OwnerID:     ownerID,
		Make:        req.Make,
		Model:       req.Model,
		Variant:     req.Variant,
		Year:        req.Year,
		PlateNumber: req.PlateNumber,
		IsDefault:   req.IsDefault,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		tx.Model(&models.Vehicle{}).Where("owner_id = ?", ownerID).Count(&count)
		if count == 0 {
			vehicle.IsDefault = true
		} else if req.IsDefault {
			if err := tx.Model(&models.Vehicle{}).Where("owner_id = ?", ownerID).Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(vehicle).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add vehicle: %w", err)
	}

	return vehicle, nil
}

func (s *GarageService) ListVehicles(ownerID uuid.UUID) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := s.db.Where("owner_id = ?", ownerID).
		Order("is_default DESC, created_at ASC").
		Find(&vehicles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

func (s *GarageService) GetVehicle(ownerID, vehicleID uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := s.db.First(&vehicle, vehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("vehicle")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	if vehicle.OwnerID != ownerID {
		return nil, apperrors.ErrForbidden
	}
	return &vehicle, nil
}

func (s *GarageService) UpdateVehicle(ownerID, vehicleID uuid.UUID, req *VehicleRequest) (*models.Vehicle, error) {
	vehicle, err := s.GetVehicle(ownerID, vehicleID)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	vehicle.Make = req.Make
	vehicle.Model = req.Model
	vehicle.Variant = req.Variant
	vehicle.Year = req.Year
	vehicle.PlateNumber = req.PlateNumber

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if req.IsDefault && !vehicle.IsDefault {
			if err := tx.Model(&models.Vehicle{}).Where("owner_id = ?", ownerID).Update("is_default", false).Error; err != nil {
				return err
			}
			vehicle.IsDefault = true
		}
		return tx.Save(vehicle).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	return vehicle, nil
}

func (s *GarageService) DeleteVehicle(ownerID, vehicleID uuid.UUID) error {
	vehicle, err := s.GetVehicle(ownerID, vehicleID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(vehicle).Error; err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return nil
}
