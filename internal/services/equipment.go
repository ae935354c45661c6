package services

import (
	"errors"

	"github.com/vlourenco/solarapi/internal/models"
	"github.com/vlourenco/solarapi/pkg/response"
	"gorm.io/gorm"
)

type EquipmentService struct {
	db *gorm.DB
}

func NewEquipmentService(db *gorm.DB) *EquipmentService {
	return &EquipmentService{db: db}
}

// ItemRequest is the body for catalog resources (equipment and installation
// types), which carry a single label field.
type ItemRequest struct {
	Item string `json:"item" binding:"required"`
}

func (s *EquipmentService) List(page int) ([]models.Equipment, int64, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := s.db.Model(&models.Equipment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var equipment []models.Equipment
	offset := (page - 1) * DefaultPageSize
	if err := s.db.Order("id").Offset(offset).Limit(DefaultPageSize).Find(&equipment).Error; err != nil {
		return nil, 0, err
	}

	return equipment, total, nil
}

func (s *EquipmentService) GetByID(id uint) (*models.Equipment, error) {
	var equipment models.Equipment
	if err := s.db.First(&equipment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("equipment not found")
		}
		return nil, err
	}
	return &equipment, nil
}

func (s *EquipmentService) Create(req *ItemRequest) error {
	equipment := models.Equipment{Item: req.Item}
	return s.db.Create(&equipment).Error
}

func (s *EquipmentService) Update(id uint, req *ItemRequest) error {
	var equipment models.Equipment
	if err := s.db.First(&equipment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("equipment not found")
		}
		return err
	}
	return s.db.Model(&equipment).Update("item", req.Item).Error
}

// Delete removes the catalog row. Join rows referencing it are not touched
// at the application layer.
func (s *EquipmentService) Delete(id uint) error {
	result := s.db.Delete(&models.Equipment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return response.NewNotFound("equipment not found")
	}
	return nil
}
