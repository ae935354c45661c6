package services

import (
	"errors"

	"github.com/vlourenco/solarapi/internal/models"
	"github.com/vlourenco/solarapi/pkg/response"
	"gorm.io/gorm"
)

type InstallationTypeService struct {
	db *gorm.DB
}

func NewInstallationTypeService(db *gorm.DB) *InstallationTypeService {
	return &InstallationTypeService{db: db}
}

func (s *InstallationTypeService) List(page int) ([]models.InstallationType, int64, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := s.db.Model(&models.InstallationType{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var types []models.InstallationType
	offset := (page - 1) * DefaultPageSize
	if err := s.db.Order("id").Offset(offset).Limit(DefaultPageSize).Find(&types).Error; err != nil {
		return nil, 0, err
	}

	return types, total, nil
}

func (s *InstallationTypeService) GetByID(id uint) (*models.InstallationType, error) {
	var installType models.InstallationType
	if err := s.db.First(&installType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("installation type not found")
		}
		return nil, err
	}
	return &installType, nil
}

func (s *InstallationTypeService) Create(req *ItemRequest) error {
	installType := models.InstallationType{Item: req.Item}
	return s.db.Create(&installType).Error
}

func (s *InstallationTypeService) Update(id uint, req *ItemRequest) error {
	var installType models.InstallationType
	if err := s.db.First(&installType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("installation type not found")
		}
		return err
	}
	return s.db.Model(&installType).Update("item", req.Item).Error
}

// Delete removes the row. The projects.install_type_id foreign key carries
// ON DELETE CASCADE, so the storage layer drops dependent projects outright,
// bypassing their soft delete. Kept as-is; see DESIGN.md.
func (s *InstallationTypeService) Delete(id uint) error {
	result := s.db.Delete(&models.InstallationType{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return response.NewNotFound("installation type not found")
	}
	return nil
}
