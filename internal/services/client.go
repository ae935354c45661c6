package services

import (
	"errors"

	"github.com/vlourenco/solarapi/internal/models"
	"github.com/vlourenco/solarapi/pkg/response"
	"gorm.io/gorm"
)

// DefaultPageSize is the page size for client and catalog listings.
const DefaultPageSize = 15

type ClientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{db: db}
}

// ClientRequest is the body of both create and update.
type ClientRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=255"`
	Email    string `json:"email" binding:"required,min=5,max=255,email"`
	Phone    string `json:"phone" binding:"required,min=8,max=15"`
	Document string `json:"document" binding:"required,min=11,max=14"`
}

// validateDocument enforces document uniqueness. excludeID skips the record
// being updated so it can keep its own document.
func (s *ClientService) validateDocument(document string, excludeID uint) error {
	query := s.db.Model(&models.Client{}).Where("document = ?", document)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	query.Count(&count)
	if count > 0 {
		return response.NewValidation(map[string][]string{
			"document": {"The document has already been taken."},
		})
	}
	return nil
}

func (s *ClientService) List(page int) ([]models.Client, int64, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := s.db.Model(&models.Client{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var clients []models.Client
	offset := (page - 1) * DefaultPageSize
	if err := s.db.Order("id").Offset(offset).Limit(DefaultPageSize).Find(&clients).Error; err != nil {
		return nil, 0, err
	}

	return clients, total, nil
}

func (s *ClientService) GetByID(id uint) (*models.Client, error) {
	var client models.Client
	if err := s.db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("client not found")
		}
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) Create(req *ClientRequest) error {
	if err := s.validateDocument(req.Document, 0); err != nil {
		return err
	}

	client := models.Client{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Document: req.Document,
	}
	return s.db.Create(&client).Error
}

func (s *ClientService) Update(id uint, req *ClientRequest) error {
	var client models.Client
	if err := s.db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("client not found")
		}
		return err
	}

	if err := s.validateDocument(req.Document, id); err != nil {
		return err
	}

	updates := map[string]interface{}{
		"name":     req.Name,
		"email":    req.Email,
		"phone":    req.Phone,
		"document": req.Document,
	}
	return s.db.Model(&client).Updates(updates).Error
}

// Delete soft-deletes every project of the client, then removes the client
// row itself. The client table has no soft-delete column.
func (s *ClientService) Delete(id uint) error {
	var client models.Client
	if err := s.db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("client not found")
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", id).Delete(&models.Project{}).Error; err != nil {
			return err
		}
		return tx.Delete(&client).Error
	})
}
