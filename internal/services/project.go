package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/vlourenco/solarapi/internal/models"
	"github.com/vlourenco/solarapi/pkg/response"
	"gorm.io/gorm"
)

// ProjectPageSize is the fixed page size for project listings.
const ProjectPageSize = 20

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// ProjectEquipmentInput is one {id, amount} pair of a create/update request.
type ProjectEquipmentInput struct {
	ID     uint `json:"id" binding:"required"`
	Amount int  `json:"amount" binding:"required,min=1"`
}

// ProjectRequest is the body of both create and update; updates replace all
// fields and the full equipment set.
type ProjectRequest struct {
	Name          string                  `json:"name" binding:"required,min=5,max=255"`
	ClientID      uint                    `json:"client_id" binding:"required"`
	InstallTypeID uint                    `json:"install_type_id" binding:"required"`
	Region        string                  `json:"region" binding:"required,max=2"`
	Equipment     []ProjectEquipmentInput `json:"equipment" binding:"required,min=1,dive"`
}

type ProjectListRequest struct {
	Page     int    `form:"page"`
	ClientID uint   `form:"client_id"`
	Name     string `form:"name"`
	Region   string `form:"region"`
}

// ProjectEquipmentEntry is one associated catalog item with its quantity.
type ProjectEquipmentEntry struct {
	ID     uint   `json:"id"`
	Item   string `json:"item"`
	Amount int    `json:"amount"`
}

// ProjectDetail is the show view: the project row plus its client and its
// full equipment association.
type ProjectDetail struct {
	ID            uint                    `json:"id"`
	ClientID      uint                    `json:"client_id"`
	InstallTypeID uint                    `json:"install_type_id"`
	Name          string                  `json:"name"`
	Region        string                  `json:"region"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
	Client        models.Client           `json:"client"`
	Equipment     []ProjectEquipmentEntry `json:"equipment"`
}

// targetAmounts builds the authoritative equipment id → amount mapping from
// the request list. A duplicate id later in the list overrides an earlier
// occurrence.
func targetAmounts(input []ProjectEquipmentInput) map[uint]int {
	target := make(map[uint]int, len(input))
	for _, item := range input {
		target[item.ID] = item.Amount
	}
	return target
}

func sortedKeys(m map[uint]int) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// validateReferences checks that every foreign id in the request resolves to
// an existing row. Failures are reported per field, like the shape rules.
func (s *ProjectService) validateReferences(req *ProjectRequest) error {
	fields := map[string][]string{}

	var count int64
	s.db.Model(&models.Client{}).Where("id = ?", req.ClientID).Count(&count)
	if count == 0 {
		fields["client_id"] = []string{"The selected client_id is invalid."}
	}

	count = 0
	s.db.Model(&models.InstallationType{}).Where("id = ?", req.InstallTypeID).Count(&count)
	if count == 0 {
		fields["install_type_id"] = []string{"The selected install_type_id is invalid."}
	}

	ids := make([]uint, 0, len(req.Equipment))
	for _, item := range req.Equipment {
		ids = append(ids, item.ID)
	}
	var existing []uint
	s.db.Model(&models.Equipment{}).Where("id IN ?", ids).Pluck("id", &existing)
	known := make(map[uint]bool, len(existing))
	for _, id := range existing {
		known[id] = true
	}
	for i, item := range req.Equipment {
		if !known[item.ID] {
			key := fmt.Sprintf("equipment.%d.id", i)
			fields[key] = []string{fmt.Sprintf("The selected %s is invalid.", key)}
		}
	}

	if len(fields) > 0 {
		return response.NewValidation(fields)
	}
	return nil
}

// Create persists a new project and one association row per distinct
// equipment id, all inside a single transaction.
func (s *ProjectService) Create(req *ProjectRequest) error {
	if err := s.validateReferences(req); err != nil {
		return err
	}

	target := targetAmounts(req.Equipment)

	return s.db.Transaction(func(tx *gorm.DB) error {
		project := models.Project{
			ClientID:      req.ClientID,
			InstallTypeID: req.InstallTypeID,
			Name:          req.Name,
			Region:        req.Region,
		}
		if err := tx.Create(&project).Error; err != nil {
			return err
		}

		for _, id := range sortedKeys(target) {
			row := models.ProjectEquipment{
				ProjectID:   project.ID,
				EquipmentID: id,
				Amount:      target[id],
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Update overwrites all project fields and makes the stored association set
// exactly equal to the request's equipment list.
func (s *ProjectService) Update(id uint, req *ProjectRequest) error {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("project not found")
		}
		return err
	}

	if err := s.validateReferences(req); err != nil {
		return err
	}

	target := targetAmounts(req.Equipment)

	return s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":            req.Name,
			"client_id":       req.ClientID,
			"install_type_id": req.InstallTypeID,
			"region":          req.Region,
		}
		if err := tx.Model(&project).Updates(updates).Error; err != nil {
			return err
		}
		return reconcileEquipment(tx, project.ID, target)
	})
}

// reconcileEquipment diffs the stored association rows of a project against
// the target mapping: extraneous rows are deleted, changed amounts are
// overwritten, missing pairs are inserted.
func reconcileEquipment(tx *gorm.DB, projectID uint, target map[uint]int) error {
	var current []models.ProjectEquipment
	if err := tx.Where("project_id = ?", projectID).Find(&current).Error; err != nil {
		return err
	}

	stored := make(map[uint]bool, len(current))
	for _, row := range current {
		amount, keep := target[row.EquipmentID]
		if !keep {
			if err := tx.Delete(&models.ProjectEquipment{}, row.ID).Error; err != nil {
				return err
			}
			continue
		}
		stored[row.EquipmentID] = true
		if row.Amount != amount {
			err := tx.Model(&models.ProjectEquipment{}).
				Where("id = ?", row.ID).
				Update("amount", amount).Error
			if err != nil {
				return err
			}
		}
	}

	for _, id := range sortedKeys(target) {
		if stored[id] {
			continue
		}
		row := models.ProjectEquipment{
			ProjectID:   projectID,
			EquipmentID: id,
			Amount:      target[id],
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// Show returns the project with its client and equipment association.
func (s *ProjectService) Show(id uint) (*ProjectDetail, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}

	var client models.Client
	if err := s.db.First(&client, project.ClientID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entries := []ProjectEquipmentEntry{}
	err := s.db.Table("project_equipment").
		Select("project_equipment.equipment_id AS id, equipment.item, project_equipment.amount").
		Joins("JOIN equipment ON equipment.id = project_equipment.equipment_id").
		Where("project_equipment.project_id = ?", project.ID).
		Order("project_equipment.id").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}

	return &ProjectDetail{
		ID:            project.ID,
		ClientID:      project.ClientID,
		InstallTypeID: project.InstallTypeID,
		Name:          project.Name,
		Region:        project.Region,
		CreatedAt:     project.CreatedAt,
		UpdatedAt:     project.UpdatedAt,
		Client:        client,
		Equipment:     entries,
	}, nil
}

// List returns one page of active projects matching the optional filters,
// plus the total match count. Filters combine with AND; empty ones impose no
// constraint.
func (s *ProjectService) List(req *ProjectListRequest) ([]models.Project, int64, error) {
	if req.Page < 1 {
		req.Page = 1
	}

	query := s.db.Model(&models.Project{})
	if req.ClientID != 0 {
		query = query.Where("client_id = ?", req.ClientID)
	}
	if req.Name != "" {
		query = query.Where("name LIKE ?", "%"+req.Name+"%")
	}
	if req.Region != "" {
		query = query.Where("region = ?", req.Region)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []models.Project
	offset := (req.Page - 1) * ProjectPageSize
	if err := query.Order("id").Offset(offset).Limit(ProjectPageSize).Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// Delete soft-deletes a project. Association rows are left in place; they
// are unreachable once the project is gone from normal reads.
func (s *ProjectService) Delete(id uint) error {
	result := s.db.Delete(&models.Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return response.NewNotFound("project not found")
	}
	return nil
}
