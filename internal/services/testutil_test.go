package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vlourenco/solarapi/internal/models"
	"github.com/vlourenco/solarapi/pkg/response"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory sqlite database named after the
// test, so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Client{},
		&models.Equipment{},
		&models.InstallationType{},
		&models.Project{},
		&models.ProjectEquipment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// seedRefs inserts one client, one installation type and two equipment rows
// and returns them for use as foreign keys.
func seedRefs(t *testing.T, db *gorm.DB) (models.Client, models.InstallationType, []models.Equipment) {
	t.Helper()

	client := models.Client{
		Name:     "Maria Souza",
		Email:    "maria@example.com",
		Phone:    "11987654321",
		Document: "12345678901",
	}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("failed to seed client: %v", err)
	}

	installType := models.InstallationType{Item: "Cerâmico"}
	if err := db.Create(&installType).Error; err != nil {
		t.Fatalf("failed to seed installation type: %v", err)
	}

	equipment := []models.Equipment{
		{Item: "Módulo"},
		{Item: "Inversor"},
	}
	if err := db.Create(&equipment).Error; err != nil {
		t.Fatalf("failed to seed equipment: %v", err)
	}

	return client, installType, equipment
}

// assertStatus fails unless err is an AppError with the given HTTP status.
func assertStatus(t *testing.T, err error, status int) *response.AppError {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error with status %d, got nil", status)
	}
	appErr, ok := err.(*response.AppError)
	if !ok {
		t.Fatalf("expected *response.AppError, got %T: %v", err, err)
	}
	if appErr.HTTPStatus != status {
		t.Fatalf("expected status %d, got %d (%s)", status, appErr.HTTPStatus, appErr.Message)
	}
	return appErr
}
