package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/vlourenco/solarapi/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	RegisterValidatorTagNames()
}

// newTestRouter wires all resource routes against an isolated in-memory
// database, mirroring cmd/server/routes.go without middleware.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
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

	r := gin.New()

	clientHandler := NewClientHandler(db)
	r.GET("/client", clientHandler.List)
	r.POST("/client", clientHandler.Create)
	r.GET("/client/:id", clientHandler.GetByID)
	r.PUT("/client/:id", clientHandler.Update)
	r.DELETE("/client/:id", clientHandler.Delete)

	equipmentHandler := NewEquipmentHandler(db)
	r.GET("/equipment", equipmentHandler.List)
	r.POST("/equipment", equipmentHandler.Create)
	r.GET("/equipment/:id", equipmentHandler.GetByID)
	r.PUT("/equipment/:id", equipmentHandler.Update)
	r.DELETE("/equipment/:id", equipmentHandler.Delete)

	installTypeHandler := NewInstallationTypeHandler(db)
	r.GET("/install_type", installTypeHandler.List)
	r.POST("/install_type", installTypeHandler.Create)
	r.GET("/install_type/:id", installTypeHandler.GetByID)
	r.PUT("/install_type/:id", installTypeHandler.Update)
	r.DELETE("/install_type/:id", installTypeHandler.Delete)

	projectHandler := NewProjectHandler(db)
	r.GET("/projects", projectHandler.List)
	r.POST("/projects", projectHandler.Create)
	r.GET("/projects/:id", projectHandler.GetByID)
	r.PUT("/projects/:id", projectHandler.Update)
	r.DELETE("/projects/:id", projectHandler.Delete)

	return r, db
}

func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", w.Body.String(), err)
	}
	return body
}

// seedProjectRefs creates the rows a valid project request needs.
func seedProjectRefs(t *testing.T, db *gorm.DB) (models.Client, models.InstallationType, models.Equipment) {
	t.Helper()

	client := models.Client{Name: "Maria Souza", Email: "maria@example.com", Phone: "11987654321", Document: "12345678901"}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("failed to seed client: %v", err)
	}
	installType := models.InstallationType{Item: "Cerâmico"}
	if err := db.Create(&installType).Error; err != nil {
		t.Fatalf("failed to seed installation type: %v", err)
	}
	equipment := models.Equipment{Item: "Módulo"}
	if err := db.Create(&equipment).Error; err != nil {
		t.Fatalf("failed to seed equipment: %v", err)
	}
	return client, installType, equipment
}
