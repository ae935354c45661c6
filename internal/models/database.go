package models

import (
	"fmt"

	"github.com/vlourenco/solarapi/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB(cfg *config.DatabaseConfig) error {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	DB = db
	return nil
}

func AutoMigrate() error {
	return DB.AutoMigrate(
		&Client{},
		&Equipment{},
		&InstallationType{},
		&Project{},
		&ProjectEquipment{},
	)
}

func GetDB() *gorm.DB {
	return DB
}

// SeedDefaultData inserts the catalog reference rows if the tables are empty.
func SeedDefaultData() error {
	var typeCount int64
	DB.Model(&InstallationType{}).Count(&typeCount)
	if typeCount == 0 {
		installationTypes := []InstallationType{
			{Item: "Fibrocimento (Madeira)"},
			{Item: "Fibrocimento (Metálico)"},
			{Item: "Cerâmico"},
			{Item: "Metálico"},
			{Item: "Laje"},
			{Item: "Solo"},
		}
		if err := DB.Create(&installationTypes).Error; err != nil {
			return err
		}
	}

	var equipmentCount int64
	DB.Model(&Equipment{}).Count(&equipmentCount)
	if equipmentCount == 0 {
		equipment := []Equipment{
			{Item: "Módulo"},
			{Item: "Inversor"},
			{Item: "Microinversor"},
			{Item: "Estrutura"},
			{Item: "Cabo vermelho"},
			{Item: "Cabo preto"},
			{Item: "String Box"},
			{Item: "Cabo Tronco"},
			{Item: "Endcap"},
		}
		if err := DB.Create(&equipment).Error; err != nil {
			return err
		}
	}

	return nil
}
