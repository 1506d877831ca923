package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "gigworks.com/gigworks/internal/models"
)

func New(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(&model.Gig{}, &model.Application{}, &model.Review{}, &model.Payment{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
