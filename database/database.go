package database

import (
	"context"

	"github.com/stardustenigma/portfolio-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	db                 *gorm.DB
	projectRepo        *ProjectRepo
	techTagRepo        *TechTagRepo
	contactMessageRepo *ContactMessageRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:                 db,
		projectRepo:        NewProjectRepo(db),
		techTagRepo:        NewTechTagRepo(db),
		contactMessageRepo: NewContactMessageRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) TechTagRepo() *TechTagRepo {
	return d.techTagRepo
}

func (d Database) ContactMessageRepo() *ContactMessageRepo {
	return d.contactMessageRepo
}

// Migrate creates or updates the schema for every model.
func (d Database) Migrate() error {
	return d.db.AutoMigrate(
		&models.TechTag{},
		&models.Project{},
		&models.ProjectImage{},
		&models.ContactMessage{},
	)
}

// Ping verifies the underlying connection is alive.
func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
