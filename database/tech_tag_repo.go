package database

import (
	"strings"

	"github.com/stardustenigma/portfolio-backend/models"
	"gorm.io/gorm"
)

type TechTagRepo struct {
	db *gorm.DB
}

func NewTechTagRepo(db *gorm.DB) *TechTagRepo {
	return &TechTagRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *TechTagRepo) GetDB() *gorm.DB {
	return r.db
}

// FindAll returns every tag ordered by name.
func (r *TechTagRepo) FindAll() ([]*models.TechTag, error) {
	var tags []*models.TechTag
	err := r.db.Order("name ASC").Find(&tags).Error
	return tags, err
}

// NameContainsExists reports whether any tag name contains the given
// fragment, case-insensitively.
func (r *TechTagRepo) NameContainsExists(fragment string) (bool, error) {
	pat := "%" + escapeLike(strings.ToLower(fragment)) + "%"
	var count int64
	err := r.db.Model(&models.TechTag{}).
		Where(`LOWER(name) LIKE ? ESCAPE '\'`, pat).
		Count(&count).Error
	return count > 0, err
}

// TagUsage pairs a tag name with the number of projects carrying it.
type TagUsage struct {
	Name         string `json:"name"`
	ProjectCount int64  `json:"project_count"`
}

// FindMostUsed returns the tags carried by the most projects.
func (r *TechTagRepo) FindMostUsed(limit int) ([]TagUsage, error) {
	var usage []TagUsage
	err := r.db.Table("tech_tags").
		Select("tech_tags.name, COUNT(project_tech_tags.project_id) AS project_count").
		Joins("LEFT JOIN project_tech_tags ON project_tech_tags.tech_tag_id = tech_tags.id").
		Group("tech_tags.id, tech_tags.name").
		Order("project_count DESC").
		Limit(limit).
		Scan(&usage).Error
	return usage, err
}

// Count returns the total number of tags.
func (r *TechTagRepo) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.TechTag{}).Count(&total).Error
	return total, err
}

// Add inserts a new tag into the database
func (r *TechTagRepo) Add(tag *models.TechTag) error {
	return r.db.Create(tag).Error
}

// Delete removes a tag from the database by id
func (r *TechTagRepo) Delete(id uint) error {
	return r.db.Delete(&models.TechTag{}, id).Error
}
