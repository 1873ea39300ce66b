package database

import (
	"errors"
	"strings"
	"time"

	"github.com/stardustenigma/portfolio-backend/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ProjectRepo) GetDB() *gorm.DB {
	return r.db
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE metacharacters so user input always matches as
// a literal substring. Queries using it must carry ESCAPE '\'.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// imagesInInsertionOrder keeps gallery images ordered the way they were added.
func imagesInInsertionOrder(db *gorm.DB) *gorm.DB {
	return db.Order("project_images.id ASC")
}

// tagNameMatch builds a subquery selecting project ids that carry at least
// one tag whose name contains pattern (already lowercased and wrapped in %).
func (r *ProjectRepo) tagNameMatch(pattern string) *gorm.DB {
	return r.db.Table("project_tech_tags").
		Select("project_tech_tags.project_id").
		Joins("JOIN tech_tags ON tech_tags.id = project_tech_tags.tech_tag_id").
		Where(`LOWER(tech_tags.name) LIKE ? ESCAPE '\'`, pattern)
}

// filtered builds a fresh query applying the search and tech filters. The
// search pattern matches title, short description, description, or any tag
// name; membership subqueries keep the result set free of join duplicates.
func (r *ProjectRepo) filtered(search, tech string) *gorm.DB {
	q := r.db.Model(&models.Project{})

	if search != "" {
		pat := "%" + escapeLike(strings.ToLower(search)) + "%"
		q = q.Where(
			`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(short_description) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\' OR id IN (?)`,
			pat, pat, pat, r.tagNameMatch(pat),
		)
	}

	if tech != "" {
		pat := "%" + escapeLike(strings.ToLower(tech)) + "%"
		q = q.Where("id IN (?)", r.tagNameMatch(pat))
	}

	return q
}

// CountFiltered returns how many projects match the given filters.
func (r *ProjectRepo) CountFiltered(search, tech string) (int64, error) {
	var total int64
	err := r.filtered(search, tech).Count(&total).Error
	return total, err
}

// FindPage returns one page of filtered projects, newest-created first with
// id-descending tiebreak so pagination stays stable when timestamps collide.
func (r *ProjectRepo) FindPage(search, tech string, offset, limit int) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.filtered(search, tech).
		Preload("Tags").
		Preload("Images", imagesInInsertionOrder).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

// FindByID returns a project with its tags and ordered images, or nil when
// no such project exists.
func (r *ProjectRepo) FindByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.
		Preload("Tags").
		Preload("Images", imagesInInsertionOrder).
		First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindRelated returns up to limit other projects sharing at least one tag
// with project. Duplicates are suppressed by the membership subquery.
func (r *ProjectRepo) FindRelated(project *models.Project, limit int) ([]*models.Project, error) {
	if len(project.Tags) == 0 {
		return nil, nil
	}

	tagIDs := make([]uint, 0, len(project.Tags))
	for _, tag := range project.Tags {
		tagIDs = append(tagIDs, tag.ID)
	}

	sub := r.db.Table("project_tech_tags").
		Select("project_tech_tags.project_id").
		Where("project_tech_tags.tech_tag_id IN ?", tagIDs)

	var related []*models.Project
	err := r.db.Model(&models.Project{}).
		Preload("Tags").
		Where("id IN (?)", sub).
		Where("id <> ?", project.ID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&related).Error
	return related, err
}

// FindNewest returns the most recently created projects, for the feed.
func (r *ProjectRepo) FindNewest(limit int) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Model(&models.Project{}).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

// FindAllByUpdated returns every project ordered by last modification, for
// the sitemap.
func (r *ProjectRepo) FindAllByUpdated() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Model(&models.Project{}).
		Order("updated_at DESC").
		Find(&projects).Error
	return projects, err
}

// ProjectSummary is the trimmed shape used by the admin stats dump.
type ProjectSummary struct {
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// FindRecentSummaries returns title and creation time of the newest projects.
func (r *ProjectRepo) FindRecentSummaries(limit int) ([]ProjectSummary, error) {
	var summaries []ProjectSummary
	err := r.db.Model(&models.Project{}).
		Select("title, created_at").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Scan(&summaries).Error
	return summaries, err
}

// Count returns the total number of projects.
func (r *ProjectRepo) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.Project{}).Count(&total).Error
	return total, err
}

// CountImages returns the total number of gallery images.
func (r *ProjectRepo) CountImages() (int64, error) {
	var total int64
	err := r.db.Model(&models.ProjectImage{}).Count(&total).Error
	return total, err
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(id uint) error {
	return r.db.Select("Images").Delete(&models.Project{ID: id}).Error
}
