package services

import (
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stardustenigma/portfolio-backend/database"
	"github.com/stardustenigma/portfolio-backend/errs"
	"github.com/stardustenigma/portfolio-backend/models"
)

const (
	// PageSize is the fixed number of projects per listing page.
	PageSize = 6

	maxSearchLen = 100
	maxTechLen   = 50
)

// ProjectPage is one page of filtered listing results plus the context the
// filter UI needs.
type ProjectPage struct {
	Projects    []*models.Project `json:"projects"`
	TechTags    []*models.TechTag `json:"tech_tags"`
	Search      string            `json:"search_query"`
	Tech        string            `json:"tech_filter"`
	Total       int64             `json:"total_projects"`
	CurrentPage int               `json:"current_page"`
	TotalPages  int               `json:"total_pages"`
}

// ProjectQueryService builds filtered, paginated, de-duplicated listing
// pages from optional search and tech parameters.
type ProjectQueryService struct {
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	techTagRepo *database.TechTagRepo
}

func NewProjectQueryService(projectRepo *database.ProjectRepo, techTagRepo *database.TechTagRepo) *ProjectQueryService {
	return &ProjectQueryService{
		logger:      log.With().Str("serviceName", "projectQuery").Logger(),
		projectRepo: projectRepo,
		techTagRepo: techTagRepo,
	}
}

// ListPage resolves one listing page. Non-numeric or sub-1 page values clamp
// to page 1; a numeric page beyond the last one is a not-found condition. A
// tech filter naming no existing tag falls through to the tech-unfiltered
// set after logging the anomaly.
func (s *ProjectQueryService) ListPage(search, tech, page string) (*ProjectPage, error) {
	search = Sanitize(search, maxSearchLen)
	tech = Sanitize(tech, maxTechLen)

	appliedTech := tech
	if tech != "" {
		exists, err := s.techTagRepo.NameContainsExists(tech)
		if err != nil {
			return nil, errs.NewDatabaseError("check tech filter", "tech tags", err)
		}
		if !exists {
			s.logger.Warn().Str("tech", tech).Msg("invalid tech filter attempted, ignoring")
			appliedTech = ""
		}
	}

	total, err := s.projectRepo.CountFiltered(search, appliedTech)
	if err != nil {
		return nil, errs.NewDatabaseError("count projects", "projects", err)
	}

	totalPages := int((total + PageSize - 1) / PageSize)
	if totalPages == 0 {
		totalPages = 1
	}

	current, convErr := strconv.Atoi(page)
	if convErr != nil || current < 1 {
		current = 1
	} else if current > totalPages {
		return nil, errs.NewNotFoundError("page not found")
	}

	projects, err := s.projectRepo.FindPage(search, appliedTech, (current-1)*PageSize, PageSize)
	if err != nil {
		return nil, errs.NewDatabaseError("find projects", "projects", err)
	}

	tags, err := s.techTagRepo.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find tech tags", "tech tags", err)
	}

	s.logger.Info().
		Int64("total", total).
		Int("page", current).
		Int("served", len(projects)).
		Msg("projects page served")

	return &ProjectPage{
		Projects:    projects,
		TechTags:    tags,
		Search:      search,
		Tech:        tech,
		Total:       total,
		CurrentPage: current,
		TotalPages:  totalPages,
	}, nil
}
