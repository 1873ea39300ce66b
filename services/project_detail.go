package services

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stardustenigma/portfolio-backend/database"
	"github.com/stardustenigma/portfolio-backend/errs"
	"github.com/stardustenigma/portfolio-backend/models"
)

const relatedLimit = 4

// ProjectDetail is the full detail payload for one project.
type ProjectDetail struct {
	Project *models.Project       `json:"project"`
	Images  []models.ProjectImage `json:"project_images"`
	Related []*models.Project     `json:"related_projects"`
}

// DetailResult is either a detail payload or a permanent-redirect
// instruction to the canonical URL; exactly one field is set.
type DetailResult struct {
	Detail     *ProjectDetail
	RedirectTo string
}

// ProjectDetailService resolves numeric identifier + optional slug into
// detail data, a canonical redirect, or a not-found signal.
type ProjectDetailService struct {
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func NewProjectDetailService(projectRepo *database.ProjectRepo) *ProjectDetailService {
	return &ProjectDetailService{
		logger:      log.With().Str("serviceName", "projectDetail").Logger(),
		projectRepo: projectRepo,
	}
}

// Resolve fetches the project and checks the supplied slug against the
// canonical one derived from the current title. A missing or stale slug
// yields a permanent redirect; failures during assembly are logged and
// surfaced as not-found, never as a raw fault.
func (s *ProjectDetailService) Resolve(id uint, slug string) (*DetailResult, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		s.logger.Error().Err(err).Uint("projectID", id).Msg("project detail lookup failed")
		return nil, errs.NewNotFoundError("project not found")
	}
	if project == nil {
		return nil, errs.NewNotFoundError("project not found")
	}

	// A title with no letters or digits slugifies to the empty string; such
	// projects have no canonical slug URL to redirect to and are served
	// directly.
	canonical := Slugify(project.Title)
	if canonical != "" && slug != canonical {
		return &DetailResult{RedirectTo: ProjectPath(project.ID, canonical)}, nil
	}

	related, err := s.projectRepo.FindRelated(project, relatedLimit)
	if err != nil {
		s.logger.Error().Err(err).Uint("projectID", id).Msg("related projects lookup failed")
		return nil, errs.NewNotFoundError("project not found")
	}

	s.logger.Info().Str("title", project.Title).Msg("project detail served")

	return &DetailResult{
		Detail: &ProjectDetail{
			Project: project,
			Images:  project.Images,
			Related: related,
		},
	}, nil
}
