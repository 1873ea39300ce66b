package services

import (
	"encoding/xml"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stardustenigma/portfolio-backend/database"
	"github.com/stardustenigma/portfolio-backend/errs"
)

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// SitemapService projects the current project set into an XML sitemap and
// the matching robots.txt body.
type SitemapService struct {
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	baseURL     string
}

func NewSitemapService(projectRepo *database.ProjectRepo, baseURL string) *SitemapService {
	return &SitemapService{
		logger:      log.With().Str("serviceName", "sitemap").Logger(),
		projectRepo: projectRepo,
		baseURL:     baseURL,
	}
}

// Render produces the sitemap: the projects index entry plus one entry per
// project. An empty project set still yields a valid document.
func (s *SitemapService) Render() ([]byte, error) {
	projects, err := s.projectRepo.FindAllByUpdated()
	if err != nil {
		return nil, errs.NewDatabaseError("find projects", "projects", err)
	}

	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{{
			Loc:        s.baseURL + "/projects",
			ChangeFreq: "weekly",
			Priority:   "0.9",
		}},
	}

	for _, p := range projects {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        s.baseURL + ProjectPath(p.ID, Slugify(p.Title)),
			LastMod:    p.UpdatedAt.Format("2006-01-02"),
			ChangeFreq: "monthly",
			Priority:   "0.8",
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("sitemap serialization failed", err)
	}

	return append([]byte(xml.Header), out...), nil
}

// Robots produces the robots.txt body pointing crawlers at the sitemap.
func (s *SitemapService) Robots() string {
	lines := []string{
		"User-agent: *",
		"Allow: /",
		"Disallow: /admin/",
		"Disallow: /api/",
		"",
		"Sitemap: " + s.baseURL + "/sitemap.xml",
	}
	return strings.Join(lines, "\n")
}
