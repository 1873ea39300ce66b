package services

import (
	"encoding/xml"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stardustenigma/portfolio-backend/database"
	"github.com/stardustenigma/portfolio-backend/errs"
)

const feedItemLimit = 10

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// FeedService projects the newest projects into an RSS 2.0 feed.
type FeedService struct {
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	baseURL     string
	title       string
	description string
}

func NewFeedService(projectRepo *database.ProjectRepo, baseURL, title, description string) *FeedService {
	return &FeedService{
		logger:      log.With().Str("serviceName", "feed").Logger(),
		projectRepo: projectRepo,
		baseURL:     baseURL,
		title:       title,
		description: description,
	}
}

// Render produces the feed document. An empty project set yields a valid
// feed with no items.
func (s *FeedService) Render() ([]byte, error) {
	projects, err := s.projectRepo.FindNewest(feedItemLimit)
	if err != nil {
		return nil, errs.NewDatabaseError("find newest projects", "projects", err)
	}

	channel := rssChannel{
		Title:       s.title,
		Link:        s.baseURL + "/projects",
		Description: s.description,
	}

	for _, p := range projects {
		link := s.baseURL + ProjectPath(p.ID, Slugify(p.Title))
		channel.Items = append(channel.Items, rssItem{
			Title:       p.Title,
			Link:        link,
			Description: p.ShortDescription,
			PubDate:     p.CreatedAt.Format(time.RFC1123Z),
			GUID:        link,
		})
	}

	out, err := xml.MarshalIndent(rssFeed{Version: "2.0", Channel: channel}, "", "  ")
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("feed serialization failed", err)
	}

	return append([]byte(xml.Header), out...), nil
}
