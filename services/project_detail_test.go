package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stardustenigma/portfolio-backend/errs"
	"github.com/stardustenigma/portfolio-backend/models"
)

func TestResolveRedirectsToCanonicalSlug(t *testing.T) {
	d := newTestDatabase(t)
	p := addProject(t, d, "My Cool App", "short", "desc", time.Now())
	svc := NewProjectDetailService(d.ProjectRepo())

	want := fmt.Sprintf("/projects/%d/my-cool-app/", p.ID)

	for _, slug := range []string{"", "my-old-title", "My-Cool-App"} {
		result, err := svc.Resolve(p.ID, slug)
		require.NoError(t, err, "slug=%q", slug)
		assert.Nil(t, result.Detail, "slug=%q", slug)
		assert.Equal(t, want, result.RedirectTo, "slug=%q", slug)
	}
}

func TestResolveMatchingSlugServesDetail(t *testing.T) {
	d := newTestDatabase(t)
	goTag := addTag(t, d, "Go")

	p := addProject(t, d, "My Cool App", "short", "desc", time.Now(), goTag)
	caption := "home screen"
	require.NoError(t, d.ProjectRepo().Update(&models.Project{
		ID:               p.ID,
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		Description:      p.Description,
		Thumbnail:        p.Thumbnail,
		CreatedAt:        p.CreatedAt,
		Images: []models.ProjectImage{
			{Image: "gallery/one.png", Caption: &caption},
			{Image: "gallery/two.png"},
		},
	}))

	svc := NewProjectDetailService(d.ProjectRepo())

	result, err := svc.Resolve(p.ID, "my-cool-app")
	require.NoError(t, err)
	require.NotNil(t, result.Detail)
	assert.Empty(t, result.RedirectTo)
	assert.Equal(t, "My Cool App", result.Detail.Project.Title)
	require.Len(t, result.Detail.Images, 2)
	assert.Equal(t, "gallery/one.png", result.Detail.Images[0].Image)
}

func TestResolveMissingProjectIsNotFound(t *testing.T) {
	d := newTestDatabase(t)
	svc := NewProjectDetailService(d.ProjectRepo())

	_, err := svc.Resolve(42, "anything")
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestResolveRelatedProjectsShareTagsAndCapAtFour(t *testing.T) {
	d := newTestDatabase(t)
	goTag := addTag(t, d, "Go")
	rustTag := addTag(t, d, "Rust")

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	subject := addProject(t, d, "Subject", "short", "desc", base, goTag)
	for i := 0; i < 5; i++ {
		addProject(t, d, fmt.Sprintf("Sibling %d", i), "short", "desc",
			base.Add(time.Duration(i+1)*time.Hour), goTag)
	}
	addProject(t, d, "Unrelated", "short", "desc", base.Add(10*time.Hour), rustTag)

	svc := NewProjectDetailService(d.ProjectRepo())

	result, err := svc.Resolve(subject.ID, "subject")
	require.NoError(t, err)
	require.NotNil(t, result.Detail)
	require.Len(t, result.Detail.Related, 4)
	for _, rel := range result.Detail.Related {
		assert.NotEqual(t, subject.ID, rel.ID)
		assert.NotEqual(t, "Unrelated", rel.Title)
	}
	// newest shared-tag sibling first
	assert.Equal(t, "Sibling 4", result.Detail.Related[0].Title)
}

func TestResolveUnsluggableTitleServesWithoutRedirect(t *testing.T) {
	d := newTestDatabase(t)
	p := addProject(t, d, "???", "short", "desc", time.Now())
	svc := NewProjectDetailService(d.ProjectRepo())

	// no canonical slug exists, so no slug value can trigger a redirect
	for _, slug := range []string{"", "anything"} {
		result, err := svc.Resolve(p.ID, slug)
		require.NoError(t, err, "slug=%q", slug)
		require.NotNil(t, result.Detail, "slug=%q", slug)
		assert.Empty(t, result.RedirectTo, "slug=%q", slug)
	}
}

func TestResolveNoTagsMeansNoRelated(t *testing.T) {
	d := newTestDatabase(t)
	p := addProject(t, d, "Loner", "short", "desc", time.Now())
	svc := NewProjectDetailService(d.ProjectRepo())

	result, err := svc.Resolve(p.ID, "loner")
	require.NoError(t, err)
	require.NotNil(t, result.Detail)
	assert.Empty(t, result.Detail.Related)
}
