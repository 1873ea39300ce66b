package api

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"github.com/stardustenigma/portfolio-backend/cache"
	"github.com/stardustenigma/portfolio-backend/database"
	"github.com/stardustenigma/portfolio-backend/models"
)

const testAdminPassword = "correct horse battery staple"

type testApp struct {
	db     database.Database
	router chi.Router
	cache  *cache.Cache
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	return newTestAppWithConf(t, map[string]string{
		"SITE_BASE_URL":       "https://example.com",
		"JWT_SECRET":          "router-test-secret",
		"ADMIN_PASSWORD_HASH": string(hash),
	})
}

func newTestAppWithConf(t *testing.T, conf map[string]string) *testApp {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(sqlite.Dialector{DriverName: "sqlite", Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	db := database.New(gormDB)
	require.NoError(t, db.Migrate())

	pageCache := cache.New()
	router := chi.NewRouter()
	router.Use(MetricsMiddleware)
	setupRoutes(router, initializeHandlers(db, conf, pageCache), pageCache, time.Hour, time.Hour)

	return &testApp{db: db, router: router, cache: pageCache}
}

func (a *testApp) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "203.0.113.7:51234"
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.RemoteAddr = "203.0.113.7:51234"
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) postJSON(path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) seedProject(t *testing.T, title string, createdAt time.Time, tags ...models.TechTag) models.Project {
	t.Helper()
	p := models.Project{
		Title:            title,
		ShortDescription: "short",
		Description:      "long description",
		Thumbnail:        "thumbnails/x.png",
		CreatedAt:        createdAt,
		UpdatedAt:        createdAt,
		Tags:             tags,
	}
	require.NoError(t, a.db.ProjectRepo().Add(&p))
	return p
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body
}

func TestProjectListingRoute(t *testing.T) {
	app := newTestApp(t)
	app.seedProject(t, "My Cool App", time.Now())

	rec := app.get("/projects")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["total_projects"])
	assert.Equal(t, float64(1), body["total_pages"])
}

func TestProjectListingPageOutOfRange(t *testing.T) {
	app := newTestApp(t)
	app.seedProject(t, "My Cool App", time.Now())

	rec := app.get("/projects/page/9999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProjectDetailRedirects(t *testing.T) {
	app := newTestApp(t)
	p := app.seedProject(t, "My Cool App", time.Now())
	canonical := fmt.Sprintf("/projects/%d/my-cool-app/", p.ID)

	cases := []struct {
		name string
		path string
	}{
		{"no slug", fmt.Sprintf("/projects/%d", p.ID)},
		{"stale slug", fmt.Sprintf("/projects/%d/my-old-title", p.ID)},
		{"legacy url", fmt.Sprintf("/project/%d", p.ID)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := app.get(tc.path)
			require.Equal(t, http.StatusMovedPermanently, rec.Code)
			assert.Equal(t, canonical, rec.Header().Get("Location"))
		})
	}
}

func TestProjectDetailCanonicalSlugServes(t *testing.T) {
	app := newTestApp(t)
	p := app.seedProject(t, "My Cool App", time.Now())

	rec := app.get(fmt.Sprintf("/projects/%d/my-cool-app", p.ID))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	project, ok := body["project"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "My Cool App", project["title"])
}

func TestProjectDetailUnknownIDs(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, http.StatusNotFound, app.get("/projects/12345").Code)
	assert.Equal(t, http.StatusNotFound, app.get("/projects/abc").Code)
}

func TestTechRouteTranslatesHyphens(t *testing.T) {
	app := newTestApp(t)
	tag := models.TechTag{Name: "Ruby on Rails"}
	require.NoError(t, app.db.TechTagRepo().Add(&tag))
	app.seedProject(t, "Rails Shop", time.Now(), tag)
	app.seedProject(t, "Bare Project", time.Now().Add(time.Hour))

	rec := app.get("/projects/tech/ruby-on-rails")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["total_projects"])
	assert.Equal(t, "ruby on rails", body["tech_filter"])
}

func TestContactSubmission(t *testing.T) {
	app := newTestApp(t)

	rec := app.postForm("/contact", url.Values{
		"name":    {"Ada Lovelace"},
		"email":   {"ada@example.com"},
		"message": {"I would like to talk about your work."},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.NotEmpty(t, body["reference"])

	messages, err := app.db.ContactMessageRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "203.0.113.7", messages[0].SenderAddr)
}

func TestContactSubmissionValidationErrors(t *testing.T) {
	app := newTestApp(t)

	rec := app.postForm("/contact", url.Values{
		"name":    {"A"},
		"email":   {"nope"},
		"message": {"short"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	problems, ok := body["errors"].([]any)
	require.True(t, ok)
	assert.Len(t, problems, 3)
	assert.Equal(t, "Name must be at least 2 characters long.", problems[0])
}

func TestSitemapAndRobots(t *testing.T) {
	app := newTestApp(t)
	app.seedProject(t, "My Cool App", time.Now())

	rec := app.get("/sitemap.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/xml")
	assert.Contains(t, rec.Body.String(), "my-cool-app")

	rec = app.get("/robots.txt")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sitemap: https://example.com/sitemap.xml")
}

func TestFeedRoute(t *testing.T) {
	app := newTestApp(t)
	app.seedProject(t, "My Cool App", time.Now())

	rec := app.get("/projects/feed")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/rss+xml")
	assert.Contains(t, rec.Body.String(), "<rss")
}

func TestStaticPagesAreCached(t *testing.T) {
	app := newTestApp(t)

	first := app.get("/about")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Empty(t, first.Header().Get("X-Cache"))

	second := app.get("/about")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestLegacyRedirectWithUnsluggableTitle(t *testing.T) {
	app := newTestApp(t)
	p := app.seedProject(t, "???", time.Now())

	rec := app.get(fmt.Sprintf("/project/%d", p.ID))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	project, ok := body["project"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "???", project["title"])
}

func TestMetricsLabelsUseRoutePatterns(t *testing.T) {
	app := newTestApp(t)
	p := app.seedProject(t, "My Cool App", time.Now())

	rec := app.get(fmt.Sprintf("/projects/%d/my-cool-app", p.ID))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.get("/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `path="/projects/{projectID}/{slug}"`)
	assert.NotContains(t, rec.Body.String(), fmt.Sprintf(`path="/projects/%d`, p.ID))
}

func TestHealthRoute(t *testing.T) {
	app := newTestApp(t)

	rec := app.get("/health")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
}

func TestAdminLoginAndProtectedRoutes(t *testing.T) {
	app := newTestApp(t)

	rec := app.postJSON("/admin/login", `{"password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.postJSON("/admin/login", fmt.Sprintf(`{"password":%q}`, testAdminPassword), "")
	require.Equal(t, http.StatusOK, rec.Code)
	token, _ := decodeBody(t, rec)["token"].(string)
	require.NotEmpty(t, token)

	// protected routes reject missing and bogus tokens
	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	recStats := httptest.NewRecorder()
	app.router.ServeHTTP(recStats, req)
	assert.Equal(t, http.StatusUnauthorized, recStats.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	recStats = httptest.NewRecorder()
	app.router.ServeHTTP(recStats, req)
	assert.Equal(t, http.StatusUnauthorized, recStats.Code)

	// and accept the issued one
	req = httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recStats = httptest.NewRecorder()
	app.router.ServeHTTP(recStats, req)
	require.Equal(t, http.StatusOK, recStats.Code)

	body := decodeBody(t, recStats)
	assert.Contains(t, body, "total_projects")
	assert.Contains(t, body, "total_contact_messages")
}

func TestAdminGateFailsClosedWhenUnconfigured(t *testing.T) {
	app := newTestAppWithConf(t, map[string]string{"SITE_BASE_URL": "https://example.com"})

	// a token anyone could mint against the zero-value signing key
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(""))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = app.postJSON("/admin/login", `{"password":"anything"}`, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminCacheClear(t *testing.T) {
	app := newTestApp(t)

	app.get("/about")
	require.NotZero(t, app.cache.Len())

	rec := app.postJSON("/admin/login", fmt.Sprintf(`{"password":%q}`, testAdminPassword), "")
	require.Equal(t, http.StatusOK, rec.Code)
	token, _ := decodeBody(t, rec)["token"].(string)

	rec = app.postJSON("/admin/cache/clear", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, app.cache.Len())
}

func TestAdminMessageFlags(t *testing.T) {
	app := newTestApp(t)
	subject := "Hello"
	msg := models.ContactMessage{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: &subject,
		Message: "A message long enough to be valid.",
	}
	require.NoError(t, app.db.ContactMessageRepo().AddRateLimited(&msg, "email", msg.Email, time.Now().Add(-time.Hour), 3))

	rec := app.postJSON("/admin/login", fmt.Sprintf(`{"password":%q}`, testAdminPassword), "")
	require.Equal(t, http.StatusOK, rec.Code)
	token, _ := decodeBody(t, rec)["token"].(string)

	rec = app.postJSON(fmt.Sprintf("/admin/messages/%d/read", msg.ID), "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.postJSON(fmt.Sprintf("/admin/messages/%d/replied", msg.ID), "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err := app.db.ContactMessageRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.True(t, stored[0].IsRead)
	assert.True(t, stored[0].Replied)

	// unknown ids are a client error
	rec = app.postJSON("/admin/messages/9999/read", "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
