package services

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"github.com/stardustenigma/portfolio-backend/database"
	"github.com/stardustenigma/portfolio-backend/models"
)

// newTestDatabase opens a fresh in-memory SQLite store with the schema
// migrated. A single pooled connection keeps the memory database alive and
// shared for the whole test.
func newTestDatabase(t *testing.T) database.Database {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(sqlite.Dialector{DriverName: "sqlite", Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	d := database.New(db)
	require.NoError(t, d.Migrate())
	return d
}

func addTag(t *testing.T, d database.Database, name string) models.TechTag {
	t.Helper()
	tag := models.TechTag{Name: name}
	require.NoError(t, d.TechTagRepo().Add(&tag))
	return tag
}

func addProject(t *testing.T, d database.Database, title, short, desc string, createdAt time.Time, tags ...models.TechTag) models.Project {
	t.Helper()
	p := models.Project{
		Title:            title,
		ShortDescription: short,
		Description:      desc,
		Thumbnail:        "thumbnails/" + Slugify(title) + ".png",
		CreatedAt:        createdAt,
		UpdatedAt:        createdAt,
		Tags:             tags,
	}
	require.NoError(t, d.ProjectRepo().Add(&p))
	return p
}
