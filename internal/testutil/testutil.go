package testutil

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/evan/sports-club-website/internal/api"
	"github.com/evan/sports-club-website/internal/config"
	"github.com/evan/sports-club-website/internal/render"
	"github.com/evan/sports-club-website/internal/repository"
	repoPostgres "github.com/evan/sports-club-website/internal/repository/postgres"
	"github.com/evan/sports-club-website/internal/service"
	"github.com/evan/sports-club-website/internal/websocket"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB manages a testcontainers PostgreSQL instance
type TestDB struct {
	Container testcontainers.Container
	DB        *gorm.DB
	DSN       string
}

// NewTestDB creates a new PostgreSQL testcontainer and returns a connection
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	container, err := tcPostgres.Run(ctx,
		"postgres:15-alpine",
		tcPostgres.WithDatabase("test_club_site"),
		tcPostgres.WithUsername("test"),
		tcPostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	if err := repoPostgres.Migrate(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	testDB := &TestDB{
		Container: container,
		DB:        db,
		DSN:       dsn,
	}

	t.Cleanup(func() {
		testDB.Cleanup()
	})

	return testDB
}

// Cleanup terminates the container
func (tdb *TestDB) Cleanup() {
	if tdb.Container != nil {
		ctx := context.Background()
		tdb.Container.Terminate(ctx)
	}
}

// Truncate clears all tables for test isolation
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()

	tables := []string{
		"programs",
		"coaches",
		"testimonials",
		"tournaments",
		"pages",
		"site_globals",
		"user_sessions",
		"users",
	}
	for _, table := range tables {
		if err := tdb.DB.Exec("TRUNCATE TABLE " + table + " CASCADE").Error; err != nil {
			t.Fatalf("failed to truncate %s: %v", table, err)
		}
	}
}

// TestConfig returns a config suitable for tests.
func TestConfig() *config.Config {
	return &config.Config{
		Port:               "0",
		Environment:        "test",
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		AdminSetupToken:    "test-setup-token",
		CORSOrigin:         "*",
		DefaultListLimit:   10,
		MaxListLimit:       100,
		SiteName:           "Test Club",
	}
}

// TestServer wires the full router against a containerized database.
type TestServer struct {
	DB       *TestDB
	Repos    *repository.Repositories
	Services *service.Services
	Hub      *websocket.PreviewHub
	Server   *httptest.Server
	Config   *config.Config
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	testDB := NewTestDB(t)
	cfg := TestConfig()
	repos := repoPostgres.NewRepositories(testDB.DB)

	hub := websocket.NewPreviewHub()
	go hub.Run()

	services := service.NewServices(repos, cfg)
	if err := services.Global.EnsureDefaults(context.Background()); err != nil {
		t.Fatalf("failed to seed globals: %v", err)
	}

	renderer := render.NewRenderer(services, cfg)
	router := api.NewRouter(services, hub, renderer, cfg)

	server := httptest.NewServer(router)
	t.Cleanup(func() {
		server.Close()
		hub.Stop()
	})

	return &TestServer{
		DB:       testDB,
		Repos:    repos,
		Services: services,
		Hub:      hub,
		Server:   server,
		Config:   cfg,
	}
}

// APIURL returns the full URL for an API path, e.g. APIURL("/programs").
func (ts *TestServer) APIURL(path string) string {
	return ts.Server.URL + "/api" + path
}

// SiteURL returns the full URL for a rendered site path.
func (ts *TestServer) SiteURL(path string) string {
	return ts.Server.URL + path
}
