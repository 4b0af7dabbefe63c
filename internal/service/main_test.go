package service

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go_accreditation/internal/config"
	"go_accreditation/internal/repository"
	"go_accreditation/internal/storage"
)

// pngBytes starts with the PNG signature so content sniffing sees image/png.
var pngBytes = append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, []byte("test badge payload")...)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

// setupTestDB opens a throwaway SQLite database with the full schema applied.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to connect database for testing")
	require.NoError(t, repository.Migrate(db))

	return db
}

// testEnv wires the real repositories and a tempdir-backed artifact store
// against the throwaway database.
type testEnv struct {
	db      *gorm.DB
	store   *storage.ArtifactStore
	qr      *storage.QRCache
	cfg     *config.Config
	tenants TenantService
	creds   CredentialService
	verify  VerificationService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := setupTestDB(t)
	root := t.TempDir()

	cfg := &config.Config{}
	cfg.App.PublicBaseURL = "https://badges.example.com"
	cfg.Storage.Root = root
	cfg.Storage.AllowedExtensions = []string{"png", "jpg", "jpeg", "webp", "pdf"}
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.ExpireMinutes = 60
	cfg.Admin.Username = "admin"

	store := storage.NewArtifactStore(root, cfg.Storage.AllowedExtensions)
	qr := storage.NewQRCache(root)

	tenantRepo := repository.NewGormTenantRepository()
	credRepo := repository.NewGormCredentialRepository()

	return &testEnv{
		db:      db,
		store:   store,
		qr:      qr,
		cfg:     cfg,
		tenants: NewTenantService(db, tenantRepo, credRepo, store),
		creds:   NewCredentialService(db, tenantRepo, credRepo, store, qr, cfg),
		verify:  NewVerificationService(db, tenantRepo, credRepo, store, qr, cfg),
	}
}
