package repository

import (
	"context"
	"errors"
	"path/filepath"
	"scholar-ai-go/internal/model"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "prefs.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.Preference{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func exerciseRepository(t *testing.T, repo PreferenceRepository) {
	t.Helper()
	ctx := context.Background()

	if _, err := repo.Get(ctx, "v1", model.PreferenceKeyTasks); !errors.Is(err, ErrPreferenceNotFound) {
		t.Fatalf("missing record err = %v, want ErrPreferenceNotFound", err)
	}

	if err := repo.Put(ctx, "v1", model.PreferenceKeyTasks, `[{"id":"1"}]`); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := repo.Put(ctx, "v1", model.PreferenceKeyTasks, `[]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if err := repo.Put(ctx, "v2", model.PreferenceKeyTasks, `[{"id":"2"}]`); err != nil {
		t.Fatalf("Put other visitor: %v", err)
	}

	got, err := repo.Get(ctx, "v1", model.PreferenceKeyTasks)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != `[]` {
		t.Fatalf("v1 tasks = %q, want last write", got)
	}
	got, err = repo.Get(ctx, "v2", model.PreferenceKeyTasks)
	if err != nil || got != `[{"id":"2"}]` {
		t.Fatalf("v2 tasks = %q, %v", got, err)
	}
	if _, err := repo.Get(ctx, "v1", model.PreferenceKeyTheme); !errors.Is(err, ErrPreferenceNotFound) {
		t.Fatalf("keys must be independent, got %v", err)
	}
}

func TestGormPreferenceRepository(t *testing.T) {
	exerciseRepository(t, NewPreferenceRepository(newSQLiteDB(t)))
}

func TestMemoryPreferenceRepository(t *testing.T) {
	exerciseRepository(t, NewMemoryPreferenceRepository())
}

func TestPreferenceKey(t *testing.T) {
	if got := preferenceKey("scholar", "abc", model.PreferenceKeyPlan); got != "scholar:visitor:abc:study_plan" {
		t.Fatalf("got %q", got)
	}
	if got := preferenceKey("", "abc", model.PreferenceKeyTheme); got != "visitor:abc:scholar_theme" {
		t.Fatalf("got %q", got)
	}
}
