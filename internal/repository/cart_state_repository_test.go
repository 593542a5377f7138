package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/oceanpro/storefront/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newFileRepo(t *testing.T) (*CartStateRepository, string) {
	t.Helper()
	dir := t.TempDir()
	return NewCartStateRepository(NewFileKV(dir), ""), dir
}

func newGormRepo(t *testing.T) *CartStateRepository {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "kv.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		t.Fatalf("auto migrate kv failed: %v", err)
	}
	return NewCartStateRepository(NewGormKV(db), "")
}

func TestCartStateRoundTripFileKV(t *testing.T) {
	repo, _ := newFileRepo(t)
	ctx := context.Background()

	state := models.NewQuantityMap()
	state.Set("p-101", 2)
	state.Set("p-303", 1)
	repo.Save(ctx, state)

	restored := repo.Load(ctx)
	if !state.Equal(restored) {
		t.Fatalf("round trip mismatch: %+v vs %+v", state.Entries(), restored.Entries())
	}
}

func TestCartStateRoundTripGormKV(t *testing.T) {
	repo := newGormRepo(t)
	ctx := context.Background()

	state := models.NewQuantityMap()
	state.Set("p-201", 4)
	repo.Save(ctx, state)

	restored := repo.Load(ctx)
	if !state.Equal(restored) {
		t.Fatalf("round trip mismatch: %+v vs %+v", state.Entries(), restored.Entries())
	}

	// 覆盖写：保存新状态后旧条目消失
	next := models.NewQuantityMap()
	next.Set("p-101", 1)
	repo.Save(ctx, next)
	restored = repo.Load(ctx)
	if restored.Has("p-201") || restored.Quantity("p-101") != 1 {
		t.Fatalf("expected overwrite, got %+v", restored.Entries())
	}
}

func TestCartStateLoadMissingKeyYieldsEmpty(t *testing.T) {
	repo, _ := newFileRepo(t)
	state := repo.Load(context.Background())
	if state.Len() != 0 {
		t.Fatalf("expected empty state, got %d entries", state.Len())
	}
}

func TestCartStateLoadCorruptedDataYieldsEmpty(t *testing.T) {
	corrupted := []string{
		`not json at all`,
		`["p-101", 2]`,
		`{"p-101": -3}`,
		`{"p-101": "two"}`,
		`{"p-101": 1.5}`,
	}
	for _, payload := range corrupted {
		repo, dir := newFileRepo(t)
		path := filepath.Join(dir, sanitizeKey(repo.Key())+".json")
		if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
			t.Fatalf("seed corrupted payload failed: %v", err)
		}
		state := repo.Load(context.Background())
		if state.Len() != 0 {
			t.Fatalf("expected empty state for payload %q, got %+v", payload, state.Entries())
		}
	}
}

type failingKV struct{}

func (failingKV) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("store unavailable")
}

func (failingKV) Set(context.Context, string, string) error {
	return errors.New("quota exceeded")
}

func TestCartStateFailuresAreSwallowed(t *testing.T) {
	repo := NewCartStateRepository(failingKV{}, "")

	state := repo.Load(context.Background())
	if state.Len() != 0 {
		t.Fatalf("expected empty state on read failure")
	}

	// 写失败不 panic、不返回错误
	toSave := models.NewQuantityMap()
	toSave.Set("p-101", 2)
	repo.Save(context.Background(), toSave)
}

func TestCartStateSaveEmptyWritesEmptyObject(t *testing.T) {
	repo, dir := newFileRepo(t)
	repo.Save(context.Background(), models.NewQuantityMap())

	raw, err := os.ReadFile(filepath.Join(dir, sanitizeKey(repo.Key())+".json"))
	if err != nil {
		t.Fatalf("read persisted state failed: %v", err)
	}
	if string(raw) != `{}` {
		t.Fatalf("expected empty object, got %s", raw)
	}
}
