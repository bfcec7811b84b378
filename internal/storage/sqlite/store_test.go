package sqlite

import (
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "nested", "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return store
}

func TestInitCreatesSchema(t *testing.T) {
	store := setupTestStore(t)

	for _, table := range []string{"settings", "schema_version"} {
		var count int
		err := store.db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name = ?", table).Scan(&count)
		if err != nil {
			t.Fatalf("looking up table %s: %v", table, err)
		}
		if count != 1 {
			t.Errorf("expected table %s to exist", table)
		}
	}

	status, err := store.SchemaStatus()
	if err != nil {
		t.Fatalf("SchemaStatus() error: %v", err)
	}
	if !status.UpToDate() || status.Latest == 0 {
		t.Errorf("unexpected schema status %+v", status)
	}
}

func TestGetSettingValues_Empty(t *testing.T) {
	store := setupTestStore(t)

	values, err := store.GetSettingValues()
	if err != nil {
		t.Fatalf("GetSettingValues() error: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("expected no stored values, got %v", values)
	}
}

func TestSaveSetting_Overwrites(t *testing.T) {
	store := setupTestStore(t)

	if err := store.SaveSetting("star_date", "true"); err != nil {
		t.Fatalf("SaveSetting() error: %v", err)
	}
	if err := store.SaveSetting("star_date", "false"); err != nil {
		t.Fatalf("SaveSetting() error: %v", err)
	}

	values, err := store.GetSettingValues()
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 1 || values["star_date"] != "false" {
		t.Errorf("unexpected values %v", values)
	}
}

func TestSaveSetting_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveSetting("long_date", "true"); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	defer reopened.Close()

	values, err := reopened.GetSettingValues()
	if err != nil {
		t.Fatal(err)
	}
	if values["long_date"] != "true" {
		t.Errorf("expected long_date=true after reopen, got %v", values)
	}
}

func TestLoad_NotInitialized(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("expected error loading a database that does not exist")
	}
}

func TestNotLoaded(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if _, err := store.GetSettingValues(); err == nil {
		t.Error("expected error before Init/Load")
	}
	if err := store.SaveSetting("long_date", "true"); err == nil {
		t.Error("expected error before Init/Load")
	}
}

func TestMigrate_UpToDate(t *testing.T) {
	store := setupTestStore(t)

	var messages []string
	count, err := store.Migrate(func(msg string) { messages = append(messages, msg) })
	if err != nil {
		t.Fatalf("Migrate() error: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no pending migrations, applied %d (%v)", count, messages)
	}

	unloaded := NewStore(filepath.Join(t.TempDir(), "other.db"))
	if _, err := unloaded.Migrate(nil); err == nil {
		t.Error("expected error migrating an unloaded store")
	}
}
