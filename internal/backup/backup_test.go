package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "modernc.org/sqlite"
)

func createTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "saathi.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE habits (id TEXT PRIMARY KEY, title TEXT)`); err != nil {
		t.Fatalf("failed to create test table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO habits VALUES ('h1', 'Meditate')`); err != nil {
		t.Fatalf("failed to insert test row: %v", err)
	}
	return dbPath
}

func TestCreateAndList(t *testing.T) {
	dbPath := createTestDB(t)
	mgr := NewManager(dbPath)

	path, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "saathi-") {
		t.Errorf("backup name %q missing app prefix", filepath.Base(path))
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("backup file not written: %v", err)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("List() returned %d backups, want 1", len(backups))
	}
	if backups[0].Size == 0 {
		t.Error("backup file is empty")
	}
}

func TestCreateMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.Create(); err == nil {
		t.Error("Create() should fail when the database does not exist")
	}
}

func TestListIgnoresForeignFiles(t *testing.T) {
	dbPath := createTestDB(t)
	mgr := NewManager(dbPath)

	if _, err := mgr.Create(); err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	for _, name := range []string{"notes.txt", "other-20260101-120000.db", "saathi-garbage.db"} {
		if err := os.WriteFile(filepath.Join(mgr.BackupDir(), name), []byte("x"), 0600); err != nil {
			t.Fatalf("failed to plant file: %v", err)
		}
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("List() returned %d backups, want 1", len(backups))
	}
}

func TestRestore(t *testing.T) {
	dbPath := createTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	// Mutate the live database, then restore the snapshot.
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if _, err := db.Exec(`DELETE FROM habits`); err != nil {
		t.Fatalf("failed to mutate database: %v", err)
	}
	db.Close()

	if err := mgr.Restore(backupPath); err != nil {
		t.Fatalf("Restore() returned error: %v", err)
	}

	db, err = sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to reopen database: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM habits`).Scan(&count); err != nil {
		t.Fatalf("failed to query restored database: %v", err)
	}
	if count != 1 {
		t.Errorf("restored database has %d rows, want 1", count)
	}
}

func TestRestoreRejectsInvalidFile(t *testing.T) {
	dbPath := createTestDB(t)
	mgr := NewManager(dbPath)

	bogus := filepath.Join(t.TempDir(), "bogus.db")
	if err := os.WriteFile(bogus, []byte("not a database"), 0600); err != nil {
		t.Fatalf("failed to write bogus file: %v", err)
	}
	if err := mgr.Restore(bogus); err == nil {
		t.Error("Restore() should reject a non-database file")
	}
}
