package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func setupJSONStore(t *testing.T) (*Manager, string) {
	t.Helper()
	dir := t.TempDir()
	storePath := filepath.Join(dir, "lifetrack.json")
	if err := os.WriteFile(storePath, []byte(`{"version":1,"habits":[],"checkins":{}}`), 0600); err != nil {
		t.Fatalf("failed to write store file: %v", err)
	}
	return NewManager(storePath), storePath
}

func TestCreateBackup(t *testing.T) {
	mgr, _ := setupJSONStore(t)

	path, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("backup file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("backup file is empty")
	}
	if filepath.Ext(path) != ".json" {
		t.Errorf("backup extension = %s, want .json to mirror the store", filepath.Ext(path))
	}
	if filepath.Dir(path) != mgr.GetBackupDir() {
		t.Errorf("backup written to %s, want %s", filepath.Dir(path), mgr.GetBackupDir())
	}
}

func TestCreateBackupMissingStore(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("CreateBackup() should fail when the store file does not exist")
	}
}

func TestCreateBackupUniqueNames(t *testing.T) {
	mgr, _ := setupJSONStore(t)

	// Two backups within the same second get distinct names
	first, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}
	second, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("second CreateBackup() error = %v", err)
	}
	if first == second {
		t.Errorf("both backups written to %s", first)
	}
}

func TestListBackups(t *testing.T) {
	mgr, _ := setupJSONStore(t)

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) != 0 {
		t.Fatalf("found %d backups before creating any", len(backups))
	}

	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("found %d backups, want 1", len(backups))
	}
	if backups[0].Size == 0 {
		t.Error("backup size not recorded")
	}
}

func TestListBackupsIgnoresForeignFiles(t *testing.T) {
	mgr, _ := setupJSONStore(t)
	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}

	for _, name := range []string{"notes.txt", "lifetrack-garbage.json", "other-20240310-120000.json"} {
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("x"), 0600); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("found %d backups, want 1 (foreign files must be ignored)", len(backups))
	}
}

func TestRestoreBackup(t *testing.T) {
	mgr, storePath := setupJSONStore(t)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}

	// Change the store, then restore the old contents
	if err := os.WriteFile(storePath, []byte(`{"version":1,"habits":[{"id":"x"}],"checkins":{}}`), 0600); err != nil {
		t.Fatalf("failed to modify store: %v", err)
	}
	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup() error = %v", err)
	}

	data, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatalf("failed to read restored store: %v", err)
	}
	if string(data) != `{"version":1,"habits":[],"checkins":{}}` {
		t.Errorf("restored contents = %s", data)
	}

	// The pre-restore state was itself backed up
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) < 2 {
		t.Errorf("found %d backups after restore, want the pre-restore safety copy too", len(backups))
	}
}

func TestRestoreBackupRejectsEmptyFile(t *testing.T) {
	mgr, _ := setupJSONStore(t)

	empty := filepath.Join(t.TempDir(), "lifetrack-20240310-120000.json")
	if err := os.WriteFile(empty, nil, 0600); err != nil {
		t.Fatalf("failed to write empty backup: %v", err)
	}
	if err := mgr.RestoreBackup(empty); err == nil {
		t.Error("RestoreBackup() should reject an empty backup file")
	}
}

func TestRotateBackups(t *testing.T) {
	mgr, _ := setupJSONStore(t)

	// Seed more files than the retention limit with distinct timestamps
	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}
	for i := 0; i < MaxBackups+3; i++ {
		name := fmt.Sprintf("%s20240301-10%02d00.json", BackupFilePrefix, i)
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("{}"), 0600); err != nil {
			t.Fatalf("failed to seed backup: %v", err)
		}
	}

	// A fresh backup triggers rotation
	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) != MaxBackups {
		t.Errorf("after rotation %d backups remain, want %d", len(backups), MaxBackups)
	}
	// Newest first: the fresh backup survives, the oldest seeds are gone
	if backups[len(backups)-1].Timestamp.Minute() == 0 {
		t.Error("rotation kept the oldest backup instead of the newest")
	}
}
