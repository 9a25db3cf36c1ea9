package migrations

import (
	"testing"
	"testing/fstest"
)

func TestMigrationFilesAreSortedSQLOnly(t *testing.T) {
	fsys := fstest.MapFS{
		"002_history_index.sql": {Data: []byte("CREATE INDEX ...")},
		"001_transactions.sql":  {Data: []byte("CREATE TABLE ...")},
		"README.md":             {Data: []byte("notes")},
		"archive/000_old.sql":   {Data: []byte("DROP TABLE ...")},
	}

	files, err := migrationFiles(fsys)
	if err != nil {
		t.Fatalf("migration files: %v", err)
	}
	want := []string{"001_transactions.sql", "002_history_index.sql"}
	if len(files) != len(want) {
		t.Fatalf("expected %v, got %v", want, files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, files)
		}
	}
}
