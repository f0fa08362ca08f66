package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-testutil"
)

// mockStoreSpec implements ValidatingSpec for testing FileStore
type mockStoreSpec struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func (s *mockStoreSpec) Validate() error {
	return nil
}

func writeAsset(t *testing.T, dir, file string, asset Asset[*mockStoreSpec]) {
	t.Helper()
	data, err := json.Marshal(asset)
	if err != nil {
		t.Fatalf("failed to marshal test asset: %v", err)
	}
	err = os.WriteFile(filepath.Join(dir, file), data, 0644)
	if err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
}

func TestNewFileStore(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewFileStore[*mockStoreSpec](tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "path", store.path, tmpDir)
	testutil.AssertEqual(t, "records length", len(store.records), 0)
}

func TestNewFileStore_NonExistentDirectory(t *testing.T) {
	_, err := NewFileStore[*mockStoreSpec]("/nonexistent/path/that/does/not/exist")
	if err == nil {
		t.Error("expected error for non-existent directory")
	}
}

func TestNewFileStore_WithExistingAssets(t *testing.T) {
	tmpDir := t.TempDir()

	writeAsset(t, tmpDir, "wood.json", Asset[*mockStoreSpec]{Version: 1, Identifier: "wood", Spec: &mockStoreSpec{Name: "Wood", Value: 1}})
	writeAsset(t, tmpDir, "stone.json", Asset[*mockStoreSpec]{Version: 1, Identifier: "stone", Spec: &mockStoreSpec{Name: "Stone", Value: 2}})

	store, err := NewFileStore[*mockStoreSpec](tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "record count", len(store.records), 2)
	testutil.AssertEqual(t, "ids", store.Ids(), []string{"stone", "wood"})

	wood := store.Get("wood")
	if wood == nil {
		t.Fatal("expected wood to be loaded")
	}
	testutil.AssertEqual(t, "wood name", wood.Name, "Wood")
	testutil.AssertEqual(t, "wood value", wood.Value, 1)
}

func TestNewFileStore_Errors(t *testing.T) {
	tests := map[string]struct {
		setup func(t *testing.T, dir string)
	}{
		"invalid json": {
			setup: func(t *testing.T, dir string) {
				if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`{invalid json`), 0644); err != nil {
					t.Fatalf("failed to write test file: %v", err)
				}
			},
		},
		"validation error": {
			setup: func(t *testing.T, dir string) {
				writeAsset(t, dir, "test.json", Asset[*mockStoreSpec]{Version: 0, Identifier: "test", Spec: &mockStoreSpec{}})
			},
		},
		"duplicate key across directories": {
			setup: func(t *testing.T, dir string) {
				sub := filepath.Join(dir, "nested")
				if err := os.Mkdir(sub, 0755); err != nil {
					t.Fatalf("failed to create subdir: %v", err)
				}
				a := Asset[*mockStoreSpec]{Version: 1, Identifier: "duplicate-id", Spec: &mockStoreSpec{}}
				writeAsset(t, dir, "file1.json", a)
				writeAsset(t, sub, "file2.json", a)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setup(t, dir)

			_, err := NewFileStore[*mockStoreSpec](dir)
			if err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestNewFileStore_IgnoresNonJSONFiles(t *testing.T) {
	tmpDir := t.TempDir()

	writeAsset(t, tmpDir, "valid.json", Asset[*mockStoreSpec]{Version: 1, Identifier: "valid", Spec: &mockStoreSpec{Name: "Valid"}})

	err := os.WriteFile(filepath.Join(tmpDir, "readme.txt"), []byte("ignore me"), 0644)
	if err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	err = os.WriteFile(filepath.Join(tmpDir, "rules.yaml"), []byte("ignore: me"), 0644)
	if err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	store, err := NewFileStore[*mockStoreSpec](tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "record count", len(store.records), 1)
}

func TestFileStore_Get(t *testing.T) {
	store := &FileStore[*mockStoreSpec]{
		records: map[string]*mockStoreSpec{
			"existing": {Name: "Test", Value: 42},
		},
	}

	tests := map[string]struct {
		id      string
		expNil  bool
		expName string
	}{
		"get existing record": {
			id:      "existing",
			expName: "Test",
		},
		"get non-existing record": {
			id:     "nonexistent",
			expNil: true,
		},
		"get empty id": {
			id:     "",
			expNil: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			result := store.Get(tt.id)

			if tt.expNil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}
				return
			}
			if result == nil {
				t.Fatal("expected non-nil result")
			}
			testutil.AssertEqual(t, "name", result.Name, tt.expName)
		})
	}
}

func TestFileStore_GetAllReturnsCopy(t *testing.T) {
	store := &FileStore[*mockStoreSpec]{
		records: map[string]*mockStoreSpec{
			"one": {Name: "One"},
			"two": {Name: "Two"},
		},
	}

	result := store.GetAll()
	testutil.AssertEqual(t, "count", len(result), 2)

	delete(result, "one")
	testutil.AssertEqual(t, "store count", len(store.records), 2)
}
