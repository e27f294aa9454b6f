package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"cartbot/internal/store"
)

func TestLoadMissingFile(t *testing.T) {
	st := store.New(filepath.Join(t.TempDir(), "list.json"))

	items, err := st.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Load() = %v, want empty list", items)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := store.New(filepath.Join(t.TempDir(), "list.json"))

	want := []store.Item{
		{Name: "Milk", Quantity: "2", Category: "dairy"},
		{Name: "Apples", Quantity: "1 kg", Category: "fruits", Checked: true},
		{Name: "Soap", Category: "household"},
	}
	if err := st.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := st.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.json")
	st := store.New(path)

	if err := st.Save(nil); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	want := "{\n  \"items\": []\n}"
	if string(data) != want {
		t.Errorf("file contents = %q, want %q", data, want)
	}

	items, err := st.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Load() = %v, want empty list", items)
	}
}

func TestSaveLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.json")
	st := store.New(path)

	items := []store.Item{{Name: "Milk", Quantity: "2", Category: "dairy"}}
	if err := st.Save(items); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	want := `{
  "items": [
    {
      "name": "Milk",
      "quantity": "2",
      "category": "dairy",
      "checked": false
    }
  ]
}`
	if string(data) != want {
		t.Errorf("file contents = %q, want %q", data, want)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if _, err := store.New(path).Load(); err == nil {
		t.Fatal("Load() error = nil, want decode error")
	}
}
