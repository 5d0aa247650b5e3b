package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shrijitmore/demand-forecasting/core/common"
)

func TestStore_GetVaMustGet(t *testing.T) {
	store := NewStore()
	if err := store.Register(&Dataset{Name: Sales, Records: []Record{{"Sales": "1"}}}); err != nil {
		t.Fatal(err)
	}

	ds, err := store.Get(Sales)
	if err != nil || ds.Len() != 1 {
		t.Fatalf("Get(%s) = (%v, %v)", Sales, ds, err)
	}

	// Tên không tồn tại → ErrDatasetNotFound
	if _, err := store.Get("nope"); !errors.Is(err, common.ErrDatasetNotFound) {
		t.Errorf("Get(nope) = %v, muốn ErrDatasetNotFound", err)
	}

	// MustGet không bao giờ lỗi: dataset thiếu → dataset rỗng
	missing := store.MustGet("nope")
	if missing == nil || !missing.Empty() {
		t.Errorf("MustGet(nope) = %v, muốn dataset rỗng", missing)
	}
}

func TestStore_LoadAll_ThieuMotFile_Loi(t *testing.T) {
	// DataDir chỉ có một phần file nguồn → LoadAll phải lỗi (startup abort)
	dir := t.TempDir()
	content := "A,B\n1,2\n"
	if err := os.WriteFile(filepath.Join(dir, "forecasts.csv"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore()
	if err := store.LoadAll(context.Background(), dir); err == nil {
		t.Fatal("LoadAll với file nguồn thiếu phải trả về lỗi")
	}
}

func TestStore_LoadAll_DuFile(t *testing.T) {
	dir := t.TempDir()
	for _, file := range sourceFiles {
		if err := os.WriteFile(filepath.Join(dir, file), []byte("A,B\n1,2\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	store := NewStore()
	if err := store.LoadAll(context.Background(), dir); err != nil {
		t.Fatalf("LoadAll lỗi: %v", err)
	}
	if got := len(store.Names()); got != len(sourceFiles) {
		t.Errorf("load được %d dataset, muốn %d", got, len(sourceFiles))
	}
}
