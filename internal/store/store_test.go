package store

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/verte-zerg/carousel/internal/catalog"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "catalog.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestSaveAndLoadCatalog(t *testing.T) {
	st := openStore(t)
	ctx := context.Background()

	want := catalog.Default()
	want.Pages = append(want.Pages, catalog.Page{Name: "Empty", Items: []string{}})
	if err := st.SaveCatalog(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := st.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestSaveCatalogReplaces(t *testing.T) {
	st := openStore(t)
	ctx := context.Background()

	if err := st.SaveCatalog(ctx, catalog.Default()); err != nil {
		t.Fatalf("save: %v", err)
	}
	next := catalog.Catalog{Pages: []catalog.Page{{Name: "Veg", Items: []string{"leek"}}}}
	if err := st.SaveCatalog(ctx, next); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := st.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, next) {
		t.Fatalf("expected replaced catalog, got %+v", got)
	}
}

func TestSaveCatalogRejectsInvalid(t *testing.T) {
	st := openStore(t)
	ctx := context.Background()
	bad := catalog.Catalog{Pages: []catalog.Page{{Name: "a"}, {Name: "a"}}}
	if err := st.SaveCatalog(ctx, bad); !errors.Is(err, catalog.ErrDuplicatePage) {
		t.Fatalf("expected duplicate page error, got %v", err)
	}
}

func TestLoadEmptyStore(t *testing.T) {
	st := openStore(t)
	if _, err := st.LoadCatalog(context.Background()); !errors.Is(err, catalog.ErrEmptyCatalog) {
		t.Fatalf("expected empty catalog error, got %v", err)
	}
}
