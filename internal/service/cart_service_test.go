package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/oceanpro/storefront/internal/constants"
	"github.com/oceanpro/storefront/internal/repository"
)

func newTestCart(t *testing.T, dir string, async bool) *CartService {
	t.Helper()
	store := repository.NewCartStateRepository(repository.NewFileKV(dir), "")
	return NewCartService(CartServiceOptions{
		Store:        store,
		Lookup:       testCatalog(t),
		AsyncPersist: async,
	})
}

func TestCartAddItemScenario(t *testing.T) {
	cart := newTestCart(t, t.TempDir(), false)

	cart.AddItem("p-101", 2)
	view := cart.View()
	if view.ItemCount != 2 {
		t.Fatalf("expected item count 2, got %d", view.ItemCount)
	}
	if view.Subtotal.String() != "48.00" {
		t.Fatalf("expected subtotal 48.00, got %s", view.Subtotal)
	}

	cart.AddItem("p-101", 1)
	view = cart.View()
	if got := cart.Snapshot().Quantity("p-101"); got != 3 {
		t.Fatalf("expected quantity 3, got %d", got)
	}
	if view.Subtotal.String() != "72.00" {
		t.Fatalf("expected subtotal 72.00, got %s", view.Subtotal)
	}
}

func TestCartUpdateQtyZeroRemoves(t *testing.T) {
	cart := newTestCart(t, t.TempDir(), false)

	cart.AddItem("p-101", 2)
	cart.UpdateQty("p-101", 0)
	view := cart.View()
	if view.ItemCount != 0 || len(view.Items) != 0 {
		t.Fatalf("expected empty view, got %+v", view)
	}
}

func TestCartRemoveMissingOnEmpty(t *testing.T) {
	cart := newTestCart(t, t.TempDir(), false)

	cart.RemoveItem("nonexistent-id")
	if cart.Snapshot().Len() != 0 {
		t.Fatalf("expected state unchanged")
	}
}

func TestCartUnknownProductInView(t *testing.T) {
	cart := newTestCart(t, t.TempDir(), false)

	cart.AddItem("unknown-product-id", 1)
	view := cart.View()
	if view.ItemCount != 1 {
		t.Fatalf("expected item count 1, got %d", view.ItemCount)
	}
	if view.Items[0].Resolved() {
		t.Fatalf("expected unresolved product")
	}
	if view.Subtotal.String() != "0.00" {
		t.Fatalf("expected subtotal 0.00, got %s", view.Subtotal)
	}
}

func TestCartClearPersistsEmptyObject(t *testing.T) {
	dir := t.TempDir()
	cart := newTestCart(t, dir, false)

	cart.AddItem("p-101", 2)
	cart.AddItem("p-201", 1)
	cart.Clear()

	if cart.Snapshot().Len() != 0 {
		t.Fatalf("expected empty state after clear")
	}
	raw, err := os.ReadFile(filepath.Join(dir, constants.CartStorageKey+".json"))
	if err != nil {
		t.Fatalf("read persisted state failed: %v", err)
	}
	if string(raw) != `{}` {
		t.Fatalf("expected persisted empty object, got %s", raw)
	}
}

func TestCartStateSurvivesRestart(t *testing.T) {
	dir := t.TempDir()

	first := newTestCart(t, dir, false)
	first.AddItem("p-101", 2)
	first.AddItem("p-303", 1)

	second := newTestCart(t, dir, false)
	view := second.View()
	if view.ItemCount != 3 {
		t.Fatalf("expected rehydrated count 3, got %d", view.ItemCount)
	}
	if got := second.Snapshot().Quantity("p-101"); got != 2 {
		t.Fatalf("expected rehydrated quantity 2, got %d", got)
	}
}

func TestCartRestartWithCorruptedStoreStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, constants.CartStorageKey+".json")
	if err := os.WriteFile(path, []byte(`{"p-101": "many"}`), 0o644); err != nil {
		t.Fatalf("seed corrupted payload failed: %v", err)
	}

	cart := newTestCart(t, dir, false)
	if cart.Snapshot().Len() != 0 {
		t.Fatalf("expected empty cart after corrupted load")
	}
}

func TestCartViewConsistentAfterEachDispatch(t *testing.T) {
	cart := newTestCart(t, t.TempDir(), false)

	cart.AddItem("p-101", 1)
	if cart.View().ItemCount != 1 {
		t.Fatalf("view lagging behind dispatch")
	}
	cart.AddItem("p-201", 2)
	if cart.View().ItemCount != 3 {
		t.Fatalf("view lagging behind dispatch")
	}
	cart.RemoveItem("p-101")
	view := cart.View()
	if view.ItemCount != 2 || len(view.Items) != 1 || view.Items[0].ProductID != "p-201" {
		t.Fatalf("view inconsistent with latest action: %+v", view)
	}
}

func TestCartViewMemoReusedUntilNextDispatch(t *testing.T) {
	cart := newTestCart(t, t.TempDir(), false)
	cart.AddItem("p-101", 1)

	first := cart.View()
	second := cart.View()
	if len(first.Items) != len(second.Items) || first.ItemCount != second.ItemCount {
		t.Fatalf("memoized view changed without dispatch")
	}
}

func TestCartAsyncPersistFlushesOnClose(t *testing.T) {
	dir := t.TempDir()
	cart := newTestCart(t, dir, true)

	cart.AddItem("p-101", 2)
	cart.UpdateQty("p-101", 5)
	cart.AddItem("p-303", 1)
	cart.Close()

	restored := newTestCart(t, dir, false)
	state := restored.Snapshot()
	if state.Quantity("p-101") != 5 || state.Quantity("p-303") != 1 {
		t.Fatalf("async persistence lost the latest state: %+v", state.Entries())
	}
}

func TestCartWithoutStoreIsMemoryOnly(t *testing.T) {
	cart := NewCartService(CartServiceOptions{Lookup: testCatalog(t)})
	cart.AddItem("p-101", 2)
	if cart.View().ItemCount != 2 {
		t.Fatalf("in-memory cart must still work without a store")
	}
}

func TestCartStoreLoadSeedsInitialState(t *testing.T) {
	dir := t.TempDir()
	store := repository.NewCartStateRepository(repository.NewFileKV(dir), "")
	seeded := ApplyCartAction(nil, AddItemAction{ProductID: "p-201", Quantity: 4})
	store.Save(context.Background(), seeded)

	cart := NewCartService(CartServiceOptions{Store: store, Lookup: testCatalog(t)})
	if cart.Snapshot().Quantity("p-201") != 4 {
		t.Fatalf("facade did not seed from store")
	}
}
