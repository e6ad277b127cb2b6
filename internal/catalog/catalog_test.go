package catalog

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/umazing/store-dashboard-bff/internal/models"
)

type gatewayMock struct {
	products  []models.Product
	fetchErr  error
	canonical models.Product
	addErr    error
	deleteErr error

	deletedID    string
	deletedFiles bool
	deleteCalls  int
}

func (m *gatewayMock) FetchProducts(context.Context) ([]models.Product, error) {
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.products, nil
}

func (m *gatewayMock) AddProduct(_ context.Context, p models.Product) (models.Product, error) {
	if m.addErr != nil {
		return models.Product{}, m.addErr
	}
	if m.canonical.ID != "" {
		return m.canonical, nil
	}
	return p, nil
}

func (m *gatewayMock) EditProduct(_ context.Context, p models.Product) (models.Product, error) {
	return p, nil
}

func (m *gatewayMock) DeleteProduct(_ context.Context, id string, deleteFiles bool) error {
	m.deleteCalls++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedID = id
	m.deletedFiles = deleteFiles
	return nil
}

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Wireless Headphones", Category: "electronics", InStock: true, Featured: true},
		{ID: "2", Name: "Desk Mat", Category: "accessories", InStock: true},
		{ID: "3", Name: "Wireless Mouse", Category: "electronics", InStock: false},
	}
}

func TestLoadSuccess(t *testing.T) {
	mock := &gatewayMock{products: sampleProducts()}
	cat := New(mock, nil)

	products, err := cat.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 3 {
		t.Errorf("expected 3 products, got %d", len(products))
	}
	if cat.State() != StateLoaded {
		t.Errorf("expected StateLoaded, got %v", cat.State())
	}
	if cat.LastError() != "" {
		t.Errorf("expected no error message, got %q", cat.LastError())
	}
}

func TestLoadFailureKeepsPreviousCollection(t *testing.T) {
	mock := &gatewayMock{products: sampleProducts()}
	cat := New(mock, nil)

	if _, err := cat.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.fetchErr = errors.New("sheet unavailable")
	if _, err := cat.Load(context.Background()); err == nil {
		t.Fatal("expected load to fail")
	}

	if cat.State() != StateErrored {
		t.Errorf("expected StateErrored, got %v", cat.State())
	}
	if cat.LastError() != "sheet unavailable" {
		t.Errorf("expected captured error message, got %q", cat.LastError())
	}
	// A failed reload must not silently clear the loaded collection
	if got := cat.Products(); len(got) != 3 {
		t.Errorf("expected previous collection to survive, got %d products", len(got))
	}
}

func TestLoadErrorThenSuccessClearsError(t *testing.T) {
	mock := &gatewayMock{fetchErr: errors.New("boom")}
	cat := New(mock, nil)

	cat.Load(context.Background())
	mock.fetchErr = nil
	mock.products = sampleProducts()

	if _, err := cat.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.LastError() != "" {
		t.Errorf("expected error to clear, got %q", cat.LastError())
	}
	if cat.State() != StateLoaded {
		t.Errorf("expected StateLoaded, got %v", cat.State())
	}
}

// blockingGateway lets a test hold a fetch in flight while newer loads
// complete, to exercise the epoch guard.
type blockingGateway struct {
	gatewayMock
	entered chan struct{}
	release chan []models.Product
	calls   int
}

func (b *blockingGateway) FetchProducts(context.Context) ([]models.Product, error) {
	b.calls++
	if b.calls == 1 {
		b.entered <- struct{}{}
		return <-b.release, nil
	}
	return b.products, nil
}

func TestStaleLoadIsDiscarded(t *testing.T) {
	stale := []models.Product{{ID: "old", Name: "Stale Product"}}
	fresh := []models.Product{{ID: "new", Name: "Fresh Product"}}

	gw := &blockingGateway{
		entered: make(chan struct{}),
		release: make(chan []models.Product),
	}
	gw.products = fresh
	cat := New(gw, nil)

	done := make(chan struct{})
	go func() {
		cat.Load(context.Background())
		close(done)
	}()

	// Wait until the first load is in flight, then complete a second one.
	<-gw.entered
	if _, err := cat.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Now let the first (stale) load resolve.
	gw.release <- stale
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for stale load to finish")
	}

	got := cat.Products()
	if len(got) != 1 || got[0].ID != "new" {
		t.Errorf("expected the fresh collection to win, got %+v", got)
	}
	if cat.State() != StateLoaded {
		t.Errorf("expected StateLoaded, got %v", cat.State())
	}
}

func TestCreateAppendsCanonicalRecord(t *testing.T) {
	mock := &gatewayMock{
		products:  sampleProducts(),
		canonical: models.Product{ID: "server-42", Name: "Smart Watch", Category: "electronics", InStock: true},
	}
	cat := New(mock, nil)
	cat.Load(context.Background())

	created, err := cat.Create(context.Background(), models.Product{ID: "client-1", Name: "Smart Watch"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "server-42" {
		t.Errorf("expected the server-assigned id, got %q", created.ID)
	}

	count := 0
	for _, p := range cat.Products() {
		if p.ID == "server-42" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected the created id to appear exactly once, found %d", count)
	}
}

func TestFailedCreateLeavesCollectionUnchanged(t *testing.T) {
	mock := &gatewayMock{products: sampleProducts()}
	cat := New(mock, nil)
	cat.Load(context.Background())
	before := cat.Products()

	mock.addErr = errors.New("quota exceeded")
	if _, err := cat.Create(context.Background(), models.Product{ID: "x", Name: "Phantom"}); err == nil {
		t.Fatal("expected create to fail")
	}

	if !reflect.DeepEqual(before, cat.Products()) {
		t.Error("failed create must not change the collection")
	}
}

func TestRemoveDeletesByID(t *testing.T) {
	mock := &gatewayMock{products: sampleProducts()}
	cat := New(mock, nil)
	cat.Load(context.Background())

	if err := cat.Remove(context.Background(), "2", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.deletedID != "2" || !mock.deletedFiles {
		t.Errorf("expected delete(2, true) forwarded, got (%q, %v)", mock.deletedID, mock.deletedFiles)
	}
	for _, p := range cat.Products() {
		if p.ID == "2" {
			t.Error("expected product 2 to be removed")
		}
	}
	if len(cat.Products()) != 2 {
		t.Errorf("expected 2 remaining products, got %d", len(cat.Products()))
	}
}

func TestFailedRemoveKeepsRecord(t *testing.T) {
	mock := &gatewayMock{products: sampleProducts(), deleteErr: errors.New("row locked")}
	cat := New(mock, nil)
	cat.Load(context.Background())

	if err := cat.Remove(context.Background(), "2", false); err == nil {
		t.Fatal("expected remove to fail")
	}
	if len(cat.Products()) != 3 {
		t.Errorf("expected all products to survive, got %d", len(cat.Products()))
	}
}

func TestDeclinedConfirmationSkipsGateway(t *testing.T) {
	mock := &gatewayMock{products: sampleProducts()}
	cat := New(mock, nil)
	cat.Load(context.Background())

	var asked models.Product
	cat.ConfirmDelete = func(p models.Product) bool {
		asked = p
		return false
	}

	err := cat.Remove(context.Background(), "1", false)
	if !errors.Is(err, ErrDeleteNotConfirmed) {
		t.Fatalf("expected ErrDeleteNotConfirmed, got %v", err)
	}
	if asked.Name != "Wireless Headphones" {
		t.Errorf("expected the hook to see the product, got %+v", asked)
	}
	if mock.deleteCalls != 0 {
		t.Error("gateway delete must not run when confirmation is declined")
	}
	if len(cat.Products()) != 3 {
		t.Errorf("expected all products to survive, got %d", len(cat.Products()))
	}
}

func TestFilter(t *testing.T) {
	products := sampleProducts()

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"Empty", "", []string{"1", "2", "3"}},
		{"ByName", "wireless", []string{"1", "3"}},
		{"ByCategory", "ACCESS", []string{"2"}},
		{"NoMatch", "keyboard", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterProducts(products, tt.query)
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			if len(ids) != len(tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, ids)
			}
			for i := range ids {
				if ids[i] != tt.expected[i] {
					t.Fatalf("expected %v, got %v", tt.expected, ids)
				}
			}
		})
	}

	// Filtering never mutates the base collection
	FilterProducts(products, "wireless")
	if len(products) != 3 {
		t.Error("filter mutated its input")
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleProducts())
	if s.Total != 3 || s.Active != 2 || s.Featured != 1 || s.OutOfStock != 1 {
		t.Errorf("unexpected summary: %+v", s)
	}

	empty := Summarize(nil)
	if empty.Total != 0 || empty.Active != 0 || empty.Featured != 0 || empty.OutOfStock != 0 {
		t.Errorf("expected zero summary, got %+v", empty)
	}
}
