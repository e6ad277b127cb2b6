package catalog

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/umazing/store-dashboard-bff/internal/models"
)

// Gateway is the slice of the sheets service the catalog depends on.
type Gateway interface {
	FetchProducts(ctx context.Context) ([]models.Product, error)
	AddProduct(ctx context.Context, product models.Product) (models.Product, error)
	EditProduct(ctx context.Context, product models.Product) (models.Product, error)
	DeleteProduct(ctx context.Context, id string, deleteFiles bool) error
}

// Events receives product lifecycle notifications after successful mutations.
type Events interface {
	ProductCreated(ctx context.Context, product models.Product)
	ProductDeleted(ctx context.Context, id string)
}

type LoadState int

const (
	StateIdle LoadState = iota
	StateLoading
	StateLoaded
	StateErrored
)

var ErrDeleteNotConfirmed = errors.New("delete not confirmed")

// Catalog holds the dashboard's in-memory view of the product collection and
// keeps it consistent with the remote sheet: loads replace the view, mutations
// apply locally only after the gateway accepted them.
type Catalog struct {
	gateway Gateway
	events  Events

	// ConfirmDelete gates Remove, standing in for the UI's confirm dialog.
	// Nil means confirmed.
	ConfirmDelete func(product models.Product) bool

	mu       sync.Mutex
	products []models.Product
	state    LoadState
	lastErr  string
	epoch    uint64
}

func New(gateway Gateway, events Events) *Catalog {
	return &Catalog{
		gateway: gateway,
		events:  events,
		state:   StateIdle,
	}
}

// Load fetches the full collection from the gateway and replaces the view.
// Loads may overlap; each one takes a fresh epoch and only the response
// matching the newest epoch is applied, so a stale response can never clobber
// a newer one. A failed load records the error and keeps whatever collection
// was already loaded.
func (c *Catalog) Load(ctx context.Context) ([]models.Product, error) {
	c.mu.Lock()
	c.state = StateLoading
	c.epoch++
	epoch := c.epoch
	c.mu.Unlock()

	products, err := c.gateway.FetchProducts(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if epoch == c.epoch {
		if err != nil {
			c.state = StateErrored
			c.lastErr = err.Error()
		} else {
			c.state = StateLoaded
			c.lastErr = ""
			c.products = products
		}
	} else {
		zap.L().Debug("discarding stale product load", zap.Uint64("epoch", epoch))
	}

	if err != nil {
		return nil, err
	}
	return snapshot(products), nil
}

// Create persists a finalized product through the gateway and appends the
// gateway's canonical record to the view. A rejected create leaves the view
// untouched, so a product never shows up locally without existing remotely.
func (c *Catalog) Create(ctx context.Context, product models.Product) (models.Product, error) {
	canonical, err := c.gateway.AddProduct(ctx, product)
	if err != nil {
		return models.Product{}, err
	}

	c.mu.Lock()
	c.products = append(c.products, canonical)
	c.mu.Unlock()

	if c.events != nil {
		c.events.ProductCreated(ctx, canonical)
	}

	return canonical, nil
}

// Remove deletes a product by id, optionally purging its stored files on the
// remote side. The ConfirmDelete hook runs first; a declined confirmation is
// a no-op. On gateway failure the record stays in the view.
func (c *Catalog) Remove(ctx context.Context, id string, deleteFiles bool) error {
	if c.ConfirmDelete != nil {
		product, _ := c.lookup(id)
		if !c.ConfirmDelete(product) {
			return ErrDeleteNotConfirmed
		}
	}

	if err := c.gateway.DeleteProduct(ctx, id, deleteFiles); err != nil {
		return err
	}

	c.mu.Lock()
	kept := c.products[:0]
	for _, p := range c.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	c.products = kept
	c.mu.Unlock()

	if c.events != nil {
		c.events.ProductDeleted(ctx, id)
	}

	return nil
}

// Products returns a copy of the current collection.
func (c *Catalog) Products() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return snapshot(c.products)
}

// Filter returns the products whose name or category contains the query,
// case-insensitively. An empty query returns the whole collection. The
// underlying collection is never mutated.
func (c *Catalog) Filter(query string) []models.Product {
	return FilterProducts(c.Products(), query)
}

func (c *Catalog) State() LoadState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastError returns the message captured by the most recent failed load, or
// the empty string after a successful one.
func (c *Catalog) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Catalog) lookup(id string) (models.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{ID: id}, false
}

func snapshot(products []models.Product) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}
