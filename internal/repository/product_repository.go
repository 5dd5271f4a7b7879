package repository

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/iyhunko/realtime-catalog/internal/model"
	"github.com/iyhunko/realtime-catalog/internal/store"
)

// ProductRepository owns the in-memory product collection and its durable
// copy. Every successful mutation is written through to the document store
// before it returns, so callers never observe an acknowledged change that is
// not on disk.
//
// The collection keeps insertion order; new products append at the end. All
// methods serialize on one mutex since gin handles requests concurrently.
type ProductRepository struct {
	mu       sync.Mutex
	doc      *store.Document[model.Product]
	products []model.Product
}

// NewProductRepository loads the collection from the document store once and
// keeps it in memory from then on.
func NewProductRepository(doc *store.Document[model.Product]) (*ProductRepository, error) {
	products, err := doc.Load()
	if err != nil {
		return nil, fmt.Errorf("loading product collection: %w", err)
	}
	return &ProductRepository{doc: doc, products: products}, nil
}

// List returns the full collection in insertion order.
func (r *ProductRepository) List(_ context.Context) []model.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

// ListLimit returns at most limit products from the head of the collection.
// A limit of zero or less yields an empty slice.
func (r *ProductRepository) ListLimit(_ context.Context, limit int) []model.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit < 0 {
		limit = 0
	}
	if limit > len(r.products) {
		limit = len(r.products)
	}
	out := make([]model.Product, limit)
	copy(out, r.products[:limit])
	return out
}

// Get returns the product with the given id or ErrNotFound.
func (r *ProductRepository) Get(_ context.Context, id string) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return model.Product{}, ErrNotFound
	}
	return r.products[i], nil
}

// Create validates the input, assigns the next id, appends the product and
// persists the collection. Title, description, code and category must be
// non-empty and price and stock non-zero; status defaults to true and
// thumbnails to an empty list when absent.
func (r *ProductRepository) Create(_ context.Context, input model.ProductInput) (model.Product, error) {
	if err := validateInput(input); err != nil {
		return model.Product{}, err
	}

	status := true
	if input.Status != nil {
		status = *input.Status
	}
	thumbnails := input.Thumbnails
	if thumbnails == nil {
		thumbnails = []string{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	product := model.Product{
		ID:          r.nextID(),
		Title:       input.Title,
		Description: input.Description,
		Code:        input.Code,
		Price:       input.Price,
		Status:      status,
		Stock:       input.Stock,
		Category:    input.Category,
		Thumbnails:  thumbnails,
	}

	r.products = append(r.products, product)
	if err := r.doc.Save(r.products); err != nil {
		r.products = r.products[:len(r.products)-1]
		return model.Product{}, err
	}
	return product, nil
}

// Update overwrites every field present in the patch on the stored product
// and persists the collection. The id never changes and no field validation
// happens here, so a patch may leave values that Create would reject.
func (r *ProductRepository) Update(_ context.Context, id string, patch model.ProductPatch) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Product{}, ErrNotFound
	}

	prev := r.products[i]
	updated := prev
	if patch.Title != nil {
		updated.Title = *patch.Title
	}
	if patch.Description != nil {
		updated.Description = *patch.Description
	}
	if patch.Code != nil {
		updated.Code = *patch.Code
	}
	if patch.Price != nil {
		updated.Price = *patch.Price
	}
	if patch.Status != nil {
		updated.Status = *patch.Status
	}
	if patch.Stock != nil {
		updated.Stock = *patch.Stock
	}
	if patch.Category != nil {
		updated.Category = *patch.Category
	}
	if patch.Thumbnails != nil {
		updated.Thumbnails = *patch.Thumbnails
	}

	r.products[i] = updated
	if err := r.doc.Save(r.products); err != nil {
		r.products[i] = prev
		return model.Product{}, err
	}
	return updated, nil
}

// Delete removes the product with the given id and persists the collection.
func (r *ProductRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}

	prev := r.snapshot()
	r.products = append(r.products[:i], r.products[i+1:]...)
	if err := r.doc.Save(r.products); err != nil {
		r.products = prev
		return err
	}
	return nil
}

// nextID continues the sequence from the last element of the collection, not
// from the maximum id. Documents written by earlier versions of the service
// depend on this exact rule, so deletions can leave a tail whose successor
// collides with an id that still exists elsewhere in the collection.
// Callers must hold r.mu.
func (r *ProductRepository) nextID() string {
	if len(r.products) == 0 {
		return "1"
	}
	last, err := strconv.Atoi(r.products[len(r.products)-1].ID)
	if err != nil {
		last = 0
	}
	return strconv.Itoa(last + 1)
}

// indexOf returns the position of the product with the given id, or -1.
// Callers must hold r.mu.
func (r *ProductRepository) indexOf(id string) int {
	for i, p := range r.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// snapshot copies the collection so callers can't mutate shared state.
// Callers must hold r.mu.
func (r *ProductRepository) snapshot() []model.Product {
	out := make([]model.Product, len(r.products))
	copy(out, r.products)
	return out
}

func validateInput(input model.ProductInput) error {
	switch {
	case input.Title == "":
		return &ValidationError{Field: "title"}
	case input.Description == "":
		return &ValidationError{Field: "description"}
	case input.Code == "":
		return &ValidationError{Field: "code"}
	case input.Price == 0:
		return &ValidationError{Field: "price"}
	case input.Stock == 0:
		return &ValidationError{Field: "stock"}
	case input.Category == "":
		return &ValidationError{Field: "category"}
	}
	return nil
}
