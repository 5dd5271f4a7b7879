package service

import (
	"context"
	"log/slog"

	"github.com/iyhunko/realtime-catalog/internal/metrics"
	"github.com/iyhunko/realtime-catalog/internal/model"
	"github.com/iyhunko/realtime-catalog/internal/notifier"
	"github.com/iyhunko/realtime-catalog/internal/repository"
)

// ProductService orchestrates catalog mutations: it runs the repository
// operation, bumps the matching counter and fans the post-mutation
// collection out to observers. Notification failures are logged and never
// fail the originating request.
type ProductService struct {
	repo     *repository.ProductRepository
	notifier notifier.Notifier
}

// NewProductService creates a ProductService with the given repository and
// notifier. A nil notifier disables fan-out.
func NewProductService(repo *repository.ProductRepository, n notifier.Notifier) *ProductService {
	return &ProductService{
		repo:     repo,
		notifier: n,
	}
}

// ListProducts returns the full collection in insertion order.
func (ps *ProductService) ListProducts(ctx context.Context) []model.Product {
	return ps.repo.List(ctx)
}

// ListProductsLimit returns at most limit products from the head of the
// collection.
func (ps *ProductService) ListProductsLimit(ctx context.Context, limit int) []model.Product {
	return ps.repo.ListLimit(ctx, limit)
}

// GetProduct returns the product with the given id or repository.ErrNotFound.
func (ps *ProductService) GetProduct(ctx context.Context, id string) (model.Product, error) {
	return ps.repo.Get(ctx, id)
}

// CreateProduct creates a product and notifies observers.
func (ps *ProductService) CreateProduct(ctx context.Context, input model.ProductInput) (model.Product, error) {
	product, err := ps.repo.Create(ctx, input)
	if err != nil {
		return model.Product{}, err
	}

	metrics.ProductsCreated.Inc()
	ps.broadcast(ctx, "created", product.ID)
	return product, nil
}

// UpdateProduct applies a partial update and notifies observers. The
// notification fires even for an empty patch; the mutation itself succeeded.
func (ps *ProductService) UpdateProduct(ctx context.Context, id string, patch model.ProductPatch) (model.Product, error) {
	product, err := ps.repo.Update(ctx, id, patch)
	if err != nil {
		return model.Product{}, err
	}

	metrics.ProductsUpdated.Inc()
	ps.broadcast(ctx, "updated", product.ID)
	return product, nil
}

// DeleteProduct removes a product and notifies observers.
func (ps *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := ps.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.ProductsDeleted.Inc()
	ps.broadcast(ctx, "deleted", id)
	return nil
}

func (ps *ProductService) broadcast(ctx context.Context, action, productID string) {
	if ps.notifier == nil {
		return
	}
	products := ps.repo.List(ctx)
	if err := ps.notifier.NotifyProductsUpdated(ctx, products); err != nil {
		// Log error but don't fail the request
		slog.Error("Failed to notify observers",
			slog.Any("err", err),
			slog.String("action", action),
			slog.String("product_id", productID),
		)
	}
}
