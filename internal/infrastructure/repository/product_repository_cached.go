package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/TemiKayode/wumikay-ventures/internal/domain/entity"
	domainRepo "github.com/TemiKayode/wumikay-ventures/internal/domain/repository"
	"github.com/TemiKayode/wumikay-ventures/internal/infrastructure/cache"
	"github.com/TemiKayode/wumikay-ventures/internal/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// cachedProductRepository layers a read-through Redis cache over another
// ProductRepository. Single-product reads are cached; list queries always
// hit the database because filter combinations are unbounded.
type cachedProductRepository struct {
	inner domainRepo.ProductRepository
	cache *cache.RedisCache
}

// NewCachedProductRepository wraps repo with a Redis read-through cache.
func NewCachedProductRepository(inner domainRepo.ProductRepository, cache *cache.RedisCache) domainRepo.ProductRepository {
	return &cachedProductRepository{inner: inner, cache: cache}
}

func productKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

func (r *cachedProductRepository) GetByID(ctx context.Context, id uint) (*entity.Product, error) {
	key := productKey(id)

	var product entity.Product
	err := r.cache.Get(ctx, key, &product)
	if err == nil {
		return &product, nil
	}
	if !errors.Is(err, redis.Nil) {
		logger.L().Warn("product cache read failed", zap.Uint("product_id", id), zap.Error(err))
	}

	p, err := r.inner.GetByID(ctx, id)
	if err != nil || p == nil {
		return p, err
	}

	if err := r.cache.Set(ctx, key, p); err != nil {
		logger.L().Warn("product cache write failed", zap.Uint("product_id", id), zap.Error(err))
	}
	return p, nil
}

func (r *cachedProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.inner.Create(ctx, product)
}

func (r *cachedProductRepository) Update(ctx context.Context, product *entity.Product) error {
	if err := r.inner.Update(ctx, product); err != nil {
		return err
	}
	r.invalidate(ctx, product.ID)
	return nil
}

func (r *cachedProductRepository) Delete(ctx context.Context, id uint) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *cachedProductRepository) GetByIDs(ctx context.Context, ids []uint) ([]entity.Product, error) {
	return r.inner.GetByIDs(ctx, ids)
}

func (r *cachedProductRepository) List(ctx context.Context, params *domainRepo.ProductFilterParams) ([]entity.Product, int64, error) {
	return r.inner.List(ctx, params)
}

func (r *cachedProductRepository) Count(ctx context.Context) (int64, error) {
	return r.inner.Count(ctx)
}

func (r *cachedProductRepository) invalidate(ctx context.Context, id uint) {
	if err := r.cache.Delete(ctx, productKey(id)); err != nil {
		logger.L().Warn("product cache invalidation failed", zap.Uint("product_id", id), zap.Error(err))
	}
}
