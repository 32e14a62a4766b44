package menuRepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"menucatalog/models"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const categoryCachePrefix = "menu:category:"

func categoryKey(id primitive.ObjectID) string {
	return categoryCachePrefix + id.Hex()
}

// CachedCategoryRepo is a read-through Redis cache in front of another
// CategoryRepository. Cache failures are logged and never fail a call.
type CachedCategoryRepo struct {
	inner  CategoryRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedCategoryRepo wraps inner with a Redis cache of category documents.
func NewCachedCategoryRepo(inner CategoryRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) CategoryRepository {
	return &CachedCategoryRepo{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (r *CachedCategoryRepo) FindByName(ctx context.Context, name string) (*models.Category, error) {
	return r.inner.FindByName(ctx, name)
}

func (r *CachedCategoryRepo) FindAll(ctx context.Context) ([]models.Category, error) {
	return r.inner.FindAll(ctx)
}

func (r *CachedCategoryRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	if category, ok := r.get(ctx, id); ok {
		return category, nil
	}
	category, err := r.inner.FindByID(ctx, id)
	if err != nil || category == nil {
		return category, err
	}
	r.set(ctx, category)
	return category, nil
}

func (r *CachedCategoryRepo) Insert(ctx context.Context, category *models.Category) (*models.Category, error) {
	return r.inner.Insert(ctx, category)
}

func (r *CachedCategoryRepo) Replace(ctx context.Context, category *models.Category) (*models.Category, error) {
	r.invalidate(ctx, category.ID)
	stored, err := r.inner.Replace(ctx, category)
	if err != nil {
		return nil, err
	}
	// a reader may have refilled the key between invalidate and replace
	r.invalidate(ctx, category.ID)
	return stored, nil
}

func (r *CachedCategoryRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	removed, err := r.inner.DeleteByID(ctx, id)
	r.invalidate(ctx, id)
	return removed, err
}

func (r *CachedCategoryRepo) get(ctx context.Context, id primitive.ObjectID) (*models.Category, bool) {
	data, err := r.client.Get(ctx, categoryKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("menu cache read failed", zap.String("categoryId", id.Hex()), zap.Error(err))
		}
		return nil, false
	}
	var category models.Category
	if err := json.Unmarshal(data, &category); err != nil {
		r.logger.Warn("menu cache entry corrupt", zap.String("categoryId", id.Hex()), zap.Error(err))
		return nil, false
	}
	return &category, true
}

func (r *CachedCategoryRepo) set(ctx context.Context, category *models.Category) {
	data, err := json.Marshal(category)
	if err != nil {
		r.logger.Warn("menu cache encode failed", zap.String("categoryId", category.ID.Hex()), zap.Error(err))
		return
	}
	if err := r.client.Set(ctx, categoryKey(category.ID), data, r.ttl).Err(); err != nil {
		r.logger.Warn("menu cache write failed", zap.String("categoryId", category.ID.Hex()), zap.Error(err))
	}
}

func (r *CachedCategoryRepo) invalidate(ctx context.Context, id primitive.ObjectID) {
	if err := r.client.Del(ctx, categoryKey(id)).Err(); err != nil {
		r.logger.Warn("menu cache invalidate failed", zap.String("categoryId", id.Hex()), zap.Error(err))
	}
}
