package menuRepo

import (
	"context"

	"menucatalog/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryRepository stores whole category documents.
// Lookups return (nil, nil) when no document matches.
type CategoryRepository interface {
	// FindByName retrieves the category with the given name.
	FindByName(ctx context.Context, name string) (*models.Category, error)
	// FindByID retrieves a category by its identifier.
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	// FindAll retrieves every category in insertion order.
	FindAll(ctx context.Context) ([]models.Category, error)
	// Insert stores a new category, assigning an identifier when it has none.
	Insert(ctx context.Context, category *models.Category) (*models.Category, error)
	// Replace atomically swaps the stored document for category.
	Replace(ctx context.Context, category *models.Category) (*models.Category, error)
	// DeleteByID removes a category and returns the removed document.
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
}
