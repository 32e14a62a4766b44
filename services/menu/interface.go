package menu

import (
	"context"
	"time"

	menuRepo "menucatalog/database/repository/menu"
	"menucatalog/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// MenuService validates and applies changes to category documents.
// Identifiers are 24-character hex strings; every mutation ends in a single
// whole-document replace of the owning category.
type MenuService interface {
	// Categories
	CreateCategory(ctx context.Context, input models.CategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, input models.CategoryInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, categoryID string) (*models.Category, error)

	// Subcategories
	CreateSubcategory(ctx context.Context, categoryID string, input models.SubcategoryInput) (*models.Category, error)
	UpdateSubcategory(ctx context.Context, categoryID, subcategoryID, name string) (*models.Subcategory, error)
	DeleteSubcategory(ctx context.Context, categoryID, subcategoryID string) (*models.Category, error)
	GetSubcategories(ctx context.Context, categoryID string) ([]models.Subcategory, error)

	// Items
	CreateItem(ctx context.Context, categoryID, subcategoryID string, input models.ItemInput) ([]models.Item, error)
	UpdateItem(ctx context.Context, categoryID, subcategoryID, itemID string, update models.ItemUpdate) (*models.Item, error)
	DeleteItem(ctx context.Context, categoryID, subcategoryID, itemID string) ([]models.Item, error)
	GetItems(ctx context.Context, categoryID, subcategoryID string) ([]models.Item, error)
	GetItem(ctx context.Context, categoryID, subcategoryID, itemID string) (*models.Item, error)

	// Option groups and variants
	DeleteOptionGroup(ctx context.Context, categoryID, subcategoryID, itemID, optionGroupID string) (*models.Item, error)
	DeleteVariant(ctx context.Context, categoryID, subcategoryID, itemID, optionGroupID, variantID string) (*models.Item, error)
}

// DefaultMenuService is the production implementation.
type DefaultMenuService struct {
	Repo   menuRepo.CategoryRepository
	Logger *zap.Logger
	// NewID and Now are overridable for tests.
	NewID func() primitive.ObjectID
	Now   func() time.Time
}

// NewMenuService builds a DefaultMenuService with default id and clock sources.
func NewMenuService(repo menuRepo.CategoryRepository, logger *zap.Logger) *DefaultMenuService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultMenuService{
		Repo:   repo,
		Logger: logger,
		NewID:  primitive.NewObjectID,
		// Mongo stores milliseconds in UTC.
		Now: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}
