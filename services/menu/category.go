package menu

import (
	"context"
	"errors"

	menuRepo "menucatalog/database/repository/menu"
	"menucatalog/models"

	"go.uber.org/zap"
)

// CreateCategory inserts a new, empty category with a unique name.
func (s *DefaultMenuService) CreateCategory(ctx context.Context, input models.CategoryInput) (*models.Category, error) {
	if blank(input.Name) || blank(input.Image) {
		return nil, invalidInput("Category name and image are required.")
	}

	existing, err := s.Repo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, internal("Failed to check category name.", err)
	}
	if existing != nil {
		return nil, conflict("Category already exists.")
	}

	created, err := s.Repo.Insert(ctx, &models.Category{
		Name:          input.Name,
		Image:         input.Image,
		Subcategories: []models.Subcategory{},
	})
	if err != nil {
		// lost a race with a concurrent create of the same name
		if errors.Is(err, menuRepo.ErrDuplicateName) {
			return nil, conflict("Category already exists.")
		}
		s.Logger.Error("failed to create category", zap.String("name", input.Name), zap.Error(err))
		return nil, internal("Failed to create category.", err)
	}

	s.Logger.Info("category created", zap.String("categoryId", created.ID.Hex()), zap.String("name", created.Name))
	return created, nil
}

// UpdateCategory replaces the name and image of a category.
func (s *DefaultMenuService) UpdateCategory(ctx context.Context, categoryID string, input models.CategoryInput) (*models.Category, error) {
	ids, err := parseIDs(categoryID)
	if err != nil {
		return nil, err
	}
	if blank(input.Name) || blank(input.Image) {
		return nil, invalidInput("Category name and image are required.")
	}

	category, err := s.loadCategory(ctx, ids[0])
	if err != nil {
		return nil, err
	}

	other, err := s.Repo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, internal("Failed to check category name.", err)
	}
	if other != nil && other.ID != category.ID {
		return nil, conflict("Another category with this name already exists.")
	}

	category.Name = input.Name
	category.Image = input.Image
	saved, err := s.save(ctx, category)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("category updated", zap.String("categoryId", saved.ID.Hex()))
	return saved, nil
}

// DeleteCategory removes a category together with everything under it.
func (s *DefaultMenuService) DeleteCategory(ctx context.Context, categoryID string) (*models.Category, error) {
	ids, err := parseIDs(categoryID)
	if err != nil {
		return nil, err
	}

	removed, err := s.Repo.DeleteByID(ctx, ids[0])
	if err != nil {
		s.Logger.Error("failed to delete category", zap.String("categoryId", categoryID), zap.Error(err))
		return nil, internal("Failed to delete category.", err)
	}
	if removed == nil {
		return nil, notFound("Category not found.")
	}

	s.Logger.Info("category deleted", zap.String("categoryId", categoryID))
	return removed, nil
}

func (s *DefaultMenuService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.Repo.FindAll(ctx)
	if err != nil {
		s.Logger.Error("failed to list categories", zap.Error(err))
		return nil, internal("Failed to list categories.", err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func (s *DefaultMenuService) GetCategory(ctx context.Context, categoryID string) (*models.Category, error) {
	ids, err := parseIDs(categoryID)
	if err != nil {
		return nil, err
	}
	return s.loadCategory(ctx, ids[0])
}
