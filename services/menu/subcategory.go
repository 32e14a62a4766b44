package menu

import (
	"context"
	"fmt"

	"menucatalog/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CreateSubcategory appends a subcategory, optionally seeded with items that
// are validated exactly like CreateItem input.
func (s *DefaultMenuService) CreateSubcategory(ctx context.Context, categoryID string, input models.SubcategoryInput) (*models.Category, error) {
	ids, err := parseIDs(categoryID)
	if err != nil {
		return nil, err
	}
	if blank(input.Name) {
		return nil, invalidInput("Subcategory name is required.")
	}

	sub := models.Subcategory{
		ID:    s.NewID(),
		Name:  input.Name,
		Items: make([]models.Item, 0, len(input.Items)),
	}
	for i, in := range input.Items {
		item, err := s.buildItem(in)
		if err != nil {
			return nil, prefixed(fmt.Sprintf("Item %d: ", i+1), err)
		}
		if sub.ItemByName(item.Name, primitive.NilObjectID) != nil {
			return nil, conflict(fmt.Sprintf("Item %q appears more than once.", item.Name))
		}
		sub.AddItem(item)
	}

	category, err := s.loadCategory(ctx, ids[0])
	if err != nil {
		return nil, err
	}
	if category.SubcategoryByName(sub.Name, primitive.NilObjectID) != nil {
		return nil, conflict("Subcategory already exists in this category.")
	}

	category.AddSubcategory(sub)
	saved, err := s.save(ctx, category)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("subcategory created",
		zap.String("categoryId", categoryID),
		zap.String("subcategoryId", sub.ID.Hex()),
		zap.Int("items", len(sub.Items)))
	return saved, nil
}

// UpdateSubcategory renames a subcategory.
func (s *DefaultMenuService) UpdateSubcategory(ctx context.Context, categoryID, subcategoryID, name string) (*models.Subcategory, error) {
	ids, err := parseIDs(categoryID, subcategoryID)
	if err != nil {
		return nil, err
	}
	if blank(name) {
		return nil, invalidInput("Subcategory name is required.")
	}

	p, err := s.resolve(ctx, ids)
	if err != nil {
		return nil, err
	}
	if p.category.SubcategoryByName(name, ids[1]) != nil {
		return nil, conflict("Subcategory with same name already exists.")
	}

	p.subcategory.Name = name
	saved, err := s.save(ctx, p.category)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("subcategory updated", zap.String("categoryId", categoryID), zap.String("subcategoryId", subcategoryID))
	return storedSubcategory(saved, ids[1])
}

// DeleteSubcategory removes a subcategory and its items.
func (s *DefaultMenuService) DeleteSubcategory(ctx context.Context, categoryID, subcategoryID string) (*models.Category, error) {
	ids, err := parseIDs(categoryID, subcategoryID)
	if err != nil {
		return nil, err
	}

	category, err := s.loadCategory(ctx, ids[0])
	if err != nil {
		return nil, err
	}
	if !category.RemoveSubcategory(ids[1]) {
		return nil, notFound("Subcategory not found.")
	}

	saved, err := s.save(ctx, category)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("subcategory deleted", zap.String("categoryId", categoryID), zap.String("subcategoryId", subcategoryID))
	return saved, nil
}

func (s *DefaultMenuService) GetSubcategories(ctx context.Context, categoryID string) ([]models.Subcategory, error) {
	ids, err := parseIDs(categoryID)
	if err != nil {
		return nil, err
	}
	category, err := s.loadCategory(ctx, ids[0])
	if err != nil {
		return nil, err
	}
	if category.Subcategories == nil {
		return []models.Subcategory{}, nil
	}
	return category.Subcategories, nil
}

// storedSubcategory picks a subcategory out of a freshly saved document.
func storedSubcategory(saved *models.Category, id primitive.ObjectID) (*models.Subcategory, error) {
	sub := saved.Subcategory(id)
	if sub == nil {
		return nil, notFound("Subcategory not found.")
	}
	return sub, nil
}
