package menu

import (
	"context"
	"errors"

	menuRepo "menucatalog/database/repository/menu"
	"menucatalog/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// pathLevels names each position of an identifier path, root first.
var pathLevels = []string{"category", "subcategory", "item", "option group", "variant"}

// parseIDs validates a root-first identifier path before anything touches storage.
func parseIDs(raw ...string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, len(raw))
	for i, r := range raw {
		id, err := primitive.ObjectIDFromHex(r)
		if err != nil {
			return nil, invalidInput("Invalid %s ID.", pathLevels[i])
		}
		ids[i] = id
	}
	return ids, nil
}

func (s *DefaultMenuService) loadCategory(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	category, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		s.Logger.Sugar().Errorw("failed to load category", "categoryId", id.Hex(), "error", err)
		return nil, internal("Failed to load category.", err)
	}
	if category == nil {
		return nil, notFound("Category not found.")
	}
	return category, nil
}

// itemPath is a resolved category/subcategory/item chain. Pointers alias the
// category document, so edits through them are part of the next save.
type itemPath struct {
	category    *models.Category
	subcategory *models.Subcategory
	item        *models.Item
}

// resolve loads the category for ids[0] and walks as deep as ids reaches,
// stopping at the item level.
func (s *DefaultMenuService) resolve(ctx context.Context, ids []primitive.ObjectID) (*itemPath, error) {
	category, err := s.loadCategory(ctx, ids[0])
	if err != nil {
		return nil, err
	}
	p := &itemPath{category: category}
	if len(ids) < 2 {
		return p, nil
	}
	if p.subcategory = category.Subcategory(ids[1]); p.subcategory == nil {
		return nil, notFound("Subcategory not found.")
	}
	if len(ids) < 3 {
		return p, nil
	}
	if p.item = p.subcategory.Item(ids[2]); p.item == nil {
		return nil, notFound("Item not found.")
	}
	return p, nil
}

// save persists the whole category document and returns the stored form.
func (s *DefaultMenuService) save(ctx context.Context, category *models.Category) (*models.Category, error) {
	stored, err := s.Repo.Replace(ctx, category)
	if err != nil {
		if errors.Is(err, menuRepo.ErrDuplicateName) {
			return nil, conflict("Another category with this name already exists.")
		}
		s.Logger.Sugar().Errorw("failed to save category", "categoryId", category.ID.Hex(), "error", err)
		return nil, internal("Failed to save category.", err)
	}
	if stored == nil {
		// deleted between load and save
		return nil, notFound("Category not found.")
	}
	return stored, nil
}
