package menu

import (
	"context"

	"menucatalog/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CreateItem adds an item to a subcategory and returns the subcategory's items.
func (s *DefaultMenuService) CreateItem(ctx context.Context, categoryID, subcategoryID string, input models.ItemInput) ([]models.Item, error) {
	ids, err := parseIDs(categoryID, subcategoryID)
	if err != nil {
		return nil, err
	}
	item, err := s.buildItem(input)
	if err != nil {
		return nil, err
	}

	p, err := s.resolve(ctx, ids)
	if err != nil {
		return nil, err
	}
	if p.subcategory.ItemByName(item.Name, primitive.NilObjectID) != nil {
		return nil, conflict("Item already exists in this subcategory.")
	}

	p.subcategory.AddItem(item)
	saved, err := s.save(ctx, p.category)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("menu item created",
		zap.String("categoryId", categoryID),
		zap.String("subcategoryId", subcategoryID),
		zap.String("itemId", item.ID.Hex()),
		zap.Bool("hasOptions", item.HasOptions))
	sub, err := storedSubcategory(saved, ids[1])
	if err != nil {
		return nil, err
	}
	return sub.Items, nil
}

// pricingChange is the validated outcome of the pricing fields of an update.
// At most one of groups and price is set; neither means pricing is untouched.
type pricingChange struct {
	groups []models.OptionGroup
	price  *models.Price
}

// planPricing decides how an update affects pricing without touching item.
// An explicit hasOptions switches mode; otherwise only fields of the current
// mode may be supplied.
func (s *DefaultMenuService) planPricing(item *models.Item, update models.ItemUpdate) (pricingChange, error) {
	if update.HasOptions.Present {
		if update.HasOptions.Value {
			groups, err := s.buildOptionGroups(update.OptionGroups.Value)
			if err != nil {
				return pricingChange{}, err
			}
			return pricingChange{groups: groups}, nil
		}
		price, err := flatPrice(update.Price.Value, "Standard price is required when hasOptions is false.")
		if err != nil {
			return pricingChange{}, err
		}
		return pricingChange{price: price}, nil
	}

	if item.HasOptions {
		if update.Price.Present {
			return pricingChange{}, invalidInput("Price cannot be set on an item with options; set hasOptions to false to switch to a flat price.")
		}
		if !update.OptionGroups.Present {
			return pricingChange{}, nil
		}
		if len(update.OptionGroups.Value) == 0 {
			return pricingChange{}, invalidInput("Option groups array cannot be empty for items with options.")
		}
		groups, err := s.buildOptionGroups(update.OptionGroups.Value)
		if err != nil {
			return pricingChange{}, err
		}
		return pricingChange{groups: groups}, nil
	}

	if update.OptionGroups.Present {
		return pricingChange{}, invalidInput("Option groups cannot be set on a flat-priced item; set hasOptions to true to switch to options.")
	}
	if !update.Price.Present {
		return pricingChange{}, nil
	}
	price, err := flatPrice(update.Price.Value, "Standard price must be a number.")
	if err != nil {
		return pricingChange{}, err
	}
	return pricingChange{price: price}, nil
}

// UpdateItem merges the present fields of update into an item.
func (s *DefaultMenuService) UpdateItem(ctx context.Context, categoryID, subcategoryID, itemID string, update models.ItemUpdate) (*models.Item, error) {
	ids, err := parseIDs(categoryID, subcategoryID, itemID)
	if err != nil {
		return nil, err
	}

	p, err := s.resolve(ctx, ids)
	if err != nil {
		return nil, err
	}
	item := p.item

	if update.Name.Present {
		if blank(update.Name.Value) {
			return nil, invalidInput("Item name cannot be empty.")
		}
		if p.subcategory.ItemByName(update.Name.Value, item.ID) != nil {
			return nil, conflict("Another item with this name already exists.")
		}
	}
	if update.Type.Present && !models.IsValidDietType(update.Type.Value) {
		return nil, invalidInput("Invalid type. Must be one of: %s", dietTypeList())
	}
	change, err := s.planPricing(item, update)
	if err != nil {
		return nil, err
	}

	// everything is validated; apply
	if update.Name.Present {
		item.Name = update.Name.Value
	}
	if update.Image.Present {
		item.Image = update.Image.Value
	}
	if update.Description.Present {
		item.Description = update.Description.Value
	}
	if update.Type.Present {
		item.Type = update.Type.Value
	}
	switch {
	case change.groups != nil:
		item.UseOptions(change.groups)
	case change.price != nil:
		item.UseFlatPrice(change.price)
	}
	item.UpdatedAt = s.Now()

	saved, err := s.save(ctx, p.category)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("menu item updated",
		zap.String("categoryId", categoryID),
		zap.String("subcategoryId", subcategoryID),
		zap.String("itemId", itemID),
		zap.Bool("hasOptions", item.HasOptions))
	return storedItem(saved, ids[1], ids[2])
}

// DeleteItem removes an item and returns the subcategory's remaining items.
func (s *DefaultMenuService) DeleteItem(ctx context.Context, categoryID, subcategoryID, itemID string) ([]models.Item, error) {
	ids, err := parseIDs(categoryID, subcategoryID, itemID)
	if err != nil {
		return nil, err
	}

	p, err := s.resolve(ctx, ids)
	if err != nil {
		return nil, err
	}
	p.subcategory.RemoveItem(ids[2])

	saved, err := s.save(ctx, p.category)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("menu item deleted",
		zap.String("categoryId", categoryID),
		zap.String("subcategoryId", subcategoryID),
		zap.String("itemId", itemID))
	sub, err := storedSubcategory(saved, ids[1])
	if err != nil {
		return nil, err
	}
	if sub.Items == nil {
		return []models.Item{}, nil
	}
	return sub.Items, nil
}

func (s *DefaultMenuService) GetItems(ctx context.Context, categoryID, subcategoryID string) ([]models.Item, error) {
	ids, err := parseIDs(categoryID, subcategoryID)
	if err != nil {
		return nil, err
	}
	p, err := s.resolve(ctx, ids)
	if err != nil {
		return nil, err
	}
	if p.subcategory.Items == nil {
		return []models.Item{}, nil
	}
	return p.subcategory.Items, nil
}

func (s *DefaultMenuService) GetItem(ctx context.Context, categoryID, subcategoryID, itemID string) (*models.Item, error) {
	ids, err := parseIDs(categoryID, subcategoryID, itemID)
	if err != nil {
		return nil, err
	}
	p, err := s.resolve(ctx, ids)
	if err != nil {
		return nil, err
	}
	return p.item, nil
}

func storedItem(saved *models.Category, subcategoryID, itemID primitive.ObjectID) (*models.Item, error) {
	sub, err := storedSubcategory(saved, subcategoryID)
	if err != nil {
		return nil, err
	}
	item := sub.Item(itemID)
	if item == nil {
		return nil, notFound("Item not found.")
	}
	return item, nil
}
