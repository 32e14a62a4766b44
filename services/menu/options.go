package menu

import (
	"context"

	"menucatalog/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// optionItem resolves an item that must be option-priced, plus one of its groups.
func (s *DefaultMenuService) optionItem(ctx context.Context, ids []primitive.ObjectID) (*itemPath, *models.OptionGroup, error) {
	p, err := s.resolve(ctx, ids[:3])
	if err != nil {
		return nil, nil, err
	}
	if !p.item.HasOptions || len(p.item.OptionGroups) == 0 {
		return nil, nil, invalidInput("Item does not have option groups.")
	}
	group := p.item.OptionGroup(ids[3])
	if group == nil {
		return nil, nil, notFound("Option group not found.")
	}
	return p, group, nil
}

// DeleteOptionGroup removes an option group. Removing the last group turns the
// item back into a flat-priced item with a zero price.
func (s *DefaultMenuService) DeleteOptionGroup(ctx context.Context, categoryID, subcategoryID, itemID, optionGroupID string) (*models.Item, error) {
	ids, err := parseIDs(categoryID, subcategoryID, itemID, optionGroupID)
	if err != nil {
		return nil, err
	}
	p, group, err := s.optionItem(ctx, ids)
	if err != nil {
		return nil, err
	}

	item := p.item
	item.RemoveOptionGroup(group.ID)
	demoted := len(item.OptionGroups) == 0
	if demoted {
		item.UseFlatPrice(models.ZeroPrice())
	}
	item.UpdatedAt = s.Now()

	saved, err := s.save(ctx, p.category)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("option group deleted",
		zap.String("itemId", itemID),
		zap.String("optionGroupId", optionGroupID),
		zap.Bool("demotedToFlatPrice", demoted))
	return storedItem(saved, p.subcategory.ID, item.ID)
}

// DeleteVariant removes a variant; a group's last variant cannot be removed.
func (s *DefaultMenuService) DeleteVariant(ctx context.Context, categoryID, subcategoryID, itemID, optionGroupID, variantID string) (*models.Item, error) {
	ids, err := parseIDs(categoryID, subcategoryID, itemID, optionGroupID, variantID)
	if err != nil {
		return nil, err
	}
	p, group, err := s.optionItem(ctx, ids)
	if err != nil {
		return nil, err
	}

	if group.Variant(ids[4]) == nil {
		return nil, notFound("Variant not found.")
	}
	if len(group.Variants) == 1 {
		return nil, invalidInput("Cannot delete the last variant. Delete the option group instead or add another variant first.")
	}

	group.RemoveVariant(ids[4])
	p.item.UpdatedAt = s.Now()

	saved, err := s.save(ctx, p.category)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("variant deleted",
		zap.String("itemId", itemID),
		zap.String("optionGroupId", optionGroupID),
		zap.String("variantId", variantID))
	return storedItem(saved, p.subcategory.ID, p.item.ID)
}
