package menu

import (
	"errors"
	"strings"

	"menucatalog/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type priceProblem int

const (
	priceOK priceProblem = iota
	priceMissing
	priceNegative
)

func checkPrice(p *models.PriceInput) priceProblem {
	if p == nil || p.Standard == nil {
		return priceMissing
	}
	if *p.Standard < 0 || (p.HappyHour != nil && *p.HappyHour < 0) {
		return priceNegative
	}
	return priceOK
}

// toPrice converts an input already accepted by checkPrice.
func toPrice(p *models.PriceInput) *models.Price {
	price := &models.Price{Standard: *p.Standard}
	if p.HappyHour != nil {
		price.HappyHour = *p.HappyHour
	}
	if p.HappyHourActive != nil {
		price.HappyHourActive = *p.HappyHourActive
	}
	return price
}

// flatPrice validates the price of a flat-priced item.
func flatPrice(p *models.PriceInput, missingMsg string) (*models.Price, error) {
	switch checkPrice(p) {
	case priceMissing:
		return nil, invalidInput("%s", missingMsg)
	case priceNegative:
		return nil, invalidInput("Price cannot be negative.")
	}
	return toPrice(p), nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func dietTypeList() string {
	names := make([]string, len(models.DietTypes))
	for i, d := range models.DietTypes {
		names[i] = string(d)
	}
	return strings.Join(names, ", ")
}

// itemDietType applies the Veg default for items and rejects anything outside the enum.
func itemDietType(t models.DietType) (models.DietType, error) {
	if t == "" {
		return models.DietVeg, nil
	}
	if !models.IsValidDietType(t) {
		return "", invalidInput("Invalid type. Must be one of: %s", dietTypeList())
	}
	return t, nil
}

// reuseID keeps a caller-supplied identifier when one is given, so clients can
// resend option groups without churning their ids.
func (s *DefaultMenuService) reuseID(raw, label string, seen map[primitive.ObjectID]bool) (primitive.ObjectID, error) {
	if raw == "" {
		return s.NewID(), nil
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, invalidInput("Invalid %s ID.", label)
	}
	if seen[id] {
		return primitive.NilObjectID, invalidInput("Duplicate %s ID %s.", label, raw)
	}
	seen[id] = true
	return id, nil
}

// buildOptionGroups validates option group input and returns stored groups.
// Messages use 1-based positions.
func (s *DefaultMenuService) buildOptionGroups(inputs []models.OptionGroupInput) ([]models.OptionGroup, error) {
	if len(inputs) == 0 {
		return nil, invalidInput("Option groups are required when hasOptions is true.")
	}

	seenGroups := map[primitive.ObjectID]bool{}
	seenVariants := map[primitive.ObjectID]bool{}
	groups := make([]models.OptionGroup, 0, len(inputs))
	for i, in := range inputs {
		if len(in.Variants) == 0 {
			return nil, invalidInput("Option group %d must have at least one variant.", i+1)
		}
		groupID, err := s.reuseID(in.ID, "option group", seenGroups)
		if err != nil {
			return nil, err
		}

		group := models.OptionGroup{
			ID:          groupID,
			Title:       in.Title,
			Description: in.Description,
			Variants:    make([]models.Variant, 0, len(in.Variants)),
		}
		for j, v := range in.Variants {
			if blank(v.Name) {
				return nil, invalidInput("Variant %d in option group %d must have a name.", j+1, i+1)
			}
			switch checkPrice(v.Price) {
			case priceMissing:
				return nil, invalidInput("Variant %d in option group %d must have a valid standard price.", j+1, i+1)
			case priceNegative:
				return nil, invalidInput("Variant %d in option group %d cannot have a negative price.", j+1, i+1)
			}
			diet := v.Type
			if diet == "" {
				diet = models.DietNone
			} else if !models.IsValidDietType(diet) {
				return nil, invalidInput("Invalid type for variant %d in option group %d.", j+1, i+1)
			}
			variantID, err := s.reuseID(v.ID, "variant", seenVariants)
			if err != nil {
				return nil, err
			}
			group.Variants = append(group.Variants, models.Variant{
				ID:    variantID,
				Name:  v.Name,
				Price: *toPrice(v.Price),
				Type:  diet,
			})
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// buildItem validates a create request and returns the item to store.
func (s *DefaultMenuService) buildItem(input models.ItemInput) (models.Item, error) {
	if blank(input.Name) {
		return models.Item{}, invalidInput("Item name is required.")
	}
	diet, err := itemDietType(input.Type)
	if err != nil {
		return models.Item{}, err
	}

	now := s.Now()
	item := models.Item{
		ID:          s.NewID(),
		Name:        input.Name,
		Image:       input.Image,
		Description: input.Description,
		Type:        diet,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if input.HasOptions {
		groups, err := s.buildOptionGroups(input.OptionGroups)
		if err != nil {
			return models.Item{}, err
		}
		item.UseOptions(groups)
		return item, nil
	}

	price, err := flatPrice(input.Price, "Standard price is required when hasOptions is false.")
	if err != nil {
		return models.Item{}, err
	}
	item.UseFlatPrice(price)
	return item, nil
}

// prefixed prepends context to the message of a MenuError.
func prefixed(prefix string, err error) error {
	var me *MenuError
	if errors.As(err, &me) {
		return &MenuError{Kind: me.Kind, Message: prefix + me.Message, Err: me.Err}
	}
	return err
}
