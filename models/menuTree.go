package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// indexOf returns the position of the first element whose id matches, or -1.
func indexOf[T any](list []T, id primitive.ObjectID, idOf func(*T) primitive.ObjectID) int {
	for i := range list {
		if idOf(&list[i]) == id {
			return i
		}
	}
	return -1
}

// removeAt drops list[i] keeping the order of the remaining elements.
func removeAt[T any](list []T, i int) []T {
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}

func subcategoryID(s *Subcategory) primitive.ObjectID { return s.ID }
func itemID(i *Item) primitive.ObjectID               { return i.ID }
func optionGroupID(g *OptionGroup) primitive.ObjectID { return g.ID }
func variantID(v *Variant) primitive.ObjectID         { return v.ID }

// Subcategory returns a pointer into c.Subcategories, or nil.
func (c *Category) Subcategory(id primitive.ObjectID) *Subcategory {
	if i := indexOf(c.Subcategories, id, subcategoryID); i >= 0 {
		return &c.Subcategories[i]
	}
	return nil
}

// SubcategoryByName finds a sibling named name whose id differs from exceptID.
// Pass primitive.NilObjectID to match any subcategory.
func (c *Category) SubcategoryByName(name string, exceptID primitive.ObjectID) *Subcategory {
	for i := range c.Subcategories {
		if c.Subcategories[i].Name == name && c.Subcategories[i].ID != exceptID {
			return &c.Subcategories[i]
		}
	}
	return nil
}

func (c *Category) AddSubcategory(s Subcategory) {
	c.Subcategories = append(c.Subcategories, s)
}

// RemoveSubcategory reports whether a subcategory with id was removed.
func (c *Category) RemoveSubcategory(id primitive.ObjectID) bool {
	i := indexOf(c.Subcategories, id, subcategoryID)
	if i < 0 {
		return false
	}
	c.Subcategories = removeAt(c.Subcategories, i)
	return true
}

func (s *Subcategory) Item(id primitive.ObjectID) *Item {
	if i := indexOf(s.Items, id, itemID); i >= 0 {
		return &s.Items[i]
	}
	return nil
}

// ItemByName finds a sibling item named name whose id differs from exceptID.
func (s *Subcategory) ItemByName(name string, exceptID primitive.ObjectID) *Item {
	for i := range s.Items {
		if s.Items[i].Name == name && s.Items[i].ID != exceptID {
			return &s.Items[i]
		}
	}
	return nil
}

func (s *Subcategory) AddItem(item Item) {
	s.Items = append(s.Items, item)
}

func (s *Subcategory) RemoveItem(id primitive.ObjectID) bool {
	i := indexOf(s.Items, id, itemID)
	if i < 0 {
		return false
	}
	s.Items = removeAt(s.Items, i)
	return true
}

func (it *Item) OptionGroup(id primitive.ObjectID) *OptionGroup {
	if i := indexOf(it.OptionGroups, id, optionGroupID); i >= 0 {
		return &it.OptionGroups[i]
	}
	return nil
}

func (it *Item) RemoveOptionGroup(id primitive.ObjectID) bool {
	i := indexOf(it.OptionGroups, id, optionGroupID)
	if i < 0 {
		return false
	}
	it.OptionGroups = removeAt(it.OptionGroups, i)
	return true
}

// UseOptions switches the item to option pricing with the given groups.
func (it *Item) UseOptions(groups []OptionGroup) {
	it.HasOptions = true
	it.OptionGroups = groups
	it.Price = nil
}

// UseFlatPrice switches the item to a single flat price.
func (it *Item) UseFlatPrice(p *Price) {
	it.HasOptions = false
	it.Price = p
	it.OptionGroups = nil
}

func (g *OptionGroup) Variant(id primitive.ObjectID) *Variant {
	if i := indexOf(g.Variants, id, variantID); i >= 0 {
		return &g.Variants[i]
	}
	return nil
}

func (g *OptionGroup) RemoveVariant(id primitive.ObjectID) bool {
	i := indexOf(g.Variants, id, variantID)
	if i < 0 {
		return false
	}
	g.Variants = removeAt(g.Variants, i)
	return true
}
