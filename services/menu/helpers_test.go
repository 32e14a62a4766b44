package menu

import (
	"context"
	"testing"

	menuRepo "menucatalog/database/repository/menu"
	"menucatalog/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*DefaultMenuService, *menuRepo.MemoryCategoryRepo) {
	t.Helper()
	repo := menuRepo.NewMemoryCategoryRepo()
	return NewMenuService(repo, zap.NewNop()), repo
}

func ptr[T any](v T) *T { return &v }

func price(standard float64) *models.PriceInput {
	return &models.PriceInput{Standard: ptr(standard)}
}

func flatItem(name string, standard float64) models.ItemInput {
	return models.ItemInput{Name: name, Price: price(standard)}
}

// optionItemInput builds an option-priced item with one group holding the named variants.
func optionItemInput(name string, variants ...string) models.ItemInput {
	group := models.OptionGroupInput{Title: "Choice"}
	for i, v := range variants {
		group.Variants = append(group.Variants, models.VariantInput{Name: v, Price: price(float64(8 + i))})
	}
	return models.ItemInput{Name: name, HasOptions: true, OptionGroups: []models.OptionGroupInput{group}}
}

// seedSubcategory creates a category with one empty subcategory and returns their ids.
func seedSubcategory(t *testing.T, svc *DefaultMenuService) (string, string) {
	t.Helper()
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, models.CategoryInput{Name: "Pizza", Image: "img1"})
	require.NoError(t, err)
	cat, err = svc.CreateSubcategory(ctx, cat.ID.Hex(), models.SubcategoryInput{Name: "Classics"})
	require.NoError(t, err)
	require.Len(t, cat.Subcategories, 1)
	return cat.ID.Hex(), cat.Subcategories[0].ID.Hex()
}

// seedItem adds input to a fresh subcategory and returns the full id path of the item.
func seedItem(t *testing.T, svc *DefaultMenuService, input models.ItemInput) (string, string, string) {
	t.Helper()
	catID, subID := seedSubcategory(t, svc)
	items, err := svc.CreateItem(context.Background(), catID, subID, input)
	require.NoError(t, err)
	for _, it := range items {
		if it.Name == input.Name {
			return catID, subID, it.ID.Hex()
		}
	}
	t.Fatalf("item %q not returned", input.Name)
	return "", "", ""
}

func requireKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, KindOf(err), "unexpected error: %v", err)
}

// assertPricingXOR checks that exactly one pricing mode is populated.
func assertPricingXOR(t *testing.T, item *models.Item) {
	t.Helper()
	if item.HasOptions {
		require.NotEmpty(t, item.OptionGroups, "option item without groups")
		require.Nil(t, item.Price, "option item with a price")
		return
	}
	require.NotNil(t, item.Price, "flat item without a price")
	require.Empty(t, item.OptionGroups, "flat item with option groups")
}
