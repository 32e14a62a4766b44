package menu

import (
	"context"
	"testing"

	"menucatalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type optionFixture struct {
	svc          *DefaultMenuService
	catID, subID string
	itemID       string
	groupID      string
	variantIDs   []string
}

func newOptionFixture(t *testing.T, input models.ItemInput) optionFixture {
	t.Helper()
	svc, _ := newTestService(t)
	catID, subID, itemID := seedItem(t, svc, input)
	item, err := svc.GetItem(context.Background(), catID, subID, itemID)
	require.NoError(t, err)
	require.NotEmpty(t, item.OptionGroups)

	f := optionFixture{svc: svc, catID: catID, subID: subID, itemID: itemID, groupID: item.OptionGroups[0].ID.Hex()}
	for _, v := range item.OptionGroups[0].Variants {
		f.variantIDs = append(f.variantIDs, v.ID.Hex())
	}
	return f
}

func TestDeleteVariant(t *testing.T) {
	f := newOptionFixture(t, optionItemInput("Pasta", "Small", "Large"))
	ctx := context.Background()

	item, err := f.svc.DeleteVariant(ctx, f.catID, f.subID, f.itemID, f.groupID, f.variantIDs[0])
	require.NoError(t, err)
	require.Len(t, item.OptionGroups[0].Variants, 1)
	assert.Equal(t, "Large", item.OptionGroups[0].Variants[0].Name)

	_, err = f.svc.DeleteVariant(ctx, f.catID, f.subID, f.itemID, f.groupID, f.variantIDs[0])
	requireKind(t, err, KindNotFound)
	assert.Equal(t, "Variant not found.", MessageOf(err))
}

func TestDeleteLastVariantRejected(t *testing.T) {
	f := newOptionFixture(t, optionItemInput("Pasta", "Regular"))
	ctx := context.Background()

	_, err := f.svc.DeleteVariant(ctx, f.catID, f.subID, f.itemID, f.groupID, f.variantIDs[0])
	requireKind(t, err, KindInvalidInput)
	assert.Contains(t, MessageOf(err), "last variant")

	item, err := f.svc.GetItem(ctx, f.catID, f.subID, f.itemID)
	require.NoError(t, err)
	require.Len(t, item.OptionGroups, 1)
	assert.Len(t, item.OptionGroups[0].Variants, 1)
}

func TestDeleteOptionGroupKeepsOthers(t *testing.T) {
	in := optionItemInput("Pasta", "Small")
	in.OptionGroups = append(in.OptionGroups, models.OptionGroupInput{
		Title:    "Sauce",
		Variants: []models.VariantInput{{Name: "Pesto", Price: price(1)}},
	})
	f := newOptionFixture(t, in)

	item, err := f.svc.DeleteOptionGroup(context.Background(), f.catID, f.subID, f.itemID, f.groupID)
	require.NoError(t, err)
	assert.True(t, item.HasOptions)
	require.Len(t, item.OptionGroups, 1)
	assert.Equal(t, "Sauce", item.OptionGroups[0].Title)
	assertPricingXOR(t, item)
}

func TestDeleteLastOptionGroupDemotesItem(t *testing.T) {
	f := newOptionFixture(t, optionItemInput("Pasta", "Regular"))

	item, err := f.svc.DeleteOptionGroup(context.Background(), f.catID, f.subID, f.itemID, f.groupID)
	require.NoError(t, err)
	assert.False(t, item.HasOptions)
	assert.Empty(t, item.OptionGroups)
	require.NotNil(t, item.Price)
	assert.Equal(t, models.Price{Standard: 0, HappyHour: 0, HappyHourActive: false}, *item.Price)
	assertPricingXOR(t, item)

	_, err = f.svc.DeleteOptionGroup(context.Background(), f.catID, f.subID, f.itemID, f.groupID)
	requireKind(t, err, KindInvalidInput)
	assert.Equal(t, "Item does not have option groups.", MessageOf(err))
}

func TestOptionOperationsOnFlatItem(t *testing.T) {
	svc, _ := newTestService(t)
	catID, subID, itemID := seedItem(t, svc, flatItem("Margherita", 10))
	other := primitive.NewObjectID().Hex()

	_, err := svc.DeleteOptionGroup(context.Background(), catID, subID, itemID, other)
	requireKind(t, err, KindInvalidInput)

	_, err = svc.DeleteVariant(context.Background(), catID, subID, itemID, other, other)
	requireKind(t, err, KindInvalidInput)
}

func TestOptionGroupNotFound(t *testing.T) {
	f := newOptionFixture(t, optionItemInput("Pasta", "Small", "Large"))
	other := primitive.NewObjectID().Hex()

	_, err := f.svc.DeleteOptionGroup(context.Background(), f.catID, f.subID, f.itemID, other)
	requireKind(t, err, KindNotFound)
	assert.Equal(t, "Option group not found.", MessageOf(err))

	_, err = f.svc.DeleteVariant(context.Background(), f.catID, f.subID, f.itemID, other, f.variantIDs[0])
	requireKind(t, err, KindNotFound)
}
