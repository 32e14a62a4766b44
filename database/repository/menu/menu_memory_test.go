package menuRepo

import (
	"context"
	"errors"
	"testing"

	"menucatalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMemoryRepoInsertAndFind(t *testing.T) {
	repo := NewMemoryCategoryRepo()
	ctx := context.Background()

	created, err := repo.Insert(ctx, &models.Category{Name: "Pizza", Image: "img"})
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())
	assert.NotNil(t, created.Subcategories)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, byID)

	byName, err := repo.FindByName(ctx, "Pizza")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, created.ID, byName.ID)

	missing, err := repo.FindByID(ctx, primitive.NewObjectID())
	require.NoError(t, err)
	assert.Nil(t, missing)

	missing, err = repo.FindByName(ctx, "pizza")
	require.NoError(t, err)
	assert.Nil(t, missing, "names are case-sensitive")
}

func TestMemoryRepoUniqueName(t *testing.T) {
	repo := NewMemoryCategoryRepo()
	ctx := context.Background()

	first, err := repo.Insert(ctx, &models.Category{Name: "Pizza"})
	require.NoError(t, err)
	second, err := repo.Insert(ctx, &models.Category{Name: "Drinks"})
	require.NoError(t, err)

	_, err = repo.Insert(ctx, &models.Category{Name: "Pizza"})
	assert.ErrorIs(t, err, ErrDuplicateName)

	second.Name = first.Name
	_, err = repo.Replace(ctx, second)
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestMemoryRepoReturnsCopies(t *testing.T) {
	repo := NewMemoryCategoryRepo()
	ctx := context.Background()

	created, err := repo.Insert(ctx, &models.Category{Name: "Pizza"})
	require.NoError(t, err)
	created.Subcategories = append(created.Subcategories, models.Subcategory{ID: primitive.NewObjectID(), Name: "Classics"})

	stored, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Subcategories, "unsaved edits must not leak into storage")

	saved, err := repo.Replace(ctx, created)
	require.NoError(t, err)
	require.Len(t, saved.Subcategories, 1)

	stored, err = repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Classics", stored.Subcategories[0].Name)
}

func TestMemoryRepoReplaceAndDeleteMissing(t *testing.T) {
	repo := NewMemoryCategoryRepo()
	ctx := context.Background()

	stored, err := repo.Replace(ctx, &models.Category{ID: primitive.NewObjectID(), Name: "Ghost"})
	require.NoError(t, err)
	assert.Nil(t, stored)

	removed, err := repo.DeleteByID(ctx, primitive.NewObjectID())
	require.NoError(t, err)
	assert.Nil(t, removed)
}

func TestMemoryRepoListOrder(t *testing.T) {
	repo := NewMemoryCategoryRepo()
	ctx := context.Background()

	for _, name := range []string{"Pizza", "Pasta", "Drinks"} {
		_, err := repo.Insert(ctx, &models.Category{Name: name})
		require.NoError(t, err)
	}
	pasta, err := repo.FindByName(ctx, "Pasta")
	require.NoError(t, err)
	_, err = repo.DeleteByID(ctx, pasta.ID)
	require.NoError(t, err)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Pizza", all[0].Name)
	assert.Equal(t, "Drinks", all[1].Name)
}

func TestMemoryRepoFailure(t *testing.T) {
	repo := NewMemoryCategoryRepo()
	repo.Fail = errors.New("down")

	_, err := repo.FindAll(context.Background())
	assert.ErrorIs(t, err, repo.Fail)
	_, err = repo.Insert(context.Background(), &models.Category{Name: "Pizza"})
	assert.ErrorIs(t, err, repo.Fail)
	assert.Equal(t, 2, repo.Calls)
}
