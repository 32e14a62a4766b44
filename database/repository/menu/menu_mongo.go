package menuRepo

import (
	"context"
	"errors"
	"fmt"

	"menucatalog/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const collectionName = "menus"

// ErrDuplicateName is returned by Insert and Replace when the unique name index rejects a write.
var ErrDuplicateName = errors.New("category name already exists")

// MongoCategoryRepo implements CategoryRepository using MongoDB.
type MongoCategoryRepo struct {
	coll *mongo.Collection
}

// NewMongoCategoryRepo creates a CategoryRepository backed by the menus collection of db.
func NewMongoCategoryRepo(db *mongo.Database, logger *zap.Logger) CategoryRepository {
	repo := &MongoCategoryRepo{coll: db.Collection(collectionName)}

	if err := repo.ensureIndexes(); err != nil {
		logger.Warn("failed to create menu indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoCategoryRepo) findOne(ctx context.Context, filter bson.M) (*models.Category, error) {
	var category models.Category
	if err := r.coll.FindOne(ctx, filter).Decode(&category); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// FindByName retrieves a category by its unique name.
func (r *MongoCategoryRepo) FindByName(ctx context.Context, name string) (*models.Category, error) {
	category, err := r.findOne(ctx, bson.M{"name": name})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category with name %s: %w", name, err)
	}
	return category, nil
}

// FindByID retrieves a category by its ObjectID.
func (r *MongoCategoryRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	category, err := r.findOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category with id %s: %w", id.Hex(), err)
	}
	return category, nil
}

// FindAll retrieves all categories.
func (r *MongoCategoryRepo) FindAll(ctx context.Context) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

// Insert stores a new category document.
func (r *MongoCategoryRepo) Insert(ctx context.Context, category *models.Category) (*models.Category, error) {
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	if category.Subcategories == nil {
		category.Subcategories = []models.Subcategory{}
	}

	if _, err := r.coll.InsertOne(ctx, category); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// Replace swaps the whole stored document; there is no partial update path.
func (r *MongoCategoryRepo) Replace(ctx context.Context, category *models.Category) (*models.Category, error) {
	opts := options.FindOneAndReplace().SetReturnDocument(options.After)

	var stored models.Category
	err := r.coll.FindOneAndReplace(ctx, bson.M{"_id": category.ID}, category, opts).Decode(&stored)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to replace category with id %s: %w", category.ID.Hex(), err)
	}
	return &stored, nil
}

// DeleteByID removes a category document and returns it.
func (r *MongoCategoryRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var removed models.Category
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&removed)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to delete category with id %s: %w", id.Hex(), err)
	}
	return &removed, nil
}
