package menuRepo

import (
	"context"
	"fmt"
	"sync"

	"menucatalog/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryCategoryRepo is an in-process CategoryRepository with the same
// document semantics as the Mongo one: callers always get copies, and writes
// replace whole documents.
type MemoryCategoryRepo struct {
	mu    sync.Mutex
	docs  map[primitive.ObjectID][]byte
	order []primitive.ObjectID

	// Fail, when set, is returned by every call. Tests use it to simulate outages.
	Fail error
	// Calls counts repository calls so tests can assert no lookup happened.
	Calls int
}

func NewMemoryCategoryRepo() *MemoryCategoryRepo {
	return &MemoryCategoryRepo{docs: make(map[primitive.ObjectID][]byte)}
}

func (r *MemoryCategoryRepo) enter() error {
	r.Calls++
	return r.Fail
}

func decodeCategory(raw []byte) (*models.Category, error) {
	var c models.Category
	if err := bson.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("failed to decode category: %w", err)
	}
	return &c, nil
}

func (r *MemoryCategoryRepo) nameTaken(name string, except primitive.ObjectID) (bool, error) {
	for _, id := range r.order {
		if id == except {
			continue
		}
		c, err := decodeCategory(r.docs[id])
		if err != nil {
			return false, err
		}
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryCategoryRepo) FindByName(ctx context.Context, name string) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return nil, err
	}
	for _, id := range r.order {
		c, err := decodeCategory(r.docs[id])
		if err != nil {
			return nil, err
		}
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r *MemoryCategoryRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return nil, err
	}
	raw, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	return decodeCategory(raw)
}

func (r *MemoryCategoryRepo) FindAll(ctx context.Context) ([]models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return nil, err
	}
	categories := make([]models.Category, 0, len(r.order))
	for _, id := range r.order {
		c, err := decodeCategory(r.docs[id])
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}
	return categories, nil
}

func (r *MemoryCategoryRepo) Insert(ctx context.Context, category *models.Category) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return nil, err
	}
	if taken, err := r.nameTaken(category.Name, primitive.NilObjectID); err != nil || taken {
		if err != nil {
			return nil, err
		}
		return nil, ErrDuplicateName
	}
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	if category.Subcategories == nil {
		category.Subcategories = []models.Subcategory{}
	}
	raw, err := bson.Marshal(category)
	if err != nil {
		return nil, fmt.Errorf("failed to encode category: %w", err)
	}
	r.docs[category.ID] = raw
	r.order = append(r.order, category.ID)
	return decodeCategory(raw)
}

func (r *MemoryCategoryRepo) Replace(ctx context.Context, category *models.Category) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return nil, err
	}
	if _, ok := r.docs[category.ID]; !ok {
		return nil, nil
	}
	if taken, err := r.nameTaken(category.Name, category.ID); err != nil || taken {
		if err != nil {
			return nil, err
		}
		return nil, ErrDuplicateName
	}
	raw, err := bson.Marshal(category)
	if err != nil {
		return nil, fmt.Errorf("failed to encode category: %w", err)
	}
	r.docs[category.ID] = raw
	return decodeCategory(raw)
}

func (r *MemoryCategoryRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return nil, err
	}
	raw, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	delete(r.docs, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return decodeCategory(raw)
}
