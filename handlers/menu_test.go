package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	menuRepo "menucatalog/database/repository/menu"
	"menucatalog/models"
	"menucatalog/services/menu"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newMenuRouter(t *testing.T) (*gin.Engine, *menuRepo.MemoryCategoryRepo) {
	t.Helper()
	repo := menuRepo.NewMemoryCategoryRepo()
	h := NewMenuHandler(menu.NewMenuService(repo, zap.NewNop()))

	r := gin.New()
	api := r.Group("/api/menu")
	api.POST("/create", h.CreateCategory)
	api.PUT("/updatecategory/:categoryId", h.UpdateCategory)
	api.DELETE("/category/:categoryId", h.DeleteCategory)
	api.GET("/categories", h.ListCategories)
	api.GET("/category/:categoryId", h.GetCategory)
	api.POST("/subcategory/create/:categoryId", h.CreateSubcategory)
	api.PUT("/updatesubcategory/:categoryId/:subcategoryId", h.UpdateSubcategory)
	api.GET("/category/:categoryId/subcategories", h.GetSubcategories)
	api.POST("/item/create/:categoryId/:subcategoryId", h.CreateItem)
	api.PUT("/updateitem/:categoryId/:subcategoryId/:itemId", h.UpdateItem)
	api.GET("/category/:categoryId/subcategory/:subcategoryId/item/:itemId", h.GetItem)
	api.DELETE("/item/:categoryId/:subcategoryId/:itemId/optiongroup/:optionGroupId", h.DeleteOptionGroup)
	return r, repo
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the "data" member of a response into dst.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, dst))
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	msg, _ := body["error"].(string)
	return msg
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(menu.KindInvalidInput))
	assert.Equal(t, http.StatusConflict, statusFor(menu.KindConflict))
	assert.Equal(t, http.StatusNotFound, statusFor(menu.KindNotFound))
	assert.Equal(t, http.StatusInternalServerError, statusFor(menu.KindInternal))
}

func TestCategoryEndpoints(t *testing.T) {
	r, _ := newMenuRouter(t)

	w := doJSON(r, http.MethodPost, "/api/menu/create", models.CategoryInput{Name: "Pizza", Image: "img1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var cat models.Category
	decodeData(t, w, &cat)
	assert.Equal(t, "Pizza", cat.Name)
	assert.False(t, cat.ID.IsZero())

	w = doJSON(r, http.MethodPost, "/api/menu/create", models.CategoryInput{Name: "Pizza", Image: "img2"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Category already exists.", errorMessage(t, w))

	w = doJSON(r, http.MethodGet, "/api/menu/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []models.Category
	decodeData(t, w, &all)
	assert.Len(t, all, 1)

	w = doJSON(r, http.MethodPut, "/api/menu/updatecategory/"+cat.ID.Hex(), models.CategoryInput{Name: "Pizzas", Image: "img3"})
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &cat)
	assert.Equal(t, "Pizzas", cat.Name)

	w = doJSON(r, http.MethodDelete, "/api/menu/category/"+cat.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/menu/category/"+cat.ID.Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Category not found.", errorMessage(t, w))
}

func TestMalformedIDIsBadRequest(t *testing.T) {
	r, repo := newMenuRouter(t)

	w := doJSON(r, http.MethodGet, "/api/menu/category/123", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid category ID.", errorMessage(t, w))
	assert.Zero(t, repo.Calls)
}

func TestInvalidBodyIsBadRequest(t *testing.T) {
	r, _ := newMenuRouter(t)

	w := doJSON(r, http.MethodPost, "/api/menu/create", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body.", errorMessage(t, w))
}

func TestStorageErrorHidesDetails(t *testing.T) {
	r, repo := newMenuRouter(t)
	repo.Fail = errors.New("socket closed by peer")

	w := doJSON(r, http.MethodGet, "/api/menu/categories", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error.", errorMessage(t, w))
	assert.NotContains(t, w.Body.String(), "socket closed")
}

func TestItemEndpoints(t *testing.T) {
	r, _ := newMenuRouter(t)

	w := doJSON(r, http.MethodPost, "/api/menu/create", models.CategoryInput{Name: "Pasta", Image: "img"})
	require.Equal(t, http.StatusCreated, w.Code)
	var cat models.Category
	decodeData(t, w, &cat)

	w = doJSON(r, http.MethodPost, "/api/menu/subcategory/create/"+cat.ID.Hex(), map[string]any{"name": "Classics"})
	require.Equal(t, http.StatusCreated, w.Code)
	decodeData(t, w, &cat)
	require.Len(t, cat.Subcategories, 1)
	base := cat.ID.Hex() + "/" + cat.Subcategories[0].ID.Hex()

	body := `{"name":"Penne","hasOptions":true,"optionGroups":[{"title":"Size","variants":[{"name":"Regular","price":{"standard":8}}]}]}`
	w = doJSON(r, http.MethodPost, "/api/menu/item/create/"+base, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var items []models.Item
	decodeData(t, w, &items)
	require.Len(t, items, 1)
	item := items[0]
	assert.True(t, item.HasOptions)
	assert.Nil(t, item.Price)

	w = doJSON(r, http.MethodPut, "/api/menu/updateitem/"+base+"/"+item.ID.Hex(), `{"hasOptions":true,"optionGroups":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPut, "/api/menu/updateitem/"+base+"/"+item.ID.Hex(), `{"description":"Baked","price":null,"hasOptions":false}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "switching to flat needs a price")

	w = doJSON(r, http.MethodPut, "/api/menu/updateitem/"+base+"/"+item.ID.Hex(), `{"description":"Baked"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Item
	decodeData(t, w, &updated)
	assert.Equal(t, "Baked", updated.Description)
	assert.True(t, updated.HasOptions)

	group := item.OptionGroups[0].ID.Hex()
	w = doJSON(r, http.MethodDelete, "/api/menu/item/"+base+"/"+item.ID.Hex()+"/optiongroup/"+group, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &updated)
	assert.False(t, updated.HasOptions)
	require.NotNil(t, updated.Price)
	assert.Equal(t, models.Price{}, *updated.Price)

	w = doJSON(r, http.MethodGet, "/api/menu/category/"+cat.ID.Hex()+"/subcategory/"+cat.Subcategories[0].ID.Hex()+"/item/"+item.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched models.Item
	decodeData(t, w, &fetched)
	assert.Equal(t, updated.ID, fetched.ID)
	assert.False(t, fetched.HasOptions)
}

func TestSubcategoryConflictStatus(t *testing.T) {
	r, _ := newMenuRouter(t)

	w := doJSON(r, http.MethodPost, "/api/menu/create", models.CategoryInput{Name: "Pizza", Image: "img"})
	require.Equal(t, http.StatusCreated, w.Code)
	var cat models.Category
	decodeData(t, w, &cat)

	path := "/api/menu/subcategory/create/" + cat.ID.Hex()
	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, path, map[string]any{"name": "Starters"}).Code)
	w = doJSON(r, http.MethodPost, path, map[string]any{"name": "Starters"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(r, http.MethodGet, "/api/menu/category/"+cat.ID.Hex()+"/subcategories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var subs []models.Subcategory
	decodeData(t, w, &subs)
	assert.Len(t, subs, 1)
}
