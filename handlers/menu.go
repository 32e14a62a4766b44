package handlers

import (
	"net/http"

	"menucatalog/models"
	"menucatalog/services/menu"
	"menucatalog/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MenuHandler exposes MenuService over HTTP.
type MenuHandler struct {
	MenuService menu.MenuService
}

func NewMenuHandler(svc menu.MenuService) *MenuHandler {
	return &MenuHandler{MenuService: svc}
}

// statusFor maps a menu error kind to an HTTP status.
func statusFor(kind menu.ErrorKind) int {
	switch kind {
	case menu.KindInvalidInput:
		return http.StatusBadRequest
	case menu.KindConflict:
		return http.StatusConflict
	case menu.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	kind := menu.KindOf(err)
	status := statusFor(kind)
	message := menu.MessageOf(err)
	if status == http.StatusInternalServerError {
		getLogger(c).Error("menu operation failed", zap.Error(err))
		message = "Internal server error."
	} else {
		getLogger(c).Debug("menu request rejected", zap.String("kind", string(kind)), zap.String("reason", message))
	}
	c.JSON(status, gin.H{"error": message})
}

// bindBody decodes the JSON body into dst or answers 400.
func bindBody(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body.", err.Error())
		return false
	}
	return true
}

// CreateCategory handles POST /api/menu/create.
func (h *MenuHandler) CreateCategory(c *gin.Context) {
	var input models.CategoryInput
	if !bindBody(c, &input) {
		return
	}
	category, err := h.MenuService.CreateCategory(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created successfully.", "data": category})
}

// CreateSubcategory handles POST /api/menu/subcategory/create/:categoryId.
func (h *MenuHandler) CreateSubcategory(c *gin.Context) {
	var input models.SubcategoryInput
	if !bindBody(c, &input) {
		return
	}
	category, err := h.MenuService.CreateSubcategory(c.Request.Context(), c.Param("categoryId"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Subcategory added successfully.", "data": category})
}

// CreateItem handles POST /api/menu/item/create/:categoryId/:subcategoryId.
func (h *MenuHandler) CreateItem(c *gin.Context) {
	var input models.ItemInput
	if !bindBody(c, &input) {
		return
	}
	items, err := h.MenuService.CreateItem(c.Request.Context(), c.Param("categoryId"), c.Param("subcategoryId"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Item added successfully.", "data": items})
}

// UpdateCategory handles PUT /api/menu/updatecategory/:categoryId.
func (h *MenuHandler) UpdateCategory(c *gin.Context) {
	var input models.CategoryInput
	if !bindBody(c, &input) {
		return
	}
	category, err := h.MenuService.UpdateCategory(c.Request.Context(), c.Param("categoryId"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully.", "data": category})
}

// UpdateSubcategory handles PUT /api/menu/updatesubcategory/:categoryId/:subcategoryId.
func (h *MenuHandler) UpdateSubcategory(c *gin.Context) {
	var input struct {
		Name string `json:"name"`
	}
	if !bindBody(c, &input) {
		return
	}
	sub, err := h.MenuService.UpdateSubcategory(c.Request.Context(), c.Param("categoryId"), c.Param("subcategoryId"), input.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subcategory updated successfully.", "data": sub})
}

// UpdateItem handles PUT /api/menu/updateitem/:categoryId/:subcategoryId/:itemId.
func (h *MenuHandler) UpdateItem(c *gin.Context) {
	var update models.ItemUpdate
	if !bindBody(c, &update) {
		return
	}
	item, err := h.MenuService.UpdateItem(c.Request.Context(), c.Param("categoryId"), c.Param("subcategoryId"), c.Param("itemId"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food item updated successfully.", "data": item})
}

// DeleteCategory handles DELETE /api/menu/category/:categoryId.
func (h *MenuHandler) DeleteCategory(c *gin.Context) {
	removed, err := h.MenuService.DeleteCategory(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully.", "data": removed})
}

// DeleteSubcategory handles DELETE /api/menu/subcategory/:categoryId/:subcategoryId.
func (h *MenuHandler) DeleteSubcategory(c *gin.Context) {
	category, err := h.MenuService.DeleteSubcategory(c.Request.Context(), c.Param("categoryId"), c.Param("subcategoryId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subcategory deleted successfully.", "data": category})
}

// DeleteItem handles DELETE /api/menu/item/:categoryId/:subcategoryId/:itemId.
func (h *MenuHandler) DeleteItem(c *gin.Context) {
	items, err := h.MenuService.DeleteItem(c.Request.Context(), c.Param("categoryId"), c.Param("subcategoryId"), c.Param("itemId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully.", "data": items})
}

// DeleteOptionGroup handles DELETE /api/menu/item/:categoryId/:subcategoryId/:itemId/optiongroup/:optionGroupId.
func (h *MenuHandler) DeleteOptionGroup(c *gin.Context) {
	item, err := h.MenuService.DeleteOptionGroup(c.Request.Context(),
		c.Param("categoryId"), c.Param("subcategoryId"), c.Param("itemId"), c.Param("optionGroupId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Option group deleted successfully.", "data": item})
}

// DeleteVariant handles DELETE .../optiongroup/:optionGroupId/variant/:variantId.
func (h *MenuHandler) DeleteVariant(c *gin.Context) {
	item, err := h.MenuService.DeleteVariant(c.Request.Context(),
		c.Param("categoryId"), c.Param("subcategoryId"), c.Param("itemId"), c.Param("optionGroupId"), c.Param("variantId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Variant deleted successfully.", "data": item})
}

// ListCategories handles GET /api/menu/categories.
func (h *MenuHandler) ListCategories(c *gin.Context) {
	categories, err := h.MenuService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": categories})
}

// GetCategory handles GET /api/menu/category/:categoryId.
func (h *MenuHandler) GetCategory(c *gin.Context) {
	category, err := h.MenuService.GetCategory(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": category})
}

// GetSubcategories handles GET /api/menu/category/:categoryId/subcategories.
func (h *MenuHandler) GetSubcategories(c *gin.Context) {
	subs, err := h.MenuService.GetSubcategories(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": subs})
}

// GetItems handles GET /api/menu/category/:categoryId/subcategory/:subcategoryId/items.
func (h *MenuHandler) GetItems(c *gin.Context) {
	items, err := h.MenuService.GetItems(c.Request.Context(), c.Param("categoryId"), c.Param("subcategoryId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// GetItem handles GET /api/menu/category/:categoryId/subcategory/:subcategoryId/item/:itemId.
func (h *MenuHandler) GetItem(c *gin.Context) {
	item, err := h.MenuService.GetItem(c.Request.Context(), c.Param("categoryId"), c.Param("subcategoryId"), c.Param("itemId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": item})
}
