package routes

import (
	"menucatalog/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterMenuRoutes registers the menu catalog endpoints.
func RegisterMenuRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	h := hb.Menu
	api := r.Group("/api/menu")
	{
		// Categories
		api.POST("/create", h.CreateCategory)
		api.PUT("/updatecategory/:categoryId", h.UpdateCategory)
		api.DELETE("/category/:categoryId", h.DeleteCategory)
		api.GET("/categories", h.ListCategories)
		api.GET("/category/:categoryId", h.GetCategory)

		// Subcategories
		api.POST("/subcategory/create/:categoryId", h.CreateSubcategory)
		api.PUT("/updatesubcategory/:categoryId/:subcategoryId", h.UpdateSubcategory)
		api.DELETE("/subcategory/:categoryId/:subcategoryId", h.DeleteSubcategory)
		api.GET("/category/:categoryId/subcategories", h.GetSubcategories)

		// Items
		api.POST("/item/create/:categoryId/:subcategoryId", h.CreateItem)
		api.PUT("/updateitem/:categoryId/:subcategoryId/:itemId", h.UpdateItem)
		api.DELETE("/item/:categoryId/:subcategoryId/:itemId", h.DeleteItem)
		api.GET("/category/:categoryId/subcategory/:subcategoryId/items", h.GetItems)
		api.GET("/category/:categoryId/subcategory/:subcategoryId/item/:itemId", h.GetItem)

		// Option groups and variants
		api.DELETE("/item/:categoryId/:subcategoryId/:itemId/optiongroup/:optionGroupId", h.DeleteOptionGroup)
		api.DELETE("/item/:categoryId/:subcategoryId/:itemId/optiongroup/:optionGroupId/variant/:variantId", h.DeleteVariant)
	}

	if hb.Storage != nil {
		images := api.Group("/images")
		images.POST("", hb.Storage.UploadImageHandler)
		images.DELETE("/*publicId", hb.Storage.DeleteImageHandler)
	}
}
