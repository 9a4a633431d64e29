package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/molokoedovmp/Online-shop/controllers/order"
	productcontroller "github.com/molokoedovmp/Online-shop/controllers/product"
	"github.com/molokoedovmp/Online-shop/middleware"
)

func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/admin", middleware.ValidateAPIKey)
	{
		admin.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		admin.GET("/orders/export/paid", orderControllers.ExportPaidOrdersCSV(db))
		admin.GET("/orders/export/not-paid", orderControllers.ExportNotPaidOrdersCSV(db))

		admin.POST("/products", productcontroller.CreateProduct(db))
		admin.PUT("/products/:id", productcontroller.UpdateProduct(db))
		admin.DELETE("/products/:id", productcontroller.DeleteProduct(db))
		admin.GET("/products/export", productcontroller.ExportProductsToExcel(db))
		admin.POST("/products/import", productcontroller.ImportProductsFromExcel(db))

		admin.POST("/categories", productcontroller.CreateCategory(db))
		admin.DELETE("/categories/:id", productcontroller.DeleteCategory(db))
	}
}
