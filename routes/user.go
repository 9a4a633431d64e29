package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/molokoedovmp/Online-shop/controllers/user"
)

func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	users := r.Group("/users")
	{
		users.POST("/register", userControllers.RegisterUser(db))
		users.GET("/:userID/shipping-address", userControllers.GetShippingAddress(db))
		users.PUT("/:userID/shipping-address", userControllers.UpdateShippingAddress(db))
	}
}
