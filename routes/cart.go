package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/molokoedovmp/Online-shop/cart"
	cartControllers "github.com/molokoedovmp/Online-shop/controllers/cart"
	"github.com/molokoedovmp/Online-shop/middleware"
)

func SetupCartRoutes(r *gin.Engine, db *gorm.DB, store cart.Store) {
	carts := r.Group("/cart", middleware.CartSession())
	{
		carts.GET("/", cartControllers.GetCart(store))
		carts.POST("/add", cartControllers.AddToCart(db, store))
		carts.POST("/delete", cartControllers.DeleteFromCart(store))
		carts.POST("/update", cartControllers.UpdateCart(store))
	}
}
