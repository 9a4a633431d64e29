package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/molokoedovmp/Online-shop/cart"
	orderControllers "github.com/molokoedovmp/Online-shop/controllers/order"
	"github.com/molokoedovmp/Online-shop/email"
	"github.com/molokoedovmp/Online-shop/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, store cart.Store, sender email.Sender) {
	orders := r.Group("/orders")
	{
		// Checkout needs the session cart, so it carries the session middleware.
		orders.POST("/checkout", middleware.CartSession(), orderControllers.Checkout(db, store))

		orders.POST("/:orderID/confirm-payment", orderControllers.ConfirmPaymentHandler(db, sender))

		orders.GET("/user/:userID", orderControllers.GetUserOrdersHandler(db))
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
	}
}
