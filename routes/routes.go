package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/molokoedovmp/Online-shop/cart"
	"github.com/molokoedovmp/Online-shop/email"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store cart.Store, sender email.Sender) {
	// Public auth (guest session bootstrap)
	SetupAuthRoutes(r)

	// Catalog (public)
	SetupProductRoutes(r, db)

	// Session cart
	SetupCartRoutes(r, db, store)

	// Checkout and orders
	SetupOrderRoutes(r, db, store, sender)

	// Registration and shipping addresses
	SetupUserRoutes(r, db)

	// Admin surface (API-key protected)
	SetupAdminRoutes(r, db)
}
