package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/molokoedovmp/Online-shop/auth"
)

func SetupAuthRoutes(r *gin.Engine) {
	r.POST("/auth/guest", auth.CreateGuestSession())
}
