package bootstrap

import "github.com/gin-gonic/gin"

// SetGinMode switches gin to release mode in production and keeps debug
// route logging elsewhere.
func SetGinMode(env string) {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
		return
	}
	gin.SetMode(gin.DebugMode)
}
