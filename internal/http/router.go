package httpx

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/AbidMulla/off-compus-backend/internal/http/handlers"
	"github.com/AbidMulla/off-compus-backend/internal/http/middleware"
	"github.com/AbidMulla/off-compus-backend/internal/http/response"
)

// BuildRouter wires every route. Auth endpoints are public; admin
// endpoints sit behind JWT verification and casbin role enforcement.
func BuildRouter(ah *handlers.AuthHandlers, jh *handlers.JobHandlers, jwtmw *middleware.AuthMW, cb *middleware.CasbinMW, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID())

	corsCfg := cors.DefaultConfig()
	if len(corsOrigins) > 0 {
		corsCfg.AllowOrigins = corsOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the FresherJobCampus Backend API"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	auth := r.Group("/api/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/register-otp", ah.RegisterOTP)
	auth.POST("/register-resend-otp", ah.RegisterResendOTP)

	auth.POST("/activate-account", ah.ActivateAccount)
	auth.POST("/activate-account-otp", ah.ActivateAccountOTP)
	auth.POST("/activate-account-resend-otp", ah.ActivateAccountResendOTP)

	auth.POST("/login", ah.Login)
	auth.POST("/logout", ah.Logout)

	auth.POST("/forgot-password", ah.ForgotPassword)
	auth.POST("/forgot-password-otp", ah.ForgotPasswordOTP)
	auth.POST("/forgot-password-resend-otp", ah.ForgotPasswordResendOTP)
	auth.POST("/reset-password", ah.ResetPassword)

	adm := r.Group("/api/admin")
	adm.Use(jwtmw.WithJWT(), cb.Enforce())
	adm.POST("/add-job", jh.AddJob)
	adm.GET("/jobs", jh.GetJobs)
	adm.GET("/jobs/:id", jh.GetJob)
	adm.GET("/jobs/:id/view", jh.ViewJob)
	adm.PUT("/jobs/:id", jh.UpdateJob)
	adm.DELETE("/jobs/:id", jh.DeleteJob)

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found")
	})

	return r
}
