package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/learnhub/learnhub/internal/server/http/handlers"
	"github.com/learnhub/learnhub/internal/server/http/middleware"
)

// Facade joins the handler and middleware views of the application facade.
type Facade interface {
	handlers.PlatformFacade
	middleware.SessionGuard
}

// Setup configures the gin router with handlers and middleware.
func Setup(facade Facade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)
	prefsHandler := handlers.NewPrefsHandler(facade)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)

	authSession := auth.Group("")
	authSession.Use(middleware.SessionRequired(facade))
	authSession.POST("/logout", authHandler.Logout)
	authSession.GET("/me", authHandler.Me)

	api.GET("/programs", catalogHandler.List)
	api.GET("/programs/:slug", catalogHandler.Detail)

	api.GET("/prefs/theme", prefsHandler.Theme)
	api.PUT("/prefs/theme", prefsHandler.SetTheme)

	admin := api.Group("/admin")
	admin.Use(middleware.SessionRequired(facade), middleware.AdminRequired(facade))
	admin.GET("/users", adminHandler.ListUsers)
	admin.PATCH("/users/:id", adminHandler.UpdateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)

	return engine
}
