package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"filedepot/config"
	"filedepot/middleware"
	"filedepot/schemas"
	"filedepot/services"
)

// NewRouter wires the middleware chains and route groups. The store
// handle and the optional archive sink are injected, never ambient.
func NewRouter(cfg *config.Config, db *gorm.DB, archive *services.ArchiveService) *gin.Engine {
	authService := services.NewAuthService(db, []byte(cfg.JWTSecret), cfg.TokenTTL, cfg.BcryptCost)
	fileService := services.NewFileService(db, archive)

	authHandler := NewAuthHandler(authService)
	fileHandler := NewFileHandler(fileService)

	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	api := r.Group("/api/v1")

	api.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := api.Group("/auth")
	if cfg.AuthRatePerMinute > 0 {
		authGroup.Use(middleware.RateLimit(cfg.AuthRatePerMinute))
	}
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	fileGroup := api.Group("/file/manager")
	fileGroup.Use(middleware.Auth([]byte(cfg.JWTSecret)))
	{
		fileGroup.POST("/", fileHandler.Upload)
		fileGroup.GET("/", fileHandler.List)
		fileGroup.GET("/download/:id", fileHandler.Download)
		fileGroup.GET("/preview/:id", fileHandler.Preview)
		fileGroup.DELETE("/:id", fileHandler.Delete)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"path": "Path url not found " + c.Request.URL.Path,
		})
	})

	return r
}

// respondValidation funnels a failed rule into the uniform error body.
// Anything other than a rule violation is an internal fault.
func respondValidation(c *gin.Context, err error) {
	var verr *schemas.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
		return
	}
	respondInternal(c, err)
}

func respondInternal(c *gin.Context, err error) {
	log.Printf("internal error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "an unexpected error occurred"})
}
