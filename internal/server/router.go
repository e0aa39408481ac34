package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/thereayou/forum-lite/internal/handlers"
	"github.com/thereayou/forum-lite/internal/middleware"
	"github.com/thereayou/forum-lite/internal/services"
)

func APIEndpoints(r *gin.Engine, store services.Store, rdb *redis.Client, authH *handlers.AuthHandler, postH *handlers.PostHandler) {
	corsConfig := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	}
	if uri := os.Getenv("FRONTEND_URI"); uri != "" {
		corsConfig.AllowOrigins = append(corsConfig.AllowOrigins, uri)
	}
	r.Use(cors.New(corsConfig))

	r.StaticFile("/", "./web/index.html")

	// Auth endpoints
	auth := r.Group("/auth", middleware.RateLimit(rdb, 10, time.Minute))
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", middleware.Optional(store), authH.Login)
	}

	// Posts endpoints
	posts := r.Group("/posts")
	{
		posts.GET("", postH.ListPosts)
		posts.POST("", middleware.StringsOnly(), middleware.User(store), postH.CreatePost)
		posts.GET("/:id", postH.GetPost)
		posts.POST("/:id", middleware.User(store), postH.CreateReply)
		posts.PATCH("/:id", middleware.User(store), postH.UpdatePost)
		posts.DELETE("/:id", middleware.User(store), postH.DeletePost)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Endpoint not found.",
		})
	})
}
