package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "duration", time.Since(start))
	})

	// CORS Middleware
	origins := map[string]bool{}
	for _, o := range app.Config.GetCORSOrigins() {
		origins[o] = true
	}
	r.Use(func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origins[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	api := r.Group("/api")
	{
		api.POST("/auth/register", app.Handler.Register)
		api.POST("/auth/login", app.Handler.Login)
	}

	protected := api.Group("/")
	protected.Use(app.AuthMiddleware())
	{
		// content routes
		protected.GET("/content", app.Handler.ListContent)
		protected.POST("/content", app.Handler.CreateContent)
		protected.PUT("/content/:id", app.Handler.UpdateContent)
		protected.DELETE("/content/:id", app.Handler.DeleteContent)

		// ai routes
		protected.POST("/ai/suggestions", app.Handler.GenerateSuggestions)
	}

	return r
}
