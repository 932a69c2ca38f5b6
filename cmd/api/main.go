package main

import (
	"log"

	"blogapi/internal/config"
	"blogapi/internal/database"
	"blogapi/internal/handlers"
	"blogapi/internal/middleware"
	"blogapi/internal/repository"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	database.InitDB(cfg.Database)
	defer database.CloseDB()

	// Apply the schema before serving any traffic.
	database.CreateTables()

	userRepo := repository.NewUserRepository(database.DB)
	postRepo := repository.NewPostRepository(database.DB)

	userHandlers := handlers.NewUserHandlers(userRepo)
	postHandlers := handlers.NewPostHandlers(postRepo, userRepo)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")
	userHandlers.Register(api.Group("/users"))
	postHandlers.Register(api.Group("/posts"))

	router.Static("/ui", cfg.Server.StaticDir)

	addr := cfg.Server.Addr()
	log.Printf("Blog API listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
