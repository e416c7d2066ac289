package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elis333333/Agrokit-Inteligente/config"
	"github.com/elis333333/Agrokit-Inteligente/controllers"
	"github.com/elis333333/Agrokit-Inteligente/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	db, err := config.OpenStore(cfg)
	if err != nil {
		log.Fatal("Failed to open store: ", err)
	}

	hub := controllers.NewHub()
	auth := controllers.NewAuthController(db, cfg.JWTSecret)
	sensors := controllers.NewSensorController(db, hub)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Authorization", "Content-Type"},
	}))
	r.Static("/public", "./public")

	// Public routes
	r.GET("/api/health", sensors.Health)
	r.POST("/api/auth/register", auth.Register)
	r.POST("/api/auth/login", auth.Login)
	r.POST("/api/sensores", sensors.ReceiveData)
	r.GET("/api/sensores/:id_agrokit", sensors.GetHistory)
	r.GET("/ws", hub.HandleWebSocket)

	// Protected routes using auth middleware
	protected := r.Group("/api")
	protected.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	protected.GET("/download/:id_agrokit", sensors.DownloadXLSX)
	protected.GET("/agrokits", sensors.GetAgrokits)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()
	log.Printf("Server running on http://localhost:%s", cfg.Port)

	// One final flush on shutdown is the only explicit resource-release
	// step the system has.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down, flushing store")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Println("Server shutdown:", err)
	}
	if err := config.FlushStore(db); err != nil {
		log.Println("Store flush:", err)
	}
	if err := config.CloseStore(db); err != nil {
		log.Println("Store close:", err)
	}
}
