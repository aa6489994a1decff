package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-core/internal/config"
	"github.com/BruksfildServices01/booking-core/internal/infra/repository"
	"github.com/BruksfildServices01/booking-core/internal/middleware"
	"github.com/BruksfildServices01/booking-core/internal/routes"
	"github.com/BruksfildServices01/booking-core/internal/seed"
)

func main() {

	cfg := config.Load()

	// Estado vive em memória de processo: reiniciar zera tudo.
	repo := repository.NewAppointmentMemoryRepository()
	seed.LoadFixtures(repo)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, repo, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
