package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"venue-backend/config"
	"venue-backend/controllers"
	"venue-backend/routes"
	"venue-backend/services"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.Load()
	if cfg.SMTP.Host == "" || cfg.SMTP.ToEmail == "" {
		// Not fatal: the relay attempts every dispatch and the failure
		// surfaces per request.
		log.Warn().Msg("SMTP_HOST or SMTP_TO_EMAIL not set; inquiry dispatches will fail")
	}

	// Initialize services
	mailer := services.NewSMTPMailer(cfg.SMTP, log)
	inquiryService := services.NewInquiryService(mailer, cfg, log)
	galleryService := services.NewGalleryService(cfg.Site.ImagesDir, cfg.Site.Name, log)
	seoService := services.NewSEOService(cfg.Site)

	// Initialize controllers
	inquiryController := controllers.NewInquiryController(inquiryService, log)
	galleryController := controllers.NewGalleryController(galleryService)
	seoController := controllers.NewSEOController(seoService)

	// Build router
	router := routes.SetupRouter(inquiryController, galleryController, seoController, cfg.Site.ImagesDir, log)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped gracefully")
}
