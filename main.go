package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mingo-hotel-api/config"
	"mingo-hotel-api/controllers"
	"mingo-hotel-api/routes"
	"mingo-hotel-api/services"
	"mingo-hotel-api/utils"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	mailer := &utils.Mailer{
		Host:      cfg.SMTPHost,
		Port:      cfg.SMTPPort,
		Username:  cfg.SMTPUsername,
		Password:  cfg.SMTPPassword,
		FromName:  cfg.SMTPFromName,
		HotelName: cfg.HotelName,
	}

	engine := services.NewAvailabilityEngine(
		config.DB,
		services.CapacityPolicyByName(cfg.CapacityPolicy),
		services.StatusModelByName(cfg.StatusModel),
	)
	log.Printf("booking engine: capacity policy %q, status model %q",
		engine.Capacity.Name(), engine.Statuses.Name())

	bookingService := services.NewBookingService(
		config.DB,
		engine,
		services.NewRoomLocks(),
		mailer,
		services.NewActivityLogger(config.DB),
	)

	bookingCtl := controllers.NewBookingController(bookingService)
	authCtl := controllers.NewAuthController(cfg)

	router := routes.SetupRouter(cfg, bookingCtl, authCtl)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("server stopped")
}
