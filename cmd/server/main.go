package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"luxeroyale/internal/api"
	"luxeroyale/internal/config"
	"luxeroyale/internal/db"
	"luxeroyale/internal/repository"
	"luxeroyale/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	client, err := db.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("MongoDB connected")

	repo := repository.NewBookingRepository(client.Database(cfg.MongoDB))

	var sender service.Sender
	fromAddr := cfg.SMTPUser
	switch cfg.EmailProvider {
	case "sendgrid":
		sender = service.NewSendGridSender(cfg.SendGridAPIKey)
		if cfg.SendGridFromEmail != "" {
			fromAddr = cfg.SendGridFromEmail
		}
	default:
		sender = service.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	}

	notifier := service.NewNotifyService(sender, fromAddr, cfg.SenderName, cfg.OwnerEmail)
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" && cfg.TwilioFromNumber != "" {
		notifier.SMS = service.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
	}

	svc := service.NewBookingService(repo, notifier)
	digest := service.NewDigestService(repo, sender, fromAddr, cfg.SenderName, cfg.OwnerEmail)

	bookingHandler := api.NewBookingHandler(svc)

	r := mux.NewRouter()
	r.HandleFunc("/health", api.Health).Methods("GET")
	r.HandleFunc("/api/bookings", bookingHandler.CreateBooking).Methods("POST")
	// catch-all registered last: static assets, then the SPA entry point
	r.PathPrefix("/").Handler(api.SPAHandler{StaticDir: cfg.StaticDir, IndexFile: "index.html"}).Methods("GET")

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(r)

	scheduler := cron.New()
	scheduler.AddFunc("@daily", func() {
		if err := digest.SendDailySummary(context.Background()); err != nil {
			log.Printf("Daily summary failed: %v", err)
		}
	})
	scheduler.Start()

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      corsHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
	<-scheduler.Stop().Done()
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("Error disconnecting MongoDB: %v", err)
	}
	log.Println("Server stopped cleanly")
}
