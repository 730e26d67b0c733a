package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"campusdesk/backend/internal/api/handler"
	"campusdesk/backend/internal/complaint"
	"campusdesk/backend/internal/config"
	"campusdesk/backend/internal/dialog"
	"campusdesk/backend/internal/llm"
	"campusdesk/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log.Println("Starting CampusDesk Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store, err := storage.NewFileStore(cfg.StoragePath)
	if err != nil {
		log.Fatalf("Failed to open complaint store: %v", err)
	}

	ctx := context.Background()
	model, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}

	// The chat endpoint is optional. Without a service account key the rest
	// of the API still runs.
	var dialogClient *dialog.Client
	if path := dialog.FindServiceAccount(); path == "" {
		log.Println("WARN: no service account key found, Dialogflow endpoint disabled")
	} else if dialogClient, err = dialog.NewClient(ctx, path); err != nil {
		log.Printf("ERROR: Dialogflow init failed, endpoint disabled: %v", err)
		dialogClient = nil
	} else {
		log.Printf("INFO: Dialogflow initialized from %s", path)
	}

	svc := complaint.NewService(store, model)
	h := handler.NewHandler(svc, store, dialogClient)

	r := gin.Default()

	r.GET("/", h.Home)
	r.GET("/health", h.Health)
	r.POST("/process", h.ProcessComplaint)
	r.GET("/complaints", h.ListComplaints)
	r.GET("/complaints/:id", h.GetComplaint)
	r.POST("/complaints/update", h.UpdateComplaintStatus)
	r.POST("/dialogflow/message", h.DialogflowMessage)

	server := &http.Server{
		Addr:        cfg.Host + ":" + cfg.Port,
		Handler:     r,
		ReadTimeout: 10 * time.Second,
		// Processing a complaint makes several model calls in sequence.
		WriteTimeout:   120 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
