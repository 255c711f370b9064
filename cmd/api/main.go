package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/portfolio-api/internal/config"
	"github.com/portfolio-api/internal/infrastructure/dynamo"
	"github.com/portfolio-api/internal/infrastructure/fetch"
	jwtinfra "github.com/portfolio-api/internal/infrastructure/jwt"
	s3infra "github.com/portfolio-api/internal/infrastructure/s3"
	"github.com/portfolio-api/internal/infrastructure/smtp"
	transporthttp "github.com/portfolio-api/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// JWT provider (optional — admin routes reject everything if missing).
	var jwtProvider *jwtinfra.Provider
	if p, err := jwtinfra.NewProvider(cfg); err == nil {
		jwtProvider = p
	} else {
		log.Printf("WARN: JWT provider not available: %v", err)
	}

	// S3 store for resume and image uploads.
	s3Client := s3infra.NewClient(cfg)
	s3Store := s3infra.NewStore(s3Client, cfg.S3BucketName, cfg.S3PublicBaseURL)

	// SMTP mailer for OTP and contact notifications.
	mailer := smtp.NewMailer(cfg)

	// HTTP fetcher that pulls the resume PDF from its public URL.
	fetcher := fetch.NewFetcher(cfg.FetchTimeout)

	deps := &transporthttp.Deps{
		SubjectRepo:   dynamo.NewSubjectRepo(dynamoClient, cfg.DynamoTables.Subjects),
		ProfileRepo:   dynamo.NewProfileRepo(dynamoClient, cfg.DynamoTables.Profile),
		ContactRepo:   dynamo.NewContactRepo(dynamoClient, cfg.DynamoTables.Contacts),
		ProjectRepo:   dynamo.NewProjectRepo(dynamoClient, cfg.DynamoTables.Projects),
		EducationRepo: dynamo.NewEducationRepo(dynamoClient, cfg.DynamoTables.Education),
		S3Store:       s3Store,
		Mailer:        mailer,
		Fetcher:       fetcher,
		JWTProvider:   jwtProvider,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
