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

	"mgnregaapi/config"
	"mgnregaapi/database"
	"mgnregaapi/handlers"
	"mgnregaapi/logger"
	"mgnregaapi/middlewares"
	repository "mgnregaapi/repositories"
	routes "mgnregaapi/routes"
	services "mgnregaapi/services"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/cors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer zlog.Sync()

	// Create a new client and connect to the server
	clientOptions := options.Client().ApplyURI(cfg.MongoURL)
	client, err := mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		zlog.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			zlog.Fatal("Failed to disconnect from MongoDB", zap.Error(err))
		}
	}()

	// Set a timeout for the ping operation
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Ping the primary to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		zlog.Fatal("Failed to ping MongoDB", zap.Error(err))
	}
	zlog.Info("Connected to MongoDB", zap.String("database", cfg.DBName))

	db := client.Database(cfg.DBName)

	if err := database.CreateIndexes(db); err != nil {
		zlog.Warn("Failed to create indexes", zap.Error(err))
	}

	// Initialize repositories, services, and handlers
	districtRepo := repository.NewDistrictRepository(db)
	recordRepo := repository.NewRecordRepository(db)

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer seedCancel()
	if err := database.SeedDistricts(seedCtx, districtRepo, zlog); err != nil {
		zlog.Fatal("Failed to seed district registry", zap.Error(err))
	}

	recordService := services.NewRecordService(districtRepo, recordRepo,
		services.NewSynthesizer(), clockwork.NewRealClock(), zlog)
	geocoder := services.NewNominatimClient(cfg.GeocoderBaseURL, cfg.GeocoderTimeout, cfg.GeocodeCacheTTL, zlog)
	locationService := services.NewLocationService(districtRepo, geocoder, zlog)

	districtHandler := handlers.NewDistrictHandler(recordService, zlog)
	stateHandler := handlers.NewStateHandler(recordService, zlog)
	locationHandler := handlers.NewLocationHandler(locationService, zlog)
	metaHandler := handlers.NewMetaHandler(client, zlog)

	mux := routes.SetupRoutes(districtHandler, stateHandler, locationHandler, metaHandler)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(mux)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: middlewares.RequestLogger(zlog)(corsHandler),
	}

	go func() {
		zlog.Info("Server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("Shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("Graceful shutdown failed", zap.Error(err))
	}
}
