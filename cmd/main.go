package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rideloop/vehicle-registry/internal/auth"
	"github.com/rideloop/vehicle-registry/internal/db"
	"github.com/rideloop/vehicle-registry/internal/events"
	"github.com/rideloop/vehicle-registry/internal/handlers"
	"github.com/rideloop/vehicle-registry/internal/lookup"
	"github.com/rideloop/vehicle-registry/internal/middleware"
	"github.com/rideloop/vehicle-registry/internal/vehicles"
	log "github.com/sirupsen/logrus"
)

// Baseline make set inserted into an empty database.
var defaultMakes = []string{
	"Toyota", "Honda", "Ford", "Chevrolet", "Nissan",
	"BMW", "Mercedes-Benz", "Volkswagen", "Hyundai", "Kia",
	"Subaru", "Mazda", "Tesla", "Jeep", "Audi",
}

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	if os.Getenv("LOG_FORMAT") == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	}

	client, err := db.ConnectMongo()
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	database := db.Database(client)
	log.Info("Connected to MongoDB")

	sequences := &db.MongoSequences{Collection: database.Collection("counters")}
	vehicleCollection := &db.MongoVehicleCollection{Collection: database.Collection("vehicles")}
	makeCollection := &db.MongoMakeCollection{Collection: database.Collection("vehicle_makes")}
	userCollection := &db.MongoUserCollection{Collection: database.Collection("users")}

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := makeCollection.SeedMakes(seedCtx, sequences, defaultMakes); err != nil {
		log.Fatalf("Failed to seed vehicle makes: %v", err)
	}

	resolver := lookup.NewResolver()
	// The client historically requests the make table as "vehicleTypes"
	resolver.Register(vehicles.MakeCategory, makeCollection.FindMakes)
	resolver.Register("vehicleTypes", makeCollection.FindMakes)

	var publisher vehicles.Publisher
	if broker := os.Getenv("MQTT_BROKER"); broker != "" {
		mqttPublisher, err := events.NewMQTTPublisher(broker, "vehicle-registry", os.Getenv("MQTT_TOPIC_PREFIX"))
		if err != nil {
			log.WithError(err).Warn("MQTT broker unreachable, record events disabled")
		} else {
			defer mqttPublisher.Close()
			publisher = mqttPublisher
		}
	}

	authService, err := auth.NewService()
	if err != nil {
		log.Fatalf("Failed to create auth service: %v", err)
	}

	vehicleService := vehicles.NewService(vehicleCollection, sequences, resolver, publisher)

	authHandler := handlers.NewAuthHandler(authService, userCollection, sequences)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	lookupHandler := handlers.NewLookupHandler(resolver)

	authMiddleware := middleware.NewAuthMiddleware(authService)
	rateLimiter := middleware.NewRateLimitMiddleware()

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Handle("/api/auth/register", rateLimiter.RateLimit(10, 60)(http.HandlerFunc(authHandler.Register)))
	mux.Handle("/api/auth/login", rateLimiter.RateLimit(10, 60)(http.HandlerFunc(authHandler.Login)))
	mux.HandleFunc("/api/auth/profile", authHandler.GetProfile)
	mux.HandleFunc("/api/vehicles/current", vehicleHandler.GetCurrent)
	mux.HandleFunc("/api/vehicles/schema", vehicleHandler.GetSchema)
	mux.HandleFunc("/api/vehicles", vehicleHandler.Create)
	mux.HandleFunc("/api/vehicles/", vehicleHandler.Update)
	mux.HandleFunc("/api/lookups", lookupHandler.GetTables)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Infof("HTTP server listening on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, authMiddleware.Authenticate(mux)))
}
