package db

import (
    "context"
    "os"
    "testing"
    "time"

    "github.com/rideloop/vehicle-registry/internal/models"
    "go.mongodb.org/mongo-driver/mongo"
    "go.mongodb.org/mongo-driver/mongo/options"
)

func TestConnectMongo_BadURI(t *testing.T) {
    os.Setenv("MONGO_URI", "mongodb://bad:uri")
    client, err := ConnectMongo()
    if err == nil {
        t.Error("expected error for bad URI, got nil")
    }
    if client != nil {
        t.Error("expected nil client on error")
    }
}

func TestNilCollections(t *testing.T) {
    ctx := context.Background()

    vehicles := &MongoVehicleCollection{Collection: nil}
    if err := vehicles.InsertVehicle(ctx, models.Vehicle{}); err == nil {
        t.Error("expected error when vehicle collection is nil")
    }
    if _, err := vehicles.FindVehiclesByOwner(ctx, 1); err == nil {
        t.Error("expected error when vehicle collection is nil")
    }
    if _, err := vehicles.FindVehicleByID(ctx, 1); err == nil {
        t.Error("expected error when vehicle collection is nil")
    }
    if err := vehicles.ReplaceVehicle(ctx, models.Vehicle{ID: 1}); err == nil {
        t.Error("expected error when vehicle collection is nil")
    }

    makes := &MongoMakeCollection{Collection: nil}
    if _, err := makes.FindMakes(ctx); err == nil {
        t.Error("expected error when make collection is nil")
    }

    seq := &MongoSequences{Collection: nil}
    if _, err := seq.Next(ctx, "vehicles"); err == nil {
        t.Error("expected error when counters collection is nil")
    }
}

// Integration test (requires running MongoDB)
func TestVehicleRoundtrip_Integration(t *testing.T) {
    uri := os.Getenv("MONGO_URI")
    if uri == "" || uri == "uri" {
        t.Skip("MONGO_URI not set or invalid, skipping integration test")
        return
    }
    ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
    if err != nil {
        t.Skipf("failed to connect: %v, skipping integration test", err)
        return
    }
    dbName := os.Getenv("MONGO_DB")
    if dbName == "" {
        dbName = "vehicle_registry_test"
    }
    database := client.Database(dbName)

    seq := &MongoSequences{Collection: database.Collection("counters")}
    id, err := seq.Next(ctx, "vehicles")
    if err != nil {
        t.Fatalf("expected sequence to advance, got error: %v", err)
    }
    if id < 1 {
        t.Errorf("expected a positive id, got %d", id)
    }

    coll := &MongoVehicleCollection{Collection: database.Collection("vehicles")}
    vehicle := models.Vehicle{
        ID:            id,
        MakeID:        3,
        Model:         "Civic",
        Year:          2020,
        MaxPassengers: 5,
        LicensePlate:  "ABC123",
        CreatedBy:     42,
        CreatedAt:     time.Now(),
        UpdatedAt:     time.Now(),
    }
    if err := coll.InsertVehicle(ctx, vehicle); err != nil {
        t.Fatalf("expected insert to succeed, got error: %v", err)
    }
    found, err := coll.FindVehicleByID(ctx, id)
    if err != nil {
        t.Fatalf("expected find to succeed, got error: %v", err)
    }
    if found.Model != "Civic" || found.CreatedBy != 42 {
        t.Errorf("stored vehicle does not match: %+v", found)
    }
}
