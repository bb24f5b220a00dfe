package db

import (
	"context"

	"github.com/rideloop/vehicle-registry/internal/models"
)

// Sequences allocates integer ids for new records.
type Sequences interface {
	Next(ctx context.Context, name string) (int64, error)
}

// VehicleCollection defines the interface for vehicle data operations.
type VehicleCollection interface {
	InsertVehicle(ctx context.Context, vehicle models.Vehicle) error
	FindVehiclesByOwner(ctx context.Context, ownerID int64) ([]models.Vehicle, error)
	FindVehicleByID(ctx context.Context, id int64) (*models.Vehicle, error)
	ReplaceVehicle(ctx context.Context, vehicle models.Vehicle) error
}

// MakeCollection defines the interface for vehicle-make reference data.
type MakeCollection interface {
	FindMakes(ctx context.Context) ([]models.LookupItem, error)
}

// UserCollection defines the interface for user database operations.
type UserCollection interface {
	InsertUser(ctx context.Context, user models.User) error
	FindUserByID(ctx context.Context, id int64) (*models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id int64) error
}
