package vehicles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rideloop/vehicle-registry/internal/db"
	"github.com/rideloop/vehicle-registry/internal/models"
	log "github.com/sirupsen/logrus"
)

// MakeCategory is the lookup category holding vehicle makes.
const MakeCategory = "vehicleMakes"

// LookupResolver resolves reference-data categories to their current rows.
type LookupResolver interface {
	Resolve(ctx context.Context, categories []string) (map[string][]models.LookupItem, error)
}

// Publisher announces record changes to interested consumers. Implementations
// must not block the request; failures are the publisher's problem.
type Publisher interface {
	VehicleCreated(vehicle models.Vehicle)
	VehicleUpdated(vehicle models.Vehicle)
}

// Service implements the vehicle resource operations: list-mine, create,
// update. It holds no state between calls.
type Service struct {
	vehicles db.VehicleCollection
	seq      db.Sequences
	lookups  LookupResolver
	events   Publisher
}

// NewService creates a vehicle service. events may be nil.
func NewService(vehicles db.VehicleCollection, seq db.Sequences, lookups LookupResolver, events Publisher) *Service {
	return &Service{
		vehicles: vehicles,
		seq:      seq,
		lookups:  lookups,
		events:   events,
	}
}

// ListOwned returns every vehicle created by ownerID. An owner with no
// vehicles gets an empty slice, never an error.
func (s *Service) ListOwned(ctx context.Context, ownerID int64) ([]models.Vehicle, error) {
	vehicles, err := s.vehicles.FindVehiclesByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list vehicles for user %d: %w", ownerID, err)
	}
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}
	return vehicles, nil
}

// Create validates the payload, stamps the owner, and persists a new vehicle.
// Returns the new id.
func (s *Service) Create(ctx context.Context, req models.VehicleAddRequest, ownerID int64) (int64, error) {
	if violations := validateFields(req.MakeID, req.Model, req.Year, req.MaxPassengers, req.LicensePlate); len(violations) > 0 {
		return 0, &ValidationError{Violations: violations}
	}
	if err := s.resolveMake(ctx, req.MakeID); err != nil {
		return 0, err
	}

	id, err := s.seq.Next(ctx, "vehicles")
	if err != nil {
		return 0, fmt.Errorf("allocate vehicle id: %w", err)
	}

	now := time.Now()
	vehicle := models.Vehicle{
		ID:                     id,
		MakeID:                 req.MakeID,
		Model:                  strings.TrimSpace(req.Model),
		Year:                   req.Year,
		MaxPassengers:          req.MaxPassengers,
		Color:                  req.Color,
		LicensePlate:           strings.TrimSpace(req.LicensePlate),
		VehiclePicture:         req.VehiclePicture,
		IsRegistrationVerified: false,
		CreatedBy:              ownerID,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if err := s.vehicles.InsertVehicle(ctx, vehicle); err != nil {
		return 0, fmt.Errorf("insert vehicle: %w", err)
	}

	log.WithFields(log.Fields{"vehicle_id": id, "user_id": ownerID}).Info("vehicle created")
	if s.events != nil {
		s.events.VehicleCreated(vehicle)
	}
	return id, nil
}

// Update loads the target vehicle, checks ownership, and replaces the mutable
// fields. The id, owner, creation time, and verification flag survive the
// replacement untouched.
func (s *Service) Update(ctx context.Context, req models.VehicleUpdateRequest, ownerID int64) error {
	existing, err := s.vehicles.FindVehicleByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("load vehicle %d: %w", req.ID, err)
	}
	if !IsOwner(existing.CreatedBy, ownerID) {
		log.WithFields(log.Fields{"vehicle_id": req.ID, "user_id": ownerID, "owner_id": existing.CreatedBy}).
			Warn("update rejected: caller is not the owner")
		return ErrNotOwner
	}

	if violations := validateFields(req.MakeID, req.Model, req.Year, req.MaxPassengers, req.LicensePlate); len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	if err := s.resolveMake(ctx, req.MakeID); err != nil {
		return err
	}

	updated := *existing
	updated.MakeID = req.MakeID
	updated.Model = strings.TrimSpace(req.Model)
	updated.Year = req.Year
	updated.MaxPassengers = req.MaxPassengers
	updated.Color = req.Color
	updated.LicensePlate = strings.TrimSpace(req.LicensePlate)
	updated.VehiclePicture = req.VehiclePicture
	updated.UpdatedAt = time.Now()

	if err := s.vehicles.ReplaceVehicle(ctx, updated); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("replace vehicle %d: %w", req.ID, err)
	}

	log.WithFields(log.Fields{"vehicle_id": req.ID, "user_id": ownerID}).Info("vehicle updated")
	if s.events != nil {
		s.events.VehicleUpdated(updated)
	}
	return nil
}

// resolveMake checks the submitted makeId against the resolver's current make
// set. Resolution happens at write time, so stale selector data can never
// persist a dangling reference.
func (s *Service) resolveMake(ctx context.Context, makeID int64) error {
	tables, err := s.lookups.Resolve(ctx, []string{MakeCategory})
	if err != nil {
		return fmt.Errorf("resolve vehicle makes: %w", err)
	}
	for _, item := range tables[MakeCategory] {
		if item.ID == makeID {
			return nil
		}
	}
	return ErrInvalidReference
}
