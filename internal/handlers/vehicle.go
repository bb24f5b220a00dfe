package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rideloop/vehicle-registry/internal/middleware"
	"github.com/rideloop/vehicle-registry/internal/models"
	"github.com/rideloop/vehicle-registry/internal/vehicles"
	log "github.com/sirupsen/logrus"
)

// VehicleHandler handles vehicle resource requests
type VehicleHandler struct {
	service *vehicles.Service
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(service *vehicles.Service) *VehicleHandler {
	return &VehicleHandler{service: service}
}

// GetCurrent returns every vehicle owned by the authenticated user. An owner
// with no vehicles gets a 200 with an empty list.
func (h *VehicleHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "User context not found")
		return
	}

	items, err := h.service.ListOwned(r.Context(), claims.UserID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ItemsResponse{Items: items, IsSuccessful: true})
}

// Create registers a new vehicle for the authenticated user.
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "User context not found")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var addReq models.VehicleAddRequest
	if err := json.Unmarshal(body, &addReq); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, err := h.service.Create(r.Context(), addReq, claims.UserID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, models.ItemResponse{Item: id, IsSuccessful: true})
}

// Update replaces the mutable fields of a vehicle owned by the authenticated
// user. The target id comes from the URL path.
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "User context not found")
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/vehicles/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, "Invalid vehicle id")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var updateReq models.VehicleUpdateRequest
	if err := json.Unmarshal(body, &updateReq); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if updateReq.ID != 0 && updateReq.ID != id {
		writeError(w, http.StatusBadRequest, "id: body id does not match the URL")
		return
	}
	updateReq.ID = id

	if err := h.service.Update(r.Context(), updateReq, claims.UserID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse{IsSuccessful: true})
}

// GetSchema serves the validation rule set so the client form evaluates the
// same definition the server enforces.
func (h *VehicleHandler) GetSchema(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, models.ItemResponse{Item: vehicles.Rules(), IsSuccessful: true})
}

// writeServiceError maps the service error taxonomy to response statuses.
func (h *VehicleHandler) writeServiceError(w http.ResponseWriter, err error) {
	var vErr *vehicles.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeError(w, http.StatusBadRequest, vErr.Messages()...)
	case errors.Is(err, vehicles.ErrInvalidReference):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, vehicles.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, vehicles.ErrNotOwner):
		writeError(w, http.StatusForbidden, err.Error())
	default:
		log.WithError(err).Error("vehicle request failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msgs ...string) {
	writeJSON(w, status, models.ErrorResponse{Errors: msgs, IsSuccessful: false})
}
