package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/rideloop/vehicle-registry/internal/models"
	log "github.com/sirupsen/logrus"
)

type lookupResolver interface {
	Resolve(ctx context.Context, categories []string) (map[string][]models.LookupItem, error)
}

// LookupHandler serves reference-data tables for selection fields.
type LookupHandler struct {
	resolver lookupResolver
}

// NewLookupHandler creates a new lookup handler
func NewLookupHandler(resolver lookupResolver) *LookupHandler {
	return &LookupHandler{resolver: resolver}
}

// GetTables resolves the comma-separated table names in the "tables" query
// parameter. Unknown names come back as empty lists.
func (h *LookupHandler) GetTables(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var categories []string
	for _, name := range strings.Split(r.URL.Query().Get("tables"), ",") {
		if name = strings.TrimSpace(name); name != "" {
			categories = append(categories, name)
		}
	}
	if len(categories) == 0 {
		writeError(w, http.StatusBadRequest, "tables query parameter is required")
		return
	}

	tables, err := h.resolver.Resolve(r.Context(), categories)
	if err != nil {
		log.WithError(err).Error("lookup request failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, models.ItemResponse{Item: tables, IsSuccessful: true})
}
