package vehicles

import (
	"fmt"
	"strings"
	"time"
)

// Vehicles older than this are not registrable.
const MinYear = 1900

// MaxYear allows next year's models.
func MaxYear() int {
	return time.Now().Year() + 1
}

// Rule describes one field constraint. The rule set is served to the client
// (GET /api/vehicles/schema) so the form and the server evaluate the same
// definition instead of two independently written rule sets.
type Rule struct {
	Field    string `json:"field"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
	Trim     bool   `json:"trim,omitempty"`
	Min      int    `json:"min,omitempty"`
	Max      int    `json:"max,omitempty"`
}

// Rules returns the current validation rule set.
func Rules() []Rule {
	return []Rule{
		{Field: "makeId", Type: "integer", Required: true, Min: 1},
		{Field: "model", Type: "string", Required: true, Trim: true},
		{Field: "year", Type: "integer", Required: true, Min: MinYear, Max: MaxYear()},
		{Field: "maxPassengers", Type: "integer", Required: true, Min: 1},
		{Field: "color", Type: "string"},
		{Field: "licensePlate", Type: "string", Required: true, Trim: true},
		{Field: "vehiclePicture", Type: "string"},
	}
}

// validateFields evaluates the shared rule set against a payload's mutable
// fields and returns every violation found.
func validateFields(makeID int64, model string, year, maxPassengers int, licensePlate string) []Violation {
	var violations []Violation

	if makeID < 1 {
		violations = append(violations, Violation{
			Field:   "makeId",
			Message: "a vehicle make must be selected",
		})
	}
	if strings.TrimSpace(model) == "" {
		violations = append(violations, Violation{
			Field:   "model",
			Message: "model is required",
		})
	}
	if year < MinYear || year > MaxYear() {
		violations = append(violations, Violation{
			Field:   "year",
			Message: fmt.Sprintf("year must be between %d and %d", MinYear, MaxYear()),
		})
	}
	if maxPassengers < 1 {
		violations = append(violations, Violation{
			Field:   "maxPassengers",
			Message: "maxPassengers must be a positive number",
		})
	}
	if strings.TrimSpace(licensePlate) == "" {
		violations = append(violations, Violation{
			Field:   "licensePlate",
			Message: "licensePlate is required",
		})
	}
	return violations
}
