package models

import (
	"time"
)

// VehicleMake is system-owned reference data for the make selector.
type VehicleMake struct {
	ID   int64  `bson:"_id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// Vehicle represents a registered personal vehicle.
type Vehicle struct {
	ID                     int64     `bson:"_id" json:"id"`
	MakeID                 int64     `bson:"make_id" json:"makeId"`
	Model                  string    `bson:"model" json:"model"`
	Year                   int       `bson:"year" json:"year"`
	MaxPassengers          int       `bson:"max_passengers" json:"maxPassengers"`
	Color                  string    `bson:"color" json:"color"`
	LicensePlate           string    `bson:"license_plate" json:"licensePlate"`
	VehiclePicture         string    `bson:"vehicle_picture,omitempty" json:"vehiclePicture"`
	IsRegistrationVerified bool      `bson:"is_registration_verified" json:"isRegistrationVerified"`
	CreatedBy              int64     `bson:"created_by" json:"createdBy"`
	CreatedAt              time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt              time.Time `bson:"updated_at" json:"updatedAt"`
}

// VehicleAddRequest is the creation payload submitted by the registration form.
type VehicleAddRequest struct {
	MakeID         int64  `json:"makeId"`
	Model          string `json:"model"`
	Year           int    `json:"year"`
	MaxPassengers  int    `json:"maxPassengers"`
	Color          string `json:"color"`
	LicensePlate   string `json:"licensePlate"`
	VehiclePicture string `json:"vehiclePicture"`
}

// VehicleUpdateRequest is the update payload. The target id comes from the URL;
// a body id, if present, must agree with it.
type VehicleUpdateRequest struct {
	ID             int64  `json:"id,omitempty"`
	MakeID         int64  `json:"makeId"`
	Model          string `json:"model"`
	Year           int    `json:"year"`
	MaxPassengers  int    `json:"maxPassengers"`
	Color          string `json:"color"`
	LicensePlate   string `json:"licensePlate"`
	VehiclePicture string `json:"vehiclePicture"`
}

// LookupItem is one row of a reference-data table.
type LookupItem struct {
	ID   int64  `bson:"_id" json:"id"`
	Name string `bson:"name" json:"name"`
}
