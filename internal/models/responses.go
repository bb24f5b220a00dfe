package models

// ItemResponse wraps a single value returned by a write operation,
// typically the new record id.
type ItemResponse struct {
	Item         interface{} `json:"item"`
	IsSuccessful bool        `json:"isSuccessful"`
}

// ItemsResponse wraps a collection result.
type ItemsResponse struct {
	Items        interface{} `json:"items"`
	IsSuccessful bool        `json:"isSuccessful"`
}

// SuccessResponse acknowledges a write with no payload.
type SuccessResponse struct {
	IsSuccessful bool `json:"isSuccessful"`
}

// ErrorResponse carries one entry per failure; validation errors get one
// entry per field violation, everything else a single generic message.
type ErrorResponse struct {
	Errors       []string `json:"errors"`
	IsSuccessful bool     `json:"isSuccessful"`
}
