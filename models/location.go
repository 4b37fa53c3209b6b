package models

// LocationRequest carries the coordinates to resolve into a district.
type LocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// LocationResponse is the outcome of a coordinate lookup. Failures of the
// external geocoder are reported here, never as transport errors.
type LocationResponse struct {
	Success  bool      `json:"success"`
	District *District `json:"district,omitempty"`
	Message  string    `json:"message,omitempty"`
}
