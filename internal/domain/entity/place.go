package entity

// Place is the result of a reverse geocoding lookup.
type Place struct {
	DisplayName string            `json:"displayName"`
	Address     map[string]string `json:"address,omitempty"` // road, neighbourhood, suburb, city, state, ...
}
