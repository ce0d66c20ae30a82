package domain

// Service is a catalog entry for a billable clinic procedure.
// Prices are plain numbers in a single currency unit.
type Service struct {
	ID                       string  `json:"id"`
	Name                     string  `json:"name"`
	Description              string  `json:"description,omitempty"`
	Category                 string  `json:"category,omitempty"`
	DefaultPrice             float64 `json:"default_price"`
	EstimatedDurationMinutes int     `json:"estimated_duration_minutes"`
	IsActive                 bool    `json:"is_active"`
}
