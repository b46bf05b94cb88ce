package dto

import "time"

// CreateFeatureFlagRequest body para POST /api/features.
type CreateFeatureFlagRequest struct {
	Key         string `json:"key"`
	Enabled     bool   `json:"enabled"`
	Description string `json:"description,omitempty"`
}

// UpdateFeatureFlagRequest body para PATCH /api/features/:key.
type UpdateFeatureFlagRequest struct {
	Enabled     *bool   `json:"enabled,omitempty"`
	Description *string `json:"description,omitempty"`
}

// FeatureFlagResponse salida de un flag.
type FeatureFlagResponse struct {
	Key         string    `json:"key"`
	Enabled     bool      `json:"enabled"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FeatureEnabledResponse salida de GET /api/features/:key/enabled.
type FeatureEnabledResponse struct {
	Key     string `json:"key"`
	Enabled bool   `json:"enabled"`
}
