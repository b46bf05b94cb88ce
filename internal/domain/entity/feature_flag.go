package entity

import "time"

// FeatureFlag interruptor de funcionalidad persistido en feature_flags.
type FeatureFlag struct {
	Key         string
	Enabled     bool
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FeatureFlagPatch cambios parciales sobre un flag; nil = sin cambio.
type FeatureFlagPatch struct {
	Enabled     *bool
	Description *string
}
