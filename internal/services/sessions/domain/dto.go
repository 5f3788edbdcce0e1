// Package domain holds DTOs for sessions http and service contracts
package domain

// Session is a per-client solving context
type Session struct {
	ID        string `json:"id"`
	AngleMode string `json:"angle_mode" example:"radians"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// SetAngleModeInput toggles how bare numeric trig arguments are interpreted
type SetAngleModeInput struct {
	Mode string `json:"mode" validate:"required,oneof=radians degrees" example:"degrees"`
}
