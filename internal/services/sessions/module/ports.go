package module

import (
	sessionsdom "mathgate/internal/services/sessions/domain"
)

// Ports exposes the session service to other modules
type Ports struct {
	Sessions sessionsdom.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
