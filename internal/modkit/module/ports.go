package module

import "reflect"

// PortSet marks module defined port bundles. Modules define concrete
// struct types and return them from Ports
type PortSet = any

// PortsOf extracts an interface T from a module's Ports() bundle.
// The bundle may implement T directly or carry it in an exported field.
// ok is false when neither holds
func PortsOf[T any](m Module) (t T, ok bool) {
	p := m.Ports()
	if p == nil {
		return t, false
	}
	if v, ok2 := p.(T); ok2 {
		return v, true
	}
	rv := reflect.ValueOf(p)
	rt := rv.Type()
	// exported struct fields only
	if rt.Kind() == reflect.Struct {
		for i := 0; i < rt.NumField(); i++ {
			f := rv.Field(i)
			if !f.CanInterface() {
				continue
			}
			if v, ok2 := f.Interface().(T); ok2 {
				return v, true
			}
		}
	}
	return t, false
}

// MustPortsOf panics when the port is absent; bootstrap wiring wants the
// process down, not limping
func MustPortsOf[T any](m Module) T {
	if v, ok := PortsOf[T](m); ok {
		return v
	}
	panic("module: requested port not found on module " + m.Name())
}
