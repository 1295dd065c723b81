package module

// Ports returns the module ports; payments exposes none
func (m *Module) Ports() any { return nil }
