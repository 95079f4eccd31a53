package contract

import "context"

// Capability is one backend operation: named string arguments in, tagged
// payload out. Domain failures come back as an error payload; a returned
// Go error means the invocation itself broke and is handled at the
// orchestrator boundary.
type Capability interface {
	Name() CapabilityName
	Describe() string
	Required() []string
	Invoke(ctx context.Context, args Args) (Payload, error)
}
