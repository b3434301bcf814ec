package access

import "github.com/google/uuid"

// RoleAdmin bypasses ownership checks.
const RoleAdmin = "admin"

// Decision is the outcome of an authorization check.
type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "ALLOW"
	}
	return "DENY"
}

// Actor is the authenticated caller as seen by the gate.
type Actor struct {
	ID   uuid.UUID
	Role string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Authorize allows admins and any actor listed as an owner of the resource.
// Zero owner ids never match.
func Authorize(actor Actor, owners ...uuid.UUID) Decision {
	if actor.IsAdmin() {
		return Allow
	}
	if actor.ID == uuid.Nil {
		return Deny
	}
	for _, owner := range owners {
		if owner != uuid.Nil && owner == actor.ID {
			return Allow
		}
	}
	return Deny
}

// Outcome is the combined lookup and gate result.
type Outcome int

const (
	Granted Outcome = iota
	Missing
	Denied
)

// Check evaluates existence before ownership so a missing resource is
// always reported as missing regardless of who asks.
func Check(actor Actor, found bool, owners ...uuid.UUID) Outcome {
	if !found {
		return Missing
	}
	if Authorize(actor, owners...) == Deny {
		return Denied
	}
	return Granted
}
