package application

import (
	"github.com/tanzeemhub/reports-go/internal/domain/org"
	"github.com/tanzeemhub/reports-go/pkg/types"
)

// Actor is the authenticated caller as the services see it, lifted out of
// JWT claims by the handlers.
type Actor struct {
	ID      uint
	Name    string
	Level   org.Level
	MuqamID *uint
	DilaID  *uint
	ZoneID  *uint
	IsAdmin bool
}

// ActorFromClaims builds an Actor from a verified token.
func ActorFromClaims(c *types.Claims) Actor {
	return Actor{
		ID:      c.UserID,
		Name:    c.Username,
		Level:   org.Level(c.Level),
		MuqamID: c.MuqamID,
		DilaID:  c.DilaID,
		ZoneID:  c.ZoneID,
		IsAdmin: c.IsAdmin,
	}
}

// ScopeFor returns the actor's scope. Admins act at national reach
// regardless of their own anchor.
func (s *ScopeService) ScopeFor(a Actor) (org.Scope, error) {
	if a.IsAdmin {
		return org.Scope{Unrestricted: true}, nil
	}
	return s.Resolve(a.Level, a.MuqamID, a.DilaID, a.ZoneID)
}
