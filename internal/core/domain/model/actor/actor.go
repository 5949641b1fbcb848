// Package actor describes who is performing an operation. Actors are passed
// explicitly into every command; nothing in the engine reads an ambient session.
package actor

import (
	"fmt"
	"slices"
	"strings"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
)

// Role tags an actor for view permission decisions made by the presentation layer.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
)

// ParseRole accepts the three known roles, case-insensitively.
func ParseRole(raw string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(raw)))
	switch role {
	case RoleCustomer, RoleStaff, RoleAdmin:
		return role, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", raw))
	}
}

// Actor is the acting user. Anonymous customers at a table carry no id.
type Actor struct {
	id   *kernel.UUID
	role Role
}

// Anonymous returns the actor used for customer requests from a table.
func Anonymous() Actor {
	return Actor{role: RoleCustomer}
}

// NewActor builds an identified staff or admin actor.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if role != RoleStaff && role != RoleAdmin {
		return Actor{}, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q cannot be an identified actor", role))
	}
	return Actor{id: &id, role: role}, nil
}

// ID is nil for anonymous customers.
func (a Actor) ID() *kernel.UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

// HasAnyRole reports whether the actor's role is one of roles.
func (a Actor) HasAnyRole(roles ...Role) bool {
	return slices.Contains(roles, a.role)
}
