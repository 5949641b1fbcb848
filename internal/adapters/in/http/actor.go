package http

import (
	"strings"

	"tableside/internal/core/domain/model/actor"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	HeaderActorID   = "X-Actor-ID"
	HeaderActorRole = "X-Actor-Role"

	actorContextKey = "actor"
)

// actorFromRequest builds the acting user from the gateway headers. A missing role,
// or the customer role, is an anonymous customer. Staff and admin need an id.
func actorFromRequest(c echo.Context) (actor.Actor, error) {
	rawRole := strings.TrimSpace(c.Request().Header.Get(HeaderActorRole))
	if rawRole == "" {
		return actor.Anonymous(), nil
	}

	role, err := actor.ParseRole(rawRole)
	if err != nil {
		return actor.Actor{}, err
	}
	if role == actor.RoleCustomer {
		return actor.Anonymous(), nil
	}

	rawID := strings.TrimSpace(c.Request().Header.Get(HeaderActorID))
	if rawID == "" {
		return actor.Actor{}, errs.NewValueIsRequiredError(HeaderActorID)
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return actor.Actor{}, errs.NewValueIsInvalidErrorWithCause(HeaderActorID, err)
	}

	return actor.NewActor(id, role)
}

// ActorMiddleware resolves the acting user once per request.
func (s *Server) ActorMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		a, err := actorFromRequest(c)
		if err != nil {
			return writeError(c, s.logger, err)
		}
		c.Set(actorContextKey, a)
		return next(c)
	}
}

// RequireRole lets a request through only when the actor has one of roles.
func (s *Server) RequireRole(roles ...actor.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !currentActor(c).HasAnyRole(roles...) {
				return writeError(c, s.logger, ErrForbidden)
			}
			return next(c)
		}
	}
}

func currentActor(c echo.Context) actor.Actor {
	if a, ok := c.Get(actorContextKey).(actor.Actor); ok {
		return a
	}
	return actor.Anonymous()
}
