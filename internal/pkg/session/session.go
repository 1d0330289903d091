// Package session exposes the identity of the authenticated caller to the
// service layer. Services depend on the Session interface instead of digging
// JWT claims out of the request context themselves.
package session

import (
	"context"
	"errors"

	"github.com/go-chi/jwtauth/v5"
)

var ErrNoSession = errors.New("no authenticated session")
var ErrNotAnEmployee = errors.New("session is not linked to an employee")

type Identity struct {
	UserID     string
	Email      string
	EmployeeID string // empty when the account has no employee link
	Role       string
}

type Session interface {
	// Current returns the identity for the request context.
	Current(ctx context.Context) (Identity, error)

	// CurrentEmployeeID returns the linked employee id or ErrNotAnEmployee.
	CurrentEmployeeID(ctx context.Context) (string, error)
}

// JWTSession reads the identity from jwtauth claims placed on the context by
// the token verifier middleware.
type JWTSession struct{}

func NewJWTSession() Session {
	return &JWTSession{}
}

func (s *JWTSession) Current(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, ErrNoSession
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Identity{}, ErrNoSession
	}

	identity := Identity{UserID: userID}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if employeeID, ok := claims["employee_id"].(string); ok {
		identity.EmployeeID = employeeID
	}
	if role, ok := claims["role"].(string); ok {
		identity.Role = role
	}

	return identity, nil
}

func (s *JWTSession) CurrentEmployeeID(ctx context.Context) (string, error) {
	identity, err := s.Current(ctx)
	if err != nil {
		return "", err
	}
	if identity.EmployeeID == "" {
		return "", ErrNotAnEmployee
	}
	return identity.EmployeeID, nil
}

// Static returns a fixed identity regardless of context. Test helper.
type Static struct {
	Identity Identity
}

func (s *Static) Current(ctx context.Context) (Identity, error) {
	if s.Identity.UserID == "" {
		return Identity{}, ErrNoSession
	}
	return s.Identity, nil
}

func (s *Static) CurrentEmployeeID(ctx context.Context) (string, error) {
	if s.Identity.EmployeeID == "" {
		return "", ErrNotAnEmployee
	}
	return s.Identity.EmployeeID, nil
}
