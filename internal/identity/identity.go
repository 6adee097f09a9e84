package identity

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/access"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Organization is the tenant boundary. Every other entity carries its id.
type Organization struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

type User struct {
	ID              uuid.UUID
	Email           string
	FullName        string
	Role            access.Role
	PasswordHash    string
	StripeAccountID *string
	OrganizationID  uuid.UUID
	CreatedAt       time.Time
}

// Actor converts the user into the principal shape the access checker works on.
func (u *User) Actor() access.Actor {
	return access.Actor{ID: u.ID, OrganizationID: u.OrganizationID, Role: u.Role}
}

// ProjectAssignment grants a user visibility and authority over one project.
type ProjectAssignment struct {
	UserID         uuid.UUID
	ProjectID      uuid.UUID
	OrganizationID uuid.UUID
	CreatedAt      time.Time
}
