package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/access"
	"github.com/oselabs/cfopilot/internal/identity"
)

type userResponse struct {
	ID             uuid.UUID   `json:"id"`
	Email          string      `json:"email"`
	FullName       string      `json:"full_name"`
	Role           access.Role `json:"role"`
	OrganizationID uuid.UUID   `json:"organization_id"`
	CreatedAt      time.Time   `json:"created_at"`
}

func toUserResponse(u *identity.User) userResponse {
	return userResponse{
		ID:             u.ID,
		Email:          u.Email,
		FullName:       u.FullName,
		Role:           u.Role,
		OrganizationID: u.OrganizationID,
		CreatedAt:      u.CreatedAt,
	}
}

type organizationResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func toOrganizationResponseList(orgs []*identity.Organization) []organizationResponse {
	resp := make([]organizationResponse, len(orgs))
	for i, o := range orgs {
		resp[i] = organizationResponse{
			ID:        o.ID,
			Name:      o.Name,
			CreatedAt: o.CreatedAt,
		}
	}

	return resp
}
