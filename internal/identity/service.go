package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/oselabs/cfopilot/internal/access"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=identity
type Repository interface {
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	CreateUser(ctx context.Context, user *User) error
	ListOrganizations(ctx context.Context) ([]*Organization, error)
	CreateOrganization(ctx context.Context, org *Organization) error
	CreateAssignment(ctx context.Context, a *ProjectAssignment) error
	AssignedProjects(ctx context.Context, userID, organizationID uuid.UUID) (map[uuid.UUID]struct{}, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Authenticate verifies the password against the stored bcrypt hash and
// returns the user profile on success.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetUser(ctx, id)
}

type CreateUserParams struct {
	Email          string
	FullName       string
	Role           access.Role
	Password       string
	OrganizationID uuid.UUID
}

func (s *Service) CreateUser(ctx context.Context, params CreateUserParams) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &User{
		Email:          params.Email,
		FullName:       params.FullName,
		Role:           params.Role,
		PasswordHash:   string(hash),
		OrganizationID: params.OrganizationID,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) ListOrganizations(ctx context.Context) ([]*Organization, error) {
	return s.repo.ListOrganizations(ctx)
}

func (s *Service) AssignProject(ctx context.Context, userID, projectID, organizationID uuid.UUID) error {
	return s.repo.CreateAssignment(ctx, &ProjectAssignment{
		UserID:         userID,
		ProjectID:      projectID,
		OrganizationID: organizationID,
	})
}

// AssignedProjects satisfies access.AssignmentSource.
func (s *Service) AssignedProjects(ctx context.Context, userID, organizationID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	return s.repo.AssignedProjects(ctx, userID, organizationID)
}
