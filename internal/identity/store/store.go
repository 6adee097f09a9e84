package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/access"
	"github.com/oselabs/cfopilot/internal/identity"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectUserColumns = `id, email, full_name, role, password_hash, stripe_account_id, organization_id, created_at`

func scanUser(s scanner) (*identity.User, error) {
	var (
		u       identity.User
		roleStr string
		acct    sql.NullString
		orgID   *uuid.UUID
	)

	if err := s.Scan(&u.ID, &u.Email, &u.FullName, &roleStr, &u.PasswordHash, &acct, &orgID, &u.CreatedAt); err != nil {
		return nil, err
	}

	u.Role = access.Role(roleStr)

	if acct.Valid {
		u.StripeAccountID = &acct.String
	}

	if orgID != nil {
		u.OrganizationID = *orgID
	}

	return &u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*identity.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, identity.ErrNotFound
		}

		return nil, fmt.Errorf("getting user by email: %w", err)
	}

	return user, nil
}

func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, identity.ErrNotFound
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	return user, nil
}

func (s *Store) CreateUser(ctx context.Context, user *identity.User) error {
	query := `
		INSERT INTO users (email, full_name, role, password_hash, stripe_account_id, organization_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		user.Email,
		user.FullName,
		string(user.Role),
		user.PasswordHash,
		user.StripeAccountID,
		user.OrganizationID,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

func (s *Store) ListOrganizations(ctx context.Context) ([]*identity.Organization, error) {
	query := `SELECT id, name, created_at FROM organizations ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}
	defer rows.Close()

	var orgs []*identity.Organization

	for rows.Next() {
		var org identity.Organization
		if err := rows.Scan(&org.ID, &org.Name, &org.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning organization: %w", err)
		}

		orgs = append(orgs, &org)
	}

	return orgs, rows.Err()
}

func (s *Store) CreateOrganization(ctx context.Context, org *identity.Organization) error {
	query := `INSERT INTO organizations (name) VALUES ($1) RETURNING id, created_at`

	if err := s.db.QueryRowContext(ctx, query, org.Name).Scan(&org.ID, &org.CreatedAt); err != nil {
		return fmt.Errorf("creating organization: %w", err)
	}

	return nil
}

func (s *Store) CreateAssignment(ctx context.Context, a *identity.ProjectAssignment) error {
	query := `
		INSERT INTO project_assignments (user_id, project_id, organization_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, project_id) DO NOTHING
	`

	if _, err := s.db.ExecContext(ctx, query, a.UserID, a.ProjectID, a.OrganizationID); err != nil {
		return fmt.Errorf("creating assignment: %w", err)
	}

	return nil
}

func (s *Store) AssignedProjects(ctx context.Context, userID, organizationID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	query := `
		SELECT project_id FROM project_assignments
		WHERE user_id = $1 AND organization_id = $2
	`

	rows, err := s.db.QueryContext(ctx, query, userID, organizationID)
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}
	defer rows.Close()

	projects := make(map[uuid.UUID]struct{})

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning assignment: %w", err)
		}

		projects[id] = struct{}{}
	}

	return projects, rows.Err()
}
