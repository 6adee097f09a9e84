package identity_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/oselabs/cfopilot/internal/access"
	"github.com/oselabs/cfopilot/internal/identity"
)

func newService(t *testing.T) (*identity.MockRepository, *identity.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := identity.NewMockRepository(ctrl)

	return repo, identity.NewService(repo)
}

func TestService_Authenticate(t *testing.T) {
	repo, svc := newService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &identity.User{
		ID:           uuid.New(),
		Email:        "cfo@example.com",
		Role:         access.RoleAdmin,
		PasswordHash: string(hash),
	}
	repo.EXPECT().GetUserByEmail(gomock.Any(), "cfo@example.com").Return(user, nil).Times(2)

	got, err := svc.Authenticate(context.Background(), "cfo@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Authenticate(context.Background(), "cfo@example.com", "wrong")
	assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
}

func TestService_Authenticate_UnknownEmail(t *testing.T) {
	repo, svc := newService(t)

	repo.EXPECT().
		GetUserByEmail(gomock.Any(), "ghost@example.com").
		Return(nil, identity.ErrNotFound)

	_, err := svc.Authenticate(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
}

func TestService_CreateUser_HashesPassword(t *testing.T) {
	repo, svc := newService(t)

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *identity.User) error {
			assert.NotEqual(t, "hunter2", u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter2")))
			u.ID = uuid.New()
			return nil
		})

	got, err := svc.CreateUser(context.Background(), identity.CreateUserParams{
		Email:          "new@example.com",
		FullName:       "New Hire",
		Role:           access.RoleEmployee,
		Password:       "hunter2",
		OrganizationID: uuid.New(),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
}

func TestService_AssignProject(t *testing.T) {
	repo, svc := newService(t)

	userID := uuid.New()
	projectID := uuid.New()
	orgID := uuid.New()

	repo.EXPECT().
		CreateAssignment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *identity.ProjectAssignment) error {
			assert.Equal(t, userID, a.UserID)
			assert.Equal(t, projectID, a.ProjectID)
			assert.Equal(t, orgID, a.OrganizationID)
			return nil
		})

	err := svc.AssignProject(context.Background(), userID, projectID, orgID)
	require.NoError(t, err)
}
