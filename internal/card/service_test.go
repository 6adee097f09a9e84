package card_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oselabs/cfopilot/internal/access"
	"github.com/oselabs/cfopilot/internal/card"
)

func newService(t *testing.T) (*card.MockRepository, *card.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := card.NewMockRepository(ctrl)

	return repo, card.NewService(repo)
}

func TestService_Create(t *testing.T) {
	repo, svc := newService(t)
	admin := access.Actor{ID: uuid.New(), OrganizationID: uuid.New(), Role: access.RoleAdmin}

	repo.EXPECT().
		CreateCard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *card.CorporateCard) error {
			c.ID = uuid.New()
			return nil
		})

	got, err := svc.Create(context.Background(), admin, card.CreateParams{
		CardName:          "Engineering Travel",
		LastFour:          "4242",
		MonthlyLimitCents: 500_000,
	})
	require.NoError(t, err)
	assert.Equal(t, "**** **** **** 4242", got.CardNumber)
	assert.Equal(t, card.StatusActive, got.Status)
	assert.Equal(t, card.TypeVirtual, got.CardType)
}

func TestService_Create_EmployeeForbidden(t *testing.T) {
	_, svc := newService(t)
	emp := access.Actor{ID: uuid.New(), OrganizationID: uuid.New(), Role: access.RoleEmployee}

	_, err := svc.Create(context.Background(), emp, card.CreateParams{CardName: "x", LastFour: "1234"})
	assert.ErrorIs(t, err, card.ErrForbidden)
}

func TestService_Create_BadLastFour(t *testing.T) {
	_, svc := newService(t)
	admin := access.Actor{ID: uuid.New(), OrganizationID: uuid.New(), Role: access.RoleAdmin}

	_, err := svc.Create(context.Background(), admin, card.CreateParams{CardName: "x", LastFour: "42424"})
	assert.ErrorIs(t, err, card.ErrValidation)
}

func TestService_List_EmployeeScopedToOwnCards(t *testing.T) {
	repo, svc := newService(t)
	emp := access.Actor{ID: uuid.New(), OrganizationID: uuid.New(), Role: access.RoleEmployee}

	repo.EXPECT().
		ListCards(gomock.Any(), emp.OrganizationID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, userID *uuid.UUID) ([]*card.CorporateCard, error) {
			require.NotNil(t, userID)
			assert.Equal(t, emp.ID, *userID)
			return nil, nil
		})

	_, err := svc.List(context.Background(), emp)
	require.NoError(t, err)
}

func TestService_Get_WrongOrganization(t *testing.T) {
	repo, svc := newService(t)
	admin := access.Actor{ID: uuid.New(), OrganizationID: uuid.New(), Role: access.RoleAdmin}

	cardID := uuid.New()
	repo.EXPECT().
		GetCard(gomock.Any(), cardID).
		Return(&card.CorporateCard{ID: cardID, OrganizationID: uuid.New()}, nil)

	_, err := svc.Get(context.Background(), admin, cardID)
	assert.ErrorIs(t, err, card.ErrNotFound)
}

func TestService_RecordCardTransaction_MovesBalance(t *testing.T) {
	repo, svc := newService(t)

	cardID := uuid.New()
	txID := uuid.New()
	repo.EXPECT().
		GetCard(gomock.Any(), cardID).
		Return(&card.CorporateCard{ID: cardID, BalanceCents: 1_000}, nil)
	repo.EXPECT().
		CreateCardTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ct *card.CardTransaction) error {
			assert.Equal(t, txID, ct.TransactionID)
			assert.Equal(t, int64(2_500), ct.AmountCents)
			return nil
		})
	repo.EXPECT().
		UpdateCard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *card.CorporateCard) error {
			assert.Equal(t, int64(3_500), c.BalanceCents)
			return nil
		})

	err := svc.RecordCardTransaction(context.Background(), cardID, txID, 2_500, "Delta", "Travel", "pending")
	require.NoError(t, err)
}

func TestService_Freeze(t *testing.T) {
	repo, svc := newService(t)
	mgr := access.Actor{ID: uuid.New(), OrganizationID: uuid.New(), Role: access.RoleManager}

	cardID := uuid.New()
	repo.EXPECT().
		GetCard(gomock.Any(), cardID).
		Return(&card.CorporateCard{ID: cardID, OrganizationID: mgr.OrganizationID, Status: card.StatusActive}, nil)
	repo.EXPECT().
		UpdateCard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *card.CorporateCard) error {
			assert.Equal(t, card.StatusFrozen, c.Status)
			return nil
		})

	got, err := svc.Freeze(context.Background(), mgr, cardID)
	require.NoError(t, err)
	assert.Equal(t, card.StatusFrozen, got.Status)
}
