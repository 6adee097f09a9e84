package budget_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oselabs/cfopilot/internal/access"
	"github.com/oselabs/cfopilot/internal/budget"
)

func TestUsagePercent_ZeroApproved(t *testing.T) {
	b := &budget.Budget{ApprovedCents: 0, SpentCents: 50_000}
	assert.Zero(t, b.UsagePercent())
	assert.Zero(t, b.VariancePercent())
}

func TestUsagePercent(t *testing.T) {
	type testCase struct {
		name     string
		approved int64
		spent    int64
		want     float64
	}

	tests := []testCase{
		{"Half", 100_000, 50_000, 50},
		{"Over", 100_000, 125_000, 125},
		{"Rounded", 300_000, 100_000, 33.33},
		{"NearLimit", 100_000, 90_000, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &budget.Budget{ApprovedCents: tt.approved, SpentCents: tt.spent}
			assert.InDelta(t, tt.want, b.UsagePercent(), 0.001)
		})
	}
}

func TestService_List_ScopesToAssignments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	p1 := uuid.New()
	p2 := uuid.New()
	mgr := access.Actor{ID: uuid.New(), OrganizationID: orgID, Role: access.RoleManager}

	repo := budget.NewMockRepository(ctrl)
	src := access.NewMockAssignmentSource(ctrl)
	svc := budget.NewService(repo, access.NewChecker(src, false))

	repo.EXPECT().
		ListBudgets(gomock.Any(), budget.ListFilter{OrganizationID: orgID}).
		Return([]*budget.Budget{
			{ID: uuid.New(), ProjectID: &p1, OrganizationID: orgID, ApprovedCents: 100, SpentCents: 10},
			{ID: uuid.New(), ProjectID: &p2, OrganizationID: orgID, ApprovedCents: 100, SpentCents: 90},
			{ID: uuid.New(), OrganizationID: orgID, ApprovedCents: 100, SpentCents: 50},
		}, nil)
	src.EXPECT().
		AssignedProjects(gomock.Any(), mgr.ID, orgID).
		Return(map[uuid.UUID]struct{}{p1: {}}, nil)

	got, err := svc.List(context.Background(), mgr, budget.ListFilter{})
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Sorted by usage descending: the unscoped budget (50%) before p1 (10%).
	assert.Nil(t, got[0].ProjectID)
	assert.Equal(t, p1, *got[1].ProjectID)
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	p1 := uuid.New()
	admin := access.Actor{ID: uuid.New(), OrganizationID: orgID, Role: access.RoleAdmin}

	repo := budget.NewMockRepository(ctrl)
	src := access.NewMockAssignmentSource(ctrl)
	svc := budget.NewService(repo, access.NewChecker(src, false))

	repo.EXPECT().
		CreateBudget(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *budget.Budget) error {
			b.ID = uuid.New()
			return nil
		})

	got, err := svc.Create(context.Background(), admin, budget.CreateParams{
		Department:    "Engineering",
		ProjectID:     p1,
		ApprovedCents: 500_000,
	})
	require.NoError(t, err)
	assert.Equal(t, "General", got.Category)
	assert.NotEmpty(t, got.Quarter)
	assert.NotZero(t, got.Year)
	assert.Equal(t, orgID, got.OrganizationID)
}

func TestService_Create_NegativeAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := budget.NewService(budget.NewMockRepository(ctrl), access.NewChecker(access.NewMockAssignmentSource(ctrl), false))

	_, err := svc.Create(context.Background(), access.Actor{Role: access.RoleAdmin}, budget.CreateParams{
		Department:    "Engineering",
		ProjectID:     uuid.New(),
		ApprovedCents: -1,
	})
	assert.ErrorIs(t, err, budget.ErrValidation)
}

func TestService_Update_ForbiddenForUnassignedManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	p2 := uuid.New()
	mgr := access.Actor{ID: uuid.New(), OrganizationID: orgID, Role: access.RoleManager}

	repo := budget.NewMockRepository(ctrl)
	src := access.NewMockAssignmentSource(ctrl)
	svc := budget.NewService(repo, access.NewChecker(src, false))

	budgetID := uuid.New()
	repo.EXPECT().
		GetBudget(gomock.Any(), budgetID).
		Return(&budget.Budget{ID: budgetID, ProjectID: &p2, OrganizationID: orgID}, nil)
	src.EXPECT().
		AssignedProjects(gomock.Any(), mgr.ID, orgID).
		Return(map[uuid.UUID]struct{}{}, nil)

	newAmount := int64(100)
	_, err := svc.Update(context.Background(), mgr, budgetID, budget.UpdateParams{ApprovedCents: &newAmount})
	assert.ErrorIs(t, err, budget.ErrForbidden)
}

func TestService_Usage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	admin := access.Actor{ID: uuid.New(), OrganizationID: orgID, Role: access.RoleAdmin}

	repo := budget.NewMockRepository(ctrl)
	svc := budget.NewService(repo, access.NewChecker(access.NewMockAssignmentSource(ctrl), false))

	repo.EXPECT().
		ListBudgets(gomock.Any(), budget.ListFilter{OrganizationID: orgID}).
		Return([]*budget.Budget{
			{ApprovedCents: 100_000, SpentCents: 25_000},
			{ApprovedCents: 100_000, SpentCents: 75_000},
		}, nil)

	usage, err := svc.Usage(context.Background(), admin, budget.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(200_000), usage.TotalApprovedCents)
	assert.Equal(t, int64(100_000), usage.TotalSpentCents)
	assert.Equal(t, int64(100_000), usage.TotalRemainingCents)
	assert.InDelta(t, 50, usage.OverallUsagePercent, 0.001)
	assert.Equal(t, 2, usage.Count)
}

func TestService_Analysis_SkipsZeroApproved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	admin := access.Actor{ID: uuid.New(), OrganizationID: orgID, Role: access.RoleAdmin}

	repo := budget.NewMockRepository(ctrl)
	svc := budget.NewService(repo, access.NewChecker(access.NewMockAssignmentSource(ctrl), false))

	repo.EXPECT().
		ListBudgets(gomock.Any(), gomock.Any()).
		Return([]*budget.Budget{
			{Department: "Sales", ApprovedCents: 100_000, SpentCents: 110_000},
			{Department: "Ops", ApprovedCents: 0, SpentCents: 40_000},
			{Department: "Eng", ApprovedCents: 100_000, SpentCents: 60_000},
		}, nil)

	report, err := svc.Analysis(context.Background(), admin)
	require.NoError(t, err)
	require.Len(t, report, 2)

	// |-40| > |+10|, so Eng sorts first.
	assert.Equal(t, "Eng", report[0].Department)
	assert.Equal(t, "under", report[0].Status)
	assert.Equal(t, "Sales", report[1].Department)
	assert.Equal(t, "over", report[1].Status)
}
