package proposal_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oselabs/cfopilot/internal/access"
	"github.com/oselabs/cfopilot/internal/approval"
	"github.com/oselabs/cfopilot/internal/proposal"
)

type fixture struct {
	repo  *proposal.MockRepository
	src   *access.MockAssignmentSource
	svc   *proposal.Service
	orgID uuid.UUID
	p1    uuid.UUID
	p2    uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := proposal.NewMockRepository(ctrl)
	src := access.NewMockAssignmentSource(ctrl)

	return &fixture{
		repo:  repo,
		src:   src,
		svc:   proposal.NewService(repo, access.NewChecker(src, false)),
		orgID: uuid.New(),
		p1:    uuid.New(),
		p2:    uuid.New(),
	}
}

func (f *fixture) actor(role access.Role) access.Actor {
	return access.Actor{ID: uuid.New(), OrganizationID: f.orgID, Role: role}
}

func (f *fixture) assign(userID uuid.UUID, projects ...uuid.UUID) {
	set := make(map[uuid.UUID]struct{}, len(projects))
	for _, p := range projects {
		set[p] = struct{}{}
	}

	f.src.EXPECT().
		AssignedProjects(gomock.Any(), userID, f.orgID).
		Return(set, nil).
		AnyTimes()
}

func TestService_Submit(t *testing.T) {
	f := newFixture(t)
	emp := f.actor(access.RoleEmployee)
	f.assign(emp.ID, f.p1)

	f.repo.EXPECT().
		CreateProposal(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *proposal.Proposal, event *approval.Event) error {
			p.ID = uuid.New()
			event.SubjectID = p.ID
			return nil
		})

	got, err := f.svc.Submit(context.Background(), emp, proposal.SubmitParams{
		ProjectID:   f.p1,
		Department:  "Engineering",
		AmountCents: 250_000,
		Description: "New laptops",
	})
	require.NoError(t, err)
	assert.Equal(t, proposal.StatusPending, got.Status)
	assert.Equal(t, emp.ID, got.RequestedBy)
	assert.Equal(t, f.orgID, got.OrganizationID)
}

func TestService_Submit_UnassignedEmployee(t *testing.T) {
	f := newFixture(t)
	emp := f.actor(access.RoleEmployee)
	f.assign(emp.ID) // no projects

	_, err := f.svc.Submit(context.Background(), emp, proposal.SubmitParams{
		ProjectID:   f.p1,
		AmountCents: 100,
	})
	assert.ErrorIs(t, err, proposal.ErrForbidden)
}

func TestService_Submit_NonPositiveAmount(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Submit(context.Background(), f.actor(access.RoleAdmin), proposal.SubmitParams{
		ProjectID:   f.p1,
		AmountCents: 0,
	})
	assert.ErrorIs(t, err, proposal.ErrValidation)
}

func TestService_Decide_Approve(t *testing.T) {
	f := newFixture(t)
	mgr := f.actor(access.RoleManager)
	f.assign(mgr.ID, f.p1)

	proposalID := uuid.New()
	pending := &proposal.Proposal{
		ID:             proposalID,
		ProjectID:      f.p1,
		Status:         proposal.StatusPending,
		OrganizationID: f.orgID,
	}

	f.repo.EXPECT().GetProposal(gomock.Any(), proposalID).Return(pending, nil)
	f.repo.EXPECT().
		DecideProposal(gomock.Any(), proposalID, proposal.StatusApproved, mgr.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID, status proposal.Status, approvedBy uuid.UUID, event *approval.Event) (*proposal.Proposal, error) {
			assert.Equal(t, approval.SubjectProposal, event.SubjectType)
			assert.Equal(t, id, event.SubjectID)
			assert.Equal(t, approval.StatusApproved, event.Status)
			require.NotNil(t, event.ActorID)
			assert.Equal(t, mgr.ID, *event.ActorID)
			assert.NotNil(t, event.DecidedAt)

			decided := *pending
			decided.Status = status
			decided.ApprovedBy = &approvedBy
			return &decided, nil
		})

	got, err := f.svc.Decide(context.Background(), mgr, proposalID, proposal.DecisionApprove, "")
	require.NoError(t, err)
	assert.Equal(t, proposal.StatusApproved, got.Status)
	require.NotNil(t, got.ApprovedBy)
	assert.Equal(t, mgr.ID, *got.ApprovedBy)
}

func TestService_Decide_ManagerWrongProject(t *testing.T) {
	f := newFixture(t)
	mgr := f.actor(access.RoleManager)
	f.assign(mgr.ID, f.p1)

	proposalID := uuid.New()
	f.repo.EXPECT().
		GetProposal(gomock.Any(), proposalID).
		Return(&proposal.Proposal{ID: proposalID, ProjectID: f.p2, Status: proposal.StatusPending, OrganizationID: f.orgID}, nil)

	// No DecideProposal expectation: the repo must not be written to.
	_, err := f.svc.Decide(context.Background(), mgr, proposalID, proposal.DecisionReject, "")
	assert.ErrorIs(t, err, proposal.ErrForbidden)
}

func TestService_Decide_AlreadyDecided(t *testing.T) {
	f := newFixture(t)
	admin := f.actor(access.RoleAdmin)

	proposalID := uuid.New()
	f.repo.EXPECT().
		GetProposal(gomock.Any(), proposalID).
		Return(&proposal.Proposal{ID: proposalID, ProjectID: f.p1, Status: proposal.StatusApproved, OrganizationID: f.orgID}, nil)
	f.repo.EXPECT().
		DecideProposal(gomock.Any(), proposalID, proposal.StatusRejected, admin.ID, gomock.Any()).
		Return(nil, proposal.ErrAlreadyDecided)

	_, err := f.svc.Decide(context.Background(), admin, proposalID, proposal.DecisionReject, "changed my mind")
	assert.ErrorIs(t, err, proposal.ErrAlreadyDecided)
}

func TestService_PendingForReviewer_ManagerScoped(t *testing.T) {
	f := newFixture(t)
	mgr := f.actor(access.RoleManager)
	f.assign(mgr.ID, f.p1)

	pending := proposal.StatusPending
	f.repo.EXPECT().
		ListProposals(gomock.Any(), proposal.ListFilter{OrganizationID: f.orgID, Status: &pending}).
		Return([]*proposal.Proposal{
			{ID: uuid.New(), ProjectID: f.p1, Status: proposal.StatusPending},
			{ID: uuid.New(), ProjectID: f.p2, Status: proposal.StatusPending},
		}, nil)

	got, err := f.svc.PendingForReviewer(context.Background(), mgr)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, f.p1, got[0].ProjectID)
}

func TestService_PendingForReviewer_EmployeeForbidden(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.PendingForReviewer(context.Background(), f.actor(access.RoleEmployee))
	assert.ErrorIs(t, err, proposal.ErrForbidden)
}

func TestService_HistoryForReviewer_AdminSeesAll(t *testing.T) {
	f := newFixture(t)
	admin := f.actor(access.RoleAdmin)

	f.repo.EXPECT().
		ListProposals(gomock.Any(), proposal.ListFilter{OrganizationID: f.orgID, ExcludePending: true}).
		Return([]*proposal.Proposal{
			{ID: uuid.New(), ProjectID: f.p1, Status: proposal.StatusApproved},
			{ID: uuid.New(), ProjectID: f.p2, Status: proposal.StatusRejected},
		}, nil)

	got, err := f.svc.HistoryForReviewer(context.Background(), admin)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestParseDecision(t *testing.T) {
	d, err := proposal.ParseDecision("approve")
	require.NoError(t, err)
	assert.Equal(t, proposal.StatusApproved, d.Status())

	d, err = proposal.ParseDecision("reject")
	require.NoError(t, err)
	assert.Equal(t, proposal.StatusRejected, d.Status())

	_, err = proposal.ParseDecision("defer")
	assert.ErrorIs(t, err, proposal.ErrValidation)
}
