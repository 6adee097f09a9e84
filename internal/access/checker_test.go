package access_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/oselabs/cfopilot/internal/access"
)

var (
	orgA = uuid.New()
	orgB = uuid.New()
	p1   = uuid.New()
	p2   = uuid.New()
)

func actor(role access.Role, org uuid.UUID) access.Actor {
	return access.Actor{ID: uuid.New(), OrganizationID: org, Role: role}
}

func assigned(projects ...uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(projects))
	for _, p := range projects {
		set[p] = struct{}{}
	}

	return set
}

func TestCanViewBudget(t *testing.T) {
	type testCase struct {
		name      string
		actor     access.Actor
		budget    access.BudgetRef
		setupMock func(m *access.MockAssignmentSource)
		want      bool
	}

	tests := []testCase{
		{
			name:   "AdminAlways",
			actor:  actor(access.RoleAdmin, orgA),
			budget: access.BudgetRef{OrganizationID: orgB, ProjectID: &p1},
			want:   true,
		},
		{
			name:   "OrgMismatch",
			actor:  actor(access.RoleManager, orgA),
			budget: access.BudgetRef{OrganizationID: orgB, ProjectID: &p1},
			want:   false,
		},
		{
			name:   "ManagerAssignedProject",
			actor:  actor(access.RoleManager, orgA),
			budget: access.BudgetRef{OrganizationID: orgA, ProjectID: &p1},
			setupMock: func(m *access.MockAssignmentSource) {
				m.EXPECT().
					AssignedProjects(gomock.Any(), gomock.Any(), orgA).
					Return(assigned(p1), nil)
			},
			want: true,
		},
		{
			name:   "EmployeeUnassignedProject",
			actor:  actor(access.RoleEmployee, orgA),
			budget: access.BudgetRef{OrganizationID: orgA, ProjectID: &p2},
			setupMock: func(m *access.MockAssignmentSource) {
				m.EXPECT().
					AssignedProjects(gomock.Any(), gomock.Any(), orgA).
					Return(assigned(p1), nil)
			},
			want: false,
		},
		{
			name:   "UnscopedBudgetVisible",
			actor:  actor(access.RoleEmployee, orgA),
			budget: access.BudgetRef{OrganizationID: orgA},
			setupMock: func(m *access.MockAssignmentSource) {
				m.EXPECT().
					AssignedProjects(gomock.Any(), gomock.Any(), orgA).
					Return(assigned(), nil)
			},
			want: true,
		},
		{
			name:   "LookupErrorProjectBudgetFailsClosed",
			actor:  actor(access.RoleManager, orgA),
			budget: access.BudgetRef{OrganizationID: orgA, ProjectID: &p1},
			setupMock: func(m *access.MockAssignmentSource) {
				m.EXPECT().
					AssignedProjects(gomock.Any(), gomock.Any(), orgA).
					Return(nil, errors.New("backend down"))
			},
			want: false,
		},
		{
			name:   "LookupErrorUnscopedBudgetFailsClosedByDefault",
			actor:  actor(access.RoleManager, orgA),
			budget: access.BudgetRef{OrganizationID: orgA},
			setupMock: func(m *access.MockAssignmentSource) {
				m.EXPECT().
					AssignedProjects(gomock.Any(), gomock.Any(), orgA).
					Return(nil, errors.New("backend down"))
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			src := access.NewMockAssignmentSource(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(src)
			}

			checker := access.NewChecker(src, false)
			assert.Equal(t, tt.want, checker.CanViewBudget(context.Background(), tt.actor, tt.budget))
		})
	}
}

func TestCanViewBudget_FailOpenUnscoped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := access.NewMockAssignmentSource(ctrl)
	src.EXPECT().
		AssignedProjects(gomock.Any(), gomock.Any(), orgA).
		Return(nil, errors.New("backend down"))

	checker := access.NewChecker(src, true)
	ok := checker.CanViewBudget(context.Background(), actor(access.RoleEmployee, orgA), access.BudgetRef{OrganizationID: orgA})
	assert.True(t, ok)
}

func TestCanEditBudget(t *testing.T) {
	type testCase struct {
		name      string
		actor     access.Actor
		budget    access.BudgetRef
		setupMock func(m *access.MockAssignmentSource)
		want      bool
	}

	tests := []testCase{
		{
			name:   "AdminAlways",
			actor:  actor(access.RoleAdmin, orgA),
			budget: access.BudgetRef{OrganizationID: orgA},
			want:   true,
		},
		{
			name:   "ManagerAssigned",
			actor:  actor(access.RoleManager, orgA),
			budget: access.BudgetRef{OrganizationID: orgA, ProjectID: &p1},
			setupMock: func(m *access.MockAssignmentSource) {
				m.EXPECT().
					AssignedProjects(gomock.Any(), gomock.Any(), orgA).
					Return(assigned(p1), nil)
			},
			want: true,
		},
		{
			name:   "ManagerUnscopedBudgetDenied",
			actor:  actor(access.RoleManager, orgA),
			budget: access.BudgetRef{OrganizationID: orgA},
			want:   false,
		},
		{
			name:   "EmployeeDenied",
			actor:  actor(access.RoleEmployee, orgA),
			budget: access.BudgetRef{OrganizationID: orgA, ProjectID: &p1},
			want:   false,
		},
		{
			name:   "ManagerOtherOrgDenied",
			actor:  actor(access.RoleManager, orgA),
			budget: access.BudgetRef{OrganizationID: orgB, ProjectID: &p1},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			src := access.NewMockAssignmentSource(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(src)
			}

			checker := access.NewChecker(src, false)
			assert.Equal(t, tt.want, checker.CanEditBudget(context.Background(), tt.actor, tt.budget))
			assert.Equal(t, tt.want, checker.CanDeleteBudget(context.Background(), tt.actor, tt.budget))
		})
	}
}

func TestCanSubmitProposal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := access.NewMockAssignmentSource(ctrl)
	src.EXPECT().
		AssignedProjects(gomock.Any(), gomock.Any(), orgA).
		Return(assigned(), nil).
		Times(2)

	checker := access.NewChecker(src, false)

	// Employee with no assignments cannot submit for any project.
	emp := actor(access.RoleEmployee, orgA)
	assert.False(t, checker.CanSubmitProposal(context.Background(), emp, p1))
	assert.False(t, checker.CanSubmitProposal(context.Background(), emp, p2))

	// Admin bypasses assignment checks entirely.
	assert.True(t, checker.CanSubmitProposal(context.Background(), actor(access.RoleAdmin, orgA), p2))
}

func TestIsProjectManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := access.NewMockAssignmentSource(ctrl)
	src.EXPECT().
		AssignedProjects(gomock.Any(), gomock.Any(), orgA).
		Return(assigned(p1), nil).
		Times(2)

	checker := access.NewChecker(src, false)

	mgr := actor(access.RoleManager, orgA)
	assert.True(t, checker.IsProjectManager(context.Background(), mgr, p1))
	assert.False(t, checker.IsProjectManager(context.Background(), mgr, p2))

	// Employees are never project managers regardless of assignments.
	assert.False(t, checker.IsProjectManager(context.Background(), actor(access.RoleEmployee, orgA), p1))
}
