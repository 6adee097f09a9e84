package access

import (
	"context"

	"github.com/google/uuid"
)

// Actor is the authenticated principal evaluated by the Checker.
type Actor struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Role           Role
}

// BudgetRef carries the fields of a budget the Checker needs. A nil
// ProjectID means the budget is organization-wide.
type BudgetRef struct {
	OrganizationID uuid.UUID
	ProjectID      *uuid.UUID
}

//go:generate mockgen -source=checker.go -destination=source_mock.go -package=access
type AssignmentSource interface {
	AssignedProjects(ctx context.Context, userID, organizationID uuid.UUID) (map[uuid.UUID]struct{}, error)
}

// Checker combines the role capability table with per-project assignments.
type Checker struct {
	assignments AssignmentSource

	// failOpenUnscoped keeps budgets without a project visible to
	// managers/employees when the assignment lookup errors out. Project
	// budgets always fail closed.
	failOpenUnscoped bool
}

func NewChecker(assignments AssignmentSource, failOpenUnscoped bool) *Checker {
	return &Checker{assignments: assignments, failOpenUnscoped: failOpenUnscoped}
}

// AssignedProjects returns the actor's assigned project set. Admins have no
// assignment restriction, signalled by a nil map with ok=false.
func (c *Checker) AssignedProjects(ctx context.Context, actor Actor) (map[uuid.UUID]struct{}, error) {
	return c.assignments.AssignedProjects(ctx, actor.ID, actor.OrganizationID)
}

func (c *Checker) CanViewBudget(ctx context.Context, actor Actor, budget BudgetRef) bool {
	if actor.Role.IsAdmin() {
		return true
	}

	if actor.OrganizationID != budget.OrganizationID {
		return false
	}

	if !actor.Role.Can(CapViewBudget) {
		return false
	}

	assigned, err := c.assignments.AssignedProjects(ctx, actor.ID, actor.OrganizationID)
	if err != nil {
		if budget.ProjectID == nil {
			return c.failOpenUnscoped
		}

		return false
	}

	if budget.ProjectID == nil {
		return true
	}

	_, ok := assigned[*budget.ProjectID]

	return ok
}

func (c *Checker) CanEditBudget(ctx context.Context, actor Actor, budget BudgetRef) bool {
	if actor.Role.IsAdmin() {
		return true
	}

	// Budgets without a project are admin-only to modify.
	if !actor.Role.IsManager() || budget.ProjectID == nil {
		return false
	}

	if actor.OrganizationID != budget.OrganizationID {
		return false
	}

	assigned, err := c.assignments.AssignedProjects(ctx, actor.ID, actor.OrganizationID)
	if err != nil {
		return false
	}

	_, ok := assigned[*budget.ProjectID]

	return ok
}

func (c *Checker) CanDeleteBudget(ctx context.Context, actor Actor, budget BudgetRef) bool {
	return c.CanEditBudget(ctx, actor, budget)
}

func (c *Checker) CanSubmitProposal(ctx context.Context, actor Actor, projectID uuid.UUID) bool {
	if actor.Role.IsAdmin() {
		return true
	}

	if !actor.Role.Can(CapSubmitProposal) {
		return false
	}

	assigned, err := c.assignments.AssignedProjects(ctx, actor.ID, actor.OrganizationID)
	if err != nil {
		return false
	}

	_, ok := assigned[projectID]

	return ok
}

func (c *Checker) IsProjectManager(ctx context.Context, actor Actor, projectID uuid.UUID) bool {
	if actor.Role.IsAdmin() {
		return true
	}

	if !actor.Role.IsManager() {
		return false
	}

	assigned, err := c.assignments.AssignedProjects(ctx, actor.ID, actor.OrganizationID)
	if err != nil {
		return false
	}

	_, ok := assigned[projectID]

	return ok
}
