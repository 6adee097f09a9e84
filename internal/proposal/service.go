package proposal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/access"
	"github.com/oselabs/cfopilot/internal/approval"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=proposal
type Repository interface {
	// CreateProposal inserts the proposal and its initial audit event in one
	// database transaction.
	CreateProposal(ctx context.Context, p *Proposal, event *approval.Event) error
	GetProposal(ctx context.Context, id uuid.UUID) (*Proposal, error)
	// DecideProposal flips a pending proposal to its terminal status and
	// appends the audit event in one transaction. It returns
	// ErrAlreadyDecided when the proposal is no longer pending, so the first
	// decision wins and later attempts fail instead of overwriting.
	DecideProposal(ctx context.Context, id uuid.UUID, status Status, approvedBy uuid.UUID, event *approval.Event) (*Proposal, error)
	ListProposals(ctx context.Context, filter ListFilter) ([]*Proposal, error)
	ListEvents(ctx context.Context, subjectID uuid.UUID) ([]*approval.Event, error)
}

type Service struct {
	repo    Repository
	checker *access.Checker
}

func NewService(repo Repository, checker *access.Checker) *Service {
	return &Service{repo: repo, checker: checker}
}

type SubmitParams struct {
	ProjectID   uuid.UUID
	Department  string
	AmountCents int64
	Description string
}

func (s *Service) Submit(ctx context.Context, actor access.Actor, params SubmitParams) (*Proposal, error) {
	if params.AmountCents <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	if params.ProjectID == uuid.Nil {
		return nil, fmt.Errorf("%w: project is required", ErrValidation)
	}

	if !s.checker.CanSubmitProposal(ctx, actor, params.ProjectID) {
		return nil, ErrForbidden
	}

	p := &Proposal{
		ProjectID:      params.ProjectID,
		Department:     params.Department,
		AmountCents:    params.AmountCents,
		Description:    params.Description,
		Status:         StatusPending,
		RequestedBy:    actor.ID,
		OrganizationID: actor.OrganizationID,
	}

	event := &approval.Event{
		SubjectType:    approval.SubjectProposal,
		Level:          "manager",
		Status:         approval.StatusPending,
		Comments:       "Awaiting manager approval",
		OrganizationID: actor.OrganizationID,
	}

	if err := s.repo.CreateProposal(ctx, p, event); err != nil {
		return nil, err
	}

	return p, nil
}

// Decide approves or rejects a pending proposal. The actor must be an admin
// or a manager of the proposal's project.
func (s *Service) Decide(ctx context.Context, actor access.Actor, id uuid.UUID, decision Decision, comments string) (*Proposal, error) {
	p, err := s.repo.GetProposal(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.Role.IsAdmin() && !s.checker.IsProjectManager(ctx, actor, p.ProjectID) {
		return nil, ErrForbidden
	}

	status := decision.Status()

	if comments == "" {
		comments = fmt.Sprintf("%s by manager", status)
	}

	now := time.Now()
	actorID := actor.ID
	event := &approval.Event{
		SubjectType:    approval.SubjectProposal,
		SubjectID:      id,
		ActorID:        &actorID,
		Level:          "manager",
		Status:         approval.Status(status),
		Comments:       comments,
		OrganizationID: actor.OrganizationID,
		DecidedAt:      &now,
	}

	return s.repo.DecideProposal(ctx, id, status, actor.ID, event)
}

type ListFilter struct {
	OrganizationID uuid.UUID
	RequestedBy    *uuid.UUID
	Status         *Status
	ExcludePending bool
}

// Mine lists proposals the actor has submitted, newest first.
func (s *Service) Mine(ctx context.Context, actor access.Actor) ([]*Proposal, error) {
	requester := actor.ID

	return s.repo.ListProposals(ctx, ListFilter{
		OrganizationID: actor.OrganizationID,
		RequestedBy:    &requester,
	})
}

// PendingForReviewer lists pending proposals the actor may decide: every
// pending proposal in the organization for admins, assigned projects only
// for managers.
func (s *Service) PendingForReviewer(ctx context.Context, actor access.Actor) ([]*Proposal, error) {
	if !actor.Role.Can(access.CapDecideProposal) {
		return nil, ErrForbidden
	}

	pending := StatusPending

	proposals, err := s.repo.ListProposals(ctx, ListFilter{
		OrganizationID: actor.OrganizationID,
		Status:         &pending,
	})
	if err != nil {
		return nil, err
	}

	return s.scopeToAssignments(ctx, actor, proposals)
}

// HistoryForReviewer lists decided proposals, scoped the same way as
// PendingForReviewer.
func (s *Service) HistoryForReviewer(ctx context.Context, actor access.Actor) ([]*Proposal, error) {
	if !actor.Role.Can(access.CapDecideProposal) {
		return nil, ErrForbidden
	}

	proposals, err := s.repo.ListProposals(ctx, ListFilter{
		OrganizationID: actor.OrganizationID,
		ExcludePending: true,
	})
	if err != nil {
		return nil, err
	}

	return s.scopeToAssignments(ctx, actor, proposals)
}

func (s *Service) scopeToAssignments(ctx context.Context, actor access.Actor, proposals []*Proposal) ([]*Proposal, error) {
	if actor.Role.IsAdmin() {
		return proposals, nil
	}

	assigned, err := s.checker.AssignedProjects(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("loading assignments: %w", err)
	}

	scoped := proposals[:0]

	for _, p := range proposals {
		if _, ok := assigned[p.ProjectID]; ok {
			scoped = append(scoped, p)
		}
	}

	return scoped, nil
}

// Events returns the audit trail for a proposal, newest first.
func (s *Service) Events(ctx context.Context, actor access.Actor, id uuid.UUID) ([]*approval.Event, error) {
	p, err := s.repo.GetProposal(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.OrganizationID != actor.OrganizationID {
		return nil, ErrForbidden
	}

	return s.repo.ListEvents(ctx, id)
}
