package budget

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/access"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=budget
type Repository interface {
	CreateBudget(ctx context.Context, b *Budget) error
	GetBudget(ctx context.Context, id uuid.UUID) (*Budget, error)
	ListBudgets(ctx context.Context, filter ListFilter) ([]*Budget, error)
	UpdateBudget(ctx context.Context, b *Budget) error
	DeleteBudget(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo    Repository
	checker *access.Checker
}

func NewService(repo Repository, checker *access.Checker) *Service {
	return &Service{repo: repo, checker: checker}
}

type ListFilter struct {
	OrganizationID uuid.UUID
	Department     *string
	ProjectID      *uuid.UUID
	Quarter        *string
	Year           *int
}

// List returns the budgets visible to the actor, sorted by usage descending.
// Managers and employees only see budgets on their assigned projects plus
// organization-wide budgets.
func (s *Service) List(ctx context.Context, actor access.Actor, filter ListFilter) ([]*Budget, error) {
	filter.OrganizationID = actor.OrganizationID

	budgets, err := s.repo.ListBudgets(ctx, filter)
	if err != nil {
		return nil, err
	}

	if !actor.Role.IsAdmin() {
		assigned, err := s.checker.AssignedProjects(ctx, actor)
		if err != nil {
			return nil, fmt.Errorf("loading assignments: %w", err)
		}

		visible := budgets[:0]

		for _, b := range budgets {
			if b.ProjectID == nil {
				visible = append(visible, b)
				continue
			}

			if _, ok := assigned[*b.ProjectID]; ok {
				visible = append(visible, b)
			}
		}

		budgets = visible
	}

	sort.SliceStable(budgets, func(i, j int) bool {
		return budgets[i].UsagePercent() > budgets[j].UsagePercent()
	})

	return budgets, nil
}

func (s *Service) Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*Budget, error) {
	b, err := s.repo.GetBudget(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.checker.CanViewBudget(ctx, actor, access.BudgetRef{OrganizationID: b.OrganizationID, ProjectID: b.ProjectID}) {
		return nil, ErrForbidden
	}

	return b, nil
}

type CreateParams struct {
	Department    string
	Category      string
	ProjectID     uuid.UUID
	Quarter       string
	Year          int
	ApprovedCents int64
}

// Create requires the actor to manage the target project. Quarter and year
// default to the current ones when omitted.
func (s *Service) Create(ctx context.Context, actor access.Actor, params CreateParams) (*Budget, error) {
	if params.ApprovedCents < 0 {
		return nil, fmt.Errorf("%w: approved amount must not be negative", ErrValidation)
	}

	if params.Department == "" {
		return nil, fmt.Errorf("%w: department is required", ErrValidation)
	}

	if params.ProjectID == uuid.Nil {
		return nil, fmt.Errorf("%w: project is required", ErrValidation)
	}

	if !s.checker.IsProjectManager(ctx, actor, params.ProjectID) {
		return nil, ErrForbidden
	}

	now := time.Now()

	if params.Year == 0 {
		params.Year = now.Year()
	}

	if params.Quarter == "" {
		params.Quarter = fmt.Sprintf("Q%d", (int(now.Month())-1)/3+1)
	}

	if params.Category == "" {
		params.Category = "General"
	}

	projectID := params.ProjectID
	b := &Budget{
		Department:     params.Department,
		Category:       params.Category,
		ProjectID:      &projectID,
		Quarter:        params.Quarter,
		Year:           params.Year,
		ApprovedCents:  params.ApprovedCents,
		OrganizationID: actor.OrganizationID,
	}
	if err := s.repo.CreateBudget(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

type UpdateParams struct {
	Department    *string
	Category      *string
	ApprovedCents *int64
	SpentCents    *int64
	Quarter       *string
	Year          *int
}

func (s *Service) Update(ctx context.Context, actor access.Actor, id uuid.UUID, params UpdateParams) (*Budget, error) {
	b, err := s.repo.GetBudget(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.checker.CanEditBudget(ctx, actor, access.BudgetRef{OrganizationID: b.OrganizationID, ProjectID: b.ProjectID}) {
		return nil, ErrForbidden
	}

	if params.Department != nil {
		b.Department = *params.Department
	}

	if params.Category != nil {
		b.Category = *params.Category
	}

	if params.ApprovedCents != nil {
		if *params.ApprovedCents < 0 {
			return nil, fmt.Errorf("%w: approved amount must not be negative", ErrValidation)
		}

		b.ApprovedCents = *params.ApprovedCents
	}

	if params.SpentCents != nil {
		b.SpentCents = *params.SpentCents
	}

	if params.Quarter != nil {
		b.Quarter = *params.Quarter
	}

	if params.Year != nil {
		b.Year = *params.Year
	}

	if err := s.repo.UpdateBudget(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Service) Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	b, err := s.repo.GetBudget(ctx, id)
	if err != nil {
		return err
	}

	if !s.checker.CanDeleteBudget(ctx, actor, access.BudgetRef{OrganizationID: b.OrganizationID, ProjectID: b.ProjectID}) {
		return ErrForbidden
	}

	return s.repo.DeleteBudget(ctx, id)
}

// Usage aggregates totals across the budgets matching the filter.
type Usage struct {
	TotalApprovedCents  int64
	TotalSpentCents     int64
	TotalRemainingCents int64
	OverallUsagePercent float64
	Count               int
}

func (s *Service) Usage(ctx context.Context, actor access.Actor, filter ListFilter) (*Usage, error) {
	budgets, err := s.List(ctx, actor, filter)
	if err != nil {
		return nil, err
	}

	usage := &Usage{Count: len(budgets)}

	for _, b := range budgets {
		usage.TotalApprovedCents += b.ApprovedCents
		usage.TotalSpentCents += b.SpentCents
	}

	usage.TotalRemainingCents = usage.TotalApprovedCents - usage.TotalSpentCents
	usage.OverallUsagePercent = (&Budget{ApprovedCents: usage.TotalApprovedCents, SpentCents: usage.TotalSpentCents}).UsagePercent()

	return usage, nil
}

// Variance is one row of the budget variance report.
type Variance struct {
	Department      string
	Category        string
	ApprovedCents   int64
	SpentCents      int64
	VariancePercent float64
	Status          string
	Quarter         string
	Year            int
}

// Analysis reports variance per budget, worst offenders first. Budgets with
// nothing approved are skipped.
func (s *Service) Analysis(ctx context.Context, actor access.Actor) ([]Variance, error) {
	budgets, err := s.List(ctx, actor, ListFilter{})
	if err != nil {
		return nil, err
	}

	report := make([]Variance, 0, len(budgets))

	for _, b := range budgets {
		if b.ApprovedCents <= 0 {
			continue
		}

		status := "under"
		if b.IsOverBudget() {
			status = "over"
		}

		report = append(report, Variance{
			Department:      b.Department,
			Category:        b.Category,
			ApprovedCents:   b.ApprovedCents,
			SpentCents:      b.SpentCents,
			VariancePercent: b.VariancePercent(),
			Status:          status,
			Quarter:         b.Quarter,
			Year:            b.Year,
		})
	}

	sort.SliceStable(report, func(i, j int) bool {
		vi, vj := report[i].VariancePercent, report[j].VariancePercent
		if vi < 0 {
			vi = -vi
		}

		if vj < 0 {
			vj = -vj
		}

		return vi > vj
	})

	return report, nil
}

// FilterOptions lists the distinct values useful for dashboard filters.
type FilterOptions struct {
	Departments []string
	ProjectIDs  []uuid.UUID
	Quarters    []string
	Years       []int
}

func (s *Service) FilterOptions(ctx context.Context, actor access.Actor) (*FilterOptions, error) {
	budgets, err := s.List(ctx, actor, ListFilter{})
	if err != nil {
		return nil, err
	}

	depts := make(map[string]struct{})
	projects := make(map[uuid.UUID]struct{})
	quarters := make(map[string]struct{})
	years := make(map[int]struct{})

	for _, b := range budgets {
		if b.Department != "" {
			depts[b.Department] = struct{}{}
		}

		if b.ProjectID != nil {
			projects[*b.ProjectID] = struct{}{}
		}

		switch b.Quarter {
		case "Q1", "Q2", "Q3", "Q4":
			quarters[b.Quarter] = struct{}{}
		}

		if b.Year > 0 {
			years[b.Year] = struct{}{}
		}
	}

	opts := &FilterOptions{}

	for d := range depts {
		opts.Departments = append(opts.Departments, d)
	}

	for p := range projects {
		opts.ProjectIDs = append(opts.ProjectIDs, p)
	}

	for q := range quarters {
		opts.Quarters = append(opts.Quarters, q)
	}

	for y := range years {
		opts.Years = append(opts.Years, y)
	}

	sort.Strings(opts.Departments)
	sort.Slice(opts.ProjectIDs, func(i, j int) bool { return opts.ProjectIDs[i].String() < opts.ProjectIDs[j].String() })
	sort.Strings(opts.Quarters)
	sort.Ints(opts.Years)

	return opts, nil
}
