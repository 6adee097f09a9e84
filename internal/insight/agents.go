package insight

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/oselabs/cfopilot/internal/access"
	"github.com/oselabs/cfopilot/internal/budget"
)

// Invoker is the language model behind the assistant.
type Invoker interface {
	Invoke(ctx context.Context, system, prompt string) (string, error)
}

type Agent string

const (
	AgentCashflow Agent = "cashflow"
	AgentSpending Agent = "spending"
	AgentAlert    Agent = "alert"
	AgentBudget   Agent = "budget"
	AgentPolicy   Agent = "policy"
	AgentGeneral  Agent = "general"
)

// agentKeywords routes a question to a specialist agent on simple keyword
// hits; anything unmatched falls through to the general agent.
var agentKeywords = map[Agent][]string{
	AgentCashflow: {"cashflow", "cash flow", "runway", "burn", "forecast"},
	AgentSpending: {"spend", "spending", "expense", "merchant", "transaction"},
	AgentAlert:    {"alert", "warning", "notify", "notification"},
	AgentBudget:   {"budget", "variance", "allocation", "quarter"},
	AgentPolicy:   {"policy", "allowed", "reimburs", "compliance", "rule"},
}

func routeAgent(message string) Agent {
	lower := strings.ToLower(message)

	for _, agent := range []Agent{AgentCashflow, AgentSpending, AgentAlert, AgentBudget, AgentPolicy} {
		for _, kw := range agentKeywords[agent] {
			if strings.Contains(lower, kw) {
				return agent
			}
		}
	}

	return AgentGeneral
}

const assistantSystemPrompt = "You are a CFO assistant for a business finance dashboard. " +
	"Answer concisely using the context provided. Amounts in the context are in cents."

// Chat routes the question to an agent, gathers that agent's context from
// live data, asks the model, and records the exchange.
func (s *Service) Chat(ctx context.Context, actor access.Actor, model Invoker, message string) (*ChatEntry, error) {
	if !actor.Role.Can(access.CapViewInsights) {
		return nil, ErrForbidden
	}

	agent := routeAgent(message)

	contextBlock, err := s.agentContext(ctx, actor, agent)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf("Context:\n%s\n\nQuestion: %s", contextBlock, message)

	response, err := model.Invoke(ctx, assistantSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("invoking model: %w", err)
	}

	userID := actor.ID
	entry := &ChatEntry{
		UserID:         &userID,
		OrganizationID: actor.OrganizationID,
		Message:        message,
		Response:       response,
		AgentType:      string(agent),
	}
	if err := s.repo.CreateChatEntry(ctx, entry); err != nil {
		// The answer already exists; losing the history row is not fatal.
		slog.Error("failed to record chat entry", "user_id", actor.ID, "error", err)
	}

	return entry, nil
}

func (s *Service) agentContext(ctx context.Context, actor access.Actor, agent Agent) (string, error) {
	switch agent {
	case AgentCashflow:
		forecast, err := s.CashflowForecast(ctx, actor, 3)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf(
			"Monthly burn: %d cents. Pending receivables: %d cents. Net position: %d cents.",
			forecast.MonthlyBurnCents, forecast.PendingReceivablesCents, forecast.NetPositionCents,
		), nil

	case AgentSpending, AgentGeneral:
		summary, err := s.SpendingSummary(ctx, actor, 30)
		if err != nil {
			return "", err
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Last 30 days: %d transactions totaling %d cents (avg %d).\n", summary.Count, summary.TotalCents, summary.AverageCents)

		for _, m := range summary.TopMerchants {
			fmt.Fprintf(&sb, "Top merchant %s: %d cents.\n", m.Merchant, m.TotalCents)
		}

		return sb.String(), nil

	case AgentAlert:
		alerts, err := s.repo.ListAlerts(ctx, actor.OrganizationID, true)
		if err != nil {
			return "", err
		}

		if len(alerts) == 0 {
			return "No unread alerts.", nil
		}

		var sb strings.Builder
		for _, a := range alerts {
			fmt.Fprintf(&sb, "[%s] %s\n", a.Severity, a.Message)
		}

		return sb.String(), nil

	case AgentBudget:
		budgets, err := s.budgets.List(ctx, actor, budget.ListFilter{})
		if err != nil {
			return "", err
		}

		var sb strings.Builder
		for _, b := range budgets {
			fmt.Fprintf(&sb, "%s/%s %s %d: approved %d cents, spent %d cents (%.1f%%).\n",
				b.Department, b.Category, b.Quarter, b.Year, b.ApprovedCents, b.SpentCents, b.UsagePercent())
		}

		if sb.Len() == 0 {
			return "No budgets configured.", nil
		}

		return sb.String(), nil

	case AgentPolicy:
		docs, err := s.repo.ListPolicyDocuments(ctx, actor.OrganizationID)
		if err != nil {
			return "", err
		}

		if len(docs) == 0 {
			return "No spend policies on file.", nil
		}

		var sb strings.Builder
		for _, doc := range docs {
			fmt.Fprintf(&sb, "Policy (%s): %s\n", doc.Category, doc.Content)
		}

		return sb.String(), nil
	}

	return "", nil
}
