package insight_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oselabs/cfopilot/internal/insight"
	"github.com/oselabs/cfopilot/internal/transaction"
)

type fakeInvoker struct {
	gotSystem string
	gotPrompt string
	reply     string
}

func (f *fakeInvoker) Invoke(_ context.Context, system, prompt string) (string, error) {
	f.gotSystem = system
	f.gotPrompt = prompt
	return f.reply, nil
}

func TestService_Chat_RoutesToCashflowAgent(t *testing.T) {
	f := newFixture(t)

	f.txs.EXPECT().
		List(gomock.Any(), f.admin, gomock.Any()).
		Return([]*transaction.Transaction{{AmountCents: 300_000}}, nil)
	f.receivables.EXPECT().
		PendingReceivables(gomock.Any(), f.admin).
		Return(int64(0), nil)
	f.repo.EXPECT().
		CreateChatEntry(gomock.Any(), gomock.Any()).
		Return(nil)

	model := &fakeInvoker{reply: "Your runway is fine."}

	entry, err := f.svc.Chat(context.Background(), f.admin, model, "What does our runway look like?")
	require.NoError(t, err)
	assert.Equal(t, "cashflow", entry.AgentType)
	assert.Equal(t, "Your runway is fine.", entry.Response)
	assert.Contains(t, model.gotPrompt, "Monthly burn")
}

func TestService_Chat_PolicyAgentUsesDocuments(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		ListPolicyDocuments(gomock.Any(), f.admin.OrganizationID).
		Return([]*insight.PolicyDocument{
			{Content: "Meals over $75 need a receipt.", Category: "expenses"},
		}, nil)
	f.repo.EXPECT().
		CreateChatEntry(gomock.Any(), gomock.Any()).
		Return(nil)

	model := &fakeInvoker{reply: "Receipts are required over $75."}

	entry, err := f.svc.Chat(context.Background(), f.admin, model, "What is the reimbursement policy for meals?")
	require.NoError(t, err)
	assert.Equal(t, "policy", entry.AgentType)
	assert.Contains(t, model.gotPrompt, "Meals over $75")
}
