package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oselabs/cfopilot/internal/access"
)

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"admin", "manager", "employee"} {
		r, err := access.ParseRole(valid)
		assert.NoError(t, err)
		assert.Equal(t, valid, string(r))
	}

	_, err := access.ParseRole("superuser")
	assert.Error(t, err)
}

func TestCapabilityTable(t *testing.T) {
	type testCase struct {
		role access.Role
		cap  access.Capability
		want bool
	}

	tests := []testCase{
		{access.RoleAdmin, access.CapSyncPayments, true},
		{access.RoleAdmin, access.CapDecideProposal, true},
		{access.RoleManager, access.CapDecideProposal, true},
		{access.RoleManager, access.CapSyncPayments, false},
		{access.RoleManager, access.CapManageCards, true},
		{access.RoleEmployee, access.CapManageCards, false},
		{access.RoleEmployee, access.CapSubmitProposal, true},
		{access.RoleEmployee, access.CapManageBudget, false},
		{access.RoleEmployee, access.CapDecideProposal, false},
		{access.Role("unknown"), access.CapViewBudget, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.role.Can(tt.cap), "%s / %s", tt.role, tt.cap)
	}
}
