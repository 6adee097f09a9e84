package access

import "fmt"

// Role is the closed set of roles a user can hold.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleEmployee:
		return Role(s), nil
	}

	return "", fmt.Errorf("unknown role %q", s)
}

// Capability names a coarse permission independent of any entity instance.
// Entity-level conditions (organization, project assignment) are layered on
// top by the Checker.
type Capability string

const (
	CapViewBudget     Capability = "view_budget"
	CapManageBudget   Capability = "manage_budget"
	CapSubmitProposal Capability = "submit_proposal"
	CapDecideProposal Capability = "decide_proposal"
	CapManageCards    Capability = "manage_cards"
	CapSyncPayments   Capability = "sync_payments"
	CapDisburse       Capability = "disburse"
	CapViewInsights   Capability = "view_insights"
	CapManageIdentity Capability = "manage_identity"
)

var grants = map[Role]map[Capability]bool{
	RoleAdmin: {
		CapViewBudget:     true,
		CapManageBudget:   true,
		CapSubmitProposal: true,
		CapDecideProposal: true,
		CapManageCards:    true,
		CapSyncPayments:   true,
		CapDisburse:       true,
		CapViewInsights:   true,
		CapManageIdentity: true,
	},
	RoleManager: {
		CapViewBudget:     true,
		CapManageBudget:   true,
		CapSubmitProposal: true,
		CapDecideProposal: true,
		CapManageCards:    true,
		CapViewInsights:   true,
	},
	RoleEmployee: {
		CapViewBudget:     true,
		CapSubmitProposal: true,
		CapViewInsights:   true,
	},
}

// Can reports whether the role holds the capability at all. Callers still
// need the Checker for organization and project scoping.
func (r Role) Can(c Capability) bool {
	return grants[r][c]
}

func (r Role) IsAdmin() bool    { return r == RoleAdmin }
func (r Role) IsManager() bool  { return r == RoleManager }
func (r Role) IsEmployee() bool { return r == RoleEmployee }
