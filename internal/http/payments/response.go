package payments

import (
	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/payments"
)

type syncResponse struct {
	Charges int `json:"charges"`
	Payouts int `json:"payouts"`
}

func toSyncResponse(r *payments.SyncResult) syncResponse {
	return syncResponse{Charges: r.Charges, Payouts: r.Payouts}
}

type disbursementResponse struct {
	ProposalID uuid.UUID `json:"proposal_id"`
	TransferID string    `json:"transfer_id"`
	PayoutID   string    `json:"payout_id,omitempty"`
	DryRun     bool      `json:"dry_run"`
}

func toDisbursementResponse(d *payments.Disbursement) disbursementResponse {
	return disbursementResponse{
		ProposalID: d.ProposalID,
		TransferID: d.TransferID,
		PayoutID:   d.PayoutID,
		DryRun:     d.DryRun,
	}
}
