package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/transaction"
)

type transactionResponse struct {
	ID               uuid.UUID          `json:"id"`
	ExternalID       *string            `json:"external_id,omitempty"`
	AmountCents      int64              `json:"amount_cents"`
	Currency         string             `json:"currency"`
	Date             time.Time          `json:"date"`
	Category         string             `json:"category"`
	Merchant         string             `json:"merchant"`
	Status           transaction.Status `json:"status"`
	Description      string             `json:"description"`
	PaymentMethod    string             `json:"payment_method"`
	FraudFlag        bool               `json:"fraud_flag"`
	ApprovalRequired bool               `json:"approval_required"`
	ProjectID        *uuid.UUID         `json:"project_id,omitempty"`
	CardID           *uuid.UUID         `json:"card_id,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:               tx.ID,
		ExternalID:       tx.ExternalID,
		AmountCents:      tx.AmountCents,
		Currency:         tx.Currency,
		Date:             tx.Date,
		Category:         tx.Category,
		Merchant:         tx.Merchant,
		Status:           tx.Status,
		Description:      tx.Description,
		PaymentMethod:    tx.PaymentMethod,
		FraudFlag:        tx.FraudFlag,
		ApprovalRequired: tx.ApprovalRequired,
		ProjectID:        tx.ProjectID,
		CardID:           tx.CardID,
		CreatedAt:        tx.CreatedAt,
		UpdatedAt:        tx.UpdatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
