package card

import (
	"time"

	"github.com/google/uuid"

	"github.com/oselabs/cfopilot/internal/card"
)

type cardResponse struct {
	ID                    uuid.UUID   `json:"id"`
	CardNumber            string      `json:"card_number"`
	CardName              string      `json:"card_name"`
	UserID                *uuid.UUID  `json:"user_id,omitempty"`
	MonthlyLimitCents     int64       `json:"monthly_limit_cents"`
	TransactionLimitCents int64       `json:"transaction_limit_cents"`
	BalanceCents          int64       `json:"balance_cents"`
	Status                card.Status `json:"status"`
	CardType              card.Type   `json:"card_type"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
}

func toResponse(c *card.CorporateCard) cardResponse {
	return cardResponse{
		ID:                    c.ID,
		CardNumber:            c.CardNumber,
		CardName:              c.CardName,
		UserID:                c.UserID,
		MonthlyLimitCents:     c.MonthlyLimitCents,
		TransactionLimitCents: c.TransactionLimitCents,
		BalanceCents:          c.BalanceCents,
		Status:                c.Status,
		CardType:              c.CardType,
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}
}

func toResponseList(cards []*card.CorporateCard) []cardResponse {
	resp := make([]cardResponse, len(cards))
	for i, c := range cards {
		resp[i] = toResponse(c)
	}

	return resp
}

type cardTransactionResponse struct {
	ID            uuid.UUID `json:"id"`
	CardID        uuid.UUID `json:"card_id"`
	TransactionID uuid.UUID `json:"transaction_id"`
	AmountCents   int64     `json:"amount_cents"`
	Merchant      string    `json:"merchant"`
	Category      string    `json:"category"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func toCardTransactionList(cts []*card.CardTransaction) []cardTransactionResponse {
	resp := make([]cardTransactionResponse, len(cts))
	for i, ct := range cts {
		resp[i] = cardTransactionResponse{
			ID:            ct.ID,
			CardID:        ct.CardID,
			TransactionID: ct.TransactionID,
			AmountCents:   ct.AmountCents,
			Merchant:      ct.Merchant,
			Category:      ct.Category,
			Status:        ct.Status,
			CreatedAt:     ct.CreatedAt,
		}
	}

	return resp
}
