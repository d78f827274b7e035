package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/akiramoriyama0316-alt/money-tracker/internal/transaction"
)

type transactionResponse struct {
	ID        uuid.UUID        `json:"id"`
	Amount    int64            `json:"amount"`
	Type      transaction.Type `json:"type"`
	Category  string           `json:"category"`
	Memo      string           `json:"memo,omitempty"`
	Date      string           `json:"date"`
	CreatedAt time.Time        `json:"created_at"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:        tx.ID,
		Amount:    tx.Amount,
		Type:      tx.Type,
		Category:  tx.Category,
		Memo:      tx.Memo,
		Date:      tx.Date.Format(time.DateOnly),
		CreatedAt: tx.CreatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
