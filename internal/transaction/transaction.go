package transaction

import (
	"time"

	"github.com/google/uuid"
)

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Transaction represents a single recorded money movement. Transactions are
// immutable after creation; removal is a soft delete.
type Transaction struct {
	ID        uuid.UUID
	Amount    int64 // Amount in cents, always positive
	Type      Type
	Category  string
	Memo      string
	Date      time.Time
	CreatedAt time.Time
	DeletedAt *time.Time
}
