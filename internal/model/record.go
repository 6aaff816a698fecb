package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind различает доходы и расходы в общем списке записей.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Record — одна запись учёта, как её возвращает общий список.
// Для расходов категория уже склеена с описанием ("Продукты - обед").
type Record struct {
	ID          int64
	UserID      int64
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Kind        Kind
}
