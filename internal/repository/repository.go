package repository

import (
	"context"
	"time"

	"github.com/yachurik/Income/internal/model"
)

// RecordStore владеет CRUD-операциями над доходами и расходами.
// Суммы принимаются строками как ввёл пользователь; приведение к числу
// выполняет хранилище, ошибка приведения — это StoreError.
type RecordStore interface {
	InsertIncome(ctx context.Context, userID int64, amount, description string, date time.Time) error
	InsertExpense(ctx context.Context, userID int64, amount, category, description string, date time.Time) error
	ListRecords(ctx context.Context, userID int64) ([]model.Record, error)
	DeleteRecord(ctx context.Context, recordID int64) (bool, error)
	UpdateIncome(ctx context.Context, userID int64, amount, description string, incomeID int64) (bool, error)
	UpdateExpense(ctx context.Context, userID int64, amount, category, description string, expenseID int64) (bool, error)
}

// CategoryStore отдаёт список категорий расходов, доступных для выбора.
type CategoryStore interface {
	ExpenseCategories(ctx context.Context) ([]string, error)
}
