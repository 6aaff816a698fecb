package service

import (
	"context"
	"time"

	"github.com/yachurik/Income/internal/model"
	"github.com/yachurik/Income/internal/repository"
)

// Ledger — прикладной слой между диалогом и хранилищем.
// Проставляет системную дату записи: пользователь её не вводит.
type Ledger struct {
	records    repository.RecordStore
	categories repository.CategoryStore
	now        func() time.Time
}

func NewLedger(records repository.RecordStore, categories repository.CategoryStore) *Ledger {
	return &Ledger{
		records:    records,
		categories: categories,
		now:        time.Now,
	}
}

func (l *Ledger) AddIncome(ctx context.Context, userID int64, amount, description string) error {
	return l.records.InsertIncome(ctx, userID, amount, description, l.now())
}

func (l *Ledger) AddExpense(ctx context.Context, userID int64, amount, category, description string) error {
	return l.records.InsertExpense(ctx, userID, amount, category, description, l.now())
}

func (l *Ledger) Records(ctx context.Context, userID int64) ([]model.Record, error) {
	return l.records.ListRecords(ctx, userID)
}

func (l *Ledger) Delete(ctx context.Context, recordID int64) (bool, error) {
	return l.records.DeleteRecord(ctx, recordID)
}

func (l *Ledger) UpdateIncome(ctx context.Context, userID int64, amount, description string, incomeID int64) (bool, error) {
	return l.records.UpdateIncome(ctx, userID, amount, description, incomeID)
}

func (l *Ledger) UpdateExpense(ctx context.Context, userID int64, amount, category, description string, expenseID int64) (bool, error) {
	return l.records.UpdateExpense(ctx, userID, amount, category, description, expenseID)
}

func (l *Ledger) ExpenseCategories(ctx context.Context) ([]string, error) {
	return l.categories.ExpenseCategories(ctx)
}
