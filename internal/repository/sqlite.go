package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/yachurik/Income/internal/model"
)

// dateLayout — формат даты в колонках date, как его писал исходный бот.
const dateLayout = "2006-01-02 15:04:05"

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *SQLiteRepository) InsertIncome(ctx context.Context, userID int64, amount, description string, date time.Time) error {
	sum, err := decimal.NewFromString(amount)
	if err != nil {
		return &StoreError{Op: "insert income", Err: err}
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO income (user_id, amount, description, date) VALUES (?, ?, ?, ?)`,
		userID, sum.String(), description, date.Format(dateLayout))
	return storeErr("insert income", err)
}

// InsertExpense не перепроверяет категорию: её валидирует диалог
// по списку ExpenseCategories на момент ввода.
func (r *SQLiteRepository) InsertExpense(ctx context.Context, userID int64, amount, category, description string, date time.Time) error {
	sum, err := decimal.NewFromString(amount)
	if err != nil {
		return &StoreError{Op: "insert expense", Err: err}
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO expense (user_id, amount, category, description, date) VALUES (?, ?, ?, ?, ?)`,
		userID, sum.String(), category, description, date.Format(dateLayout))
	return storeErr("insert expense", err)
}

// ListRecords возвращает записи только этого пользователя: сначала доходы,
// затем расходы, у расходов описание склеено с категорией.
func (r *SQLiteRepository) ListRecords(ctx context.Context, userID int64) ([]model.Record, error) {
	const query = `
		SELECT id, user_id, amount, description, date, 'income' AS kind FROM income WHERE user_id = ?
		UNION ALL
		SELECT id, user_id, amount, category || ' - ' || description AS description, date, 'expense' AS kind FROM expense WHERE user_id = ?`

	rows, err := r.db.QueryContext(ctx, query, userID, userID)
	if err != nil {
		return nil, storeErr("list records", err)
	}
	defer rows.Close()

	var records []model.Record
	for rows.Next() {
		var (
			rec    model.Record
			amount float64
			date   string
		)
		if err := rows.Scan(&rec.ID, &rec.UserID, &amount, &rec.Description, &date, &rec.Kind); err != nil {
			return nil, storeErr("scan record", err)
		}
		rec.Amount = decimal.NewFromFloat(amount)
		if rec.Date, err = time.Parse(dateLayout, date); err != nil {
			return nil, storeErr("parse record date", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list records", err)
	}
	return records, nil
}

// DeleteRecord не знает, какой таблице принадлежит id, поэтому пробует обе.
// true — хотя бы одна строка удалена.
func (r *SQLiteRepository) DeleteRecord(ctx context.Context, recordID int64) (bool, error) {
	var deleted int64
	for _, query := range []string{
		`DELETE FROM income WHERE id = ?`,
		`DELETE FROM expense WHERE id = ?`,
	} {
		res, err := r.db.ExecContext(ctx, query, recordID)
		if err != nil {
			return false, storeErr("delete record", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return false, storeErr("delete record", err)
		}
		deleted += n
	}
	return deleted > 0, nil
}

// UpdateIncome перезаписывает все изменяемые поля строки, включая владельца:
// записывается id вызвавшего пользователя, а не исходный.
func (r *SQLiteRepository) UpdateIncome(ctx context.Context, userID int64, amount, description string, incomeID int64) (bool, error) {
	sum, err := decimal.NewFromString(amount)
	if err != nil {
		return false, &StoreError{Op: "update income", Err: err}
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE income SET user_id = ?, amount = ?, description = ? WHERE id = ?`,
		userID, sum.String(), description, incomeID)
	if err != nil {
		return false, storeErr("update income", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, storeErr("update income", err)
	}
	return n > 0, nil
}

func (r *SQLiteRepository) UpdateExpense(ctx context.Context, userID int64, amount, category, description string, expenseID int64) (bool, error) {
	sum, err := decimal.NewFromString(amount)
	if err != nil {
		return false, &StoreError{Op: "update expense", Err: err}
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE expense SET user_id = ?, amount = ?, category = ?, description = ? WHERE id = ?`,
		userID, sum.String(), category, description, expenseID)
	if err != nil {
		return false, storeErr("update expense", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, storeErr("update expense", err)
	}
	return n > 0, nil
}

// ExpenseCategories — категории, по которым уже есть расходы.
// Посевная таблица expense_categories здесь сознательно не участвует,
// поведение унаследовано от исходного бота.
func (r *SQLiteRepository) ExpenseCategories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT category FROM expense`)
	if err != nil {
		return nil, storeErr("list expense categories", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, storeErr("scan expense category", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list expense categories", err)
	}
	return names, nil
}
