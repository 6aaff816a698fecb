package repository

import (
	"context"

	"github.com/yachurik/Income/internal/model"
)

// Посевной справочник категорий. Заполняется только утилитой cmd/seed.
var defaultCategories = []model.Category{
	{Name: "Зарплата", Kind: model.KindIncome},
	{Name: "Аванс", Kind: model.KindIncome},
	{Name: "Премия", Kind: model.KindIncome},
	{Name: "Другое", Kind: model.KindIncome},
	{Name: "Аренда", Kind: model.KindExpense},
	{Name: "Продукты", Kind: model.KindExpense},
	{Name: "Транспорт", Kind: model.KindExpense},
	{Name: "Развлечения", Kind: model.KindExpense},
	{Name: "Другое", Kind: model.KindExpense},
}

// SeedDefaults — разрушительная инициализация: сбрасывает все четыре таблицы
// и заново заливает справочник категорий. Вызывается только при развёртывании,
// из диалогового движка недостижима.
func (r *SQLiteRepository) SeedDefaults(ctx context.Context) error {
	stmts := []string{
		`DROP TABLE IF EXISTS income`,
		`DROP TABLE IF EXISTS expense`,
		`DROP TABLE IF EXISTS income_categories`,
		`DROP TABLE IF EXISTS expense_categories`,
		`CREATE TABLE income (
			id INTEGER PRIMARY KEY,
			user_id INTEGER NOT NULL,
			amount REAL NOT NULL,
			description TEXT,
			date TEXT
		)`,
		`CREATE TABLE expense (
			id INTEGER PRIMARY KEY,
			user_id INTEGER NOT NULL,
			amount REAL NOT NULL,
			category TEXT,
			description TEXT,
			date TEXT
		)`,
		`CREATE TABLE income_categories (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE expense_categories (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return storeErr("seed defaults", err)
		}
	}

	for _, cat := range defaultCategories {
		table := "income_categories"
		if cat.Kind == model.KindExpense {
			table = "expense_categories"
		}
		if _, err := r.db.ExecContext(ctx, `INSERT INTO `+table+` (name) VALUES (?)`, cat.Name); err != nil {
			return storeErr("seed defaults", err)
		}
	}
	return nil
}
