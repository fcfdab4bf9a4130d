package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Таблицы-множества имеют колонки name и position; position хранит порядок добавления.

func listNames(ctx context.Context, q sqlx.QueryerContext, table string) ([]string, error) {
	names := []string{}
	if err := sqlx.SelectContext(ctx, q, &names, "SELECT name FROM "+table+" ORDER BY position, name"); err != nil {
		return nil, fmt.Errorf("ошибка при чтении %s: %w", table, err)
	}
	return names, nil
}

// toggleName удаляет name из множества или добавляет его в конец одной транзакцией.
// Возвращает новое множество и признак того, что name теперь в нем.
func toggleName(ctx context.Context, db *sqlx.DB, table, name string) ([]string, bool, error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("ошибка при инициации транзакции: %w", err)
	}
	defer tx.Rollback()

	member, err := flipName(ctx, tx, table, name)
	if err != nil {
		return nil, false, fmt.Errorf("ошибка при изменении %s: %w", table, err)
	}
	names, err := listNames(ctx, tx, table)
	if err != nil {
		return nil, false, err
	}
	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("ошибка при сохранении %s: %w", table, err)
	}
	return names, member, nil
}

func flipName(ctx context.Context, tx *sqlx.Tx, table, name string) (bool, error) {
	deleted, err := deleteName(ctx, tx, table, name)
	if err != nil || deleted {
		return false, err
	}
	res, err := tx.ExecContext(ctx, tx.Rebind("INSERT INTO "+table+" (name, position) "+
		"SELECT ?, COALESCE(MAX(position), 0) + 1 FROM "+table+" WHERE true ON CONFLICT DO NOTHING"), name)
	if err != nil {
		return false, err
	}
	if n, err := res.RowsAffected(); err != nil || n == 1 {
		return n == 1, err
	}
	// параллельная транзакция успела добавить name: переключение после нее удаляет его
	_, err = deleteName(ctx, tx, table, name)
	return false, err
}

func deleteName(ctx context.Context, tx *sqlx.Tx, table, name string) (bool, error) {
	res, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM "+table+" WHERE name=?"), name)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
