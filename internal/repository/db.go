package repository

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"campwise/internal/config"
	"campwise/internal/fixtures"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL драйвер
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Open подключается к базе данных, выбранной в настройках.
func Open(cfg config.DB) (*sqlx.DB, error) {
	db, err := sqlx.Connect(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к базе данных (%s): %w", cfg.Driver, err)
	}
	if cfg.Driver == "sqlite" {
		// каждое соединение с ":memory:" - отдельная база
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

// Migrate выполняет встроенные миграции по порядку имен файлов, каждую в своей транзакции.
func Migrate(ctx context.Context, db *sqlx.DB, logger *zap.Logger) error {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("ошибка чтения миграций: %w", err)
	}
	sort.Strings(files)
	for _, file := range files {
		content, err := migrations.ReadFile(file)
		if err != nil {
			return fmt.Errorf("ошибка чтения миграции %s: %w", file, err)
		}
		tx, err := db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("ошибка при инициации транзакции миграции: %w", err)
		}
		for _, stmt := range strings.Split(string(content), ";") {
			if strings.TrimSpace(stmt) == "" {
				continue
			}
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				tx.Rollback()
				return fmt.Errorf("миграция %s завершилась ошибкой: %w", file, err)
			}
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("миграция %s: %w", file, err)
		}
		logger.Info("миграция применена", zap.String("file", file))
	}
	return nil
}

// Seed заполняет пустую базу демонстрационными данными. Повторный вызов ничего не меняет.
func Seed(ctx context.Context, db *sqlx.DB, profile config.Identity) error {
	var count int
	if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM campsites"); err != nil {
		return fmt.Errorf("ошибка проверки данных: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := seed(ctx, tx, profile); err != nil {
		tx.Rollback()
		return fmt.Errorf("не удалось заполнить базу: %w", err)
	}
	return tx.Commit()
}

func seed(ctx context.Context, tx *sqlx.Tx, profile config.Identity) error {
	for _, c := range fixtures.Campsites() {
		_, err := tx.ExecContext(ctx, tx.Rebind(`INSERT INTO campsites
			(id, name, distance, tag, rating, reviews, description, image, pos_left, pos_top)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
			c.ID, c.Name, c.Distance, c.Tag, c.Rating, c.Reviews, c.Description, c.Image, c.Left, c.Top)
		if err != nil {
			return err
		}
		for i, tag := range c.Tags {
			if _, err := tx.ExecContext(ctx, tx.Rebind("INSERT INTO campsite_tags (campsite_id, tag, position) VALUES (?, ?, ?)"), c.ID, tag, i+1); err != nil {
				return err
			}
		}
	}
	for i, f := range fixtures.Folders() {
		if _, err := tx.ExecContext(ctx, tx.Rebind("INSERT INTO folders (id, name, position) VALUES (?, ?, ?)"), f.ID, f.Name, i+1); err != nil {
			return err
		}
	}
	for i, p := range fixtures.SavedPlaces() {
		_, err := tx.ExecContext(ctx, tx.Rebind("INSERT INTO saved_places (name, location, image, folder_id, position) VALUES (?, ?, ?, ?, ?)"),
			p.Name, p.Location, p.Image, p.Folder, i+1)
		if err != nil {
			return err
		}
		for j, tag := range p.Tags {
			if _, err := tx.ExecContext(ctx, tx.Rebind("INSERT INTO saved_place_tags (place_name, tag, position) VALUES (?, ?, ?)"), p.Name, tag, j+1); err != nil {
				return err
			}
		}
	}
	for i, name := range fixtures.OfflinePlaces() {
		if _, err := tx.ExecContext(ctx, tx.Rebind("INSERT INTO offline_places (name, position) VALUES (?, ?)"), name, i+1); err != nil {
			return err
		}
	}
	for _, d := range fixtures.Itinerary() {
		_, err := tx.ExecContext(ctx, tx.Rebind(`INSERT INTO itinerary_days
			(trip_id, id, day, location, campsite, description, order_index)
			VALUES (?, ?, ?, ?, ?, ?, ?)`),
			d.TripID, d.ID, d.Day, d.Location, d.Campsite, d.Description, d.Order)
		if err != nil {
			return err
		}
	}
	_, err := tx.ExecContext(ctx, tx.Rebind("INSERT INTO profiles (user_id, name, user_type) VALUES (?, ?, ?)"),
		profile.UserID, profile.Name, fixtures.UserTypes()[0])
	return err
}
