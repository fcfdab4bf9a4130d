package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"campwise/internal/apperr"
	"campwise/internal/model"

	"github.com/jmoiron/sqlx"
)

// ProfileRepository обеспечивает доступ к профилям пользователей в базе данных.
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository создаёт новый репозиторий профилей.
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

type profileRow struct {
	model.Profile
	DarkMode int `db:"dark_mode"`
}

// GetByUserID возвращает профиль вместе с предпочтениями.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int) (*model.Profile, error) {
	var row profileRow
	err := r.db.GetContext(ctx, &row, r.db.Rebind("SELECT user_id, name, user_type, vehicle, dark_mode FROM profiles WHERE user_id=?"), userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound(fmt.Sprintf("profile %d", userID))
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении профиля: %w", err)
	}
	profile := row.Profile
	profile.DarkMode = row.DarkMode != 0
	profile.Preferences = []string{}
	err = r.db.SelectContext(ctx, &profile.Preferences, r.db.Rebind(
		"SELECT preference FROM profile_preferences WHERE user_id=? ORDER BY position"), userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении предпочтений: %w", err)
	}
	return &profile, nil
}

// UpdateUserType меняет тип путешественника.
func (r *ProfileRepository) UpdateUserType(ctx context.Context, userID int, userType string) error {
	return r.update(ctx, "UPDATE profiles SET user_type=? WHERE user_id=?", userType, userID)
}

// UpdateDarkMode сохраняет настройку темной темы.
func (r *ProfileRepository) UpdateDarkMode(ctx context.Context, userID int, enabled bool) error {
	v := 0
	if enabled {
		v = 1
	}
	return r.update(ctx, "UPDATE profiles SET dark_mode=? WHERE user_id=?", v, userID)
}

// UpdateOnboarding сохраняет транспорт и заменяет список предпочтений.
func (r *ProfileRepository) UpdateOnboarding(ctx context.Context, userID int, vehicle string, preferences []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	err = func() error {
		if _, err := tx.ExecContext(ctx, tx.Rebind("UPDATE profiles SET vehicle=? WHERE user_id=?"), vehicle, userID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM profile_preferences WHERE user_id=?"), userID); err != nil {
			return err
		}
		for i, p := range preferences {
			_, err := tx.ExecContext(ctx, tx.Rebind("INSERT INTO profile_preferences (user_id, preference, position) VALUES (?, ?, ?)"), userID, p, i+1)
			if err != nil {
				return err
			}
		}
		return nil
	}()
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("не удалось сохранить онбординг: %w", err)
	}
	return tx.Commit()
}

func (r *ProfileRepository) update(ctx context.Context, query string, args ...interface{}) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return fmt.Errorf("не удалось обновить профиль: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperr.NotFound("profile")
	}
	return nil
}
