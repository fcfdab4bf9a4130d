package repository

import (
	"context"
	"fmt"

	"campwise/internal/model"

	"github.com/jmoiron/sqlx"
)

// FavoriteRepository обеспечивает доступ к папкам избранного, сохраненным местам и офлайн-доступу.
type FavoriteRepository struct {
	db *sqlx.DB
}

// NewFavoriteRepository создает новый репозиторий избранного.
func NewFavoriteRepository(db *sqlx.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Folders возвращает пользовательские папки в порядке создания.
func (r *FavoriteRepository) Folders(ctx context.Context) ([]model.Folder, error) {
	folders := []model.Folder{}
	if err := r.db.SelectContext(ctx, &folders, "SELECT id, name FROM folders ORDER BY position"); err != nil {
		return nil, fmt.Errorf("ошибка при получении папок: %w", err)
	}
	return folders, nil
}

// CreateFolder создает папку. Возвращает false, если папка с таким идентификатором уже есть.
func (r *FavoriteRepository) CreateFolder(ctx context.Context, folder model.Folder) (bool, error) {
	var position int
	if err := r.db.GetContext(ctx, &position, "SELECT COALESCE(MAX(position), 0) + 1 FROM folders"); err != nil {
		return false, fmt.Errorf("не удалось создать папку: %w", err)
	}
	res, err := r.db.ExecContext(ctx, r.db.Rebind("INSERT INTO folders (id, name, position) VALUES (?, ?, ?) ON CONFLICT DO NOTHING"),
		folder.ID, folder.Name, position)
	if err != nil {
		return false, fmt.Errorf("не удалось создать папку: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("не удалось создать папку: %w", err)
	}
	return n == 1, nil
}

// Places возвращает все сохраненные места с ярлыками в порядке добавления.
func (r *FavoriteRepository) Places(ctx context.Context) ([]model.SavedPlace, error) {
	places := []model.SavedPlace{}
	if err := r.db.SelectContext(ctx, &places, "SELECT name, location, image, folder_id FROM saved_places ORDER BY position"); err != nil {
		return nil, fmt.Errorf("ошибка при получении сохраненных мест: %w", err)
	}
	rows := []struct {
		PlaceName string `db:"place_name"`
		Tag       string `db:"tag"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, "SELECT place_name, tag FROM saved_place_tags ORDER BY place_name, position"); err != nil {
		return nil, fmt.Errorf("ошибка при получении ярлыков мест: %w", err)
	}
	tags := make(map[string][]string)
	for _, row := range rows {
		tags[row.PlaceName] = append(tags[row.PlaceName], row.Tag)
	}
	for i := range places {
		places[i].Tags = tags[places[i].Name]
		if places[i].Tags == nil {
			places[i].Tags = []string{}
		}
	}
	return places, nil
}

// OfflineNames возвращает названия мест, доступных офлайн.
func (r *FavoriteRepository) OfflineNames(ctx context.Context) ([]string, error) {
	return listNames(ctx, r.db, "offline_places")
}

// ToggleOffline включает или выключает офлайн-доступ к месту.
func (r *FavoriteRepository) ToggleOffline(ctx context.Context, name string) ([]string, bool, error) {
	return toggleName(ctx, r.db, "offline_places", name)
}
