package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"campwise/internal/apperr"
	"campwise/internal/model"

	"github.com/jmoiron/sqlx"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// CampsiteRepository обеспечивает доступ к кемпингам и списку сохраненных на карте мест.
type CampsiteRepository struct {
	db *sqlx.DB
}

// NewCampsiteRepository создает новый репозиторий кемпингов.
func NewCampsiteRepository(db *sqlx.DB) *CampsiteRepository {
	return &CampsiteRepository{db: db}
}

// FindAll возвращает все кемпинги (без фильтрации).
func (r *CampsiteRepository) FindAll(ctx context.Context) ([]model.Campsite, error) {
	return r.FindByFilters(ctx, 0, "")
}

// FindByFilters выполняет поиск кемпингов по минимальному рейтингу и ключевому слову в названии или описании.
func (r *CampsiteRepository) FindByFilters(ctx context.Context, minRating float64, keyword string) ([]model.Campsite, error) {
	query := "SELECT id, name, distance, tag, rating, reviews, description, image, pos_left, pos_top FROM campsites WHERE 1=1"
	args := []interface{}{}
	if minRating > 0 {
		query += " AND rating >= ?"
		args = append(args, minRating)
	}
	if keyword != "" {
		// ключевое слово ищется буквально, % и _ не работают как шаблоны
		kw := "%" + likeEscaper.Replace(strings.ToLower(keyword)) + "%"
		query += " AND (LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(description) LIKE ? ESCAPE '\\')"
		args = append(args, kw, kw)
	}
	query += " ORDER BY id"
	campsites := []model.Campsite{}
	if err := r.db.SelectContext(ctx, &campsites, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("ошибка при поиске кемпингов: %w", err)
	}
	if err := r.attachTags(ctx, campsites); err != nil {
		return nil, err
	}
	return campsites, nil
}

// GetByID получает кемпинг по его идентификатору.
func (r *CampsiteRepository) GetByID(ctx context.Context, id int) (*model.Campsite, error) {
	var campsite model.Campsite
	err := r.db.GetContext(ctx, &campsite, r.db.Rebind(
		"SELECT id, name, distance, tag, rating, reviews, description, image, pos_left, pos_top FROM campsites WHERE id=?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound(fmt.Sprintf("campsite %d", id))
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении кемпинга: %w", err)
	}
	list := []model.Campsite{campsite}
	if err := r.attachTags(ctx, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

func (r *CampsiteRepository) attachTags(ctx context.Context, campsites []model.Campsite) error {
	if len(campsites) == 0 {
		return nil
	}
	rows := []struct {
		CampsiteID int    `db:"campsite_id"`
		Tag        string `db:"tag"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, "SELECT campsite_id, tag FROM campsite_tags ORDER BY campsite_id, position"); err != nil {
		return fmt.Errorf("ошибка при получении ярлыков кемпингов: %w", err)
	}
	byID := make(map[int][]string)
	for _, row := range rows {
		byID[row.CampsiteID] = append(byID[row.CampsiteID], row.Tag)
	}
	for i := range campsites {
		campsites[i].Tags = byID[campsites[i].ID]
		if campsites[i].Tags == nil {
			campsites[i].Tags = []string{}
		}
	}
	return nil
}

// SavedNames возвращает названия сохраненных на карте мест в порядке добавления.
func (r *CampsiteRepository) SavedNames(ctx context.Context) ([]string, error) {
	return listNames(ctx, r.db, "saved_campsites")
}

// ToggleSaved добавляет место в сохраненные или убирает его оттуда.
// Возвращает новый список и признак того, что место теперь сохранено.
func (r *CampsiteRepository) ToggleSaved(ctx context.Context, name string) ([]string, bool, error) {
	return toggleName(ctx, r.db, "saved_campsites", name)
}
