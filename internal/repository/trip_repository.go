package repository

import (
	"context"
	"fmt"

	"campwise/internal/model"

	"github.com/jmoiron/sqlx"
)

// TripRepository обеспечивает доступ к маршрутам поездок в базе данных.
type TripRepository struct {
	db *sqlx.DB
}

// NewTripRepository создает новый репозиторий для поездок.
func NewTripRepository(db *sqlx.DB) *TripRepository {
	return &TripRepository{db: db}
}

// GetItinerary возвращает пункты маршрута поездки в текущем порядке.
func (r *TripRepository) GetItinerary(ctx context.Context, tripID int) ([]model.ItineraryDay, error) {
	days := []model.ItineraryDay{}
	err := r.db.SelectContext(ctx, &days, r.db.Rebind(
		`SELECT trip_id, id, day, location, campsite, description, order_index
		 FROM itinerary_days
		 WHERE trip_id=?
		 ORDER BY order_index`), tripID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении маршрута: %w", err)
	}
	return days, nil
}

// UpdateOrder обновляет порядок следования пунктов в маршруте. dayOrder - идентификаторы пунктов в новом порядке.
func (r *TripRepository) UpdateOrder(ctx context.Context, tripID int, dayOrder []int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	for idx, dayID := range dayOrder {
		_, err := tx.ExecContext(ctx, tx.Rebind("UPDATE itinerary_days SET order_index=? WHERE trip_id=? AND id=?"), idx+1, tripID, dayID)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("не удалось обновить порядок маршрута: %w", err)
		}
	}
	return tx.Commit()
}
