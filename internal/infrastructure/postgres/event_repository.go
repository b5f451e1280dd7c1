package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/event"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/transaction"
)

type eventRow struct {
	ID            int64     `db:"id"`
	LayoutID      int64     `db:"layout_id"`
	Name          string    `db:"name"`
	Description   string    `db:"description"`
	DateStart     time.Time `db:"date_start"`
	DateEnd       time.Time `db:"date_end"`
	ShowTime      time.Time `db:"show_time"`
	BaseAreaPrice int       `db:"base_area_price"`
	ImageURL      string    `db:"image_url"`
}

func (r *eventRow) toEntity() *event.Event {
	return &event.Event{
		ID: r.ID, LayoutID: r.LayoutID, Name: r.Name, Description: r.Description,
		DateStart: r.DateStart, DateEnd: r.DateEnd, ShowTime: r.ShowTime,
		BaseAreaPrice: r.BaseAreaPrice, ImageURL: r.ImageURL,
	}
}

const eventColumns = `id, layout_id, name, description, date_start, date_end, show_time, base_area_price, image_url`

type EventRepository struct{ db *sqlx.DB }

func NewEventRepository(db *sqlx.DB) *EventRepository { return &EventRepository{db: db} }

func (r *EventRepository) Create(ctx context.Context, tx transaction.Tx, e *event.Event) error {
	query := `INSERT INTO events (layout_id, name, description, date_start, date_end, show_time, base_area_price, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := UnwrapTx(tx).QueryRowContext(ctx, query,
		e.LayoutID, e.Name, e.Description, e.DateStart, e.DateEnd, e.ShowTime, e.BaseAreaPrice, e.ImageURL,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("イベント作成に失敗: %w", err)
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*event.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	var row eventRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, event.ErrEventNotFound
		}
		return nil, fmt.Errorf("イベント取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *EventRepository) List(ctx context.Context, limit, offset int) ([]*event.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY date_start DESC LIMIT $1 OFFSET $2`
	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, query, limit, offset); err != nil {
		return nil, err
	}
	return toEventEntities(rows), nil
}

func (r *EventRepository) GetByLayoutID(ctx context.Context, layoutID int64) ([]*event.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE layout_id = $1 ORDER BY date_start`
	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, query, layoutID); err != nil {
		return nil, err
	}
	return toEventEntities(rows), nil
}

func (r *EventRepository) GetByVenueID(ctx context.Context, venueID int64) ([]*event.Event, error) {
	query := `SELECT e.id, e.layout_id, e.name, e.description, e.date_start, e.date_end, e.show_time, e.base_area_price, e.image_url
		FROM events e
		JOIN layouts l ON l.id = e.layout_id
		WHERE l.venue_id = $1
		ORDER BY e.date_start`
	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, query, venueID); err != nil {
		return nil, err
	}
	return toEventEntities(rows), nil
}

func (r *EventRepository) Update(ctx context.Context, e *event.Event) error {
	query := `UPDATE events SET layout_id = $1, name = $2, description = $3, date_start = $4, date_end = $5, show_time = $6, base_area_price = $7, image_url = $8 WHERE id = $9`
	result, err := r.db.ExecContext(ctx, query,
		e.LayoutID, e.Name, e.Description, e.DateStart, e.DateEnd, e.ShowTime, e.BaseAreaPrice, e.ImageURL, e.ID)
	if err != nil {
		return fmt.Errorf("イベント更新に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return event.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, tx transaction.Tx, id int64) error {
	result, err := UnwrapTx(tx).ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("イベント削除に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return event.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) DeleteByLayoutID(ctx context.Context, tx transaction.Tx, layoutID int64) error {
	_, err := UnwrapTx(tx).ExecContext(ctx, `DELETE FROM events WHERE layout_id = $1`, layoutID)
	if err != nil {
		return fmt.Errorf("イベント一括削除に失敗: %w", err)
	}
	return nil
}

func (r *EventRepository) DeleteByVenueID(ctx context.Context, tx transaction.Tx, venueID int64) error {
	query := `DELETE FROM events WHERE layout_id IN (SELECT id FROM layouts WHERE venue_id = $1)`
	_, err := UnwrapTx(tx).ExecContext(ctx, query, venueID)
	if err != nil {
		return fmt.Errorf("イベント一括削除に失敗: %w", err)
	}
	return nil
}

func toEventEntities(rows []eventRow) []*event.Event {
	events := make([]*event.Event, len(rows))
	for i, row := range rows {
		events[i] = row.toEntity()
	}
	return events
}

var _ event.Repository = (*EventRepository)(nil)
