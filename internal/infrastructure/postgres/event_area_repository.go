package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/event"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/transaction"
)

type eventAreaRow struct {
	ID          int64  `db:"id"`
	EventID     int64  `db:"event_id"`
	AreaID      int64  `db:"area_id"`
	Description string `db:"description"`
	CoordX      int    `db:"coord_x"`
	CoordY      int    `db:"coord_y"`
	Price       int    `db:"price"`
}

func (r *eventAreaRow) toEntity() *event.EventArea {
	return &event.EventArea{
		ID: r.ID, EventID: r.EventID, AreaID: r.AreaID, Description: r.Description,
		CoordX: r.CoordX, CoordY: r.CoordY, Price: r.Price,
	}
}

type EventAreaRepository struct{ db *sqlx.DB }

func NewEventAreaRepository(db *sqlx.DB) *EventAreaRepository { return &EventAreaRepository{db: db} }

func (r *EventAreaRepository) CreateBulk(ctx context.Context, tx transaction.Tx, areas []*event.EventArea) error {
	if len(areas) == 0 {
		return nil
	}

	query := `INSERT INTO event_areas (event_id, area_id, description, coord_x, coord_y, price) VALUES `
	args := make([]interface{}, 0, len(areas)*6)
	placeholders := make([]string, 0, len(areas))

	for i, a := range areas {
		base := i * 6
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6))
		args = append(args, a.EventID, a.AreaID, a.Description, a.CoordX, a.CoordY, a.Price)
	}

	query += strings.Join(placeholders, ", ") + ` RETURNING id`
	rows, err := UnwrapTx(tx).QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("イベントエリア一括作成に失敗: %w", err)
	}
	defer rows.Close()

	// RETURNINGはVALUES句の順序でIDを返す
	for i := 0; rows.Next(); i++ {
		if err := rows.Scan(&areas[i].ID); err != nil {
			return fmt.Errorf("イベントエリアID取得に失敗: %w", err)
		}
	}
	return rows.Err()
}

func (r *EventAreaRepository) GetByID(ctx context.Context, id int64) (*event.EventArea, error) {
	query := `SELECT id, event_id, area_id, description, coord_x, coord_y, price FROM event_areas WHERE id = $1`
	var row eventAreaRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, event.ErrEventAreaNotFound
		}
		return nil, fmt.Errorf("イベントエリア取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *EventAreaRepository) GetByEventID(ctx context.Context, eventID int64) ([]*event.EventArea, error) {
	query := `SELECT id, event_id, area_id, description, coord_x, coord_y, price FROM event_areas WHERE event_id = $1 ORDER BY coord_y, coord_x`
	var rows []eventAreaRow
	if err := r.db.SelectContext(ctx, &rows, query, eventID); err != nil {
		return nil, err
	}
	areas := make([]*event.EventArea, len(rows))
	for i, row := range rows {
		areas[i] = row.toEntity()
	}
	return areas, nil
}

func (r *EventAreaRepository) UpdatePrice(ctx context.Context, id int64, price int) error {
	result, err := r.db.ExecContext(ctx, `UPDATE event_areas SET price = $1 WHERE id = $2`, price, id)
	if err != nil {
		return fmt.Errorf("イベントエリア価格更新に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return event.ErrEventAreaNotFound
	}
	return nil
}

func (r *EventAreaRepository) Delete(ctx context.Context, tx transaction.Tx, id int64) error {
	result, err := UnwrapTx(tx).ExecContext(ctx, `DELETE FROM event_areas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("イベントエリア削除に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return event.ErrEventAreaNotFound
	}
	return nil
}

func (r *EventAreaRepository) DeleteByEventID(ctx context.Context, tx transaction.Tx, eventID int64) error {
	_, err := UnwrapTx(tx).ExecContext(ctx, `DELETE FROM event_areas WHERE event_id = $1`, eventID)
	if err != nil {
		return fmt.Errorf("イベントエリア一括削除に失敗: %w", err)
	}
	return nil
}

func (r *EventAreaRepository) DeleteByLayoutID(ctx context.Context, tx transaction.Tx, layoutID int64) error {
	query := `DELETE FROM event_areas WHERE event_id IN (SELECT id FROM events WHERE layout_id = $1)`
	_, err := UnwrapTx(tx).ExecContext(ctx, query, layoutID)
	if err != nil {
		return fmt.Errorf("イベントエリア一括削除に失敗: %w", err)
	}
	return nil
}

func (r *EventAreaRepository) DeleteByVenueID(ctx context.Context, tx transaction.Tx, venueID int64) error {
	query := `DELETE FROM event_areas WHERE event_id IN (
		SELECT e.id FROM events e
		JOIN layouts l ON l.id = e.layout_id
		WHERE l.venue_id = $1
	)`
	_, err := UnwrapTx(tx).ExecContext(ctx, query, venueID)
	if err != nil {
		return fmt.Errorf("イベントエリア一括削除に失敗: %w", err)
	}
	return nil
}

var _ event.AreaRepository = (*EventAreaRepository)(nil)
