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

type eventSeatRow struct {
	ID          int64  `db:"id"`
	EventAreaID int64  `db:"event_area_id"`
	Row         int    `db:"seat_row"`
	Number      int    `db:"seat_number"`
	State       string `db:"state"`
}

func (r *eventSeatRow) toEntity() *event.EventSeat {
	return &event.EventSeat{
		ID: r.ID, EventAreaID: r.EventAreaID,
		Row: r.Row, Number: r.Number, State: event.SeatState(r.State),
	}
}

type EventSeatRepository struct{ db *sqlx.DB }

func NewEventSeatRepository(db *sqlx.DB) *EventSeatRepository { return &EventSeatRepository{db: db} }

func (r *EventSeatRepository) CreateBulk(ctx context.Context, tx transaction.Tx, seats []*event.EventSeat) error {
	if len(seats) == 0 {
		return nil
	}

	// バッチサイズごとに分割してマルチバリューINSERTを実行
	const batchSize = 1000
	for i := 0; i < len(seats); i += batchSize {
		end := i + batchSize
		if end > len(seats) {
			end = len(seats)
		}
		if err := r.createBulkBatch(ctx, tx, seats[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (r *EventSeatRepository) createBulkBatch(ctx context.Context, tx transaction.Tx, seats []*event.EventSeat) error {
	query := `INSERT INTO event_seats (event_area_id, seat_row, seat_number, state) VALUES `
	args := make([]interface{}, 0, len(seats)*4)
	placeholders := make([]string, 0, len(seats))

	for i, s := range seats {
		base := i * 4
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4))
		args = append(args, s.EventAreaID, s.Row, s.Number, string(s.State))
	}

	query += strings.Join(placeholders, ", ") + ` RETURNING id`
	rows, err := UnwrapTx(tx).QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("イベント座席一括作成に失敗: %w", err)
	}
	defer rows.Close()

	for i := 0; rows.Next(); i++ {
		if err := rows.Scan(&seats[i].ID); err != nil {
			return fmt.Errorf("イベント座席ID取得に失敗: %w", err)
		}
	}
	return rows.Err()
}

func (r *EventSeatRepository) GetByID(ctx context.Context, id int64) (*event.EventSeat, error) {
	query := `SELECT id, event_area_id, seat_row, seat_number, state FROM event_seats WHERE id = $1`
	var row eventSeatRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, event.ErrEventSeatNotFound
		}
		return nil, fmt.Errorf("イベント座席取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *EventSeatRepository) GetByEventAreaID(ctx context.Context, eventAreaID int64) ([]*event.EventSeat, error) {
	query := `SELECT id, event_area_id, seat_row, seat_number, state FROM event_seats WHERE event_area_id = $1 ORDER BY seat_row, seat_number`
	var rows []eventSeatRow
	if err := r.db.SelectContext(ctx, &rows, query, eventAreaID); err != nil {
		return nil, err
	}
	seats := make([]*event.EventSeat, len(rows))
	for i, row := range rows {
		seats[i] = row.toEntity()
	}
	return seats, nil
}

func (r *EventSeatRepository) GetByEventAreaIDAndPosition(ctx context.Context, eventAreaID int64, row, number int) (*event.EventSeat, error) {
	query := `SELECT id, event_area_id, seat_row, seat_number, state FROM event_seats WHERE event_area_id = $1 AND seat_row = $2 AND seat_number = $3`
	var sr eventSeatRow
	if err := r.db.GetContext(ctx, &sr, query, eventAreaID, row, number); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, event.ErrEventSeatNotFound
		}
		return nil, fmt.Errorf("イベント座席取得に失敗: %w", err)
	}
	return sr.toEntity(), nil
}

// UpdateState は期待状態付きで座席状態を更新する
// WHERE句の状態チェックにより同時更新の競合を検出する
func (r *EventSeatRepository) UpdateState(ctx context.Context, tx transaction.Tx, id int64, from, to event.SeatState) error {
	query := `UPDATE event_seats SET state = $1 WHERE id = $2 AND state = $3`
	result, err := UnwrapTx(tx).ExecContext(ctx, query, string(to), id, string(from))
	if err != nil {
		return fmt.Errorf("イベント座席状態更新に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		if from == event.SeatFree {
			return event.ErrSeatAlreadyBooked
		}
		return event.ErrSeatNotBooked
	}
	return nil
}

func (r *EventSeatRepository) CountByEventIDAndState(ctx context.Context, eventID int64, state event.SeatState) (int, error) {
	query := `SELECT COUNT(*) FROM event_seats es
		JOIN event_areas ea ON ea.id = es.event_area_id
		WHERE ea.event_id = $1 AND es.state = $2`
	var count int
	err := r.db.GetContext(ctx, &count, query, eventID, string(state))
	return count, err
}

func (r *EventSeatRepository) CountBookedByEventID(ctx context.Context, eventID int64) (int, error) {
	return r.CountByEventIDAndState(ctx, eventID, event.SeatBooked)
}

func (r *EventSeatRepository) CountBookedByEventAreaID(ctx context.Context, eventAreaID int64) (int, error) {
	query := `SELECT COUNT(*) FROM event_seats WHERE event_area_id = $1 AND state = $2`
	var count int
	err := r.db.GetContext(ctx, &count, query, eventAreaID, string(event.SeatBooked))
	return count, err
}

func (r *EventSeatRepository) CountBookedByLayoutID(ctx context.Context, layoutID int64) (int, error) {
	query := `SELECT COUNT(*) FROM event_seats es
		JOIN event_areas ea ON ea.id = es.event_area_id
		JOIN events e ON e.id = ea.event_id
		WHERE e.layout_id = $1 AND es.state = $2`
	var count int
	err := r.db.GetContext(ctx, &count, query, layoutID, string(event.SeatBooked))
	return count, err
}

func (r *EventSeatRepository) CountBookedByVenueID(ctx context.Context, venueID int64) (int, error) {
	query := `SELECT COUNT(*) FROM event_seats es
		JOIN event_areas ea ON ea.id = es.event_area_id
		JOIN events e ON e.id = ea.event_id
		JOIN layouts l ON l.id = e.layout_id
		WHERE l.venue_id = $1 AND es.state = $2`
	var count int
	err := r.db.GetContext(ctx, &count, query, venueID, string(event.SeatBooked))
	return count, err
}

func (r *EventSeatRepository) CountBookedByAreaID(ctx context.Context, areaID int64) (int, error) {
	query := `SELECT COUNT(*) FROM event_seats es
		JOIN event_areas ea ON ea.id = es.event_area_id
		WHERE ea.area_id = $1 AND es.state = $2`
	var count int
	err := r.db.GetContext(ctx, &count, query, areaID, string(event.SeatBooked))
	return count, err
}

func (r *EventSeatRepository) CountBookedBySourceSeat(ctx context.Context, areaID int64, row, number int) (int, error) {
	query := `SELECT COUNT(*) FROM event_seats es
		JOIN event_areas ea ON ea.id = es.event_area_id
		WHERE ea.area_id = $1 AND es.seat_row = $2 AND es.seat_number = $3 AND es.state = $4`
	var count int
	err := r.db.GetContext(ctx, &count, query, areaID, row, number, string(event.SeatBooked))
	return count, err
}

func (r *EventSeatRepository) Delete(ctx context.Context, tx transaction.Tx, id int64) error {
	result, err := UnwrapTx(tx).ExecContext(ctx, `DELETE FROM event_seats WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("イベント座席削除に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return event.ErrEventSeatNotFound
	}
	return nil
}

func (r *EventSeatRepository) DeleteByEventAreaID(ctx context.Context, tx transaction.Tx, eventAreaID int64) error {
	_, err := UnwrapTx(tx).ExecContext(ctx, `DELETE FROM event_seats WHERE event_area_id = $1`, eventAreaID)
	if err != nil {
		return fmt.Errorf("イベント座席一括削除に失敗: %w", err)
	}
	return nil
}

func (r *EventSeatRepository) DeleteByEventID(ctx context.Context, tx transaction.Tx, eventID int64) error {
	query := `DELETE FROM event_seats WHERE event_area_id IN (SELECT id FROM event_areas WHERE event_id = $1)`
	_, err := UnwrapTx(tx).ExecContext(ctx, query, eventID)
	if err != nil {
		return fmt.Errorf("イベント座席一括削除に失敗: %w", err)
	}
	return nil
}

func (r *EventSeatRepository) DeleteByLayoutID(ctx context.Context, tx transaction.Tx, layoutID int64) error {
	query := `DELETE FROM event_seats WHERE event_area_id IN (
		SELECT ea.id FROM event_areas ea
		JOIN events e ON e.id = ea.event_id
		WHERE e.layout_id = $1
	)`
	_, err := UnwrapTx(tx).ExecContext(ctx, query, layoutID)
	if err != nil {
		return fmt.Errorf("イベント座席一括削除に失敗: %w", err)
	}
	return nil
}

func (r *EventSeatRepository) DeleteByVenueID(ctx context.Context, tx transaction.Tx, venueID int64) error {
	query := `DELETE FROM event_seats WHERE event_area_id IN (
		SELECT ea.id FROM event_areas ea
		JOIN events e ON e.id = ea.event_id
		JOIN layouts l ON l.id = e.layout_id
		WHERE l.venue_id = $1
	)`
	_, err := UnwrapTx(tx).ExecContext(ctx, query, venueID)
	if err != nil {
		return fmt.Errorf("イベント座席一括削除に失敗: %w", err)
	}
	return nil
}

var _ event.SeatRepository = (*EventSeatRepository)(nil)
