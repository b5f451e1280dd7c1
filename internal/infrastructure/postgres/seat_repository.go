package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/transaction"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/venue"
)

type seatRow struct {
	ID     int64 `db:"id"`
	AreaID int64 `db:"area_id"`
	Row    int   `db:"seat_row"`
	Number int   `db:"seat_number"`
}

func (r *seatRow) toEntity() *venue.Seat {
	return &venue.Seat{ID: r.ID, AreaID: r.AreaID, Row: r.Row, Number: r.Number}
}

type SeatRepository struct{ db *sqlx.DB }

func NewSeatRepository(db *sqlx.DB) *SeatRepository { return &SeatRepository{db: db} }

func (r *SeatRepository) Create(ctx context.Context, s *venue.Seat) error {
	query := `INSERT INTO seats (area_id, seat_row, seat_number) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, s.AreaID, s.Row, s.Number).Scan(&s.ID); err != nil {
		return fmt.Errorf("座席作成に失敗: %w", err)
	}
	return nil
}

func (r *SeatRepository) CreateBulk(ctx context.Context, seats []*venue.Seat) error {
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
		if err := r.createBulkBatch(ctx, seats[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SeatRepository) createBulkBatch(ctx context.Context, seats []*venue.Seat) error {
	query := `INSERT INTO seats (area_id, seat_row, seat_number) VALUES `
	args := make([]interface{}, 0, len(seats)*3)
	placeholders := make([]string, 0, len(seats))

	for i, s := range seats {
		base := i * 3
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d)", base+1, base+2, base+3))
		args = append(args, s.AreaID, s.Row, s.Number)
	}

	query += strings.Join(placeholders, ", ") + ` RETURNING id`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("座席一括作成に失敗: %w", err)
	}
	defer rows.Close()

	// RETURNINGはVALUES句の順序でIDを返す
	for i := 0; rows.Next(); i++ {
		if err := rows.Scan(&seats[i].ID); err != nil {
			return fmt.Errorf("座席ID取得に失敗: %w", err)
		}
	}
	return rows.Err()
}

func (r *SeatRepository) GetByID(ctx context.Context, id int64) (*venue.Seat, error) {
	query := `SELECT id, area_id, seat_row, seat_number FROM seats WHERE id = $1`
	var row seatRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, venue.ErrSeatNotFound
		}
		return nil, fmt.Errorf("座席取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *SeatRepository) GetByAreaID(ctx context.Context, areaID int64) ([]*venue.Seat, error) {
	query := `SELECT id, area_id, seat_row, seat_number FROM seats WHERE area_id = $1 ORDER BY seat_row, seat_number`
	var rows []seatRow
	if err := r.db.SelectContext(ctx, &rows, query, areaID); err != nil {
		return nil, err
	}
	seats := make([]*venue.Seat, len(rows))
	for i, row := range rows {
		seats[i] = row.toEntity()
	}
	return seats, nil
}

func (r *SeatRepository) GetByAreaIDAndPosition(ctx context.Context, areaID int64, row, number int) (*venue.Seat, error) {
	query := `SELECT id, area_id, seat_row, seat_number FROM seats WHERE area_id = $1 AND seat_row = $2 AND seat_number = $3`
	var sr seatRow
	if err := r.db.GetContext(ctx, &sr, query, areaID, row, number); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, venue.ErrSeatNotFound
		}
		return nil, fmt.Errorf("座席取得に失敗: %w", err)
	}
	return sr.toEntity(), nil
}

func (r *SeatRepository) Update(ctx context.Context, s *venue.Seat) error {
	query := `UPDATE seats SET area_id = $1, seat_row = $2, seat_number = $3 WHERE id = $4`
	result, err := r.db.ExecContext(ctx, query, s.AreaID, s.Row, s.Number, s.ID)
	if err != nil {
		return fmt.Errorf("座席更新に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return venue.ErrSeatNotFound
	}
	return nil
}

func (r *SeatRepository) Delete(ctx context.Context, tx transaction.Tx, id int64) error {
	result, err := UnwrapTx(tx).ExecContext(ctx, `DELETE FROM seats WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("座席削除に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return venue.ErrSeatNotFound
	}
	return nil
}

func (r *SeatRepository) DeleteByAreaID(ctx context.Context, tx transaction.Tx, areaID int64) error {
	_, err := UnwrapTx(tx).ExecContext(ctx, `DELETE FROM seats WHERE area_id = $1`, areaID)
	if err != nil {
		return fmt.Errorf("座席一括削除に失敗: %w", err)
	}
	return nil
}

func (r *SeatRepository) DeleteByLayoutID(ctx context.Context, tx transaction.Tx, layoutID int64) error {
	query := `DELETE FROM seats WHERE area_id IN (SELECT id FROM areas WHERE layout_id = $1)`
	_, err := UnwrapTx(tx).ExecContext(ctx, query, layoutID)
	if err != nil {
		return fmt.Errorf("座席一括削除に失敗: %w", err)
	}
	return nil
}

func (r *SeatRepository) DeleteByVenueID(ctx context.Context, tx transaction.Tx, venueID int64) error {
	query := `DELETE FROM seats WHERE area_id IN (
		SELECT a.id FROM areas a
		JOIN layouts l ON l.id = a.layout_id
		WHERE l.venue_id = $1
	)`
	_, err := UnwrapTx(tx).ExecContext(ctx, query, venueID)
	if err != nil {
		return fmt.Errorf("座席一括削除に失敗: %w", err)
	}
	return nil
}

var _ venue.SeatRepository = (*SeatRepository)(nil)
