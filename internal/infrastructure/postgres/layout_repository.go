package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/transaction"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/venue"
)

type layoutRow struct {
	ID          int64  `db:"id"`
	VenueID     int64  `db:"venue_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
}

func (r *layoutRow) toEntity() *venue.Layout {
	return &venue.Layout{
		ID: r.ID, VenueID: r.VenueID, Name: r.Name, Description: r.Description,
	}
}

type LayoutRepository struct{ db *sqlx.DB }

func NewLayoutRepository(db *sqlx.DB) *LayoutRepository { return &LayoutRepository{db: db} }

func (r *LayoutRepository) Create(ctx context.Context, l *venue.Layout) error {
	query := `INSERT INTO layouts (venue_id, name, description) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, l.VenueID, l.Name, l.Description).Scan(&l.ID); err != nil {
		return fmt.Errorf("レイアウト作成に失敗: %w", err)
	}
	return nil
}

func (r *LayoutRepository) GetByID(ctx context.Context, id int64) (*venue.Layout, error) {
	query := `SELECT id, venue_id, name, description FROM layouts WHERE id = $1`
	var row layoutRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, venue.ErrLayoutNotFound
		}
		return nil, fmt.Errorf("レイアウト取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *LayoutRepository) GetByVenueID(ctx context.Context, venueID int64) ([]*venue.Layout, error) {
	query := `SELECT id, venue_id, name, description FROM layouts WHERE venue_id = $1 ORDER BY name`
	var rows []layoutRow
	if err := r.db.SelectContext(ctx, &rows, query, venueID); err != nil {
		return nil, err
	}
	layouts := make([]*venue.Layout, len(rows))
	for i, row := range rows {
		layouts[i] = row.toEntity()
	}
	return layouts, nil
}

func (r *LayoutRepository) GetByVenueIDAndName(ctx context.Context, venueID int64, name string) (*venue.Layout, error) {
	query := `SELECT id, venue_id, name, description FROM layouts WHERE venue_id = $1 AND name = $2`
	var row layoutRow
	if err := r.db.GetContext(ctx, &row, query, venueID, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, venue.ErrLayoutNotFound
		}
		return nil, fmt.Errorf("レイアウト取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *LayoutRepository) Update(ctx context.Context, l *venue.Layout) error {
	query := `UPDATE layouts SET venue_id = $1, name = $2, description = $3 WHERE id = $4`
	result, err := r.db.ExecContext(ctx, query, l.VenueID, l.Name, l.Description, l.ID)
	if err != nil {
		return fmt.Errorf("レイアウト更新に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return venue.ErrLayoutNotFound
	}
	return nil
}

func (r *LayoutRepository) Delete(ctx context.Context, tx transaction.Tx, id int64) error {
	result, err := UnwrapTx(tx).ExecContext(ctx, `DELETE FROM layouts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("レイアウト削除に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return venue.ErrLayoutNotFound
	}
	return nil
}

func (r *LayoutRepository) DeleteByVenueID(ctx context.Context, tx transaction.Tx, venueID int64) error {
	_, err := UnwrapTx(tx).ExecContext(ctx, `DELETE FROM layouts WHERE venue_id = $1`, venueID)
	if err != nil {
		return fmt.Errorf("レイアウト一括削除に失敗: %w", err)
	}
	return nil
}

var _ venue.LayoutRepository = (*LayoutRepository)(nil)
