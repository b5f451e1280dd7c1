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

type areaRow struct {
	ID          int64  `db:"id"`
	LayoutID    int64  `db:"layout_id"`
	Description string `db:"description"`
	CoordX      int    `db:"coord_x"`
	CoordY      int    `db:"coord_y"`
}

func (r *areaRow) toEntity() *venue.Area {
	return &venue.Area{
		ID: r.ID, LayoutID: r.LayoutID, Description: r.Description,
		CoordX: r.CoordX, CoordY: r.CoordY,
	}
}

type AreaRepository struct{ db *sqlx.DB }

func NewAreaRepository(db *sqlx.DB) *AreaRepository { return &AreaRepository{db: db} }

func (r *AreaRepository) Create(ctx context.Context, a *venue.Area) error {
	query := `INSERT INTO areas (layout_id, description, coord_x, coord_y) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, a.LayoutID, a.Description, a.CoordX, a.CoordY).Scan(&a.ID); err != nil {
		return fmt.Errorf("エリア作成に失敗: %w", err)
	}
	return nil
}

func (r *AreaRepository) GetByID(ctx context.Context, id int64) (*venue.Area, error) {
	query := `SELECT id, layout_id, description, coord_x, coord_y FROM areas WHERE id = $1`
	var row areaRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, venue.ErrAreaNotFound
		}
		return nil, fmt.Errorf("エリア取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *AreaRepository) GetByLayoutID(ctx context.Context, layoutID int64) ([]*venue.Area, error) {
	query := `SELECT id, layout_id, description, coord_x, coord_y FROM areas WHERE layout_id = $1 ORDER BY coord_y, coord_x`
	var rows []areaRow
	if err := r.db.SelectContext(ctx, &rows, query, layoutID); err != nil {
		return nil, err
	}
	areas := make([]*venue.Area, len(rows))
	for i, row := range rows {
		areas[i] = row.toEntity()
	}
	return areas, nil
}

func (r *AreaRepository) GetByLayoutIDAndDescription(ctx context.Context, layoutID int64, description string) (*venue.Area, error) {
	query := `SELECT id, layout_id, description, coord_x, coord_y FROM areas WHERE layout_id = $1 AND description = $2`
	var row areaRow
	if err := r.db.GetContext(ctx, &row, query, layoutID, description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, venue.ErrAreaNotFound
		}
		return nil, fmt.Errorf("エリア取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *AreaRepository) Update(ctx context.Context, a *venue.Area) error {
	query := `UPDATE areas SET layout_id = $1, description = $2, coord_x = $3, coord_y = $4 WHERE id = $5`
	result, err := r.db.ExecContext(ctx, query, a.LayoutID, a.Description, a.CoordX, a.CoordY, a.ID)
	if err != nil {
		return fmt.Errorf("エリア更新に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return venue.ErrAreaNotFound
	}
	return nil
}

func (r *AreaRepository) Delete(ctx context.Context, tx transaction.Tx, id int64) error {
	result, err := UnwrapTx(tx).ExecContext(ctx, `DELETE FROM areas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("エリア削除に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return venue.ErrAreaNotFound
	}
	return nil
}

func (r *AreaRepository) DeleteByLayoutID(ctx context.Context, tx transaction.Tx, layoutID int64) error {
	_, err := UnwrapTx(tx).ExecContext(ctx, `DELETE FROM areas WHERE layout_id = $1`, layoutID)
	if err != nil {
		return fmt.Errorf("エリア一括削除に失敗: %w", err)
	}
	return nil
}

func (r *AreaRepository) DeleteByVenueID(ctx context.Context, tx transaction.Tx, venueID int64) error {
	query := `DELETE FROM areas WHERE layout_id IN (SELECT id FROM layouts WHERE venue_id = $1)`
	_, err := UnwrapTx(tx).ExecContext(ctx, query, venueID)
	if err != nil {
		return fmt.Errorf("エリア一括削除に失敗: %w", err)
	}
	return nil
}

var _ venue.AreaRepository = (*AreaRepository)(nil)
