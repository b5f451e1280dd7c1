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

type venueRow struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Address     string `db:"address"`
	Phone       string `db:"phone"`
	Description string `db:"description"`
}

func (r *venueRow) toEntity() *venue.Venue {
	return &venue.Venue{
		ID: r.ID, Name: r.Name, Address: r.Address,
		Phone: r.Phone, Description: r.Description,
	}
}

type VenueRepository struct{ db *sqlx.DB }

func NewVenueRepository(db *sqlx.DB) *VenueRepository { return &VenueRepository{db: db} }

func (r *VenueRepository) Create(ctx context.Context, v *venue.Venue) error {
	query := `INSERT INTO venues (name, address, phone, description) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, v.Name, v.Address, v.Phone, v.Description).Scan(&v.ID); err != nil {
		return fmt.Errorf("会場作成に失敗: %w", err)
	}
	return nil
}

func (r *VenueRepository) GetByID(ctx context.Context, id int64) (*venue.Venue, error) {
	query := `SELECT id, name, address, phone, description FROM venues WHERE id = $1`
	var row venueRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, venue.ErrVenueNotFound
		}
		return nil, fmt.Errorf("会場取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *VenueRepository) GetAll(ctx context.Context) ([]*venue.Venue, error) {
	query := `SELECT id, name, address, phone, description FROM venues ORDER BY name`
	var rows []venueRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	venues := make([]*venue.Venue, len(rows))
	for i, row := range rows {
		venues[i] = row.toEntity()
	}
	return venues, nil
}

func (r *VenueRepository) GetByName(ctx context.Context, name string) (*venue.Venue, error) {
	query := `SELECT id, name, address, phone, description FROM venues WHERE name = $1`
	var row venueRow
	if err := r.db.GetContext(ctx, &row, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, venue.ErrVenueNotFound
		}
		return nil, fmt.Errorf("会場取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *VenueRepository) Update(ctx context.Context, v *venue.Venue) error {
	query := `UPDATE venues SET name = $1, address = $2, phone = $3, description = $4 WHERE id = $5`
	result, err := r.db.ExecContext(ctx, query, v.Name, v.Address, v.Phone, v.Description, v.ID)
	if err != nil {
		return fmt.Errorf("会場更新に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return venue.ErrVenueNotFound
	}
	return nil
}

func (r *VenueRepository) Delete(ctx context.Context, tx transaction.Tx, id int64) error {
	result, err := UnwrapTx(tx).ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("会場削除に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return venue.ErrVenueNotFound
	}
	return nil
}

var _ venue.VenueRepository = (*VenueRepository)(nil)
