package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/ticket"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/transaction"
)

type ticketRow struct {
	ID             int64     `db:"id"`
	EventSeatID    int64     `db:"event_seat_id"`
	UserID         int64     `db:"user_id"`
	Price          int       `db:"price"`
	DateOfPurchase time.Time `db:"date_of_purchase"`
}

func (r *ticketRow) toEntity() *ticket.Ticket {
	return &ticket.Ticket{
		ID: r.ID, EventSeatID: r.EventSeatID, UserID: r.UserID,
		Price: r.Price, DateOfPurchase: r.DateOfPurchase,
	}
}

type TicketRepository struct{ db *sqlx.DB }

func NewTicketRepository(db *sqlx.DB) *TicketRepository { return &TicketRepository{db: db} }

func (r *TicketRepository) Create(ctx context.Context, tx transaction.Tx, t *ticket.Ticket) error {
	query := `INSERT INTO tickets (event_seat_id, user_id, price, date_of_purchase) VALUES ($1, $2, $3, $4) RETURNING id`
	err := UnwrapTx(tx).QueryRowContext(ctx, query, t.EventSeatID, t.UserID, t.Price, t.DateOfPurchase).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("チケット作成に失敗: %w", err)
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id int64) (*ticket.Ticket, error) {
	query := `SELECT id, event_seat_id, user_id, price, date_of_purchase FROM tickets WHERE id = $1`
	var row ticketRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ticket.ErrTicketNotFound
		}
		return nil, fmt.Errorf("チケット取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *TicketRepository) GetByEventSeatID(ctx context.Context, eventSeatID int64) (*ticket.Ticket, error) {
	query := `SELECT id, event_seat_id, user_id, price, date_of_purchase FROM tickets WHERE event_seat_id = $1`
	var row ticketRow
	if err := r.db.GetContext(ctx, &row, query, eventSeatID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ticket.ErrTicketNotFound
		}
		return nil, fmt.Errorf("チケット取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *TicketRepository) GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]*ticket.Ticket, error) {
	query := `SELECT id, event_seat_id, user_id, price, date_of_purchase FROM tickets WHERE user_id = $1 ORDER BY date_of_purchase DESC LIMIT $2 OFFSET $3`
	var rows []ticketRow
	if err := r.db.SelectContext(ctx, &rows, query, userID, limit, offset); err != nil {
		return nil, err
	}
	tickets := make([]*ticket.Ticket, len(rows))
	for i, row := range rows {
		tickets[i] = row.toEntity()
	}
	return tickets, nil
}

func (r *TicketRepository) Delete(ctx context.Context, tx transaction.Tx, id int64) error {
	result, err := UnwrapTx(tx).ExecContext(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("チケット削除に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ticket.ErrTicketNotFound
	}
	return nil
}

var _ ticket.Repository = (*TicketRepository)(nil)
