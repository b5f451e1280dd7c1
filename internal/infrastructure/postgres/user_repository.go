package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/transaction"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/user"
)

type userRow struct {
	ID      int64  `db:"id"`
	Name    string `db:"name"`
	Balance int    `db:"balance"`
}

func (r *userRow) toEntity() *user.User {
	return &user.User{ID: r.ID, Name: r.Name, Balance: r.Balance}
}

type UserRepository struct{ db *sqlx.DB }

func NewUserRepository(db *sqlx.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	query := `SELECT id, name, balance FROM users WHERE id = $1`
	var row userRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("ユーザー取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

// AdjustBalance は残高をdeltaだけ増減する
// WHERE句の残高チェックにより残高不足をアトミックに検出する
func (r *UserRepository) AdjustBalance(ctx context.Context, tx transaction.Tx, id int64, delta int) error {
	query := `UPDATE users SET balance = balance + $1 WHERE id = $2 AND balance + $1 >= 0`
	result, err := UnwrapTx(tx).ExecContext(ctx, query, delta, id)
	if err != nil {
		return fmt.Errorf("残高更新に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		// 行が存在しないか残高不足かを区別する
		var exists bool
		if err := UnwrapTx(tx).GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id); err != nil {
			return fmt.Errorf("ユーザー確認に失敗: %w", err)
		}
		if !exists {
			return user.ErrUserNotFound
		}
		return user.ErrInsufficientBalance
	}
	return nil
}

var _ user.Repository = (*UserRepository)(nil)
