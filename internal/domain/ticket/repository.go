package ticket

import (
	"context"

	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/transaction"
)

// Repository はチケットリポジトリのインターフェース
type Repository interface {
	// Create は新しいチケットを作成する（トランザクション必須）
	Create(ctx context.Context, tx transaction.Tx, t *Ticket) error

	// GetByID はIDからチケットを取得する
	GetByID(ctx context.Context, id int64) (*Ticket, error)

	// GetByEventSeatID はイベント座席IDからチケットを取得する
	GetByEventSeatID(ctx context.Context, eventSeatID int64) (*Ticket, error)

	// GetByUserID はユーザーIDからチケット一覧を取得する
	GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]*Ticket, error)

	// Delete はチケットを削除する（トランザクション必須）
	Delete(ctx context.Context, tx transaction.Tx, id int64) error
}
