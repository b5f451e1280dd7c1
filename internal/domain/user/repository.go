package user

import (
	"context"

	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/transaction"
)

// Repository はユーザーアカウントコラボレーターのインターフェース
type Repository interface {
	// GetByID はIDからユーザーを取得する
	GetByID(ctx context.Context, id int64) (*User, error)

	// AdjustBalance はユーザー残高をdeltaだけ増減する（トランザクション必須）
	// 減算の結果が負になる場合はErrInsufficientBalanceを返す
	AdjustBalance(ctx context.Context, tx transaction.Tx, id int64, delta int) error
}
