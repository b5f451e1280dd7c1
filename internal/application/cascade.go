package application

import (
	"context"
	"fmt"

	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/event"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/transaction"
)

// cascadeStep はカスケード削除の1ステップ
// 子から親の順（依存される側が後）で実行される
type cascadeStep func(ctx context.Context, tx transaction.Tx) error

// cascadeDelete は階層ノードのカスケード削除を実行する
// まず配下の購入済み座席の有無を確認し、1件でも存在すれば何も変更せずに
// ErrBookedSeatsExistを返す。存在しなければ1つのトランザクション内で
// stepsを順に実行し、途中で失敗した場合は全てロールバックする
// 静的階層（会場→レイアウト→エリア→座席）とイベント階層
// （イベント→イベントエリア→イベント座席）の両方で共用する
func cascadeDelete(
	ctx context.Context,
	txManager transaction.Manager,
	countBooked func(ctx context.Context) (int, error),
	steps ...cascadeStep,
) error {
	booked, err := countBooked(ctx)
	if err != nil {
		return fmt.Errorf("購入済み座席の確認に失敗: %w", err)
	}
	if booked > 0 {
		return event.ErrBookedSeatsExist
	}

	tx, err := txManager.Begin(ctx)
	if err != nil {
		return fmt.Errorf("トランザクション開始に失敗: %w", err)
	}
	defer tx.Rollback()

	for _, step := range steps {
		if err := step(ctx, tx); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("コミットに失敗: %w", err)
	}
	return nil
}
