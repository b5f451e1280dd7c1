package event

import (
	"context"

	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/transaction"
)

// Repository はイベントリポジトリのインターフェース
type Repository interface {
	// Create は新しいイベントを作成する（トランザクション必須）
	Create(ctx context.Context, tx transaction.Tx, e *Event) error

	// GetByID はIDからイベントを取得する
	GetByID(ctx context.Context, id int64) (*Event, error)

	// List はイベント一覧を開始日時の降順で取得する
	List(ctx context.Context, limit, offset int) ([]*Event, error)

	// GetByLayoutID はレイアウトIDからイベント一覧を取得する
	GetByLayoutID(ctx context.Context, layoutID int64) ([]*Event, error)

	// GetByVenueID は会場配下の全レイアウトのイベント一覧を取得する
	// スケジュール重複の検証に使用する
	GetByVenueID(ctx context.Context, venueID int64) ([]*Event, error)

	// Update はイベントを更新する（スナップショットへは影響しない）
	Update(ctx context.Context, e *Event) error

	// Delete はイベントを削除する（トランザクション必須）
	Delete(ctx context.Context, tx transaction.Tx, id int64) error

	// DeleteByLayoutID はレイアウト配下のイベントを一括削除する（トランザクション必須）
	DeleteByLayoutID(ctx context.Context, tx transaction.Tx, layoutID int64) error

	// DeleteByVenueID は会場配下のイベントを一括削除する（トランザクション必須）
	DeleteByVenueID(ctx context.Context, tx transaction.Tx, venueID int64) error
}

// AreaRepository はイベントエリアリポジトリのインターフェース
type AreaRepository interface {
	// CreateBulk は複数のイベントエリアを一括作成する（トランザクション必須）
	CreateBulk(ctx context.Context, tx transaction.Tx, areas []*EventArea) error

	// GetByID はIDからイベントエリアを取得する
	GetByID(ctx context.Context, id int64) (*EventArea, error)

	// GetByEventID はイベントIDからイベントエリア一覧を取得する
	GetByEventID(ctx context.Context, eventID int64) ([]*EventArea, error)

	// UpdatePrice はイベントエリアの価格を変更する
	UpdatePrice(ctx context.Context, id int64, price int) error

	// Delete はイベントエリアを削除する（トランザクション必須）
	Delete(ctx context.Context, tx transaction.Tx, id int64) error

	// DeleteByEventID はイベント配下のイベントエリアを一括削除する（トランザクション必須）
	DeleteByEventID(ctx context.Context, tx transaction.Tx, eventID int64) error

	// DeleteByLayoutID はレイアウト配下の全イベントのイベントエリアを一括削除する（トランザクション必須）
	DeleteByLayoutID(ctx context.Context, tx transaction.Tx, layoutID int64) error

	// DeleteByVenueID は会場配下の全イベントのイベントエリアを一括削除する（トランザクション必須）
	DeleteByVenueID(ctx context.Context, tx transaction.Tx, venueID int64) error
}

// SeatRepository はイベント座席リポジトリのインターフェース
// 状態の更新は全て期待状態付き（compare-and-swap）で行う
type SeatRepository interface {
	// CreateBulk は複数のイベント座席を一括作成する（トランザクション必須）
	CreateBulk(ctx context.Context, tx transaction.Tx, seats []*EventSeat) error

	// GetByID はIDからイベント座席を取得する
	GetByID(ctx context.Context, id int64) (*EventSeat, error)

	// GetByEventAreaID はイベントエリアIDから座席一覧を取得する
	GetByEventAreaID(ctx context.Context, eventAreaID int64) ([]*EventSeat, error)

	// GetByEventAreaIDAndPosition はイベントエリア内の列・番号から座席を取得する
	GetByEventAreaIDAndPosition(ctx context.Context, eventAreaID int64, row, number int) (*EventSeat, error)

	// UpdateState は座席の状態をfromからtoへ更新する（トランザクション必須）
	// 現在の状態がfromでない場合はErrSeatAlreadyBooked/ErrSeatNotBookedを返す
	UpdateState(ctx context.Context, tx transaction.Tx, id int64, from, to SeatState) error

	// CountByEventIDAndState はイベント配下の指定状態の座席数を取得する
	CountByEventIDAndState(ctx context.Context, eventID int64, state SeatState) (int, error)

	// CountBookedByEventID はイベント配下の購入済み座席数を取得する
	CountBookedByEventID(ctx context.Context, eventID int64) (int, error)

	// CountBookedByEventAreaID はイベントエリア配下の購入済み座席数を取得する
	CountBookedByEventAreaID(ctx context.Context, eventAreaID int64) (int, error)

	// CountBookedByLayoutID はレイアウト配下の全イベントの購入済み座席数を取得する
	CountBookedByLayoutID(ctx context.Context, layoutID int64) (int, error)

	// CountBookedByVenueID は会場配下の全イベントの購入済み座席数を取得する
	CountBookedByVenueID(ctx context.Context, venueID int64) (int, error)

	// CountBookedByAreaID はエリアのスナップショット配下の購入済み座席数を取得する
	CountBookedByAreaID(ctx context.Context, areaID int64) (int, error)

	// CountBookedBySourceSeat は座席のスナップショット（コピー元エリア・列・番号が一致する
	// 全イベント座席）のうち購入済みの数を取得する
	CountBookedBySourceSeat(ctx context.Context, areaID int64, row, number int) (int, error)

	// Delete はイベント座席を削除する（トランザクション必須）
	Delete(ctx context.Context, tx transaction.Tx, id int64) error

	// DeleteByEventAreaID はイベントエリア配下の座席を一括削除する（トランザクション必須）
	DeleteByEventAreaID(ctx context.Context, tx transaction.Tx, eventAreaID int64) error

	// DeleteByEventID はイベント配下の座席を一括削除する（トランザクション必須）
	DeleteByEventID(ctx context.Context, tx transaction.Tx, eventID int64) error

	// DeleteByLayoutID はレイアウト配下の全イベントの座席を一括削除する（トランザクション必須）
	DeleteByLayoutID(ctx context.Context, tx transaction.Tx, layoutID int64) error

	// DeleteByVenueID は会場配下の全イベントの座席を一括削除する（トランザクション必須）
	DeleteByVenueID(ctx context.Context, tx transaction.Tx, venueID int64) error
}
