package venue

import (
	"context"

	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/transaction"
)

// VenueRepository は会場リポジトリのインターフェース
type VenueRepository interface {
	// Create は新しい会場を作成する
	Create(ctx context.Context, v *Venue) error

	// GetByID はIDから会場を取得する
	GetByID(ctx context.Context, id int64) (*Venue, error)

	// GetAll は会場一覧を取得する
	GetAll(ctx context.Context) ([]*Venue, error)

	// GetByName は名前から会場を取得する
	GetByName(ctx context.Context, name string) (*Venue, error)

	// Update は会場を更新する
	Update(ctx context.Context, v *Venue) error

	// Delete は会場を削除する（トランザクション必須）
	Delete(ctx context.Context, tx transaction.Tx, id int64) error
}

// LayoutRepository はレイアウトリポジトリのインターフェース
type LayoutRepository interface {
	// Create は新しいレイアウトを作成する
	Create(ctx context.Context, l *Layout) error

	// GetByID はIDからレイアウトを取得する
	GetByID(ctx context.Context, id int64) (*Layout, error)

	// GetByVenueID は会場IDからレイアウト一覧を取得する
	GetByVenueID(ctx context.Context, venueID int64) ([]*Layout, error)

	// GetByVenueIDAndName は会場内の名前からレイアウトを取得する
	GetByVenueIDAndName(ctx context.Context, venueID int64, name string) (*Layout, error)

	// Update はレイアウトを更新する
	Update(ctx context.Context, l *Layout) error

	// Delete はレイアウトを削除する（トランザクション必須）
	Delete(ctx context.Context, tx transaction.Tx, id int64) error

	// DeleteByVenueID は会場配下のレイアウトを一括削除する（トランザクション必須）
	DeleteByVenueID(ctx context.Context, tx transaction.Tx, venueID int64) error
}

// AreaRepository はエリアリポジトリのインターフェース
type AreaRepository interface {
	// Create は新しいエリアを作成する
	Create(ctx context.Context, a *Area) error

	// GetByID はIDからエリアを取得する
	GetByID(ctx context.Context, id int64) (*Area, error)

	// GetByLayoutID はレイアウトIDからエリア一覧を取得する
	GetByLayoutID(ctx context.Context, layoutID int64) ([]*Area, error)

	// GetByLayoutIDAndDescription はレイアウト内の説明からエリアを取得する
	GetByLayoutIDAndDescription(ctx context.Context, layoutID int64, description string) (*Area, error)

	// Update はエリアを更新する
	Update(ctx context.Context, a *Area) error

	// Delete はエリアを削除する（トランザクション必須）
	Delete(ctx context.Context, tx transaction.Tx, id int64) error

	// DeleteByLayoutID はレイアウト配下のエリアを一括削除する（トランザクション必須）
	DeleteByLayoutID(ctx context.Context, tx transaction.Tx, layoutID int64) error

	// DeleteByVenueID は会場配下のエリアを一括削除する（トランザクション必須）
	DeleteByVenueID(ctx context.Context, tx transaction.Tx, venueID int64) error
}

// SeatRepository は座席リポジトリのインターフェース
type SeatRepository interface {
	// Create は新しい座席を作成する
	Create(ctx context.Context, s *Seat) error

	// CreateBulk は複数の座席を一括作成する
	CreateBulk(ctx context.Context, seats []*Seat) error

	// GetByID はIDから座席を取得する
	GetByID(ctx context.Context, id int64) (*Seat, error)

	// GetByAreaID はエリアIDから座席一覧を取得する
	GetByAreaID(ctx context.Context, areaID int64) ([]*Seat, error)

	// GetByAreaIDAndPosition はエリア内の列・番号から座席を取得する
	GetByAreaIDAndPosition(ctx context.Context, areaID int64, row, number int) (*Seat, error)

	// Update は座席を更新する
	Update(ctx context.Context, s *Seat) error

	// Delete は座席を削除する（トランザクション必須）
	Delete(ctx context.Context, tx transaction.Tx, id int64) error

	// DeleteByAreaID はエリア配下の座席を一括削除する（トランザクション必須）
	DeleteByAreaID(ctx context.Context, tx transaction.Tx, areaID int64) error

	// DeleteByLayoutID はレイアウト配下の座席を一括削除する（トランザクション必須）
	DeleteByLayoutID(ctx context.Context, tx transaction.Tx, layoutID int64) error

	// DeleteByVenueID は会場配下の座席を一括削除する（トランザクション必須）
	DeleteByVenueID(ctx context.Context, tx transaction.Tx, venueID int64) error
}
