package ticket

import "time"

// Ticket はイベント座席の購入記録を表す
// 購入の事実（座席・購入者・価格）は不変であり、編集操作は存在しない
// 変更するには払い戻して再購入する
type Ticket struct {
	ID             int64
	EventSeatID    int64
	UserID         int64
	Price          int
	DateOfPurchase time.Time
}

// NewTicket は新しいチケットを作成する
// 購入日時は決定的なテストのために引数で受け取る
func NewTicket(eventSeatID, userID int64, price int, purchasedAt time.Time) *Ticket {
	return &Ticket{
		EventSeatID:    eventSeatID,
		UserID:         userID,
		Price:          price,
		DateOfPurchase: purchasedAt,
	}
}

// Validate はチケットの検証を行う
func (t *Ticket) Validate() error {
	if t.EventSeatID <= 0 || t.UserID <= 0 {
		return ErrInvalidID
	}
	if t.Price < 0 {
		return ErrPriceNegative
	}
	return nil
}
