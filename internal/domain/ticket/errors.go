package ticket

import "errors"

// Ticket ドメインのエラー定義
var (
	ErrInvalidID      = errors.New("IDは正の整数である必要があります")
	ErrTicketNotFound = errors.New("チケットが見つかりません")
	ErrPriceNegative  = errors.New("価格は0以上である必要があります")
	ErrTicketReadOnly = errors.New("チケットは編集できません（払い戻して再購入してください）")
)
