package event

import "errors"

// Event ドメインのエラー定義
var (
	ErrInvalidID = errors.New("IDは正の整数である必要があります")

	ErrEventNotFound            = errors.New("イベントが見つかりません")
	ErrEventNameRequired        = errors.New("イベント名は必須です")
	ErrEventNameTooLong         = errors.New("イベント名は120文字以内である必要があります")
	ErrEventDescriptionRequired = errors.New("イベントの説明は必須です")
	ErrEventImageRequired       = errors.New("イベント画像URLは必須です")
	ErrEventPriceNegative       = errors.New("基本エリア価格は0以上である必要があります")
	ErrInvalidEventTime         = errors.New("終了時刻は開始時刻より後である必要があります")
	ErrEventInPast              = errors.New("開始時刻を過去に設定することはできません")
	ErrEventPeriodTaken         = errors.New("この期間のイベントは既に会場に存在します")

	ErrEventAreaNotFound      = errors.New("イベントエリアが見つかりません")
	ErrEventAreaPriceNegative = errors.New("エリア価格は0以上である必要があります")

	ErrEventSeatNotFound        = errors.New("イベント座席が見つかりません")
	ErrEventSeatPositionInvalid = errors.New("座席の列・番号は1以上である必要があります")
	ErrEventSeatStateInvalid    = errors.New("座席の状態が不正です")
	ErrEventSeatTaken           = errors.New("この列・番号の座席は既にイベントエリアに存在します")
	ErrSeatAlreadyBooked        = errors.New("座席は既に購入されています")
	ErrSeatNotBooked            = errors.New("座席は購入されていません")

	ErrBookedSeatsExist = errors.New("予約済みの座席が存在するため削除できません")
)
