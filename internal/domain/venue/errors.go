package venue

import "errors"

// Venue ドメインのエラー定義
var (
	ErrInvalidID = errors.New("IDは正の整数である必要があります")

	ErrVenueNotFound           = errors.New("会場が見つかりません")
	ErrVenueNameRequired       = errors.New("会場名は必須です")
	ErrVenueNameTooLong        = errors.New("会場名は120文字以内である必要があります")
	ErrVenueAddressTooLong     = errors.New("住所は200文字以内である必要があります")
	ErrVenuePhoneTooLong       = errors.New("電話番号は30文字以内である必要があります")
	ErrVenueDescriptionTooLong = errors.New("説明は120文字以内である必要があります")
	ErrVenueNameTaken          = errors.New("この名前の会場は既に存在します")

	ErrLayoutNotFound           = errors.New("レイアウトが見つかりません")
	ErrLayoutNameRequired       = errors.New("レイアウト名は必須です")
	ErrLayoutNameTooLong        = errors.New("レイアウト名は120文字以内である必要があります")
	ErrLayoutDescriptionTooLong = errors.New("説明は120文字以内である必要があります")
	ErrLayoutNameTaken          = errors.New("この名前のレイアウトは既に会場に存在します")

	ErrAreaNotFound            = errors.New("エリアが見つかりません")
	ErrAreaDescriptionRequired = errors.New("エリアの説明は必須です")
	ErrAreaDescriptionTooLong  = errors.New("エリアの説明は200文字以内である必要があります")
	ErrAreaCoordsNegative      = errors.New("座標は0以上である必要があります")
	ErrAreaDescriptionTaken    = errors.New("この説明のエリアは既にレイアウトに存在します")

	ErrSeatNotFound      = errors.New("座席が見つかりません")
	ErrSeatRowInvalid    = errors.New("座席の列は1以上である必要があります")
	ErrSeatNumberInvalid = errors.New("座席の番号は1以上である必要があります")
	ErrSeatTaken         = errors.New("この列・番号の座席は既にエリアに存在します")
)
