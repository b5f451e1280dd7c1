package venue

// 文字数の上限（DB側のカラム定義と一致させる）
const (
	MaxNameLen            = 120
	MaxAddressLen         = 200
	MaxPhoneLen           = 30
	MaxDescriptionLen     = 120
	MaxAreaDescriptionLen = 200
)

// Venue は会場エンティティを表す
// IDが0の場合は未永続化を意味する
type Venue struct {
	ID          int64
	Name        string
	Address     string
	Phone       string
	Description string
}

// NewVenue は新しい会場を作成する
func NewVenue(name, address, phone, description string) *Venue {
	return &Venue{
		Name:        name,
		Address:     address,
		Phone:       phone,
		Description: description,
	}
}

// Validate は会場の検証を行う
func (v *Venue) Validate() error {
	if v.Name == "" {
		return ErrVenueNameRequired
	}
	if len([]rune(v.Name)) > MaxNameLen {
		return ErrVenueNameTooLong
	}
	if len([]rune(v.Address)) > MaxAddressLen {
		return ErrVenueAddressTooLong
	}
	if len([]rune(v.Phone)) > MaxPhoneLen {
		return ErrVenuePhoneTooLong
	}
	if len([]rune(v.Description)) > MaxDescriptionLen {
		return ErrVenueDescriptionTooLong
	}
	return nil
}
