package venue

// Layout は会場に属する座席レイアウトを表す
// イベントは必ず1つのレイアウトに対して開催される
type Layout struct {
	ID          int64
	VenueID     int64
	Name        string
	Description string
}

// NewLayout は新しいレイアウトを作成する
func NewLayout(venueID int64, name, description string) *Layout {
	return &Layout{
		VenueID:     venueID,
		Name:        name,
		Description: description,
	}
}

// Validate はレイアウトの検証を行う
func (l *Layout) Validate() error {
	if l.VenueID <= 0 {
		return ErrInvalidID
	}
	if l.Name == "" {
		return ErrLayoutNameRequired
	}
	if len([]rune(l.Name)) > MaxNameLen {
		return ErrLayoutNameTooLong
	}
	if len([]rune(l.Description)) > MaxDescriptionLen {
		return ErrLayoutDescriptionTooLong
	}
	return nil
}
