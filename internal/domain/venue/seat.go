package venue

// Seat はエリア内の座席を表す
// (Row, Number) の組はエリア内で一意
type Seat struct {
	ID     int64
	AreaID int64
	Row    int
	Number int
}

// NewSeat は新しい座席を作成する
func NewSeat(areaID int64, row, number int) *Seat {
	return &Seat{
		AreaID: areaID,
		Row:    row,
		Number: number,
	}
}

// Validate は座席の検証を行う
func (s *Seat) Validate() error {
	if s.AreaID <= 0 {
		return ErrInvalidID
	}
	if s.Row < 1 {
		return ErrSeatRowInvalid
	}
	if s.Number < 1 {
		return ErrSeatNumberInvalid
	}
	return nil
}
