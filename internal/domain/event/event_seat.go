package event

// SeatState はイベント座席の状態を表す
type SeatState string

const (
	SeatFree   SeatState = "free"
	SeatBooked SeatState = "booked"
)

// EventSeat はイベント作成時に座席からコピーされたスナップショットを表す
// 状態遷移は Free --購入--> Booked --払い戻し--> Free のみ
type EventSeat struct {
	ID          int64
	EventAreaID int64
	Row         int
	Number      int
	State       SeatState
}

// SnapshotSeat は座席のコピーからEventSeatを作成する（初期状態はFree）
func SnapshotSeat(eventAreaID int64, row, number int) *EventSeat {
	return &EventSeat{
		EventAreaID: eventAreaID,
		Row:         row,
		Number:      number,
		State:       SeatFree,
	}
}

// IsFree は座席が購入可能かを返す
func (s *EventSeat) IsFree() bool {
	return s.State == SeatFree
}

// Book は座席を購入済み状態にする
func (s *EventSeat) Book() error {
	if s.State != SeatFree {
		return ErrSeatAlreadyBooked
	}
	s.State = SeatBooked
	return nil
}

// Release は座席を解放する
func (s *EventSeat) Release() error {
	if s.State != SeatBooked {
		return ErrSeatNotBooked
	}
	s.State = SeatFree
	return nil
}

// Validate はイベント座席の検証を行う
func (s *EventSeat) Validate() error {
	if s.EventAreaID <= 0 {
		return ErrInvalidID
	}
	if s.Row < 1 || s.Number < 1 {
		return ErrEventSeatPositionInvalid
	}
	if s.State != SeatFree && s.State != SeatBooked {
		return ErrEventSeatStateInvalid
	}
	return nil
}
