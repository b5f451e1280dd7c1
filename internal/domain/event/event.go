package event

import "time"

// イベント名の文字数上限（DB側のカラム定義と一致させる）
const MaxNameLen = 120

// Event はレイアウトに対して開催されるイベントを表す
// 作成時にレイアウト配下のエリア・座席がEventArea/EventSeatへスナップショットされる
type Event struct {
	ID            int64
	LayoutID      int64
	Name          string
	Description   string
	DateStart     time.Time
	DateEnd       time.Time
	ShowTime      time.Time
	BaseAreaPrice int
	ImageURL      string
}

// NewEvent は新しいイベントを作成する
func NewEvent(layoutID int64, name, description string, dateStart, dateEnd, showTime time.Time, baseAreaPrice int, imageURL string) *Event {
	return &Event{
		LayoutID:      layoutID,
		Name:          name,
		Description:   description,
		DateStart:     dateStart,
		DateEnd:       dateEnd,
		ShowTime:      showTime,
		BaseAreaPrice: baseAreaPrice,
		ImageURL:      imageURL,
	}
}

// Validate はイベントの検証を行う
func (e *Event) Validate() error {
	if e.LayoutID <= 0 {
		return ErrInvalidID
	}
	if e.Name == "" {
		return ErrEventNameRequired
	}
	if len([]rune(e.Name)) > MaxNameLen {
		return ErrEventNameTooLong
	}
	if e.Description == "" {
		return ErrEventDescriptionRequired
	}
	if e.ImageURL == "" {
		return ErrEventImageRequired
	}
	if e.BaseAreaPrice < 0 {
		return ErrEventPriceNegative
	}
	if !e.DateStart.Before(e.DateEnd) {
		return ErrInvalidEventTime
	}
	return nil
}

// ValidateStart は開始時刻が過去でないことを検証する（作成時のみ）
// 現在時刻は決定的なテストのために引数で受け取る
func (e *Event) ValidateStart(now time.Time) error {
	if e.DateStart.Before(now) {
		return ErrEventInPast
	}
	return nil
}

// Overlaps は半開区間 [DateStart, DateEnd) 同士の重なりを判定する
// 境界が一致するだけの場合（end == start）は重ならない
func (e *Event) Overlaps(other *Event) bool {
	return e.DateStart.Before(other.DateEnd) && other.DateStart.Before(e.DateEnd)
}
