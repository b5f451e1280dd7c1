package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

func validEvent() *Event {
	return NewEvent(1, "夏のコンサート", "年に一度の野外公演",
		baseTime, baseTime.Add(4*time.Hour), baseTime.Add(30*time.Minute),
		5000, "https://example.com/summer.jpg")
}

func TestEvent_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Event)
		expectedErr error
	}{
		{
			name:        "有効なイベント",
			mutate:      func(e *Event) {},
			expectedErr: nil,
		},
		{
			name:        "レイアウトIDが不正",
			mutate:      func(e *Event) { e.LayoutID = 0 },
			expectedErr: ErrInvalidID,
		},
		{
			name:        "イベント名が空",
			mutate:      func(e *Event) { e.Name = "" },
			expectedErr: ErrEventNameRequired,
		},
		{
			name:        "説明が空",
			mutate:      func(e *Event) { e.Description = "" },
			expectedErr: ErrEventDescriptionRequired,
		},
		{
			name:        "画像URLが空",
			mutate:      func(e *Event) { e.ImageURL = "" },
			expectedErr: ErrEventImageRequired,
		},
		{
			name:        "基本価格が負",
			mutate:      func(e *Event) { e.BaseAreaPrice = -1 },
			expectedErr: ErrEventPriceNegative,
		},
		{
			name:        "終了時刻が開始時刻と同じ",
			mutate:      func(e *Event) { e.DateEnd = e.DateStart },
			expectedErr: ErrInvalidEventTime,
		},
		{
			name:        "終了時刻が開始時刻より前",
			mutate:      func(e *Event) { e.DateEnd = e.DateStart.Add(-1 * time.Hour) },
			expectedErr: ErrInvalidEventTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEvent()
			tt.mutate(e)
			err := e.Validate()
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestEvent_ValidateStart(t *testing.T) {
	e := validEvent()

	t.Run("開始時刻が未来なら有効", func(t *testing.T) {
		assert.NoError(t, e.ValidateStart(baseTime.Add(-1*time.Minute)))
	})

	t.Run("開始時刻ちょうどなら有効", func(t *testing.T) {
		assert.NoError(t, e.ValidateStart(baseTime))
	})

	t.Run("開始時刻が過去ならエラー", func(t *testing.T) {
		assert.ErrorIs(t, e.ValidateStart(baseTime.Add(1*time.Minute)), ErrEventInPast)
	})
}

func TestEvent_Overlaps(t *testing.T) {
	// 基準イベント: [18:00, 22:00)
	e := validEvent()

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{
			name:  "完全に重なる",
			start: e.DateStart,
			end:   e.DateEnd,
			want:  true,
		},
		{
			name:  "前半が重なる",
			start: e.DateStart.Add(-2 * time.Hour),
			end:   e.DateStart.Add(1 * time.Hour),
			want:  true,
		},
		{
			name:  "後半が重なる",
			start: e.DateEnd.Add(-1 * time.Hour),
			end:   e.DateEnd.Add(2 * time.Hour),
			want:  true,
		},
		{
			name:  "内側に含まれる",
			start: e.DateStart.Add(1 * time.Hour),
			end:   e.DateEnd.Add(-1 * time.Hour),
			want:  true,
		},
		{
			name:  "外側を覆う",
			start: e.DateStart.Add(-1 * time.Hour),
			end:   e.DateEnd.Add(1 * time.Hour),
			want:  true,
		},
		{
			name:  "終了時刻が相手の開始時刻と一致（隣接）",
			start: e.DateStart.Add(-4 * time.Hour),
			end:   e.DateStart,
			want:  false,
		},
		{
			name:  "開始時刻が相手の終了時刻と一致（隣接）",
			start: e.DateEnd,
			end:   e.DateEnd.Add(4 * time.Hour),
			want:  false,
		},
		{
			name:  "完全に前",
			start: e.DateStart.Add(-10 * time.Hour),
			end:   e.DateStart.Add(-6 * time.Hour),
			want:  false,
		},
		{
			name:  "完全に後",
			start: e.DateEnd.Add(6 * time.Hour),
			end:   e.DateEnd.Add(10 * time.Hour),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := &Event{DateStart: tt.start, DateEnd: tt.end}
			assert.Equal(t, tt.want, e.Overlaps(other))
			// 重なり判定は対称
			assert.Equal(t, tt.want, other.Overlaps(e))
		})
	}
}

func TestSnapshotArea(t *testing.T) {
	ea := SnapshotArea(100, 10, "アリーナA", 3, 7, 5000)

	assert.Equal(t, int64(100), ea.EventID)
	assert.Equal(t, int64(10), ea.AreaID)
	assert.Equal(t, "アリーナA", ea.Description)
	assert.Equal(t, 3, ea.CoordX)
	assert.Equal(t, 7, ea.CoordY)
	assert.Equal(t, 5000, ea.Price)
	assert.NoError(t, ea.Validate())
}

func TestEventArea_Validate(t *testing.T) {
	t.Run("負の価格はエラー", func(t *testing.T) {
		ea := SnapshotArea(100, 10, "アリーナA", 0, 0, -1)
		assert.ErrorIs(t, ea.Validate(), ErrEventAreaPriceNegative)
	})

	t.Run("コピー元エリアIDが不正な場合はエラー", func(t *testing.T) {
		ea := SnapshotArea(100, 0, "アリーナA", 0, 0, 5000)
		assert.ErrorIs(t, ea.Validate(), ErrInvalidID)
	})
}

func TestSnapshotSeat(t *testing.T) {
	s := SnapshotSeat(200, 2, 5)

	assert.Equal(t, int64(200), s.EventAreaID)
	assert.Equal(t, 2, s.Row)
	assert.Equal(t, 5, s.Number)
	assert.Equal(t, SeatFree, s.State)
	assert.True(t, s.IsFree())
}

func TestEventSeat_BookAndRelease(t *testing.T) {
	t.Run("空席は購入できる", func(t *testing.T) {
		s := SnapshotSeat(200, 1, 1)

		require.NoError(t, s.Book())
		assert.Equal(t, SeatBooked, s.State)
		assert.False(t, s.IsFree())
	})

	t.Run("購入済みの座席は再購入できない", func(t *testing.T) {
		s := SnapshotSeat(200, 1, 1)
		require.NoError(t, s.Book())

		assert.ErrorIs(t, s.Book(), ErrSeatAlreadyBooked)
	})

	t.Run("購入済みの座席は解放できる", func(t *testing.T) {
		s := SnapshotSeat(200, 1, 1)
		require.NoError(t, s.Book())

		require.NoError(t, s.Release())
		assert.True(t, s.IsFree())
	})

	t.Run("空席は解放できない", func(t *testing.T) {
		s := SnapshotSeat(200, 1, 1)

		assert.ErrorIs(t, s.Release(), ErrSeatNotBooked)
	})
}

func TestEventSeat_Validate(t *testing.T) {
	tests := []struct {
		name        string
		seat        *EventSeat
		expectedErr error
	}{
		{
			name:        "有効な座席",
			seat:        &EventSeat{EventAreaID: 200, Row: 1, Number: 1, State: SeatFree},
			expectedErr: nil,
		},
		{
			name:        "イベントエリアIDが不正",
			seat:        &EventSeat{EventAreaID: 0, Row: 1, Number: 1, State: SeatFree},
			expectedErr: ErrInvalidID,
		},
		{
			name:        "列が0",
			seat:        &EventSeat{EventAreaID: 200, Row: 0, Number: 1, State: SeatFree},
			expectedErr: ErrEventSeatPositionInvalid,
		},
		{
			name:        "状態が不正",
			seat:        &EventSeat{EventAreaID: 200, Row: 1, Number: 1, State: "pending"},
			expectedErr: ErrEventSeatStateInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.seat.Validate()
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
