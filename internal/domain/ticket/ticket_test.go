package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTicket(t *testing.T) {
	purchasedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tk := NewTicket(300, 1, 5000, purchasedAt)

	assert.Equal(t, int64(0), tk.ID)
	assert.Equal(t, int64(300), tk.EventSeatID)
	assert.Equal(t, int64(1), tk.UserID)
	assert.Equal(t, 5000, tk.Price)
	assert.Equal(t, purchasedAt, tk.DateOfPurchase)
}

func TestTicket_Validate(t *testing.T) {
	tests := []struct {
		name        string
		ticket      *Ticket
		expectedErr error
	}{
		{
			name:        "有効なチケット",
			ticket:      &Ticket{EventSeatID: 300, UserID: 1, Price: 5000},
			expectedErr: nil,
		},
		{
			name:        "価格0も有効",
			ticket:      &Ticket{EventSeatID: 300, UserID: 1, Price: 0},
			expectedErr: nil,
		},
		{
			name:        "イベント座席IDが不正",
			ticket:      &Ticket{EventSeatID: 0, UserID: 1, Price: 5000},
			expectedErr: ErrInvalidID,
		},
		{
			name:        "ユーザーIDが不正",
			ticket:      &Ticket{EventSeatID: 300, UserID: 0, Price: 5000},
			expectedErr: ErrInvalidID,
		},
		{
			name:        "価格が負",
			ticket:      &Ticket{EventSeatID: 300, UserID: 1, Price: -1},
			expectedErr: ErrPriceNegative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ticket.Validate()
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
