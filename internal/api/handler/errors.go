package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/event"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/ticket"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/user"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/venue"
)

var notFoundErrors = []error{
	venue.ErrVenueNotFound,
	venue.ErrLayoutNotFound,
	venue.ErrAreaNotFound,
	venue.ErrSeatNotFound,
	event.ErrEventNotFound,
	event.ErrEventAreaNotFound,
	event.ErrEventSeatNotFound,
	ticket.ErrTicketNotFound,
	user.ErrUserNotFound,
}

var conflictErrors = []error{
	venue.ErrVenueNameTaken,
	venue.ErrLayoutNameTaken,
	venue.ErrAreaDescriptionTaken,
	venue.ErrSeatTaken,
	event.ErrEventPeriodTaken,
	event.ErrEventSeatTaken,
	event.ErrBookedSeatsExist,
	event.ErrSeatAlreadyBooked,
	event.ErrSeatNotBooked,
	user.ErrInsufficientBalance,
}

// errorJSON はドメインエラーをHTTPステータスへ対応付けてJSONで返す
// 未知のエラーは400として扱う（リポジトリ起因の内部エラーはラップ済み）
func errorJSON(c echo.Context, err error) error {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
	}
	for _, target := range conflictErrors {
		if errors.Is(err, target) {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
}

// pathID はパスパラメータをint64として取り出す
func pathID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func invalidID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": "IDの形式が不正です"})
}
