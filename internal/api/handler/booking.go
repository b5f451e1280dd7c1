package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-venue-ticket-management/internal/application"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/ticket"
)

type BookingHandler struct {
	bookingService BookingServiceInterface
}

func NewBookingHandler(bookingService BookingServiceInterface) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

type PurchaseSeatRequest struct {
	EventSeatID int64 `json:"event_seat_id" validate:"required,gt=0" example:"1"`
	UserID      int64 `json:"user_id" validate:"required,gt=0" example:"1"`
	Price       int   `json:"price" validate:"gte=0" example:"8000"`
}

type TicketResponse struct {
	ID             int64  `json:"id" example:"1"`
	EventSeatID    int64  `json:"event_seat_id" example:"1"`
	UserID         int64  `json:"user_id" example:"1"`
	Price          int    `json:"price" example:"8000"`
	DateOfPurchase string `json:"date_of_purchase" example:"2026-08-01T12:00:00+09:00"`
}

func toTicketResponse(t *ticket.Ticket) *TicketResponse {
	return &TicketResponse{
		ID:             t.ID,
		EventSeatID:    t.EventSeatID,
		UserID:         t.UserID,
		Price:          t.Price,
		DateOfPurchase: t.DateOfPurchase.Format(time.RFC3339),
	}
}

// Purchase godoc
// @Summary 座席を購入
// @Description 空席を購入してチケットを発行します（残高から価格を減算します）
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body PurchaseSeatRequest true "購入情報"
// @Success 201 {object} TicketResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /tickets [post]
func (h *BookingHandler) Purchase(c echo.Context) error {
	var req PurchaseSeatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "リクエストの形式が不正です"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	t, err := h.bookingService.PurchaseSeat(c.Request().Context(), application.PurchaseSeatInput{
		EventSeatID: req.EventSeatID,
		UserID:      req.UserID,
		Price:       req.Price,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, toTicketResponse(t))
}

// GetByID godoc
// @Summary チケットを取得
// @Description 指定IDのチケットを取得します
// @Tags tickets
// @Produce json
// @Param id path int true "チケットID"
// @Success 200 {object} TicketResponse
// @Failure 404 {object} map[string]string
// @Router /tickets/{id} [get]
func (h *BookingHandler) GetByID(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	t, err := h.bookingService.GetTicket(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toTicketResponse(t))
}

// ListByUser godoc
// @Summary ユーザーのチケット一覧を取得
// @Description 指定ユーザーのチケット一覧を購入日時の降順で取得します
// @Tags tickets
// @Produce json
// @Param id path int true "ユーザーID"
// @Param limit query int false "取得件数" default(20)
// @Param offset query int false "オフセット" default(0)
// @Success 200 {array} TicketResponse
// @Router /users/{id}/tickets [get]
func (h *BookingHandler) ListByUser(c echo.Context) error {
	userID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	tickets, err := h.bookingService.GetUserTickets(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return errorJSON(c, err)
	}
	responses := make([]*TicketResponse, len(tickets))
	for i, t := range tickets {
		responses[i] = toTicketResponse(t)
	}
	return c.JSON(http.StatusOK, responses)
}

// Refund godoc
// @Summary チケットを払い戻し
// @Description チケットを削除して座席を解放し、残高へ価格を返金します
// @Tags tickets
// @Param id path int true "チケットID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /tickets/{id} [delete]
func (h *BookingHandler) Refund(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	if err := h.bookingService.RefundSeat(c.Request().Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
