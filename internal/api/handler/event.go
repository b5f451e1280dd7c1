package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-venue-ticket-management/internal/application"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/event"
)

type EventHandler struct {
	eventService EventServiceInterface
}

func NewEventHandler(eventService EventServiceInterface) *EventHandler {
	return &EventHandler{eventService: eventService}
}

type CreateEventRequest struct {
	LayoutID      int64  `json:"layout_id" validate:"required,gt=0" example:"1"`
	Name          string `json:"name" validate:"required" example:"年末スペシャルコンサート2026"`
	Description   string `json:"description" validate:"required" example:"オーケストラによる年末公演"`
	DateStart     string `json:"date_start" validate:"required" example:"2026-12-31T18:00:00+09:00"`
	DateEnd       string `json:"date_end" validate:"required" example:"2026-12-31T21:00:00+09:00"`
	ShowTime      string `json:"show_time" validate:"required" example:"2026-12-31T18:30:00+09:00"`
	BaseAreaPrice int    `json:"base_area_price" validate:"gte=0" example:"8000"`
	ImageURL      string `json:"image_url" validate:"required" example:"https://example.com/concert.jpg"`
}

type UpdateEventRequest struct {
	Name          string `json:"name" validate:"required" example:"年末スペシャルコンサート2026"`
	Description   string `json:"description" validate:"required" example:"オーケストラによる年末公演"`
	DateStart     string `json:"date_start" validate:"required" example:"2026-12-31T18:00:00+09:00"`
	DateEnd       string `json:"date_end" validate:"required" example:"2026-12-31T21:00:00+09:00"`
	ShowTime      string `json:"show_time" validate:"required" example:"2026-12-31T18:30:00+09:00"`
	BaseAreaPrice int    `json:"base_area_price" validate:"gte=0" example:"8000"`
	ImageURL      string `json:"image_url" validate:"required" example:"https://example.com/concert.jpg"`
}

type EventResponse struct {
	ID            int64  `json:"id" example:"1"`
	LayoutID      int64  `json:"layout_id" example:"1"`
	Name          string `json:"name" example:"年末スペシャルコンサート2026"`
	Description   string `json:"description" example:"オーケストラによる年末公演"`
	DateStart     string `json:"date_start" example:"2026-12-31T18:00:00+09:00"`
	DateEnd       string `json:"date_end" example:"2026-12-31T21:00:00+09:00"`
	ShowTime      string `json:"show_time" example:"2026-12-31T18:30:00+09:00"`
	BaseAreaPrice int    `json:"base_area_price" example:"8000"`
	ImageURL      string `json:"image_url" example:"https://example.com/concert.jpg"`
}

type EventAreaResponse struct {
	ID          int64  `json:"id" example:"1"`
	EventID     int64  `json:"event_id" example:"1"`
	AreaID      int64  `json:"area_id" example:"1"`
	Description string `json:"description" example:"1階 アリーナブロックA"`
	CoordX      int    `json:"coord_x" example:"10"`
	CoordY      int    `json:"coord_y" example:"20"`
	Price       int    `json:"price" example:"8000"`
}

type EventSeatResponse struct {
	ID          int64  `json:"id" example:"1"`
	EventAreaID int64  `json:"event_area_id" example:"1"`
	Row         int    `json:"row" example:"5"`
	Number      int    `json:"number" example:"12"`
	State       string `json:"state" example:"free"`
}

type UpdateEventAreaPriceRequest struct {
	Price int `json:"price" validate:"gte=0" example:"9500"`
}

type FreeSeatCountResponse struct {
	EventID   int64 `json:"event_id" example:"1"`
	FreeSeats int   `json:"free_seats" example:"180"`
}

func toEventResponse(e *event.Event) *EventResponse {
	return &EventResponse{
		ID:            e.ID,
		LayoutID:      e.LayoutID,
		Name:          e.Name,
		Description:   e.Description,
		DateStart:     e.DateStart.Format(time.RFC3339),
		DateEnd:       e.DateEnd.Format(time.RFC3339),
		ShowTime:      e.ShowTime.Format(time.RFC3339),
		BaseAreaPrice: e.BaseAreaPrice,
		ImageURL:      e.ImageURL,
	}
}

func toEventAreaResponse(a *event.EventArea) *EventAreaResponse {
	return &EventAreaResponse{
		ID:          a.ID,
		EventID:     a.EventID,
		AreaID:      a.AreaID,
		Description: a.Description,
		CoordX:      a.CoordX,
		CoordY:      a.CoordY,
		Price:       a.Price,
	}
}

func toEventSeatResponse(s *event.EventSeat) *EventSeatResponse {
	return &EventSeatResponse{
		ID:          s.ID,
		EventAreaID: s.EventAreaID,
		Row:         s.Row,
		Number:      s.Number,
		State:       string(s.State),
	}
}

// Create godoc
// @Summary イベントを作成
// @Description レイアウトのエリア・座席をスナップショットして新しいイベントを作成します
// @Tags events
// @Accept json
// @Produce json
// @Param request body CreateEventRequest true "イベント情報"
// @Success 201 {object} EventResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "リクエストの形式が不正です"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	dateStart, dateEnd, showTime, err := parseEventTimes(req.DateStart, req.DateEnd, req.ShowTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	e, err := h.eventService.CreateEvent(c.Request().Context(), application.CreateEventInput{
		LayoutID:      req.LayoutID,
		Name:          req.Name,
		Description:   req.Description,
		DateStart:     dateStart,
		DateEnd:       dateEnd,
		ShowTime:      showTime,
		BaseAreaPrice: req.BaseAreaPrice,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, toEventResponse(e))
}

// GetByID godoc
// @Summary イベントを取得
// @Description 指定IDのイベントを取得します
// @Tags events
// @Produce json
// @Param id path int true "イベントID"
// @Success 200 {object} EventResponse
// @Failure 404 {object} map[string]string
// @Router /events/{id} [get]
func (h *EventHandler) GetByID(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	e, err := h.eventService.GetEvent(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toEventResponse(e))
}

// List godoc
// @Summary イベント一覧を取得
// @Description イベントの一覧を開始日時の降順で取得します
// @Tags events
// @Produce json
// @Param limit query int false "取得件数" default(20)
// @Param offset query int false "オフセット" default(0)
// @Success 200 {array} EventResponse
// @Router /events [get]
func (h *EventHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	events, err := h.eventService.ListEvents(c.Request().Context(), limit, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	responses := make([]*EventResponse, len(events))
	for i, e := range events {
		responses[i] = toEventResponse(e)
	}
	return c.JSON(http.StatusOK, responses)
}

// ListByLayout godoc
// @Summary レイアウトのイベント一覧を取得
// @Description 指定レイアウトのイベント一覧を取得します
// @Tags events
// @Produce json
// @Param id path int true "レイアウトID"
// @Success 200 {array} EventResponse
// @Router /layouts/{id}/events [get]
func (h *EventHandler) ListByLayout(c echo.Context) error {
	layoutID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	events, err := h.eventService.GetEventsByLayout(c.Request().Context(), layoutID)
	if err != nil {
		return errorJSON(c, err)
	}
	responses := make([]*EventResponse, len(events))
	for i, e := range events {
		responses[i] = toEventResponse(e)
	}
	return c.JSON(http.StatusOK, responses)
}

// Update godoc
// @Summary イベントを更新
// @Description 指定IDのイベントを更新します（スナップショットへは影響しません）
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "イベントID"
// @Param request body UpdateEventRequest true "イベント情報"
// @Success 200 {object} EventResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	var req UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "リクエストの形式が不正です"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	dateStart, dateEnd, showTime, err := parseEventTimes(req.DateStart, req.DateEnd, req.ShowTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	e, err := h.eventService.UpdateEvent(c.Request().Context(), application.UpdateEventInput{
		ID:            id,
		Name:          req.Name,
		Description:   req.Description,
		DateStart:     dateStart,
		DateEnd:       dateEnd,
		ShowTime:      showTime,
		BaseAreaPrice: req.BaseAreaPrice,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toEventResponse(e))
}

// Delete godoc
// @Summary イベントを削除
// @Description 指定IDのイベントをスナップショットごと削除します（購入済み座席があると削除できません）
// @Tags events
// @Param id path int true "イベントID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	if err := h.eventService.DeleteEvent(c.Request().Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListAreas godoc
// @Summary イベントエリア一覧を取得
// @Description 指定イベントのエリアスナップショット一覧を取得します
// @Tags events
// @Produce json
// @Param id path int true "イベントID"
// @Success 200 {array} EventAreaResponse
// @Router /events/{id}/areas [get]
func (h *EventHandler) ListAreas(c echo.Context) error {
	eventID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	areas, err := h.eventService.GetEventAreas(c.Request().Context(), eventID)
	if err != nil {
		return errorJSON(c, err)
	}
	responses := make([]*EventAreaResponse, len(areas))
	for i, a := range areas {
		responses[i] = toEventAreaResponse(a)
	}
	return c.JSON(http.StatusOK, responses)
}

// UpdateAreaPrice godoc
// @Summary イベントエリア価格を変更
// @Description 指定イベントエリアの価格を変更します
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "イベントエリアID"
// @Param request body UpdateEventAreaPriceRequest true "価格情報"
// @Success 200 {object} EventAreaResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /event-areas/{id}/price [put]
func (h *EventHandler) UpdateAreaPrice(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	var req UpdateEventAreaPriceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "リクエストの形式が不正です"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	a, err := h.eventService.UpdateEventAreaPrice(c.Request().Context(), id, req.Price)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toEventAreaResponse(a))
}

// DeleteArea godoc
// @Summary イベントエリアを削除
// @Description 指定イベントエリアを配下の座席ごと削除します（購入済み座席があると削除できません）
// @Tags events
// @Param id path int true "イベントエリアID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /event-areas/{id} [delete]
func (h *EventHandler) DeleteArea(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	if err := h.eventService.DeleteEventArea(c.Request().Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListSeats godoc
// @Summary イベント座席一覧を取得
// @Description 指定イベントエリアの座席スナップショット一覧を取得します
// @Tags events
// @Produce json
// @Param id path int true "イベントエリアID"
// @Success 200 {array} EventSeatResponse
// @Router /event-areas/{id}/seats [get]
func (h *EventHandler) ListSeats(c echo.Context) error {
	eventAreaID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	seats, err := h.eventService.GetEventSeats(c.Request().Context(), eventAreaID)
	if err != nil {
		return errorJSON(c, err)
	}
	responses := make([]*EventSeatResponse, len(seats))
	for i, s := range seats {
		responses[i] = toEventSeatResponse(s)
	}
	return c.JSON(http.StatusOK, responses)
}

// DeleteSeat godoc
// @Summary イベント座席を削除
// @Description 指定イベント座席を削除します（購入済みの座席は削除できません）
// @Tags events
// @Param id path int true "イベント座席ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /event-seats/{id} [delete]
func (h *EventHandler) DeleteSeat(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	if err := h.eventService.DeleteEventSeat(c.Request().Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CountFreeSeats godoc
// @Summary 空席数を取得
// @Description 指定イベントの空席数を取得します（キャッシュ利用）
// @Tags events
// @Produce json
// @Param id path int true "イベントID"
// @Success 200 {object} FreeSeatCountResponse
// @Failure 404 {object} map[string]string
// @Router /events/{id}/free-seats [get]
func (h *EventHandler) CountFreeSeats(c echo.Context) error {
	eventID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	count, err := h.eventService.CountFreeSeats(c.Request().Context(), eventID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, FreeSeatCountResponse{EventID: eventID, FreeSeats: count})
}

func parseEventTimes(start, end, show string) (time.Time, time.Time, time.Time, error) {
	dateStart, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return time.Time{}, time.Time{}, time.Time{}, fmt.Errorf("開始時刻の形式が不正です")
	}
	dateEnd, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return time.Time{}, time.Time{}, time.Time{}, fmt.Errorf("終了時刻の形式が不正です")
	}
	showTime, err := time.Parse(time.RFC3339, show)
	if err != nil {
		return time.Time{}, time.Time{}, time.Time{}, fmt.Errorf("開演時刻の形式が不正です")
	}
	return dateStart, dateEnd, showTime, nil
}
