package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-venue-ticket-management/internal/application"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/venue"
)

type SeatHandler struct {
	areaService AreaServiceInterface
}

func NewSeatHandler(areaService AreaServiceInterface) *SeatHandler {
	return &SeatHandler{areaService: areaService}
}

type CreateSeatRequest struct {
	AreaID int64 `json:"area_id" validate:"required,gt=0" example:"1"`
	Row    int   `json:"row" validate:"required,gte=1" example:"5"`
	Number int   `json:"number" validate:"required,gte=1" example:"12"`
}

type CreateBulkSeatsRequest struct {
	AreaID      int64 `json:"area_id" validate:"required,gt=0" example:"1"`
	Rows        int   `json:"rows" validate:"required,gte=1" example:"10"`
	SeatsPerRow int   `json:"seats_per_row" validate:"required,gte=1" example:"20"`
}

type UpdateSeatRequest struct {
	Row    int `json:"row" validate:"required,gte=1" example:"5"`
	Number int `json:"number" validate:"required,gte=1" example:"12"`
}

type SeatResponse struct {
	ID     int64 `json:"id" example:"1"`
	AreaID int64 `json:"area_id" example:"1"`
	Row    int   `json:"row" example:"5"`
	Number int   `json:"number" example:"12"`
}

func toSeatResponse(s *venue.Seat) *SeatResponse {
	return &SeatResponse{ID: s.ID, AreaID: s.AreaID, Row: s.Row, Number: s.Number}
}

// Create godoc
// @Summary 座席を作成
// @Description エリアに新しい座席を作成します
// @Tags seats
// @Accept json
// @Produce json
// @Param request body CreateSeatRequest true "座席情報"
// @Success 201 {object} SeatResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /seats [post]
func (h *SeatHandler) Create(c echo.Context) error {
	var req CreateSeatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "リクエストの形式が不正です"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	s, err := h.areaService.CreateSeat(c.Request().Context(), application.CreateSeatInput{
		AreaID: req.AreaID,
		Row:    req.Row,
		Number: req.Number,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, toSeatResponse(s))
}

// CreateBulk godoc
// @Summary 座席を一括作成
// @Description エリアに列数×列あたり座席数のグリッドを一括作成します
// @Tags seats
// @Accept json
// @Produce json
// @Param request body CreateBulkSeatsRequest true "一括作成情報"
// @Success 201 {array} SeatResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /seats/bulk [post]
func (h *SeatHandler) CreateBulk(c echo.Context) error {
	var req CreateBulkSeatsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "リクエストの形式が不正です"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	seats, err := h.areaService.CreateBulkSeats(c.Request().Context(), application.CreateBulkSeatsInput{
		AreaID:      req.AreaID,
		Rows:        req.Rows,
		SeatsPerRow: req.SeatsPerRow,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	responses := make([]*SeatResponse, len(seats))
	for i, s := range seats {
		responses[i] = toSeatResponse(s)
	}
	return c.JSON(http.StatusCreated, responses)
}

// GetByID godoc
// @Summary 座席を取得
// @Description 指定IDの座席を取得します
// @Tags seats
// @Produce json
// @Param id path int true "座席ID"
// @Success 200 {object} SeatResponse
// @Failure 404 {object} map[string]string
// @Router /seats/{id} [get]
func (h *SeatHandler) GetByID(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	s, err := h.areaService.GetSeat(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toSeatResponse(s))
}

// ListByArea godoc
// @Summary エリアの座席一覧を取得
// @Description 指定エリアの座席一覧を取得します
// @Tags seats
// @Produce json
// @Param id path int true "エリアID"
// @Success 200 {array} SeatResponse
// @Router /areas/{id}/seats [get]
func (h *SeatHandler) ListByArea(c echo.Context) error {
	areaID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	seats, err := h.areaService.GetSeatsByArea(c.Request().Context(), areaID)
	if err != nil {
		return errorJSON(c, err)
	}
	responses := make([]*SeatResponse, len(seats))
	for i, s := range seats {
		responses[i] = toSeatResponse(s)
	}
	return c.JSON(http.StatusOK, responses)
}

// Update godoc
// @Summary 座席を更新
// @Description 指定IDの座席の列・番号を変更します
// @Tags seats
// @Accept json
// @Produce json
// @Param id path int true "座席ID"
// @Param request body UpdateSeatRequest true "座席情報"
// @Success 200 {object} SeatResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /seats/{id} [put]
func (h *SeatHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	var req UpdateSeatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "リクエストの形式が不正です"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	s, err := h.areaService.UpdateSeat(c.Request().Context(), application.UpdateSeatInput{
		ID:     id,
		Row:    req.Row,
		Number: req.Number,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toSeatResponse(s))
}

// Delete godoc
// @Summary 座席を削除
// @Description 指定IDの座席を削除します
// @Tags seats
// @Param id path int true "座席ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /seats/{id} [delete]
func (h *SeatHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	if err := h.areaService.DeleteSeat(c.Request().Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
