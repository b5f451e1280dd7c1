package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-venue-ticket-management/internal/application"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/venue"
)

type LayoutHandler struct {
	venueService VenueServiceInterface
}

func NewLayoutHandler(venueService VenueServiceInterface) *LayoutHandler {
	return &LayoutHandler{venueService: venueService}
}

type CreateLayoutRequest struct {
	VenueID     int64  `json:"venue_id" validate:"required,gt=0" example:"1"`
	Name        string `json:"name" validate:"required" example:"ホールA 標準配置"`
	Description string `json:"description" example:"コンサート向けの標準座席配置"`
}

type UpdateLayoutRequest struct {
	Name        string `json:"name" validate:"required" example:"ホールA 標準配置"`
	Description string `json:"description" example:"コンサート向けの標準座席配置"`
}

type LayoutResponse struct {
	ID          int64  `json:"id" example:"1"`
	VenueID     int64  `json:"venue_id" example:"1"`
	Name        string `json:"name" example:"ホールA 標準配置"`
	Description string `json:"description" example:"コンサート向けの標準座席配置"`
}

func toLayoutResponse(l *venue.Layout) *LayoutResponse {
	return &LayoutResponse{
		ID:          l.ID,
		VenueID:     l.VenueID,
		Name:        l.Name,
		Description: l.Description,
	}
}

// Create godoc
// @Summary レイアウトを作成
// @Description 会場に新しいレイアウトを作成します
// @Tags layouts
// @Accept json
// @Produce json
// @Param request body CreateLayoutRequest true "レイアウト情報"
// @Success 201 {object} LayoutResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /layouts [post]
func (h *LayoutHandler) Create(c echo.Context) error {
	var req CreateLayoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "リクエストの形式が不正です"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	l, err := h.venueService.CreateLayout(c.Request().Context(), application.CreateLayoutInput{
		VenueID:     req.VenueID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, toLayoutResponse(l))
}

// GetByID godoc
// @Summary レイアウトを取得
// @Description 指定IDのレイアウトを取得します
// @Tags layouts
// @Produce json
// @Param id path int true "レイアウトID"
// @Success 200 {object} LayoutResponse
// @Failure 404 {object} map[string]string
// @Router /layouts/{id} [get]
func (h *LayoutHandler) GetByID(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	l, err := h.venueService.GetLayout(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toLayoutResponse(l))
}

// ListByVenue godoc
// @Summary 会場のレイアウト一覧を取得
// @Description 指定会場のレイアウト一覧を取得します
// @Tags layouts
// @Produce json
// @Param id path int true "会場ID"
// @Success 200 {array} LayoutResponse
// @Router /venues/{id}/layouts [get]
func (h *LayoutHandler) ListByVenue(c echo.Context) error {
	venueID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	layouts, err := h.venueService.GetLayoutsByVenue(c.Request().Context(), venueID)
	if err != nil {
		return errorJSON(c, err)
	}
	responses := make([]*LayoutResponse, len(layouts))
	for i, l := range layouts {
		responses[i] = toLayoutResponse(l)
	}
	return c.JSON(http.StatusOK, responses)
}

// Update godoc
// @Summary レイアウトを更新
// @Description 指定IDのレイアウトを更新します
// @Tags layouts
// @Accept json
// @Produce json
// @Param id path int true "レイアウトID"
// @Param request body UpdateLayoutRequest true "レイアウト情報"
// @Success 200 {object} LayoutResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /layouts/{id} [put]
func (h *LayoutHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	var req UpdateLayoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "リクエストの形式が不正です"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	l, err := h.venueService.UpdateLayout(c.Request().Context(), application.UpdateLayoutInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toLayoutResponse(l))
}

// Delete godoc
// @Summary レイアウトを削除
// @Description 指定IDのレイアウトを配下のエリア・座席・イベントごと削除します
// @Tags layouts
// @Param id path int true "レイアウトID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /layouts/{id} [delete]
func (h *LayoutHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	if err := h.venueService.DeleteLayout(c.Request().Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
