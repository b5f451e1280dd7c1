package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-venue-ticket-management/internal/application"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/venue"
)

type AreaHandler struct {
	areaService AreaServiceInterface
}

func NewAreaHandler(areaService AreaServiceInterface) *AreaHandler {
	return &AreaHandler{areaService: areaService}
}

type CreateAreaRequest struct {
	LayoutID    int64  `json:"layout_id" validate:"required,gt=0" example:"1"`
	Description string `json:"description" validate:"required" example:"1階 アリーナブロックA"`
	CoordX      int    `json:"coord_x" validate:"gte=0" example:"10"`
	CoordY      int    `json:"coord_y" validate:"gte=0" example:"20"`
}

type UpdateAreaRequest struct {
	Description string `json:"description" validate:"required" example:"1階 アリーナブロックA"`
	CoordX      int    `json:"coord_x" validate:"gte=0" example:"10"`
	CoordY      int    `json:"coord_y" validate:"gte=0" example:"20"`
}

type AreaResponse struct {
	ID          int64  `json:"id" example:"1"`
	LayoutID    int64  `json:"layout_id" example:"1"`
	Description string `json:"description" example:"1階 アリーナブロックA"`
	CoordX      int    `json:"coord_x" example:"10"`
	CoordY      int    `json:"coord_y" example:"20"`
}

func toAreaResponse(a *venue.Area) *AreaResponse {
	return &AreaResponse{
		ID:          a.ID,
		LayoutID:    a.LayoutID,
		Description: a.Description,
		CoordX:      a.CoordX,
		CoordY:      a.CoordY,
	}
}

// Create godoc
// @Summary エリアを作成
// @Description レイアウトに新しいエリアを作成します
// @Tags areas
// @Accept json
// @Produce json
// @Param request body CreateAreaRequest true "エリア情報"
// @Success 201 {object} AreaResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /areas [post]
func (h *AreaHandler) Create(c echo.Context) error {
	var req CreateAreaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "リクエストの形式が不正です"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	a, err := h.areaService.CreateArea(c.Request().Context(), application.CreateAreaInput{
		LayoutID:    req.LayoutID,
		Description: req.Description,
		CoordX:      req.CoordX,
		CoordY:      req.CoordY,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, toAreaResponse(a))
}

// GetByID godoc
// @Summary エリアを取得
// @Description 指定IDのエリアを取得します
// @Tags areas
// @Produce json
// @Param id path int true "エリアID"
// @Success 200 {object} AreaResponse
// @Failure 404 {object} map[string]string
// @Router /areas/{id} [get]
func (h *AreaHandler) GetByID(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	a, err := h.areaService.GetArea(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toAreaResponse(a))
}

// ListByLayout godoc
// @Summary レイアウトのエリア一覧を取得
// @Description 指定レイアウトのエリア一覧を取得します
// @Tags areas
// @Produce json
// @Param id path int true "レイアウトID"
// @Success 200 {array} AreaResponse
// @Router /layouts/{id}/areas [get]
func (h *AreaHandler) ListByLayout(c echo.Context) error {
	layoutID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	areas, err := h.areaService.GetAreasByLayout(c.Request().Context(), layoutID)
	if err != nil {
		return errorJSON(c, err)
	}
	responses := make([]*AreaResponse, len(areas))
	for i, a := range areas {
		responses[i] = toAreaResponse(a)
	}
	return c.JSON(http.StatusOK, responses)
}

// Update godoc
// @Summary エリアを更新
// @Description 指定IDのエリアを更新します（既存イベントのスナップショットへは影響しません）
// @Tags areas
// @Accept json
// @Produce json
// @Param id path int true "エリアID"
// @Param request body UpdateAreaRequest true "エリア情報"
// @Success 200 {object} AreaResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /areas/{id} [put]
func (h *AreaHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	var req UpdateAreaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "リクエストの形式が不正です"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	a, err := h.areaService.UpdateArea(c.Request().Context(), application.UpdateAreaInput{
		ID:          id,
		Description: req.Description,
		CoordX:      req.CoordX,
		CoordY:      req.CoordY,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toAreaResponse(a))
}

// Delete godoc
// @Summary エリアを削除
// @Description 指定IDのエリアを配下の座席ごと削除します
// @Tags areas
// @Param id path int true "エリアID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /areas/{id} [delete]
func (h *AreaHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	if err := h.areaService.DeleteArea(c.Request().Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
