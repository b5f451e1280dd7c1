package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-venue-ticket-management/internal/application"
	"github.com/sanosuguru/go-venue-ticket-management/internal/domain/venue"
)

type VenueHandler struct {
	venueService VenueServiceInterface
}

func NewVenueHandler(venueService VenueServiceInterface) *VenueHandler {
	return &VenueHandler{venueService: venueService}
}

type VenueRequest struct {
	Name        string `json:"name" validate:"required" example:"東京国際フォーラム"`
	Address     string `json:"address" example:"東京都千代田区丸の内3-5-1"`
	Phone       string `json:"phone" example:"03-5221-9000"`
	Description string `json:"description" example:"大小8つのホールを備える複合施設"`
}

type VenueResponse struct {
	ID          int64  `json:"id" example:"1"`
	Name        string `json:"name" example:"東京国際フォーラム"`
	Address     string `json:"address" example:"東京都千代田区丸の内3-5-1"`
	Phone       string `json:"phone" example:"03-5221-9000"`
	Description string `json:"description" example:"大小8つのホールを備える複合施設"`
}

func toVenueResponse(v *venue.Venue) *VenueResponse {
	return &VenueResponse{
		ID:          v.ID,
		Name:        v.Name,
		Address:     v.Address,
		Phone:       v.Phone,
		Description: v.Description,
	}
}

// Create godoc
// @Summary 会場を作成
// @Description 新しい会場を作成します
// @Tags venues
// @Accept json
// @Produce json
// @Param request body VenueRequest true "会場情報"
// @Success 201 {object} VenueResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /venues [post]
func (h *VenueHandler) Create(c echo.Context) error {
	var req VenueRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "リクエストの形式が不正です"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	v, err := h.venueService.CreateVenue(c.Request().Context(), application.CreateVenueInput{
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		Description: req.Description,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, toVenueResponse(v))
}

// GetByID godoc
// @Summary 会場を取得
// @Description 指定IDの会場を取得します
// @Tags venues
// @Produce json
// @Param id path int true "会場ID"
// @Success 200 {object} VenueResponse
// @Failure 404 {object} map[string]string
// @Router /venues/{id} [get]
func (h *VenueHandler) GetByID(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	v, err := h.venueService.GetVenue(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toVenueResponse(v))
}

// List godoc
// @Summary 会場一覧を取得
// @Description 会場の一覧を取得します
// @Tags venues
// @Produce json
// @Success 200 {array} VenueResponse
// @Router /venues [get]
func (h *VenueHandler) List(c echo.Context) error {
	venues, err := h.venueService.ListVenues(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	responses := make([]*VenueResponse, len(venues))
	for i, v := range venues {
		responses[i] = toVenueResponse(v)
	}
	return c.JSON(http.StatusOK, responses)
}

// Update godoc
// @Summary 会場を更新
// @Description 指定IDの会場を更新します
// @Tags venues
// @Accept json
// @Produce json
// @Param id path int true "会場ID"
// @Param request body VenueRequest true "会場情報"
// @Success 200 {object} VenueResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /venues/{id} [put]
func (h *VenueHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	var req VenueRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "リクエストの形式が不正です"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	v, err := h.venueService.UpdateVenue(c.Request().Context(), application.UpdateVenueInput{
		ID:          id,
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		Description: req.Description,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, toVenueResponse(v))
}

// Delete godoc
// @Summary 会場を削除
// @Description 指定IDの会場を配下のレイアウト・エリア・座席・イベントごと削除します
// @Tags venues
// @Param id path int true "会場ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /venues/{id} [delete]
func (h *VenueHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}
	if err := h.venueService.DeleteVenue(c.Request().Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
