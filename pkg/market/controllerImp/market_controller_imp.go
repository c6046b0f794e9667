package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	repo "github.com/RahulHansraj/FarmToMarket/pkg/market/repository"
)

type MarketCtrl struct{ repo repo.MarketRepository }

func New(repo repo.MarketRepository) *MarketCtrl { return &MarketCtrl{repo} }

type coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type marketResp struct {
	ID           uint        `json:"id"`
	Name         string      `json:"name"`
	Location     string      `json:"location"`
	Coordinates  coordinates `json:"coordinates"`
	SpoilageRisk string      `json:"spoilageRisk"`
}

func (h *MarketCtrl) List(c echo.Context) error {
	markets, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	out := make([]marketResp, 0, len(markets))
	for _, m := range markets {
		out = append(out, marketResp{
			ID:           m.ID,
			Name:         m.Name,
			Location:     m.Location,
			Coordinates:  coordinates{Lat: m.Lat, Lng: m.Lng},
			SpoilageRisk: m.SpoilageRisk,
		})
	}
	return c.JSON(http.StatusOK, out)
}
