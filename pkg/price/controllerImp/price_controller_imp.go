package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	repo "github.com/RahulHansraj/FarmToMarket/pkg/price/repository"
)

type PriceCtrl struct{ repo repo.PriceRepository }

func New(repo repo.PriceRepository) *PriceCtrl { return &PriceCtrl{repo} }

func (h *PriceCtrl) List(c echo.Context) error {
	out, err := h.repo.List(c.QueryParam("crop"), c.QueryParam("market"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
