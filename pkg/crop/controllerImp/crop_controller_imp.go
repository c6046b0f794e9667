package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	repo "github.com/RahulHansraj/FarmToMarket/pkg/crop/repository"
)

type CropCtrl struct{ repo repo.CropRepository }

func New(repo repo.CropRepository) *CropCtrl { return &CropCtrl{repo} }

func (h *CropCtrl) List(c echo.Context) error {
	out, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
