package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RahulHansraj/FarmToMarket/pkg/assistant/service"
)

type AssistantCtrl struct{ s service.AssistantService }

func New(s service.AssistantService) *AssistantCtrl { return &AssistantCtrl{s} }

type chatReq struct {
	Message              string `json:"message"`
	UserID               uint   `json:"user_id"`
	SystemPromptAddition string `json:"system_prompt_addition"`
}

func (h *AssistantCtrl) Chat(c echo.Context) error {
	var req chatReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Message is required"})
	}
	if req.UserID == 0 {
		req.UserID = 1 // default to admin
	}

	out, err := h.s.Chat(req.Message, req.UserID, req.SystemPromptAddition)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"response": out})
}
