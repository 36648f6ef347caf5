package controllerImp

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"docqa/pkg/ai"
	"docqa/pkg/question/service"
)

type QuestionCtrl struct{ svc service.QuestionService }

func New(svc service.QuestionService) *QuestionCtrl { return &QuestionCtrl{svc: svc} }

type askReq struct {
	Message string `json:"message"`
}

func (h *QuestionCtrl) Ask(c echo.Context) error {
	var req askReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "fail", "message": "invalid json"})
	}

	answer, err := h.svc.Ask(c.Request().Context(), strings.TrimSpace(req.Message))
	switch {
	case errors.Is(err, service.ErrEmptyDocument):
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "fail", "message": "No document uploaded"})
	case errors.Is(err, ai.ErrGeneration):
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "fail", "message": "No answer generated"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "fail", "message": "Server Error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "message": "success", "data": answer})
}
