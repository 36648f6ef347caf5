package controller

import "github.com/labstack/echo/v4"

type QuestionController interface {
	Ask(c echo.Context) error
}
