package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	fileCtrl interface{ Upload(echo.Context) error; Summary(echo.Context) error },
	questionCtrl interface{ Ask(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": http.StatusOK, "message": "docqa running successfully"})
	})
	e.GET("/health", healthCtrl.Health)

	f := e.Group("/file")
	f.POST("/upload", fileCtrl.Upload)
	f.POST("/summary", fileCtrl.Summary)

	q := e.Group("/question")
	q.POST("/ask", questionCtrl.Ask)

	return e
}
