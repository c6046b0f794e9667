package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	healthCtrl interface {
		Index(echo.Context) error
		Health(echo.Context) error
	},
	authCtrl interface {
		Signup(echo.Context) error
		Login(echo.Context) error
	},
	priceList func(echo.Context) error,
	marketList func(echo.Context) error,
	cropList func(echo.Context) error,
	speechToken func(echo.Context) error,
	aiChat func(echo.Context) error,
) *echo.Echo {
	e.GET("/", healthCtrl.Index)
	e.GET("/health", healthCtrl.Health)

	e.POST("/signup", authCtrl.Signup)
	e.POST("/login", authCtrl.Login)

	e.GET("/prices", priceList)
	e.GET("/markets", marketList)
	e.GET("/crops", cropList)

	api := e.Group("/api/ai")
	api.GET("/speech-token", speechToken)
	api.POST("/chat", aiChat)

	return e
}
