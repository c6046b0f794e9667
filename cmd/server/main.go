package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/RahulHansraj/FarmToMarket/config"
	"github.com/RahulHansraj/FarmToMarket/database"
	"github.com/RahulHansraj/FarmToMarket/router"

	// Auth
	authCtrlImp "github.com/RahulHansraj/FarmToMarket/pkg/auth/controllerImp"
	authRepoImp "github.com/RahulHansraj/FarmToMarket/pkg/auth/repositoryImp"
	authSvcImp "github.com/RahulHansraj/FarmToMarket/pkg/auth/serviceImp"

	// Reference & prices
	cropCtrlImp "github.com/RahulHansraj/FarmToMarket/pkg/crop/controllerImp"
	cropRepoImp "github.com/RahulHansraj/FarmToMarket/pkg/crop/repositoryImp"
	marketCtrlImp "github.com/RahulHansraj/FarmToMarket/pkg/market/controllerImp"
	marketRepoImp "github.com/RahulHansraj/FarmToMarket/pkg/market/repositoryImp"
	priceCtrlImp "github.com/RahulHansraj/FarmToMarket/pkg/price/controllerImp"
	priceRepoImp "github.com/RahulHansraj/FarmToMarket/pkg/price/repositoryImp"

	// Assistant
	"github.com/RahulHansraj/FarmToMarket/pkg/ai"
	asstCtrlImp "github.com/RahulHansraj/FarmToMarket/pkg/assistant/controllerImp"
	asstSvcImp "github.com/RahulHansraj/FarmToMarket/pkg/assistant/serviceImp"
	farmRepoImp "github.com/RahulHansraj/FarmToMarket/pkg/farm/repositoryImp"

	// Speech + health
	healthCtrlImp "github.com/RahulHansraj/FarmToMarket/pkg/health/controllerImp"
	speechCtrlImp "github.com/RahulHansraj/FarmToMarket/pkg/speech/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB + automigrate
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	// 4) LLM (mock fallback)
	var llm ai.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		log.Printf("[main] no LLM endpoint configured, using mock client")
		llm = ai.NewMock()
	}

	// 5) Repos / services / controllers
	userRepo := authRepoImp.New(db)
	authCtrl := authCtrlImp.New(authSvcImp.NewAuthService(userRepo))

	cropRepo := cropRepoImp.New(db)
	cropCtrl := cropCtrlImp.New(cropRepo)
	marketCtrl := marketCtrlImp.New(marketRepoImp.New(db))
	priceCtrl := priceCtrlImp.New(priceRepoImp.New(db))

	farmRepo := farmRepoImp.New(db)
	asstCtrl := asstCtrlImp.New(asstSvcImp.New(llm, cropRepo, farmRepo))

	speechCtrl := speechCtrlImp.New(cfg.SpeechKey, cfg.SpeechRegion)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 6) Router
	r := router.New(
		e,
		healthCtrl,
		authCtrl,
		priceCtrl.List,
		marketCtrl.List,
		cropCtrl.List,
		speechCtrl.Token,
		asstCtrl.Chat,
	)

	// 7) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
