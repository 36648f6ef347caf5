package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"docqa/config"
	"docqa/database"
	"docqa/router"

	"docqa/pkg/ai"
	"docqa/pkg/docstore"

	// File (upload + summary)
	fileCtrlImp "docqa/pkg/file/controllerImp"
	fileRepoImp "docqa/pkg/file/repositoryImp"
	fileSvcImp "docqa/pkg/file/serviceImp"

	// Question (ask)
	questionCtrlImp "docqa/pkg/question/controllerImp"
	questionSvcImp "docqa/pkg/question/serviceImp"

	// Health
	healthCtrlImp "docqa/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost},
		AllowCredentials: true,
	}))

	// 4) LLM (mock fallback)
	var llm ai.Client
	if cfg.GroqAPIKey != "" {
		llm = ai.NewGroq(cfg.GroqEndpoint, cfg.GroqAPIKey, cfg.GroqModel)
	} else {
		log.Printf("WARN: GROQ_API_KEY not set, answering with mock model")
		llm = ai.NewMock()
	}

	// 5) Document store + repos
	docs := docstore.New()
	summaryRepo := fileRepoImp.New(db)

	// 6) Services + controllers
	fileSvc := fileSvcImp.New(docs, llm, summaryRepo)
	fileCtrl := fileCtrlImp.New(fileSvc, cfg.UploadDir)
	questionSvc := questionSvcImp.New(docs, llm)
	questionCtrl := questionCtrlImp.New(questionSvc)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Router
	r := router.New(e, fileCtrl, questionCtrl, hCtrl)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
