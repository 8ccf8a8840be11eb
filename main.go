package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shuttlesync/config"
	diaryRepo "shuttlesync/database/repository/diary"
	"shuttlesync/handlers"
	"shuttlesync/models"
	"shuttlesync/routes"
	diarySvc "shuttlesync/services/diary"
	"shuttlesync/services/intelligence"
	"shuttlesync/services/scheduling"
	"shuttlesync/utils"

	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	catalog := models.DefaultWindowCatalog()
	horizon := config.AppConfig.HorizonDays
	agentTimeout := time.Duration(config.AppConfig.AgentTimeoutSecs) * time.Second

	// Party agents, each owning its own in-memory diary.
	beanRepo := diaryRepo.NewMemoryDiaryRepo("bean", diaryRepo.BeanSeed, horizon)
	joyRepo := diaryRepo.NewMemoryDiaryRepo("joy", diaryRepo.JoySeed, horizon)

	beanService := &diarySvc.DefaultDiaryService{Repo: beanRepo, Catalog: catalog}
	joyService := &diarySvc.DefaultDiaryService{Repo: joyRepo, Catalog: catalog}

	beanHandler := handlers.NewPartyHandler(beanService,
		"Manages Mr. Bean's appointment diary from 8 AM to 7 PM", config.AppConfig.BeanURL)
	joyHandler := handlers.NewPartyHandler(joyService,
		"Manages Mr. Joy's appointment diary from 8 AM to 7 PM", config.AppConfig.JoyURL)

	beanRouter := routes.NewAgentRouter()
	routes.RegisterPartyRoutes(beanRouter, beanHandler)
	joyRouter := routes.NewAgentRouter()
	routes.RegisterPartyRoutes(joyRouter, joyHandler)

	// The organizer talks to the parties over their REST APIs, exactly as
	// it would if they ran on other hosts.
	partyURLs := map[string]string{
		"bean": config.AppConfig.BeanURL,
		"joy":  config.AppConfig.JoyURL,
	}
	engine := &scheduling.Engine{
		Parties: []scheduling.Party{
			scheduling.NewHTTPParty("bean", config.AppConfig.BeanURL, agentTimeout),
			scheduling.NewHTTPParty("joy", config.AppConfig.JoyURL, agentTimeout),
		},
		HorizonDays: horizon,
		Catalog:     catalog,
	}

	if key := config.AppConfig.GeminiAPIKey; key != "" {
		advisor, err := intelligence.NewGeminiAdvisor(context.Background(), key)
		if err != nil {
			logger.Warn("main: Gemini advisor disabled", zap.Error(err))
		} else {
			engine.Advisor = advisor
		}
	}

	organizerHandler := handlers.NewOrganizerHandler(engine, partyURLs)
	organizerRouter := routes.NewAgentRouter()
	routes.RegisterOrganizerRoutes(organizerRouter, organizerHandler)

	servers := []*http.Server{
		{Addr: "0.0.0.0:" + config.AppConfig.BeanPort, Handler: beanRouter},
		{Addr: "0.0.0.0:" + config.AppConfig.JoyPort, Handler: joyRouter},
		{Addr: "0.0.0.0:" + config.AppConfig.OrganizerPort, Handler: organizerRouter},
	}
	for _, srv := range servers {
		logger.Sugar().Infof("Starting agent server on %s...", srv.Addr)
		go func(srv *http.Server) {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Sugar().Fatalf("main: server %s failed to start: %v", srv.Addr, err)
			}
		}(srv)
	}

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: agents are shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, srv := range servers {
		if err := srv.Shutdown(ctx); err != nil {
			logger.Sugar().Errorf("main: server %s forced to shutdown: %v", srv.Addr, err)
		}
	}

	logger.Sugar().Info("main: all agents stopped gracefully")
}
