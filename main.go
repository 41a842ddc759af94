// File: crewledger/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crewledger/config"
	"crewledger/cron"
	"crewledger/database"
	crewRepoPkg "crewledger/database/repository/crew"
	ledgerRepoPkg "crewledger/database/repository/ledger"
	operatorRepoPkg "crewledger/database/repository/operator"
	projectRepoPkg "crewledger/database/repository/project"
	shiftRepoPkg "crewledger/database/repository/shift"
	"crewledger/handlers"
	"crewledger/routes"
	crewService "crewledger/services/crew"
	financeService "crewledger/services/finance"
	operatorService "crewledger/services/operator"
	projectService "crewledger/services/project"
	shiftService "crewledger/services/shift"
	"crewledger/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	crewRepo := crewRepoPkg.NewMongoCrewRepo()
	projectRepo := projectRepoPkg.NewMongoProjectRepo()
	shiftRepo := shiftRepoPkg.NewMongoShiftRepo()
	ledgerRepo := ledgerRepoPkg.NewMongoLedgerRepo()
	operatorRepo := operatorRepoPkg.NewMongoOperatorRepo()

	for name, ensure := range map[string]func() error{
		"crew":      crewRepo.EnsureIndexes,
		"projects":  projectRepo.EnsureIndexes,
		"shifts":    shiftRepo.EnsureIndexes,
		"payments":  ledgerRepo.EnsureIndexes,
		"operators": operatorRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// services.
	crewSvc := &crewService.DefaultCrewService{
		Repo:   crewRepo,
		Logger: logger,
	}
	projectSvc := &projectService.DefaultProjectService{
		Repo:   projectRepo,
		Crew:   crewRepo,
		Logger: logger,
	}
	shiftSvc := &shiftService.DefaultShiftService{
		Repo:     shiftRepo,
		Crew:     crewRepo,
		Projects: projectRepo,
		Cache:    utils.GetCacheClient(),
		Logger:   logger,
	}
	financeSvc := &financeService.DefaultFinanceService{
		Ledger: ledgerRepo,
		Shifts: shiftRepo,
		Crew:   crewRepo,
		Cache:  utils.GetCacheClient(),
		Logger: logger,
	}
	operatorSvc := &operatorService.DefaultOperatorService{
		Repo:      operatorRepo,
		AuthCache: utils.GetAuthCacheClient(),
		Logger:    logger,
	}

	// Background worker for the nightly ledger status audit.
	cron.InitAuditWorker(shiftRepo, logger)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	operatorHandler := &handlers.OperatorHandler{Service: operatorSvc}
	crewHandler := &handlers.CrewHandler{Service: crewSvc}
	projectHandler := &handlers.ProjectHandler{Service: projectSvc}
	shiftHandler := &handlers.ShiftHandler{Service: shiftSvc}
	financeHandler := &handlers.FinanceHandler{Service: financeSvc}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		OperatorRepo: operatorRepo,

		// Operator endpoints.
		RegisterOperatorHandler: operatorHandler.RegisterOperatorHandler,
		LoginOperatorHandler:    operatorHandler.LoginOperatorHandler,
		LogoutOperatorHandler:   operatorHandler.LogoutOperatorHandler,
		GetOperatorHandler:      operatorHandler.GetOperatorHandler,

		// Crew endpoints.
		RegisterCrewHandler:  crewHandler.RegisterCrewHandler,
		UpdateCrewHandler:    crewHandler.UpdateCrewHandler,
		DeleteCrewHandler:    crewHandler.DeleteCrewHandler,
		GetCrewHandler:       crewHandler.GetCrewHandler,
		ListCrewHandler:      crewHandler.ListCrewHandler,
		GetRoleProfilesByMID: crewHandler.GetRoleProfilesByMID,

		// Project endpoints.
		CreateProjectHandler:    projectHandler.CreateProjectHandler,
		UpdateProjectHandler:    projectHandler.UpdateProjectHandler,
		DeleteProjectHandler:    projectHandler.DeleteProjectHandler,
		GetProjectHandler:       projectHandler.GetProjectHandler,
		ListProjectsHandler:     projectHandler.ListProjectsHandler,
		AssignCrewHandler:       projectHandler.AssignCrewHandler,
		UpdateAssignmentHandler: projectHandler.UpdateAssignmentHandler,
		UnassignCrewHandler:     projectHandler.UnassignCrewHandler,

		// Shift endpoints.
		LogShiftHandler:    shiftHandler.LogShiftHandler,
		UpdateShiftHandler: shiftHandler.UpdateShiftHandler,
		DeleteShiftHandler: shiftHandler.DeleteShiftHandler,
		GetShiftHandler:    shiftHandler.GetShiftHandler,
		ListProjectShifts:  shiftHandler.ListProjectShifts,
		ListCrewShifts:     shiftHandler.ListCrewShifts,

		// Payment endpoints.
		RecordPaymentHandler:  financeHandler.RecordPaymentHandler,
		ReversePaymentHandler: financeHandler.ReversePaymentHandler,
		PaymentHistoryHandler: financeHandler.PaymentHistoryHandler,

		// Report endpoints.
		CrewProjectSummaryHandler:   financeHandler.CrewProjectSummaryHandler,
		ProjectSummaryHandler:       financeHandler.ProjectSummaryHandler,
		PersonSummaryHandler:        financeHandler.PersonSummaryHandler,
		ProjectCrewBreakdownHandler: financeHandler.ProjectCrewBreakdownHandler,

		// Health endpoint.
		HealthHandler: handlers.HealthHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
