package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fieldservice/cmd"
	httpserver "fieldservice/internal/adapters/in/http"
	"fieldservice/internal/adapters/out/postgres"
	"fieldservice/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := connectDB(configs)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		logger.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(app.CreateDispatchAutomationCommandHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		logger.Error("background jobs failed to start", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func connectDB(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)
	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpserver.NewServer(httpserver.Handlers{
		CreateJob:           app.CreateCreateJobCommandHandler(),
		UpdateJob:           app.CreateUpdateJobCommandHandler(),
		DeleteJob:           app.CreateDeleteJobCommandHandler(),
		TransitionJob:       app.CreateTransitionJobStatusCommandHandler(),
		CancelJob:           app.CreateCancelJobCommandHandler(),
		AddTask:             app.CreateAddTaskCommandHandler(),
		RemoveTask:          app.CreateRemoveTaskCommandHandler(),
		UpdateTaskStatus:    app.CreateUpdateTaskStatusCommandHandler(),
		CreateEvent:         app.CreateCreateScheduleEventCommandHandler(),
		UpdateEvent:         app.CreateUpdateScheduleEventCommandHandler(),
		DeleteEvent:         app.CreateDeleteScheduleEventCommandHandler(),
		TransitionEvent:     app.CreateTransitionEventStatusCommandHandler(),
		LogTimeEntry:        app.CreateLogTimeEntryCommandHandler(),
		AmendTimeEntry:      app.CreateAmendTimeEntryCommandHandler(),
		DeleteTimeEntry:     app.CreateDeleteTimeEntryCommandHandler(),
		CreateCrewMember:    app.CreateCreateCrewMemberCommandHandler(),
		UpdateCrewMember:    app.CreateUpdateCrewMemberCommandHandler(),
		DeactivateCrew:      app.CreateDeactivateCrewMemberCommandHandler(),
		DeclareAvailability: app.CreateDeclareCrewAvailabilityCommandHandler(),
		RemoveAvailability:  app.CreateRemoveCrewAvailabilityCommandHandler(),
		AddDependency:       app.CreateAddDependencyCommandHandler(),
		RemoveDependency:    app.CreateRemoveDependencyCommandHandler(),
		CreateTrigger:       app.CreateCreateTriggerCommandHandler(),
		UpdateTrigger:       app.CreateUpdateTriggerCommandHandler(),
		DeleteTrigger:       app.CreateDeleteTriggerCommandHandler(),
		OptimizeSchedule:    app.CreateOptimizeScheduleCommandHandler(),

		ListJobs:          app.CreateListJobsQueryHandler(),
		GetJob:            app.CreateGetJobQueryHandler(),
		JobHistory:        app.CreateGetJobHistoryQueryHandler(),
		JobTimeEntries:    app.CreateGetJobTimeEntriesQueryHandler(),
		JobEvents:         app.CreateListJobEventsQueryHandler(),
		JobDependencies:   app.CreateListJobDependenciesQueryHandler(),
		ScheduleOverview:  app.CreateGetScheduleOverviewQueryHandler(),
		ScheduleConflicts: app.CreateFindScheduleConflictsQueryHandler(),
		ListCrewMembers:   app.CreateListCrewMembersQueryHandler(),
		CrewAvailability:  app.CreateListCrewAvailabilityQueryHandler(),
		ListTriggers:      app.CreateListTriggersQueryHandler(),
	})
	server.RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != http.ErrServerClosed {
			logger.Error("http server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
}
