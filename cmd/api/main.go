package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/clearshift/workforce-backend-go/internal/config"
	appHTTP "github.com/clearshift/workforce-backend-go/internal/handler/http"
	"github.com/clearshift/workforce-backend-go/internal/pkg/database"
	"github.com/clearshift/workforce-backend-go/internal/pkg/notifier"
	"github.com/clearshift/workforce-backend-go/internal/repository/postgresql"
	attendanceService "github.com/clearshift/workforce-backend-go/internal/service/attendance"
	shiftService "github.com/clearshift/workforce-backend-go/internal/service/shift"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/clearshift/workforce-backend-go/internal/domain/notification"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Error loading config", "error", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		logger.Error("Error connecting to database", "error", err)
		return
	}
	defer db.Close()

	shiftRepo := postgresql.NewShiftRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	workerDirectory := postgresql.NewWorkerDirectory(db)
	siteDirectory := postgresql.NewSiteDirectory(db)
	codeVerifier := postgresql.NewQRCodeVerifier(db)

	var sink notification.Sink = notifier.NewLogSink(logger)
	if cfg.AMQP.URL != "" {
		conn, err := amqp.Dial(cfg.AMQP.URL)
		if err != nil {
			logger.Error("Error connecting to message broker", "error", err)
			return
		}
		defer conn.Close()

		amqpSink, err := notifier.NewAMQPSink(conn, cfg.AMQP.Queue, logger)
		if err != nil {
			logger.Error("Error setting up event queue", "error", err)
			return
		}
		defer amqpSink.Close()
		sink = amqpSink
	}

	schedulerService := shiftService.NewShiftService(db, shiftRepo, assignmentRepo, workerDirectory, siteDirectory, sink, logger)
	recorderService := attendanceService.NewAttendanceService(db, attendanceRepo, assignmentRepo, shiftRepo, workerDirectory, codeVerifier, sink, logger)

	shiftHandler := appHTTP.NewShiftHandler(schedulerService)
	attendanceHandler := appHTTP.NewAttendanceHandler(recorderService)

	router := appHTTP.NewRouter(cfg.App.Name, cfg.App.Env, shiftHandler, attendanceHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting server", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("Server stopped", "error", err)
	}
}
