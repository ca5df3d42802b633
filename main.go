package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jmoiron/sqlx"

	echoapi "github.com/akiba-app/akiba/api/echo"
	"github.com/akiba-app/akiba/core"
	"github.com/akiba-app/akiba/core/accrual"
	"github.com/akiba-app/akiba/core/class"
	"github.com/akiba-app/akiba/core/student"
	logsvc "github.com/akiba-app/akiba/services/logger"
	"github.com/akiba-app/akiba/storage/database"
	sampledb "github.com/akiba-app/akiba/storage/database/sample"
	sqlxrepos "github.com/akiba-app/akiba/storage/database/sqlx"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf, err := core.LoadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	// serve the built-in sample dataset when the database is unreachable so
	// the app stays demoable
	var stuRepo student.Repository
	var clsRepo class.Repository
	if db, dbErr := setUpDB(conf); dbErr != nil {
		logger.Warn(fmt.Sprintf("database unavailable, serving sample data: %v", dbErr), dbErr)

		sdb, err := sampledb.Open()
		if err != nil {
			logger.Fatal(fmt.Sprintf("opening sample data: %v", err), err)
		}
		stuRepo = sampledb.NewStudentRepository(sdb)
		clsRepo = sampledb.NewClassRepository(sdb)
	} else {
		defer func() { _ = db.Close() }()
		stuRepo = sqlxrepos.NewStudentRepository(db)
		clsRepo = sqlxrepos.NewClassRepository(db)
	}

	// set up services
	stuSvc := student.NewService(stuRepo)
	clsSvc := class.NewService(clsRepo)
	accSvc := accrual.NewService(stuSvc, clsSvc, core.NewClock(), conf)

	// =========================================================================
	// Start API Service

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	server := echoapi.NewServer(&echoapi.Options{
		Conf:       conf,
		Logger:     logger,
		AccrualSvc: accSvc,
		ClassSvc:   clsSvc,
	})

	go server.Start()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func setUpDB(conf *core.Config) (*sqlx.DB, error) {
	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}
	if err = database.Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
