package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/cadence/internal/cli"
	"github.com/alexanderramin/cadence/internal/config"
	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/repository"
	"github.com/alexanderramin/cadence/internal/service"
	"github.com/alexanderramin/cadence/internal/vision"
	"github.com/mattn/go-isatty"
	"go.uber.org/multierr"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	dsn, err := cfg.DSN()
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(dsn)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { err = multierr.Append(err, database.Close()) }()

	// Wire repositories
	planRepo := repository.NewSQLitePlanRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	foodRepo := repository.NewSQLiteFoodLogRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	// Vision stays nil unless enabled; nutrition analysis then reports it is off.
	var visionClient vision.Client
	if cfg.Vision.Enabled {
		var observer vision.Observer = vision.NoopObserver{}
		if cfg.Vision.LogCalls {
			observer = vision.NewLogObserver(os.Stderr)
		}
		visionClient = vision.NewOllamaClient(cfg.Vision, observer)
	}

	app := &cli.App{
		Plans:       service.NewPlanService(planRepo, uow, observers...),
		Sessions:    service.NewSessionService(sessionRepo, uow, observers...),
		Consistency: service.NewConsistencyService(planRepo, sessionRepo, cfg.Location, observers...),
		Nutrition:   service.NewNutritionService(foodRepo, uow, visionClient, observers...),
		Location:    cfg.Location,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
