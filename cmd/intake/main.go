package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alexanderramin/intake/internal/cli"
	"github.com/alexanderramin/intake/internal/config"
	"github.com/alexanderramin/intake/internal/db"
	"github.com/alexanderramin/intake/internal/logging"
	"github.com/alexanderramin/intake/internal/repository"
	"github.com/alexanderramin/intake/internal/seed"
	"github.com/alexanderramin/intake/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env file in the working directory is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := config.Load(os.Getenv("INTAKE_CONFIG"))
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	logger.Debug("database ready", zap.String("path", cfg.Database.Path))

	// Wire repositories
	requestRepo := repository.NewSQLiteRequestRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	ticketRepo := repository.NewSQLiteTicketRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var opts []service.Option
	if cfg.Log.UseCases {
		opts = append(opts, service.WithObserver(service.NewLogUseCaseObserver(logger)))
	}

	app := &cli.App{
		Requests:    service.NewRequestService(requestRepo, opts...),
		Projects:    service.NewProjectService(projectRepo, ticketRepo, opts...),
		Tickets:     service.NewTicketService(ticketRepo, projectRepo, uow, opts...),
		Conversions: service.NewConversionService(ticketRepo, uow, opts...),
		Seeder:      seed.NewSeeder(uow, logger),
		Logger:      logger,
		Server:      cfg.Server,
	}

	// Forms are only shown on an interactive terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
