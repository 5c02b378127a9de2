package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-agent/internal/agent"
	"github.com/rocketscienceinc/tictactoe-agent/internal/config"
	"github.com/rocketscienceinc/tictactoe-agent/internal/repository"
	"github.com/rocketscienceinc/tictactoe-agent/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-agent/internal/service"
	"github.com/rocketscienceinc/tictactoe-agent/internal/transport/cli"
	"github.com/rocketscienceinc/tictactoe-agent/internal/usecase"
)

var ErrUnknownStorage = errors.New("unknown storage backend")

// RunApp - runs the application: prepare the trained agent, then hand it to
// the interactive terminal session.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	valuesRepo, closeStorage, err := buildValuesRepository(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not set up storage: %w", err)
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	seed := conf.Training.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) //nolint: gosec // exploration, not crypto

	gameAgent := agent.New(conf.Training.Alpha, conf.Training.Gamma, conf.Training.Epsilon, rng)

	trainingService := service.NewTrainingService(logger, gameAgent, valuesRepo,
		conf.Training.Episodes, conf.Training.ReportInterval, conf.ReportPath)
	if err = trainingService.EnsureTrained(ctx); err != nil {
		return fmt.Errorf("could not prepare agent: %w", err)
	}

	botService := service.NewBotService(gameAgent)
	matchUseCase := usecase.NewMatchUseCase(botService)

	session := cli.New(logger, matchUseCase, os.Stdin, os.Stdout)
	if err = session.Run(ctx); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	log.Info("session ended")

	return nil
}

// buildValuesRepository - picks the persistence backend from config and
// returns it with its close function.
func buildValuesRepository(ctx context.Context, conf *config.Config) (repository.ValuesRepository, func() error, error) {
	switch conf.Storage {
	case "redis":
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisValuesRepository(redisStorage.Connection), redisStorage.Close, nil
	case "sqlite":
		sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLiteValuesRepository(sqliteStorage.Connection), sqliteStorage.Close, nil
	case "file":
		return repository.NewFileValuesRepository(conf.ValuesPath), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownStorage, conf.Storage)
	}
}
