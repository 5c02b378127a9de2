package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-agent/internal/agent"
	"github.com/rocketscienceinc/tictactoe-agent/internal/report"
	"github.com/rocketscienceinc/tictactoe-agent/internal/repository"
)

type TrainingService interface {
	EnsureTrained(ctx context.Context) error
}

// trainer - the slice of the agent the training service drives.
type trainer interface {
	Train(episodes int) (agent.Stats, error)
	Values() agent.Values
	InstallValues(values agent.Values)
}

type valuesStore interface {
	Load(ctx context.Context) (agent.Values, error)
	Save(ctx context.Context, values agent.Values) error
}

type trainingService struct {
	logger         *slog.Logger
	trainer        trainer
	store          valuesStore
	episodes       int
	reportInterval int
	reportPath     string
}

func NewTrainingService(logger *slog.Logger, trainer trainer, store valuesStore, episodes, reportInterval int, reportPath string) TrainingService {
	return &trainingService{
		logger:         logger.With("component", "training"),
		trainer:        trainer,
		store:          store,
		episodes:       episodes,
		reportInterval: reportInterval,
		reportPath:     reportPath,
	}
}

// EnsureTrained - installs a previously stored value table, or trains the
// configured number of self-play episodes and persists the result. Once a
// table is installed the agent only reads it; human games never train.
func (that *trainingService) EnsureTrained(ctx context.Context) error {
	log := that.logger.With("method", "EnsureTrained")

	values, err := that.store.Load(ctx)
	if err == nil {
		that.trainer.InstallValues(values)
		log.Info("loaded stored value table", "states", len(values))

		return nil
	}

	if !errors.Is(err, repository.ErrValuesNotFound) {
		return fmt.Errorf("failed to load value table: %w", err)
	}

	log.Info("no stored value table, training from self-play", "episodes", that.episodes)

	var total agent.Stats
	var checkpoints []report.Checkpoint

	interval := that.reportInterval
	if interval <= 0 {
		interval = that.episodes
	}

	for trained := 0; trained < that.episodes; {
		chunk := min(interval, that.episodes-trained)

		stats, trainErr := that.trainer.Train(chunk)
		if trainErr != nil {
			return fmt.Errorf("training failed: %w", trainErr)
		}

		trained += chunk
		total.XWins += stats.XWins
		total.OWins += stats.OWins
		total.Draws += stats.Draws

		log.Info("training progress",
			"episodes", trained,
			"x_wins", total.XWins,
			"o_wins", total.OWins,
			"draws", total.Draws,
		)

		checkpoints = append(checkpoints, report.Checkpoint{
			Episode:  trained,
			XWinRate: float64(total.XWins) / float64(trained),
			OWinRate: float64(total.OWins) / float64(trained),
			DrawRate: float64(total.Draws) / float64(trained),
		})
	}

	if err = that.store.Save(ctx, that.trainer.Values()); err != nil {
		return fmt.Errorf("failed to save value table: %w", err)
	}

	log.Info("training complete", "states", len(that.trainer.Values()))

	if that.reportPath != "" {
		if err = report.Render(that.reportPath, checkpoints); err != nil {
			return fmt.Errorf("failed to render training report: %w", err)
		}

		log.Info("training report written", "path", that.reportPath)
	}

	return nil
}
