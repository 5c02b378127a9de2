package service

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/tictactoe-agent/internal/agent"
	"github.com/rocketscienceinc/tictactoe-agent/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingTrainer counts trained episodes on top of a real agent.
type recordingTrainer struct {
	*agent.Agent
	trained int
}

func (that *recordingTrainer) Train(episodes int) (agent.Stats, error) {
	that.trained += episodes
	return that.Agent.Train(episodes)
}

func newTestTrainer() *recordingTrainer {
	rng := rand.New(rand.NewSource(1)) //nolint: gosec // deterministic test rng
	return &recordingTrainer{Agent: agent.New(agent.DefaultAlpha, agent.DefaultGamma, agent.DefaultEpsilon, rng)}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestTrainingService_EnsureTrained(t *testing.T) {
	t.Run("Trains and persists when nothing is stored", func(t *testing.T) {
		// Given: an empty file store and a fresh agent
		dir := t.TempDir()
		repo := repository.NewFileValuesRepository(filepath.Join(dir, "values.json"))
		trainer := newTestTrainer()
		reportPath := filepath.Join(dir, "report.html")

		trainingService := NewTrainingService(discardLogger(), trainer, repo, 50, 20, reportPath)

		// When: ensuring the agent is trained
		err := trainingService.EnsureTrained(context.Background())

		// Then: all episodes ran and the learned table was persisted
		require.NoError(t, err)
		assert.Equal(t, 50, trainer.trained)
		assert.NotEmpty(t, trainer.Values())

		loaded, err := repo.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, trainer.Values(), loaded)

		// And: the training report was rendered
		info, err := os.Stat(reportPath)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	})

	t.Run("Installs a stored table without retraining", func(t *testing.T) {
		// Given: a store with a previously trained table
		repo := repository.NewFileValuesRepository(filepath.Join(t.TempDir(), "values.json"))
		stored := agent.Values{}
		stored.Set("_________", 4, 0.7)
		require.NoError(t, repo.Save(context.Background(), stored))

		trainer := newTestTrainer()
		trainingService := NewTrainingService(discardLogger(), trainer, repo, 50, 20, "")

		// When: ensuring the agent is trained
		err := trainingService.EnsureTrained(context.Background())

		// Then: the table was installed and no episode was played
		require.NoError(t, err)
		assert.Equal(t, 0, trainer.trained)
		assert.Equal(t, stored, trainer.Values())
	})

	t.Run("Corrupt store is fatal", func(t *testing.T) {
		// Given: a store that exists but cannot be decoded
		path := filepath.Join(t.TempDir(), "values.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
		repo := repository.NewFileValuesRepository(path)

		trainer := newTestTrainer()
		trainingService := NewTrainingService(discardLogger(), trainer, repo, 50, 20, "")

		// When: ensuring the agent is trained
		err := trainingService.EnsureTrained(context.Background())

		// Then: the load error propagates and nothing was trained
		require.Error(t, err)
		assert.Equal(t, 0, trainer.trained)
	})

	t.Run("Skips the report when no path is configured", func(t *testing.T) {
		// Given: training with an empty report path
		repo := repository.NewFileValuesRepository(filepath.Join(t.TempDir(), "values.json"))
		trainer := newTestTrainer()
		trainingService := NewTrainingService(discardLogger(), trainer, repo, 10, 0, "")

		// When / Then: training succeeds without a report
		require.NoError(t, trainingService.EnsureTrained(context.Background()))
		assert.Equal(t, 10, trainer.trained)
	})
}
