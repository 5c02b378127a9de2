package repository

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-agent/internal/agent"
	"github.com/rocketscienceinc/tictactoe-agent/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisValuesRepository_Load_Missing(t *testing.T) {
	ctx, st := suite.New(t)

	repo := NewRedisValuesRepository(st.Storage)

	// When: loading from an empty database
	_, err := repo.Load(ctx)

	// Then: ErrValuesNotFound signals a fresh training run
	assert.ErrorIs(t, err, ErrValuesNotFound)
}

func TestRedisValuesRepository_RoundTrip(t *testing.T) {
	ctx, st := suite.New(t)

	repo := NewRedisValuesRepository(st.Storage)

	// Given: a saved value table
	saved := testValues()
	require.NoError(t, repo.Save(ctx, saved))

	// When: loading it back
	loaded, err := repo.Load(ctx)

	// Then: every stored pair survives exactly, unstored pairs default to 0.0
	require.NoError(t, err)
	require.Equal(t, saved, loaded)
	assert.InDelta(t, 0.0, loaded.Get("_________", 7), 0)
}

func TestRedisValuesRepository_SaveOverwrites(t *testing.T) {
	ctx, st := suite.New(t)

	repo := NewRedisValuesRepository(st.Storage)

	// Given: a previously saved, larger table
	require.NoError(t, repo.Save(ctx, testValues()))

	// When: saving a smaller table under the same key
	small := agent.Values{}
	small.Set("P________", 3, 0.4)
	require.NoError(t, repo.Save(ctx, small))

	// Then: the load reflects only the latest save
	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, small, loaded)
}
