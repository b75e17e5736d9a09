package training

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func smallConfig() config.SnakeConfig {
	cfg := config.DefaultSnakeConfig()
	cfg.Training.Population = 12
	cfg.Training.Hidden = 4
	cfg.Training.Elite = 2
	cfg.Training.MaxTicks = 2000
	return cfg
}

func TestStartGeneration(t *testing.T) {
	tr, err := New(smallConfig(), 1)
	require.NoError(t, err)
	require.NoError(t, tr.StartGeneration())

	assert.Equal(t, 1, tr.Generation())
	require.Len(t, tr.Live(), 12)
	for i, a := range tr.Live() {
		assert.Equal(t, i, a.Index)
		snap := a.Snake.Snapshot()
		assert.Equal(t, snake.Cell{X: 14, Y: 14}, snap.Head())
		assert.Equal(t, 5, snap.Len())
		assert.Equal(t, 200, snap.Life)
	}
}

func TestTickRemovesTerminatedAfterPass(t *testing.T) {
	tr, err := New(smallConfig(), 2)
	require.NoError(t, err)
	require.NoError(t, tr.StartGeneration())

	for !tr.Done() {
		before := len(tr.Live())
		alive := tr.Tick()
		require.LessOrEqual(t, alive, before)
		for _, a := range tr.Live() {
			require.True(t, a.Snake.Alive(), "terminated agent %d left in live set", a.Index)
		}
		for i := 1; i < len(tr.Live()); i++ {
			require.Less(t, tr.Live()[i-1].Index, tr.Live()[i].Index, "live order changed")
		}
	}
}

func TestGenerationEndsByLifespan(t *testing.T) {
	cfg := smallConfig()
	cfg.Training.MaxTicks = 0
	tr, err := New(cfg, 3)
	require.NoError(t, err)

	stats, err := tr.RunGeneration(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Alive)
	assert.Positive(t, stats.Ticks)
	assert.GreaterOrEqual(t, stats.Best, stats.Mean)
	assert.Equal(t, float64(stats.BestScore)*5, stats.Best)
}

func TestMaxTicksCapsGeneration(t *testing.T) {
	cfg := smallConfig()
	cfg.Training.MaxTicks = 3
	tr, err := New(cfg, 4)
	require.NoError(t, err)

	stats, err := tr.RunGeneration(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Ticks)
}

func TestRunDeterministic(t *testing.T) {
	run := func() []GenerationStats {
		tr, err := New(smallConfig(), 42)
		require.NoError(t, err)
		var all []GenerationStats
		require.NoError(t, tr.Run(context.Background(), 3, func(s GenerationStats) error {
			all = append(all, s)
			return nil
		}))
		return all
	}

	first := run()
	require.Len(t, first, 3)
	assert.Equal(t, first, run())
	for i, s := range first {
		assert.Equal(t, i+1, s.Generation)
	}
}

func TestRunStopsOnCallbackError(t *testing.T) {
	tr, err := New(smallConfig(), 5)
	require.NoError(t, err)

	stop := errors.New("stop")
	calls := 0
	err = tr.Run(context.Background(), 10, func(GenerationStats) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestRunHonorsContext(t *testing.T) {
	tr, err := New(smallConfig(), 6)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = tr.Run(ctx, 5, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAppliesUpdatesBetweenGenerations(t *testing.T) {
	updates := make(chan config.Update, 2)
	tr, err := New(smallConfig(), 7, WithUpdates(updates))
	require.NoError(t, err)

	bad := smallConfig()
	bad.Training.Elite = 99
	updates <- config.Update{Config: bad}

	good := smallConfig()
	good.Training.MutationRate = 0.5
	good.Training.Population = 6
	good.Training.Elite = 1
	updates <- config.Update{Config: good}

	_, err = tr.RunGeneration(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0.5, tr.pop.Params().MutationRate)
	assert.Equal(t, 6, tr.pop.Len())

	require.NoError(t, tr.StartGeneration())
	assert.Len(t, tr.Live(), 6)
}

func TestNewRejectsBadParams(t *testing.T) {
	cfg := smallConfig()
	cfg.Training.Population = 0
	_, err := New(cfg, 1)
	assert.Error(t, err)
}

func TestBestMatchesStats(t *testing.T) {
	tr, err := New(smallConfig(), 9)
	require.NoError(t, err)
	assert.Nil(t, tr.Best())

	stats, err := tr.RunGeneration(context.Background())
	require.NoError(t, err)

	best := tr.Best()
	require.NotNil(t, best)
	assert.Equal(t, stats.Best, best.Snake.Fitness())
}
