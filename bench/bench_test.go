package bench_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lexipath/bench"
	"github.com/katalvlaran/lexipath/cache"
	"github.com/katalvlaran/lexipath/search"
	"github.com/katalvlaran/lexipath/words"
)

func testEngine(t *testing.T) *search.Engine {
	t.Helper()
	list := words.Default()
	g, err := cache.Build(list, cache.WithSeed(42))
	require.NoError(t, err)
	e, err := search.New(list, g)
	require.NoError(t, err)

	return e
}

func TestRun_Validation(t *testing.T) {
	_, err := bench.Run(nil)
	assert.ErrorIs(t, err, bench.ErrNilEngine)

	e := testEngine(t)
	_, err = bench.Run(e, bench.WithTargets(0))
	assert.ErrorIs(t, err, bench.ErrOptionViolation)

	_, err = bench.Run(e, bench.WithPresets(nil))
	assert.ErrorIs(t, err, bench.ErrOptionViolation)
}

func TestRun_AggregatesPerPreset(t *testing.T) {
	e := testEngine(t)
	presets := []search.Preset{
		mustPreset(t, "bfs"),
		mustPreset(t, "astar-constant-log2"),
	}

	stats, err := bench.Run(e,
		bench.WithTargets(5),
		bench.WithSeed(7),
		bench.WithPresets(presets))
	require.NoError(t, err)
	require.Len(t, stats, 2)

	for i, st := range stats {
		assert.Equal(t, presets[i].Name, st.Preset.Name)
		assert.Equal(t, 5, st.Targets)
		assert.GreaterOrEqual(t, st.Solved, 0)
		assert.LessOrEqual(t, st.Solved, st.Targets)
		assert.InDelta(t, float64(st.Solved)/5, st.SuccessRate, 1e-12)
		assert.Greater(t, st.MeanExpanded, 0.0)
		assert.Greater(t, st.MeanGenerated, 0.0)
		assert.Greater(t, st.MeanFrontier, 0.0)
		assert.Greater(t, st.MaxFrontier, 0)
		assert.LessOrEqual(t, st.MeanFrontier, float64(st.MaxFrontier))
		if st.Solved > 0 {
			assert.GreaterOrEqual(t, st.MeanGuesses, 1.0)
			assert.GreaterOrEqual(t, st.MedianGuesses, 1.0)
			assert.LessOrEqual(t, st.MeanGuesses, float64(search.DefaultGuessBudget))
		}
	}
}

// TestRun_SeededSampleIsStable: everything except wall time must
// reproduce under a fixed seed.
func TestRun_SeededSampleIsStable(t *testing.T) {
	e := testEngine(t)
	opts := []bench.Option{
		bench.WithTargets(4),
		bench.WithSeed(11),
		bench.WithPresets([]search.Preset{mustPreset(t, "ucs-entropy")}),
	}

	first, err := bench.Run(e, opts...)
	require.NoError(t, err)
	second, err := bench.Run(e, opts...)
	require.NoError(t, err)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	a, b := first[0], second[0]
	a.Elapsed, b.Elapsed = 0, 0
	assert.Equal(t, a, b)
}

func TestRun_TargetsClampedToDictionary(t *testing.T) {
	list := []string{"CRANE", "TRACE", "SLATE", "STARE", "SHARE"}
	g, err := cache.Build(list, cache.WithSeed(1))
	require.NoError(t, err)
	e, err := search.New(list, g)
	require.NoError(t, err)

	stats, err := bench.Run(e,
		bench.WithTargets(1000),
		bench.WithPresets([]search.Preset{mustPreset(t, "bfs")}),
		bench.WithSolveOptions(search.WithOpeners([]string{"SLATE"})))
	require.NoError(t, err)
	require.Len(t, stats, 1)

	assert.Equal(t, len(list), stats[0].Targets)
	assert.Equal(t, len(list), stats[0].Solved)
	assert.InDelta(t, 1.0, stats[0].SuccessRate, 1e-12)
}

func mustPreset(t *testing.T, name string) search.Preset {
	t.Helper()
	p, err := search.LookupPreset(name)
	require.NoError(t, err)

	return p
}
