package cli_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/finder"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/cli"
)

func run(t *testing.T, opts cli.RunOptions) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := cli.Run(context.Background(), &out, zap.NewNop(), opts)

	return out.String(), err
}

func TestRun_Shortest(t *testing.T) {
	out, err := run(t, cli.RunOptions{File: filepath.Join("testdata", "tee.yaml")})
	require.NoError(t, err)
	assert.Equal(t, "[(0,0) (1,0) (2,0)]\n", out)
}

func TestRun_All(t *testing.T) {
	out, err := run(t, cli.RunOptions{File: filepath.Join("testdata", "tee.yaml"), All: true})
	require.NoError(t, err)
	assert.Equal(t, "[(0,0) (1,0) (1,1) (1,0) (2,0)]\n[(0,0) (1,0) (2,0)]\n", out)
}

func TestRun_NoPath(t *testing.T) {
	out, err := run(t, cli.RunOptions{File: filepath.Join("testdata", "islands.yaml")})
	require.NoError(t, err, "no path is not an error")
	assert.Equal(t, cli.NoPath+"\n", out)
}

func TestRun_Overrides(t *testing.T) {
	start, goal := grid.C(2, 0), grid.C(1, 1)
	out, err := run(t, cli.RunOptions{File: filepath.Join("testdata", "tee.yaml"), Start: &start, Goal: &goal})
	require.NoError(t, err)
	assert.Equal(t, "[(2,0) (1,0) (1,1)]\n", out)

	bad := grid.C(9, 9)
	_, err = run(t, cli.RunOptions{File: filepath.Join("testdata", "tee.yaml"), Goal: &bad})
	assert.ErrorIs(t, err, finder.ErrGoalNotAvailable)
}

func TestRun_Budget(t *testing.T) {
	_, err := run(t, cli.RunOptions{MaxSteps: 1000})
	assert.ErrorIs(t, err, finder.ErrStepBudgetExceeded)
}

func TestRun_MissingFile(t *testing.T) {
	_, err := run(t, cli.RunOptions{File: filepath.Join("testdata", "nope.yaml")})
	assert.Error(t, err)
}

// TestRun_Default pins the driver output.
func TestRun_Default(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive search over the driver scenario")
	}
	out, err := run(t, cli.RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, "[(2,0) (2,1) (2,2) (3,2) (3,1) (3,0) (4,0) (4,1) (4,2) (4,3) (4,4) (3,4) "+
		"(3,3) (2,3) (1,3) (1,2) (1,1) (1,0) (0,0) (0,1) (0,2) (0,3) (0,4) (1,4) (2,4)]\n", out)
}

func TestLoadScenario_Default(t *testing.T) {
	sc, err := cli.LoadScenario("")
	require.NoError(t, err)
	assert.Equal(t, "driver", sc.Name)
}
