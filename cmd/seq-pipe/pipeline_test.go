package main

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/goleak"
	"gotest.tools/assert"

	"github.com/alice39/own-stl/list"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.toml")
	err := os.WriteFile(path, []byte(`
[[step]]
op = "reverse"

[[step]]
op = "slice"
start = 1
end = 3
`), 0o644)
	assert.NilError(t, err)

	cfg, err := LoadConfig(path)
	assert.NilError(t, err)
	assert.Equal(t, 2, len(cfg.Steps))
	assert.Equal(t, "reverse", cfg.Steps[0].Op)
	assert.Equal(t, "slice", cfg.Steps[1].Op)
	assert.Equal(t, 1, cfg.Steps[1].Start)
	assert.Equal(t, 3, cfg.Steps[1].End)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.NilError(t, err)
	assert.Equal(t, 0, len(cfg.Steps))
}

func TestApply(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := &Config{Steps: []Step{
		{Op: "reverse"},
		{Op: "slice", Start: 1, End: 3},
	}}

	out, err := cfg.Apply(list.Of[int64](1, 2, 3, 4))
	assert.NilError(t, err)
	assert.Check(t, list.Of[int64](3, 2).Equal(out))
}

func TestApplyWindowSum(t *testing.T) {
	cfg := &Config{Steps: []Step{{Op: "window-sum", Size: 2}}}

	out, err := cfg.Apply(list.Of[int64](1, 2, 3, 4))
	assert.NilError(t, err)
	assert.Check(t, list.Of[int64](3, 5, 7).Equal(out))

	_, err = (&Config{Steps: []Step{{Op: "window-sum"}}}).Apply(list.Of[int64](1))
	assert.ErrorContains(t, err, "must be positive")
}

func TestApplyRetainRange(t *testing.T) {
	cfg := &Config{Steps: []Step{{Op: "retain-range", Min: 2, Max: 4}}}

	out, err := cfg.Apply(list.Of[int64](1, 2, 3, 4, 5))
	assert.NilError(t, err)
	assert.Check(t, list.Of[int64](2, 3, 4).Equal(out))
}

func TestApplyUnknownOp(t *testing.T) {
	_, err := (&Config{Steps: []Step{{Op: "transmogrify"}}}).Apply(list.Of[int64](1))
	assert.ErrorContains(t, err, `unknown op "transmogrify"`)
	assert.ErrorContains(t, err, "step 0")

	_, err = (&Config{Steps: []Step{{}}}).Apply(list.Of[int64](1))
	assert.ErrorContains(t, err, "missing an op")
}
