package main

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"

	"github.com/alice39/own-stl/list"
)

// Config is the TOML description of a pipeline: an ordered series of
// [[step]] tables applied to each input list.
type Config struct {
	Steps []Step `toml:"step"`
}

// Step is one pipeline stage. Op selects the operation; the remaining
// fields parameterize it and are ignored by ops that don't use them.
type Step struct {
	Op    string `toml:"op"`
	Start int    `toml:"start"`
	End   int    `toml:"end"`
	Size  int    `toml:"size"`
	Min   int64  `toml:"min"`
	Max   int64  `toml:"max"`
	Value int64  `toml:"value"`
}

// LoadConfig reads a pipeline description from a TOML file. An empty
// path yields the identity pipeline.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		return &cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrapf(err, "loading pipeline config %q", path)
	}
	return &cfg, nil
}

func sum[T constraints.Integer](vals []T) T {
	var total T
	for _, v := range vals {
		total += v
	}
	return total
}

// Apply runs every configured step against l in order and returns the
// resulting list. Steps that replace the list (slice, window-sum)
// return the replacement; the rest mutate in place.
func (c *Config) Apply(l *list.List[int64]) (*list.List[int64], error) {
	for i, step := range c.Steps {
		next, err := step.apply(l)
		if err != nil {
			return nil, errors.Wrapf(err, "step %d (%s)", i, step.Op)
		}
		l = next
	}
	return l, nil
}

func (s Step) apply(l *list.List[int64]) (*list.List[int64], error) {
	switch s.Op {
	case "reverse":
		l.Reverse()
		return l, nil
	case "slice":
		return l.SliceOff(s.Start, s.End), nil
	case "window-sum":
		if s.Size <= 0 {
			return nil, errors.Errorf("window size %d must be positive", s.Size)
		}
		return list.Window(l, s.Size, sum[int64]), nil
	case "retain-range":
		removed := l.RetainIf(func(v int64) bool {
			return v >= s.Min && v <= s.Max
		})
		logrus.Debugf("retain-range [%d, %d] removed %d elements", s.Min, s.Max, removed)
		return l, nil
	case "find":
		logrus.Infof("find %d: position %d of %s", s.Value, l.Find(s.Value, 0), l)
		return l, nil
	case "find-all":
		logrus.Infof("find-all %d: positions %s", s.Value, l.FindAll(s.Value))
		return l, nil
	case "":
		return nil, errors.New("step is missing an op")
	default:
		return nil, errors.Errorf("unknown op %q", s.Op)
	}
}
