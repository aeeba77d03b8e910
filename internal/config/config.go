// Package config loads kmnpairs job files.
//
// A job is a YAML document describing where the assignment comes from,
// which pairs are forbidden, the repair steps to run and what to write out.
// After parsing, a few values can be overridden from the environment,
// optionally seeded from a .env file:
//
//	KMNPAIRS_SEED       job seed
//	KMNPAIRS_LOG_LEVEL  debug | info | warn | error
//	KMNPAIRS_OUTPUT     assignment snapshot output path
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kmnpairs/assign"
)

// ErrInvalidConfig wraps every validation failure of a job.
var ErrInvalidConfig = errors.New("config: invalid job")

// Environment variable names.
const (
	EnvSeed     = "KMNPAIRS_SEED"
	EnvLogLevel = "KMNPAIRS_LOG_LEVEL"
	EnvOutput   = "KMNPAIRS_OUTPUT"
)

// Job is the root of a job file.
type Job struct {
	Seed       int64             `yaml:"seed"`
	LogLevel   string            `yaml:"log_level"` // default "info"
	Assignment AssignmentConfig  `yaml:"assignment"`
	Forbidden  ForbiddenConfig   `yaml:"forbidden"`
	Steps      []Step            `yaml:"steps"`
	Multistart *MultistartConfig `yaml:"multistart"`
	Ranking    *RankingConfig    `yaml:"ranking"`
	Output     OutputConfig      `yaml:"output"`
}

// AssignmentConfig selects exactly one source: a snapshot file, (k,m,n) or
// (m,n,p).
type AssignmentConfig struct {
	Snapshot string `yaml:"snapshot"`
	K        int    `yaml:"k"`
	M        int    `yaml:"m"`
	N        int    `yaml:"n"`
	P        int    `yaml:"p"`
}

// ForbiddenConfig lists forbidden-pair edits applied after loading.
type ForbiddenConfig struct {
	Pairs       [][2]int      `yaml:"pairs"` // [[left, right], ...]
	Cross       []CrossConfig `yaml:"cross"`
	Random      int           `yaml:"random"`
	RandomLeft  []RandomByID  `yaml:"random_left"`
	RandomRight []RandomByID  `yaml:"random_right"`
}

// CrossConfig forbids every pair of left x right.
type CrossConfig struct {
	Left  []int `yaml:"left"`
	Right []int `yaml:"right"`
}

// RandomByID draws Count random forbidden pairs touching ID.
type RandomByID struct {
	ID    int `yaml:"id"`
	Count int `yaml:"count"`
}

// Step ops.
const (
	OpPermute  = "permute"
	OpSwap     = "swap"
	OpBackSwap = "backswap"
	OpSwitch   = "switch"
	OpBack     = "back"
	OpValidate = "validate"
	OpFlow     = "flow"
)

// Step is one action of the pipeline. Side and Max apply to the search ops.
type Step struct {
	Op   string `yaml:"op"`
	Side string `yaml:"side"` // left | right | leftN%; default left50%
	Max  int    `yaml:"max"`
}

// IsSearch reports whether s is one of the repair strategies.
func (s Step) IsSearch() bool {
	return s.Op == OpPermute || s.Op == OpSwap || s.Op == OpBackSwap
}

// Selector parses Side.
func (s Step) Selector() (assign.Selector, error) {
	return assign.ParseSelector(s.Side)
}

// MultistartConfig enables a multistart batch after the steps.
type MultistartConfig struct {
	Runs     int    `yaml:"runs"`
	Workers  int    `yaml:"workers"`
	Strategy string `yaml:"strategy"`
	Side     string `yaml:"side"`
	Max      int    `yaml:"max"`
	Shuffle  bool   `yaml:"shuffle"`
	Switch   bool   `yaml:"switch"`
}

// RankingConfig enables ranking aggregation on the final assignment.
// Snapshot, if set, supplies labels and orderings and must match the
// assignment's m and n.
type RankingConfig struct {
	Snapshot    string          `yaml:"snapshot"`
	RankerNames []string        `yaml:"ranker_names"`
	RankedNames []string        `yaml:"ranked_names"`
	Simulate    *SimulateConfig `yaml:"simulate"`
	Force       bool            `yaml:"force"`
}

// SimulateConfig draws orderings from noisy true scores. Scores[i] is the
// true score of item i; missing entries score 0.
type SimulateConfig struct {
	MaxDev float64   `yaml:"max_dev"`
	Scores []float64 `yaml:"scores"`
}

// OutputConfig names output files. Empty paths skip the output; "-" is
// stdout.
type OutputConfig struct {
	Assignments string `yaml:"assignments"`
	Ranking     string `yaml:"ranking"`
}

// Load reads the job at path, applies environment overrides (after loading
// envFile when non-empty) and validates the result.
func Load(path, envFile string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read job: %w", err)
	}
	job, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("config: load env: %w", err)
		}
	}
	if err := job.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}
	return job, nil
}

// Parse decodes a job document and applies defaults. Unknown keys are
// errors.
func Parse(data []byte) (*Job, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var job Job
	if err := dec.Decode(&job); err != nil {
		return nil, fmt.Errorf("config: parse job: %w", err)
	}
	applyDefaults(&job)
	return &job, nil
}

func applyDefaults(job *Job) {
	if job.LogLevel == "" {
		job.LogLevel = "info"
	}
	for i := range job.Steps {
		if job.Steps[i].IsSearch() && job.Steps[i].Side == "" {
			job.Steps[i].Side = "left50%"
		}
	}
	if ms := job.Multistart; ms != nil {
		if ms.Strategy == "" {
			ms.Strategy = OpPermute
		}
		if ms.Side == "" {
			ms.Side = "left50%"
		}
	}
}

// ApplyEnv overrides job values from lookup.
func (job *Job) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvSeed, v, err)
		}
		job.Seed = seed
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		job.LogLevel = v
	}
	if v, ok := lookup(EnvOutput); ok && v != "" {
		job.Output.Assignments = v
	}
	return nil
}

// Validate reports every problem of job at once.
func (job *Job) Validate() error {
	var errs []error
	bad := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}

	switch a := job.Assignment; {
	case a.Snapshot != "":
		if a.K != 0 || a.M != 0 || a.N != 0 || a.P != 0 {
			bad("assignment: snapshot excludes k, m, n and p")
		}
	case a.K != 0 && a.P != 0:
		bad("assignment: set k or p, not both")
	case a.M < 1 || a.N < 1:
		bad("assignment: m and n must be positive")
	case a.K == 0 && a.P == 0:
		bad("assignment: one of snapshot, k or p is required")
	}

	switch job.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		bad("log_level %q", job.LogLevel)
	}

	if job.Forbidden.Random < 0 {
		bad("forbidden.random is negative")
	}
	for i, s := range job.Steps {
		switch {
		case s.IsSearch():
			if s.Max < 1 {
				bad("steps[%d]: %s needs max >= 1", i, s.Op)
			}
			if _, err := s.Selector(); err != nil {
				bad("steps[%d]: side %q", i, s.Side)
			}
		case s.Op == OpSwitch, s.Op == OpBack, s.Op == OpValidate, s.Op == OpFlow:
		default:
			bad("steps[%d]: unknown op %q", i, s.Op)
		}
	}

	if ms := job.Multistart; ms != nil {
		if ms.Runs < 1 {
			bad("multistart.runs must be positive")
		}
		if ms.Max < 1 {
			bad("multistart.max must be positive")
		}
		if _, err := assign.ParseStrategy(ms.Strategy); err != nil {
			bad("multistart.strategy %q", ms.Strategy)
		}
		if _, err := assign.ParseSelector(ms.Side); err != nil {
			bad("multistart.side %q", ms.Side)
		}
	}

	if r := job.Ranking; r != nil {
		if r.Simulate != nil && r.Simulate.MaxDev < 0 {
			bad("ranking.simulate.max_dev is negative")
		}
		if r.Snapshot != "" && (len(r.RankerNames) > 0 || len(r.RankedNames) > 0) {
			bad("ranking: snapshot excludes ranker_names and ranked_names")
		}
	}
	return errors.Join(errs...)
}
