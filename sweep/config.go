package sweep

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/cliffordsim/storage/blob"
	"github.com/katalvlaran/cliffordsim/vector"
)

// EnvPrefix prefixes environment overrides, e.g. CLIFFORDSIM_NUM_RUNS.
const EnvPrefix = "CLIFFORDSIM"

// Simulator names a state representation.
type Simulator string

const (
	SimulatorCHP    Simulator = "chp"
	SimulatorGraph  Simulator = "graph"
	SimulatorVector Simulator = "vector"
)

// Circuit names a timestep evolution.
type Circuit string

const (
	CircuitDefault          Circuit = "default"
	CircuitQuantumAutomaton Circuit = "quantum_automaton"
	CircuitRandomClifford   Circuit = "random_clifford"
)

// Config is one experiment file.
type Config struct {
	RunName            string    `mapstructure:"run_name"`
	CircuitType        Circuit   `mapstructure:"circuit_type"`
	GateWidth          int       `mapstructure:"gate_width"`
	SimulatorType      Simulator `mapstructure:"simulator_type"`
	SystemSizes        []int     `mapstructure:"system_sizes"`
	PartitionSizes     []int     `mapstructure:"partition_sizes"`
	MzrProbs           []float64 `mapstructure:"mzr_probs"`
	Timesteps          []int     `mapstructure:"timesteps"`
	NumRuns            int       `mapstructure:"num_runs"`
	EquilibrationSteps int       `mapstructure:"equilibration_steps"`
	TemporalAvg        bool      `mapstructure:"temporal_avg"`
	MeasurementFreq    int       `mapstructure:"measurement_freq"`
	SpaceAvg           bool      `mapstructure:"space_avg"`
	Spacing            int       `mapstructure:"spacing"`
	SaveData           bool      `mapstructure:"save_data"`
	Filename           string    `mapstructure:"filename"`

	NumThreads int    `mapstructure:"num_threads"`
	Seed       uint64 `mapstructure:"seed"`

	// Resume names an earlier run ID whose checkpoints are reused.
	Resume           string        `mapstructure:"resume"`
	CheckpointDriver string        `mapstructure:"checkpoint_driver"`
	CheckpointDir    string        `mapstructure:"checkpoint_dir"`
	S3               blob.S3Config `mapstructure:"s3"`

	SQLitePath  string `mapstructure:"sqlite_path"`
	PostgresDSN string `mapstructure:"postgres_dsn"`
}

// SetDefaults registers the default of every optional key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("circuit_type", string(CircuitDefault))
	v.SetDefault("gate_width", 2)
	v.SetDefault("num_runs", 1)
	v.SetDefault("equilibration_steps", 0)
	v.SetDefault("temporal_avg", false)
	v.SetDefault("measurement_freq", 0)
	v.SetDefault("space_avg", false)
	v.SetDefault("spacing", 1)
	v.SetDefault("save_data", true)
	v.SetDefault("num_threads", runtime.NumCPU())
	v.SetDefault("seed", 0)
}

// NewViper returns a viper instance with defaults and CLIFFORDSIM_
// environment overrides in place.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// LoadConfig reads path into v (NewViper when nil) and decodes the
// result. The format follows the file extension.
func LoadConfig(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = NewViper()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("LoadConfig: %s: %w: %w", path, ErrConfig, err)
		}
	}

	return DecodeConfig(v)
}

// DecodeConfig unmarshals v without reading any file and validates it.
func DecodeConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("DecodeConfig: %w: %w", ErrConfig, err)
	}
	if cfg.CircuitType == CircuitDefault {
		cfg.CircuitType = CircuitQuantumAutomaton
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field that does not depend on a single point.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrConfig))
	}

	switch c.SimulatorType {
	case SimulatorCHP, SimulatorGraph, SimulatorVector:
	default:
		errs = append(errs, fmt.Errorf("simulator_type %q: %w", c.SimulatorType, ErrUnknownSimulator))
	}
	switch c.CircuitType {
	case CircuitDefault, CircuitQuantumAutomaton, CircuitRandomClifford:
	default:
		errs = append(errs, fmt.Errorf("circuit_type %q: %w", c.CircuitType, ErrUnknownCircuit))
	}

	if c.RunName == "" {
		bad("run_name is empty")
	}
	if len(c.SystemSizes) == 0 || len(c.PartitionSizes) == 0 || len(c.MzrProbs) == 0 || len(c.Timesteps) == 0 {
		bad("system_sizes, partition_sizes, mzr_probs and timesteps must be non-empty")
	}
	for _, n := range c.SystemSizes {
		if n < 1 {
			bad("system size %d < 1", n)
		}
		if c.SimulatorType == SimulatorVector && n > vector.MaxQubits {
			bad("system size %d exceeds the vector simulator's %d qubits", n, vector.MaxQubits)
		}
	}
	for _, a := range c.PartitionSizes {
		if a < 0 {
			bad("partition size %d < 0", a)
		}
	}
	for _, p := range c.MzrProbs {
		if !(p >= 0 && p <= 1) {
			bad("mzr_prob %v outside [0,1]", p)
		}
	}
	for _, t := range c.Timesteps {
		if t < 0 {
			bad("timesteps %d < 0", t)
		}
	}
	if c.GateWidth < 1 {
		bad("gate_width %d < 1", c.GateWidth)
	}
	if c.NumRuns < 1 {
		bad("num_runs %d < 1", c.NumRuns)
	}
	if c.EquilibrationSteps < 0 {
		bad("equilibration_steps %d < 0", c.EquilibrationSteps)
	}
	if c.MeasurementFreq < 0 {
		bad("measurement_freq %d < 0", c.MeasurementFreq)
	}
	if c.Spacing < 1 {
		bad("spacing %d < 1", c.Spacing)
	}
	if c.NumThreads < 1 {
		bad("num_threads %d < 1", c.NumThreads)
	}
	if c.SaveData && c.Filename == "" {
		bad("save_data needs a filename")
	}

	if len(errs) > 0 {
		return fmt.Errorf("Validate: %w", errors.Join(errs...))
	}

	return nil
}
