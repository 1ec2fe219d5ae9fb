package sweep

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/katalvlaran/cliffordsim/storage/results"
)

// SeriesEntropy is the data key of the entropy series.
const SeriesEntropy = "entropy"

// DataSlide holds the parameters and sample series of one point.
type DataSlide struct {
	IntParams    map[string]int      `json:"int_params"`
	FloatParams  map[string]float64  `json:"float_params"`
	StringParams map[string]string   `json:"string_params,omitempty"`
	Data         map[string][]Sample `json:"data"`
}

// NewDataSlide returns an empty slide.
func NewDataSlide() DataSlide {
	return DataSlide{
		IntParams:    make(map[string]int),
		FloatParams:  make(map[string]float64),
		StringParams: make(map[string]string),
		Data:         make(map[string][]Sample),
	}
}

// AddIntParam sets an integer parameter.
func (s DataSlide) AddIntParam(key string, v int) { s.IntParams[key] = v }

// AddFloatParam sets a float parameter.
func (s DataSlide) AddFloatParam(key string, v float64) { s.FloatParams[key] = v }

// AddStringParam sets a string parameter.
func (s DataSlide) AddStringParam(key, v string) { s.StringParams[key] = v }

// PushData appends samples to the series named key.
func (s DataSlide) PushData(key string, xs ...Sample) {
	s.Data[key] = append(s.Data[key], xs...)
}

// DataFrame is the result document of one sweep.
type DataFrame struct {
	RunID   string      `json:"run_id"`
	RunName string      `json:"run_name"`
	Seed    uint64      `json:"seed"`
	Slides  []DataSlide `json:"slides"`
}

// SaveJSON writes df to path, replacing any existing file.
func (df *DataFrame) SaveJSON(path string) error {
	data, err := json.MarshalIndent(df, "", "  ")
	if err != nil {
		return fmt.Errorf("SaveJSON: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("SaveJSON: %w", err)
	}

	return nil
}

// LoadDataFrame reads a document written by SaveJSON.
func LoadDataFrame(path string) (*DataFrame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadDataFrame: %w", err)
	}
	var df DataFrame
	if err = json.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("LoadDataFrame: %s: %w", path, err)
	}

	return &df, nil
}

// Records flattens df into one row per sample, series in name order.
func (df *DataFrame) Records() []results.Record {
	var out []results.Record
	for i, s := range df.Slides {
		params := make(map[string]float64, len(s.IntParams)+len(s.FloatParams))
		for k, v := range s.IntParams {
			params[k] = float64(v)
		}
		for k, v := range s.FloatParams {
			params[k] = v
		}

		names := make([]string, 0, len(s.Data))
		for k := range s.Data {
			names = append(names, k)
		}
		sort.Strings(names)

		for _, name := range names {
			for j, x := range s.Data[name] {
				out = append(out, results.Record{
					RunID:      df.RunID,
					RunName:    df.RunName,
					Slide:      i,
					Params:     params,
					Series:     name,
					Index:      j,
					Mean:       x.Mean,
					Std:        x.Std,
					NumSamples: x.NumSamples,
				})
			}
		}
	}

	return out
}
