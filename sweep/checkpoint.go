package sweep

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/katalvlaran/cliffordsim/quantum"
	"github.com/katalvlaran/cliffordsim/storage/blob"
)

// Checkpoint metadata keys.
const (
	MetaDigest    = "blake2b-256"
	MetaSimulator = "simulator"
)

// Checkpoint is the state of one run after equilibration, together with
// the evolution generator that drives the rest of the run.
type Checkpoint struct {
	Simulator Simulator
	Step      int    // timesteps applied so far
	Evolution []byte // binary PCG state of the evolution generator
	State     quantum.Simulator
}

type checkpointJSON struct {
	Simulator Simulator       `json:"simulator"`
	Step      int             `json:"step"`
	Evolution []byte          `json:"evolution"`
	State     json.RawMessage `json:"state"`
}

// CheckpointKey names the blob of one run of one point.
func CheckpointKey(runID uuid.UUID, p Point, run int) string {
	return fmt.Sprintf("%s/%s/run-%03d.json", runID, p.Key(), run)
}

// SaveCheckpoint writes cp under key with its digest in the metadata.
// Keys are never overwritten.
func SaveCheckpoint(ctx context.Context, store blob.Store, key string, cp Checkpoint) error {
	state, err := json.Marshal(cp.State)
	if err != nil {
		return fmt.Errorf("SaveCheckpoint(%s): %w", key, err)
	}
	data, err := json.Marshal(checkpointJSON{Simulator: cp.Simulator, Step: cp.Step, Evolution: cp.Evolution, State: state})
	if err != nil {
		return fmt.Errorf("SaveCheckpoint(%s): %w", key, err)
	}

	sum := blake2b.Sum256(data)
	meta := map[string]string{
		MetaDigest:    hex.EncodeToString(sum[:]),
		MetaSimulator: string(cp.Simulator),
	}
	if _, err = store.Put(ctx, key, bytes.NewReader(data), meta); err != nil {
		return fmt.Errorf("SaveCheckpoint(%s): %w", key, err)
	}

	return nil
}

// LoadCheckpoint reads the checkpoint under key. A missing key reports
// false with a nil error; a digest mismatch or undecodable state
// returns ErrCheckpoint.
func LoadCheckpoint(ctx context.Context, store blob.Store, key string) (Checkpoint, bool, error) {
	info, data, err := blob.ReadAll(ctx, store, key)
	if errors.Is(err, blob.ErrNotFound) {
		return Checkpoint{}, false, nil
	}
	if err != nil {
		return Checkpoint{}, false, fmt.Errorf("LoadCheckpoint(%s): %w", key, err)
	}

	sum := blake2b.Sum256(data)
	if want := info.Metadata[MetaDigest]; want != hex.EncodeToString(sum[:]) {
		return Checkpoint{}, false, fmt.Errorf("LoadCheckpoint(%s): digest %q: %w", key, want, ErrCheckpoint)
	}

	var in checkpointJSON
	if err = json.Unmarshal(data, &in); err != nil {
		return Checkpoint{}, false, fmt.Errorf("LoadCheckpoint(%s): %w: %w", key, ErrCheckpoint, err)
	}
	st, err := decodeState(in.Simulator, in.State)
	if err != nil {
		return Checkpoint{}, false, fmt.Errorf("LoadCheckpoint(%s): %w: %w", key, ErrCheckpoint, err)
	}

	return Checkpoint{Simulator: in.Simulator, Step: in.Step, Evolution: in.Evolution, State: st}, true, nil
}
