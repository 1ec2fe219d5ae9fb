package sweep

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cliffordsim/builder"
	"github.com/katalvlaran/cliffordsim/circuit"
	"github.com/katalvlaran/cliffordsim/quantum"
	"github.com/katalvlaran/cliffordsim/storage/blob"
	"github.com/katalvlaran/cliffordsim/storage/results"
)

// evolutionMix separates the evolution generators from the state seeds.
const evolutionMix = 0x6a09e667f3bcc909

// Runner executes sweeps. The zero value is not usable; see NewRunner.
type Runner struct {
	log     *zap.Logger
	metrics *Metrics
	tracer  trace.Tracer
	workers int
	store   blob.Store
	sinks   []results.Sink
	runID   uuid.UUID
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger (default zap.NewNop).
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithWorkers bounds the number of points run concurrently. It
// overrides num_threads. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("sweep.WithWorkers: %d < 1", n))
	}
	return func(r *Runner) { r.workers = n }
}

// WithRegisterer registers fresh Metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(r *Runner) { r.metrics = NewMetrics(reg) }
}

// WithMetrics shares m between runners.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithTracer replaces the global otel tracer.
func WithTracer(t trace.Tracer) Option {
	return func(r *Runner) { r.tracer = t }
}

// WithCheckpoints saves the equilibrated state of every run to store and
// resumes from it when the key already exists.
func WithCheckpoints(store blob.Store) Option {
	return func(r *Runner) { r.store = store }
}

// WithSinks appends the result records to every sink after the sweep.
// Sinks must have been initialized.
func WithSinks(sinks ...results.Sink) Option {
	return func(r *Runner) { r.sinks = append(r.sinks, sinks...) }
}

// WithRunID fixes the run ID, taking precedence over Config.Resume.
func WithRunID(id uuid.UUID) Option {
	return func(r *Runner) { r.runID = id }
}

// NewRunner applies opts over the defaults.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{log: zap.NewNop(), tracer: otel.Tracer("github.com/katalvlaran/cliffordsim/sweep")}
	for _, opt := range opts {
		opt(r)
	}
	if r.metrics == nil {
		r.metrics = NewMetrics(nil)
	}

	return r
}

// Run executes every point of cfg and returns the collected slides in
// point order. The first failing point cancels the others.
func (r *Runner) Run(ctx context.Context, cfg Config) (*DataFrame, error) {
	points, err := cfg.Points()
	if err != nil {
		return nil, err
	}

	runID := r.runID
	if runID == uuid.Nil && cfg.Resume != "" {
		if runID, err = uuid.Parse(cfg.Resume); err != nil {
			return nil, fmt.Errorf("Run: resume %q: %w: %w", cfg.Resume, ErrConfig, err)
		}
	}
	if runID == uuid.Nil {
		runID = uuid.New()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	workers := r.workers
	if workers == 0 {
		workers = cfg.NumThreads
	}
	log := r.log.With(zap.Stringer("run_id", runID), zap.String("run_name", cfg.RunName))
	log.Info("sweep started",
		zap.Int("points", len(points)),
		zap.Uint64("seed", seed),
		zap.Int("workers", workers),
		zap.String("simulator", string(cfg.SimulatorType)),
		zap.String("circuit", string(cfg.CircuitType)))

	ctx, span := r.tracer.Start(ctx, "sweep.Run", trace.WithAttributes(
		attribute.String("run_id", runID.String()),
		attribute.String("run_name", cfg.RunName),
		attribute.Int("points", len(points)),
	))
	defer span.End()

	start := time.Now()
	slides := make([]DataSlide, len(points))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range points {
		g.Go(func() error {
			slide, err := r.runPoint(gctx, log, runID, seed, p)
			if err != nil {
				r.metrics.points.WithLabelValues(string(p.Simulator), resultError).Inc()
				return fmt.Errorf("point %s: %w", p.Key(), err)
			}
			r.metrics.points.WithLabelValues(string(p.Simulator), resultOK).Inc()
			slides[i] = slide
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "sweep failed")
		log.Error("sweep failed", zap.Error(err))
		return nil, fmt.Errorf("Run: %w", err)
	}

	df := &DataFrame{RunID: runID.String(), RunName: cfg.RunName, Seed: seed, Slides: slides}
	if cfg.SaveData {
		if err = df.SaveJSON(cfg.Filename); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "save failed")
			return nil, fmt.Errorf("Run: %w", err)
		}
	}
	if len(r.sinks) > 0 {
		recs := df.Records()
		for _, s := range r.sinks {
			if err = s.Write(ctx, recs); err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "sink write failed")
				return nil, fmt.Errorf("Run: %w", err)
			}
		}
	}

	span.SetStatus(codes.Ok, "sweep finished")
	log.Info("sweep finished", zap.Duration("elapsed", time.Since(start)), zap.Int("slides", len(slides)))

	return df, nil
}

// runPoint runs every run of p and pools their series.
func (r *Runner) runPoint(ctx context.Context, log *zap.Logger, runID uuid.UUID, seed uint64, p Point) (DataSlide, error) {
	ctx, span := r.tracer.Start(ctx, "sweep.Point", trace.WithAttributes(
		attribute.String("key", p.Key()),
		attribute.Int("system_size", p.SystemSize),
		attribute.Float64("mzr_prob", p.MzrProb),
	))
	defer span.End()

	init, err := NewState(p.Simulator, p.SystemSize, quantum.WithPCG(seed, uint64(p.Index)))
	if err != nil {
		return DataSlide{}, err
	}

	var series []Sample
	for run := 0; run < p.NumRuns; run++ {
		if err = ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "canceled")
			return DataSlide{}, err
		}
		start := time.Now()
		samples, err := r.runOne(ctx, runID, seed, p, run, cloneState(init))
		if err != nil {
			r.metrics.runs.WithLabelValues(string(p.Simulator), resultError).Inc()
			span.RecordError(err)
			span.SetStatus(codes.Error, "run failed")
			return DataSlide{}, err
		}
		r.metrics.runDuration.WithLabelValues(string(p.Simulator)).Observe(time.Since(start).Seconds())
		if run == 0 {
			series = samples
		} else {
			series = combineSeries(series, samples)
		}
	}
	if p.TemporalAvg {
		series = []Sample{foldSeries(series)}
	}

	slide := NewDataSlide()
	slide.AddIntParam("system_size", p.SystemSize)
	slide.AddIntParam("timesteps", p.Timesteps)
	slide.AddIntParam("partition_size", p.PartitionSize)
	if p.Circuit == CircuitRandomClifford {
		slide.AddIntParam("gate_width", p.GateWidth)
	}
	slide.AddFloatParam("mzr_prob", p.MzrProb)
	slide.AddStringParam("run_id", runID.String())
	slide.AddStringParam("simulator", string(p.Simulator))
	slide.AddStringParam("circuit_type", string(p.Circuit))
	slide.PushData(SeriesEntropy, series...)

	log.Debug("point finished", zap.String("key", p.Key()), zap.Int("samples", len(series)))
	span.SetStatus(codes.Ok, "point finished")

	return slide, nil
}

// runOne prepares st (or resumes it) and samples the entropy after every
// measurement interval.
func (r *Runner) runOne(ctx context.Context, runID uuid.UUID, seed uint64, p Point, run int, st quantum.Simulator) ([]Sample, error) {
	src := rand.NewPCG(seed^evolutionMix, uint64(p.Index)<<32|uint64(run))
	step := 0
	resumed := false

	var key string
	if r.store != nil {
		key = CheckpointKey(runID, p, run)
		cp, ok, err := LoadCheckpoint(ctx, r.store, key)
		if err != nil {
			return nil, err
		}
		if ok {
			if cp.Simulator != p.Simulator {
				return nil, fmt.Errorf("checkpoint %s holds a %s state: %w", key, cp.Simulator, ErrCheckpoint)
			}
			if err = src.UnmarshalBinary(cp.Evolution); err != nil {
				return nil, fmt.Errorf("checkpoint %s: %w: %w", key, ErrCheckpoint, err)
			}
			st, step, resumed = cp.State, cp.Step, true
			r.metrics.checkpoints.WithLabelValues("hit").Inc()
		} else {
			r.metrics.checkpoints.WithLabelValues("miss").Inc()
		}
	}

	evo, err := newEvolution(p, rand.New(src))
	if err != nil {
		return nil, err
	}

	if !resumed {
		if p.Circuit == CircuitQuantumAutomaton {
			if err = polarize(st); err != nil {
				return nil, err
			}
		}
		builder.Evolve(evo, st, 0, p.EquilibrationSteps)
		step = p.EquilibrationSteps

		if r.store != nil {
			evoState, err := src.MarshalBinary()
			if err != nil {
				return nil, err
			}
			cp := Checkpoint{Simulator: p.Simulator, Step: step, Evolution: evoState, State: st}
			if err = SaveCheckpoint(ctx, r.store, key, cp); err != nil {
				return nil, err
			}
			r.metrics.checkpoints.WithLabelValues("save").Inc()
		}
	}

	steps, intervals := p.schedule()
	out := make([]Sample, 0, intervals)
	for i := 0; i < intervals; i++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		builder.Evolve(evo, st, step, steps)
		step += steps
		s := entropySample(p, st)
		r.metrics.entropy.WithLabelValues(string(p.Simulator)).Observe(s.Mean)
		out = append(out, s)
	}

	result := resultOK
	if resumed {
		result = resultResumed
	}
	r.metrics.runs.WithLabelValues(string(p.Simulator), result).Inc()

	return out, nil
}

func newEvolution(p Point, rng *rand.Rand) (builder.Evolution, error) {
	opts := []builder.BuilderOption{builder.WithRand(rng), builder.WithMeasureProb(p.MzrProb)}
	switch p.Circuit {
	case CircuitQuantumAutomaton:
		return builder.NewQuantumAutomaton(opts...)
	case CircuitRandomClifford:
		return builder.NewRandomCliffordBrickwall(append(opts, builder.WithGateWidth(p.GateWidth))...)
	}

	return nil, fmt.Errorf("circuit %q: %w", p.Circuit, ErrUnknownCircuit)
}

// polarize applies an H to every qubit.
func polarize(st quantum.State) error {
	prog, err := builder.BuildCircuit(st.SystemSize(), nil, builder.Polarize())
	if err != nil {
		return err
	}
	_, err = circuit.Run(st, prog, circuit.WithoutFinish())

	return err
}

// entropySample measures the partition [0, a), or averages it over the
// offsets i·spacing when space averaging.
func entropySample(p Point, st quantum.Simulator) Sample {
	n, a := p.SystemSize, p.PartitionSize
	qubits := make([]int, a)
	if !p.SpaceAvg {
		for j := range qubits {
			qubits[j] = j
		}
		return NewSample(float64(st.RenyiEntropy(qubits)))
	}

	num := max((n-a)/p.Spacing, 1)
	xs := make([]float64, num)
	for i := range xs {
		for j := range qubits {
			qubits[j] = j + i*p.Spacing
		}
		xs[i] = float64(st.RenyiEntropy(qubits))
	}

	return SampleOf(xs)
}
