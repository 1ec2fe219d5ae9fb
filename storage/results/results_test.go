package results_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/cliffordsim/storage/results"
)

// SinkSuite runs the Sink contract against one database.
type SinkSuite struct {
	suite.Suite
	open func(ctx context.Context) (*results.SQL, error)
	sink *results.SQL
	ctx  context.Context
}

func (s *SinkSuite) SetupTest() {
	s.ctx = context.Background()
	sink, err := s.open(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(sink.Init(s.ctx))
	s.Require().NoError(sink.Init(s.ctx), "Init is idempotent")
	s.sink = sink
}

func (s *SinkSuite) TearDownTest() {
	s.Require().NoError(s.sink.Close())
}

func records(runID string) []results.Record {
	params := map[string]float64{"system_size": 8, "partition_size": 4, "mzr_prob": 0.25}
	return []results.Record{
		{RunID: runID, RunName: "t", Slide: 0, Params: params, Series: "entropy", Index: 1, Mean: 2.5, Std: 0.5, NumSamples: 4},
		{RunID: runID, RunName: "t", Slide: 0, Params: params, Series: "entropy", Index: 0, Mean: 1, Std: 0, NumSamples: 4},
		{RunID: runID, RunName: "t", Slide: 1, Params: params, Series: "entropy", Index: 0, Mean: 3, Std: 1, NumSamples: 2},
	}
}

func (s *SinkSuite) TestWriteRead() {
	runID := uuid.NewString()
	s.Require().NoError(s.sink.Write(s.ctx, records(runID)))

	got, err := s.sink.Read(s.ctx, runID)
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Equal(0, got[0].Index)
	s.Equal(1.0, got[0].Mean)
	s.Equal(1, got[1].Index)
	s.Equal(2.5, got[1].Mean)
	s.Equal(1, got[2].Slide)
	s.Equal(0.25, got[2].Params["mzr_prob"])
	s.Equal(4, got[0].NumSamples)
}

func (s *SinkSuite) TestWriteIsAtomic() {
	runID := uuid.NewString()
	recs := records(runID)
	recs = append(recs, recs[0]) // duplicate key
	s.Error(s.sink.Write(s.ctx, recs))

	got, err := s.sink.Read(s.ctx, runID)
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *SinkSuite) TestEmptyWrite() {
	s.NoError(s.sink.Write(s.ctx, nil))
}

func (s *SinkSuite) TestClosed() {
	s.Require().NoError(s.sink.Close())
	s.ErrorIs(s.sink.Write(s.ctx, records("x")), results.ErrClosed)
	s.ErrorIs(s.sink.Init(s.ctx), results.ErrClosed)
	_, err := s.sink.Read(s.ctx, "x")
	s.ErrorIs(err, results.ErrClosed)
}

func TestSQLiteSink(t *testing.T) {
	dir := t.TempDir()
	n := 0
	suite.Run(t, &SinkSuite{open: func(ctx context.Context) (*results.SQL, error) {
		n++
		return results.OpenSQLite(ctx, filepath.Join(dir, "db", uuid.NewString()+".db"))
	}})
	require.Positive(t, n)
}

func TestSQLiteSink_Memory(t *testing.T) {
	suite.Run(t, &SinkSuite{open: func(ctx context.Context) (*results.SQL, error) {
		return results.OpenSQLite(ctx, ":memory:")
	}})
}

func TestPostgresSink(t *testing.T) {
	dsn := os.Getenv("CLIFFORDSIM_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("CLIFFORDSIM_TEST_POSTGRES_DSN not set")
	}
	suite.Run(t, &SinkSuite{open: func(ctx context.Context) (*results.SQL, error) {
		return results.OpenPostgres(ctx, dsn)
	}})
}
