package blob_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/cliffordsim/storage/blob"
)

// StoreSuite runs the Store contract against one backend.
type StoreSuite struct {
	suite.Suite
	newStore func(t *testing.T) blob.Store
	store    blob.Store
	ctx      context.Context
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.newStore(s.T())
}

func (s *StoreSuite) put(key, body string, meta map[string]string) {
	_, err := s.store.Put(s.ctx, key, strings.NewReader(body), meta)
	s.Require().NoError(err)
}

func (s *StoreSuite) TestPutGet() {
	info, err := s.store.Put(s.ctx, "run/a.json", strings.NewReader(`{"n":1}`), map[string]string{"digest": "abc"})
	s.Require().NoError(err)
	s.Equal(int64(7), info.Size)

	got, data, err := blob.ReadAll(s.ctx, s.store, "run/a.json")
	s.Require().NoError(err)
	s.Equal(`{"n":1}`, string(data))
	s.Equal("abc", got.Metadata["digest"])
}

func (s *StoreSuite) TestPutIsCreateOnly() {
	s.put("k", "1", nil)
	_, err := s.store.Put(s.ctx, "k", strings.NewReader("2"), nil)
	s.ErrorIs(err, blob.ErrExists)

	_, data, err := blob.ReadAll(s.ctx, s.store, "k")
	s.Require().NoError(err)
	s.Equal("1", string(data))
}

func (s *StoreSuite) TestGetMissing() {
	_, _, err := s.store.Get(s.ctx, "nope")
	s.ErrorIs(err, blob.ErrNotFound)
}

func (s *StoreSuite) TestInvalidKeys() {
	for _, key := range []string{"", "  ", "/abs", "../up", "a/../../b"} {
		_, err := s.store.Put(s.ctx, key, strings.NewReader("x"), nil)
		s.ErrorIs(err, blob.ErrInvalidKey, key)
	}
}

func (s *StoreSuite) TestDelete() {
	s.put("d/x", "1", nil)
	ok, err := s.store.Delete(s.ctx, "d/x")
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.store.Delete(s.ctx, "d/x")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *StoreSuite) TestListSortedByKey() {
	for _, k := range []string{"r1/c.json", "r1/a.json", "r2/a.json", "r1/b.json", "r1/d.json"} {
		s.put(k, k, nil)
	}
	infos, err := s.store.List(s.ctx, "r1/")
	s.Require().NoError(err)

	keys := make([]string, len(infos))
	for i, in := range infos {
		keys[i] = in.Key
	}
	s.Equal([]string{"r1/a.json", "r1/b.json", "r1/c.json", "r1/d.json"}, keys)
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, &StoreSuite{newStore: func(*testing.T) blob.Store { return blob.NewMemory() }})
}

func TestFilesystemStore(t *testing.T) {
	suite.Run(t, &StoreSuite{newStore: func(t *testing.T) blob.Store {
		fs, err := blob.NewFilesystem(t.TempDir())
		require.NoError(t, err)
		return fs
	}})
}

func TestS3Store(t *testing.T) {
	suite.Run(t, &StoreSuite{newStore: func(*testing.T) blob.Store {
		return blob.NewS3WithClient(newFakeS3(), "bucket", "ckpt/")
	}})
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	s, err := blob.Open(ctx, blob.DriverMemory, "", blob.S3Config{})
	require.NoError(t, err)
	require.Equal(t, blob.DriverMemory, s.Driver())

	s, err = blob.Open(ctx, blob.DriverFilesystem, t.TempDir(), blob.S3Config{})
	require.NoError(t, err)
	require.Equal(t, blob.DriverFilesystem, s.Driver())

	_, err = blob.Open(ctx, blob.DriverS3, "", blob.S3Config{})
	require.Error(t, err)

	_, err = blob.Open(ctx, "tape", "", blob.S3Config{})
	require.Error(t, err)
}
