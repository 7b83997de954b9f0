package session_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/katalvlaran/citygraph/core"
	"github.com/katalvlaran/citygraph/loader"
	"github.com/katalvlaran/citygraph/metrics"
	"github.com/katalvlaran/citygraph/prim_kruskal"
	"github.com/katalvlaran/citygraph/session"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	log "go.arcalot.io/log/v2"
)

func writeData(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "distances.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestSession_BeforeLoad(t *testing.T) {
	s := session.New(session.WithLogger(log.NewTestLogger(t)))

	assert.False(t, s.Loaded())
	assert.Nil(t, s.Report())
	_, err := s.Graph()
	assert.ErrorIs(t, err, session.ErrNoGraph)
	_, _, err = s.FindDistance("A", "B")
	assert.ErrorIs(t, err, session.ErrNoGraph)
	_, _, err = s.Connections("A")
	assert.ErrorIs(t, err, session.ErrNoGraph)
	_, err = s.MST()
	assert.ErrorIs(t, err, session.ErrNoGraph)
	_, err = s.Components()
	assert.ErrorIs(t, err, session.ErrNoGraph)
	_, err = s.Reload()
	assert.ErrorIs(t, err, session.ErrNoSource)
}

func TestSession_LoadAndQuery(t *testing.T) {
	path := writeData(t, "A,B,5\nB,C,3\nA,C,10\nbroken line\n")
	s := session.New(session.WithLogger(log.NewTestLogger(t)))

	rep, err := s.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Added)
	assert.Equal(t, 1, rep.Skipped[loader.SkipFieldCount])
	assert.Same(t, rep, s.Report())

	e, ok, err := s.FindDistance("c", "a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualValues(t, 10, e.Distance)

	_, ok, err = s.FindDistance("A", "Z")
	require.NoError(t, err)
	assert.False(t, ok)

	n, views, err := s.Connections("b")
	require.NoError(t, err)
	assert.Equal(t, core.NewNode("B"), n)
	assert.Len(t, views, 2)

	_, _, err = s.Connections("Nowhere")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	res, err := s.MST()
	require.NoError(t, err)
	assert.EqualValues(t, 8, res.TotalDistance)
	assert.True(t, res.Spanning())

	res, err = s.MST(prim_kruskal.WithMethod(prim_kruskal.MethodKruskal))
	require.NoError(t, err)
	assert.EqualValues(t, 8, res.TotalDistance)

	_, err = s.MST(prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)

	comps, err := s.Components()
	require.NoError(t, err)
	assert.Len(t, comps, 1)
}

func TestSession_FailedLoadKeepsGraph(t *testing.T) {
	path := writeData(t, "A,B,5\n")
	s := session.New(session.WithLogger(log.NewTestLogger(t)))

	_, err := s.Load(path)
	require.NoError(t, err)
	before, err := s.Graph()
	require.NoError(t, err)

	_, err = s.Load(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, loader.ErrNotFound)

	after, err := s.Graph()
	require.NoError(t, err)
	assert.Same(t, before, after)
}

func TestSession_MissingFileFirst(t *testing.T) {
	s := session.New()

	_, err := s.Load(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, loader.ErrNotFound)
	assert.False(t, s.Loaded())
}

func TestSession_ReloadReplacesGraph(t *testing.T) {
	path := writeData(t, "A,B,5\n")
	s := session.New(session.WithLogger(log.NewTestLogger(t)))

	_, err := s.Load(path)
	require.NoError(t, err)
	first, err := s.Graph()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("A,B,5\nB,C,7\n"), 0o600))
	rep, err := s.Reload()
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Added)

	second, err := s.Graph()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, 1, first.EdgeCount(), "old graph must not be patched")
	assert.Equal(t, 2, second.EdgeCount())
}

func TestSession_ConcurrentReadersDuringReload(t *testing.T) {
	path := writeData(t, "A,B,5\nB,C,3\n")
	s := session.New()
	_, err := s.Load(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				g, err := s.Graph()
				if !assert.NoError(t, err) {
					return
				}
				assert.Equal(t, 2, g.EdgeCount())
			}
		}()
	}
	for i := 0; i < 5; i++ {
		_, err := s.Reload()
		require.NoError(t, err)
	}
	wg.Wait()
}

func TestSession_RecordsMetrics(t *testing.T) {
	path := writeData(t, "A,B,5\nC,D,7\n")
	rec := metrics.NewRecorder()
	s := session.New(session.WithRecorder(rec))

	_, err := s.Load(path)
	require.NoError(t, err)
	res, err := s.MST()
	require.NoError(t, err)
	assert.False(t, res.Spanning())

	n, err := testutil.GatherAndCount(rec.Registry(), "citygraph_mst_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
