package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetwatch/pkg/common"
	_ "fleetwatch/pkg/testing"
)

func TestPollerRefresh(t *testing.T) {
	common.SetTestLoggerNop()

	backend := newFakeBackend()
	defer backend.Close()

	poller := NewPoller(NewClient(backend.URL), time.Second)

	// before any refresh the snapshot is empty but safe to read
	snap := poller.Snapshot()
	assert.Nil(t, snap.Stats)
	assert.True(t, snap.FetchedAt.IsZero())

	require.NoError(t, poller.Refresh(context.Background()))

	snap = poller.Snapshot()
	assert.Len(t, snap.Overview, 2)
	assert.Len(t, snap.Tickets, 2)
	require.NotNil(t, snap.Stats)
	assert.Equal(t, 3, snap.Stats.HighRiskCount)
	assert.False(t, snap.FetchedAt.IsZero())
}

func TestPollerKeepsSnapshotOnFailure(t *testing.T) {
	common.SetTestLoggerNop()

	var failing bool
	var mu sync.Mutex

	good := newFakeBackend()
	defer good.Close()

	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		fail := failing
		mu.Unlock()
		if fail {
			http.Error(w, "backend down", http.StatusBadGateway)
			return
		}
		resp, err := http.Get(good.URL + r.URL.Path)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		defer resp.Body.Close()
		w.WriteHeader(resp.StatusCode)
		buf := make([]byte, 32*1024)
		for {
			n, err := resp.Body.Read(buf)
			if n > 0 {
				w.Write(buf[:n])
			}
			if err != nil {
				break
			}
		}
	}))
	defer proxy.Close()

	poller := NewPoller(NewClient(proxy.URL), time.Second)
	require.NoError(t, poller.Refresh(context.Background()))
	before := poller.Snapshot()

	mu.Lock()
	failing = true
	mu.Unlock()

	err := poller.Refresh(context.Background())
	require.Error(t, err)

	// failed poll keeps the previous snapshot intact
	after := poller.Snapshot()
	assert.Equal(t, before.FetchedAt, after.FetchedAt)
	assert.Len(t, after.Overview, 2)
}

func TestPollerRefreshDeduplication(t *testing.T) {
	common.SetTestLoggerNop()

	release := make(chan struct{})
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/data/dashboard/stats":
			w.Write([]byte(`{"high_risk_count":0,"avg_rul_all_tickets":null}`))
		default:
			w.Write([]byte(`[]`))
		}
	}))
	defer slow.Close()

	poller := NewPoller(NewClient(slow.URL), time.Second)

	done := make(chan error, 1)
	go func() {
		done <- poller.Refresh(context.Background())
	}()

	// wait for the first refresh to be in flight
	require.Eventually(t, func() bool {
		return poller.Refresh(context.Background()) == ErrRefreshInFlight
	}, time.Second, 5*time.Millisecond)

	close(release)
	require.NoError(t, <-done)

	snap := poller.Snapshot()
	assert.NotNil(t, snap.Overview)
	assert.NotNil(t, snap.Tickets)
}

func TestPollerRun(t *testing.T) {
	common.SetTestLoggerNop()

	backend := newFakeBackend()
	defer backend.Close()

	poller := NewPoller(NewClient(backend.URL), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		poller.Run(ctx)
		close(stopped)
	}()

	require.Eventually(t, func() bool {
		return !poller.Snapshot().FetchedAt.IsZero()
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop on context cancel")
	}
}
