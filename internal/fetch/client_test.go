//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.Contains(r.Header.Get("User-Agent"), "LitMineGoServer"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count": 3, "name": "x"}`))
	}))
	defer srv.Close()

	pc := newpoliteclient(0)

	var into struct {
		Count int    `json:"count"`
		Name  string `json:"name"`
	}

	require.NoError(t, getjson(context.Background(), pc, srv.URL, &into))
	assert.Equal(t, 3, into.Count)
	assert.Equal(t, "x", into.Name)
}

func TestGetBodyRetriesOn429(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	pc := newpoliteclient(0)
	pc.hc.Timeout = 5 * time.Second

	body, err := pc.getbody(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
	assert.Equal(t, 2, hits)
}

func TestGetBodyGivesUpOn404(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	pc := newpoliteclient(0)
	_, err := pc.getbody(context.Background(), srv.URL)
	assert.Error(t, err)
	assert.Equal(t, 1, hits)
}

func TestThrottleSpacesRequests(t *testing.T) {
	pc := newpoliteclient(50 * time.Millisecond)

	start := time.Now()
	pc.throttle()
	pc.throttle()
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}
