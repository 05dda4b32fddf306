//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hubonce sync.Once

// the hub is a run-forever singleton; every test that talks to it goes through here
func starthub() {
	hubonce.Do(func() { go WSJobInfoHub() })
}

func TestWSFetchJobInfo(t *testing.T) {
	starthub()

	job := WSJobInfo{
		ID:       "feedcafe",
		User:     "u1",
		Exists:   true,
		JobCount: 1,
		TotalWrk: 400,
		Remain:   100,
		RealIP:   "192.0.2.10",
		Launched: time.Now(),
	}
	WSInfo.InsertInfo <- job

	got := WSFetchJobInfo("feedcafe")
	require.True(t, got.Exists)
	assert.Equal(t, "feedcafe", got.ID)
	assert.Equal(t, 400, got.TotalWrk)
	assert.Equal(t, 100, got.Remain)

	// an id the hub has never seen
	missing := WSFetchJobInfo("00000000")
	assert.False(t, missing.Exists)

	WSInfo.Del <- "feedcafe"
}

func TestWSJobInfoHubIPJobCount(t *testing.T) {
	starthub()

	WSInfo.InsertInfo <- WSJobInfo{ID: "aaaa1111", Exists: true, JobCount: 1, RealIP: "198.51.100.7"}
	WSInfo.InsertInfo <- WSJobInfo{ID: "bbbb2222", Exists: true, JobCount: 1, RealIP: "198.51.100.7"}
	WSInfo.InsertInfo <- WSJobInfo{ID: "cccc3333", Exists: true, JobCount: 1, RealIP: "203.0.113.9"}

	counter := WSJICount{Key: "198.51.100.7", Response: make(chan int)}
	WSInfo.IPJobCount <- counter
	assert.Equal(t, 2, <-counter.Response)

	WSInfo.Del <- "aaaa1111"
	WSInfo.Del <- "bbbb2222"
	WSInfo.Del <- "cccc3333"
}
