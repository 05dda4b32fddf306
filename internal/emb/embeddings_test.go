//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package emb

import (
	"testing"
	"time"

	"github.com/e-gun/LitMineGoServer/internal/str"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintIsStable(t *testing.T) {
	bags := []str.BagWithLocus{
		{Loc: "doc/arxiv/2301.00001", ModifiedBag: "batteri anod cathod"},
		{Loc: "doc/openalex/W42", ModifiedBag: "genom sequenc"},
	}

	a := Fingerprint("solid_state", "w2v", "english", bags)
	b := Fingerprint("solid_state", "w2v", "english", bags)
	assert.Equal(t, a, b)
	assert.Len(t, a, 32)

	// any ingredient change moves the fingerprint
	assert.NotEqual(t, a, Fingerprint("solid_state", "glove", "english", bags))
	assert.NotEqual(t, a, Fingerprint("other_corpus", "w2v", "english", bags))
}

func TestTrainingReportsStopsWhenTrainingEnds(t *testing.T) {
	ct := make(chan int)
	rep := make(chan string)
	done := make(chan struct{})

	exited := make(chan struct{})
	go func() {
		trainingreports("deadbeef", 15, ct, rep, done)
		close(exited)
	}()

	// feed it one progress datum; the relay consumes it and keeps looping
	select {
	case ct <- 5:
	case <-time.After(time.Second):
		t.Fatal("the reporter never read the progress channel")
	}

	close(done)

	select {
	case <-exited:
		// the relay goroutine ended with its training run
	case <-time.After(time.Second):
		t.Fatal("the reporter outlived its training run")
	}
}

func TestBuildTextBlock(t *testing.T) {
	bags := []str.BagWithLocus{
		{ModifiedBag: "batteri anod"},
		{Bag: "raw fallback text"},
	}
	out := buildtextblock(bags)
	require.Equal(t, "batteri anod raw fallback text", out)
}
