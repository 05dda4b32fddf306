//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// the ticker's jobs line asks the hub for the path counts; if nobody is
// listening on PIRequest the ticker goroutine wedges after one uptime line

func TestPathInfoHubAnswersRequests(t *testing.T) {
	go PathInfoHub()

	PIUpdate <- "RtHarvest()"
	PIUpdate <- "RtHarvest()"
	PIUpdate <- "RtModelLDA()"

	// let the hub drain the updates before asking for the counts
	time.Sleep(50 * time.Millisecond)

	responder := PIReply{req: true, response: make(chan map[string]int)}

	select {
	case PIRequest <- responder:
		// the hub picked it up
	case <-time.After(500 * time.Millisecond):
		t.Fatal("nothing received the stats request")
	}

	var ctr map[string]int
	select {
	case ctr = <-responder.response:
		// got the counts back
	case <-time.After(500 * time.Millisecond):
		t.Fatal("the stats request went unanswered")
	}

	require.NotNil(t, ctr)
	assert.Equal(t, 2, ctr["RtHarvest()"])
	assert.Equal(t, 1, ctr["RtModelLDA()"])
}
