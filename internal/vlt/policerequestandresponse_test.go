//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var keeperonce sync.Once

func startkeeper() {
	keeperonce.Do(func() { go IPBlacklistKeeper() })
}

func TestIPBlacklistKeeper(t *testing.T) {
	startkeeper()

	strike := func(ip string) bool {
		wr := BlackListWR{ip: ip, resp: make(chan bool)}
		BListWR <- wr
		return <-wr.resp
	}

	onlist := func(ip string) bool {
		rd := BlackListRD{ip: ip, resp: make(chan bool)}
		BListRD <- rd
		return !<-rd.resp
	}

	// an unknown address is presumed innocent
	assert.False(t, onlist("203.0.113.77"))

	// FAILSALLOWED strikes are tolerated; the next one lands you on the list
	for i := 0; i < 3; i++ {
		assert.False(t, strike("203.0.113.77"))
	}
	assert.True(t, strike("203.0.113.77"))
	assert.True(t, onlist("203.0.113.77"))

	// the neighbors are unaffected
	assert.False(t, onlist("203.0.113.78"))
}
