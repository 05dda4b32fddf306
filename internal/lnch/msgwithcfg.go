//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"github.com/e-gun/LitMineGoServer/internal/mm"
	"github.com/e-gun/LitMineGoServer/internal/vv"
)

var (
	// Config holds the defaults until ConfigAtLaunch() swaps in the real configuration
	Config = BuildDefaultConfig()
	Msg    = NewMessageMakerWithDefaults()
)

// NewMessageMakerWithDefaults - a MessageMaker that works before ConfigAtLaunch() has run
func NewMessageMakerWithDefaults() *mm.MessageMaker {
	return mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION)
}

// UpdateMessageMakerWithConfig - reconfigure a MessageMaker once the config is known
func UpdateMessageMakerWithConfig(m *mm.MessageMaker) {
	m.BW = Config.BlackAndWhite
	m.GC = Config.ManualGC
	m.LLvl = Config.LogLevel
	m.Tick = Config.TickerActive
}
