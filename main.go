//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"github.com/e-gun/LitMineGoServer/internal/db"
	"github.com/e-gun/LitMineGoServer/internal/lnch"
	"github.com/e-gun/LitMineGoServer/internal/mm"
	"github.com/e-gun/LitMineGoServer/internal/vlt"
	"github.com/e-gun/LitMineGoServer/internal/vv"
	"github.com/e-gun/LitMineGoServer/internal/web"
	"github.com/pkg/profile"
)

var Msg = lnch.NewMessageMakerWithDefaults()

func main() {
	lnch.ConfigAtLaunch()

	if lnch.Config.ProfileCPU {
		defer profile.Start().Stop()
	}

	if lnch.Config.ProfileMEM {
		defer profile.Start(profile.MemProfile).Stop()
	}

	lnch.UpdateMessageMakerWithConfig(Msg)

	if !lnch.Config.QuietStart {
		lnch.PrintVersion(*lnch.Config)
		lnch.PrintBuildInfo(*lnch.Config)
	}

	// the hubs have to be listening before any job can launch
	go mm.PathInfoHub()
	go vlt.WSJobInfoHub()
	go vlt.WebsocketPool.WSPoolStartListening()
	go vlt.IPBlacklistKeeper()
	go vlt.ResponseStatsKeeper()

	if lnch.Config.TickerActive {
		go Msg.Ticker(vv.TICKERDELAY)
	}

	db.InitializeDB()

	if lnch.Config.ResetModels {
		db.ModelCacheReset()
		db.ModelCacheInit()
	}

	db.ModelCacheSize(mm.MSGNOTE)

	web.StartEchoServer()
}
