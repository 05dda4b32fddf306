//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"

	"github.com/e-gun/LitMineGoServer/internal/lnch"
	"github.com/e-gun/LitMineGoServer/internal/vlt"
	"github.com/e-gun/LitMineGoServer/internal/vv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var Msg = lnch.NewMessageMakerWithDefaults()

// StartEchoServer - start serving; this blocks and does not return while the program remains alive
func StartEchoServer() {
	// https://echo.labstack.com/guide/

	const (
		LLOGFMT = "r: ${status}\tt: ${latency_human}\tu: ${uri}\n"
		RLOGFMT = "i: ${remote_ip}\t r: ${status}\tt: ${latency_human}\tu: ${uri}\n"
	)

	//
	// SETUP
	//

	e := echo.New()

	// assume the server can be exposed to scanning attempts that will spam 404s; block IPs that do this
	e.Server.ReadTimeout = vv.TIMEOUTRD
	e.Server.WriteTimeout = vv.TIMEOUTWR
	e.Use(vlt.PoliceRequestAndResponse)

	if lnch.Config.EchoLog == 3 {
		e.Use(middleware.Logger())
	} else if lnch.Config.EchoLog == 2 {
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: RLOGFMT}))
	} else if lnch.Config.EchoLog == 1 {
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: LLOGFMT}))
	}

	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(vv.MAXECHOREQPERSECONDPERIP)))

	e.Use(middleware.Recover())

	if lnch.Config.Gzip {
		e.Use(middleware.GzipWithConfig(middleware.GzipConfig{Level: 5}))
	}

	//
	// LITMINE ROUTES
	//

	//
	// [a] frontpage ("rt-frontpage.go")
	//

	e.GET("/", RtFrontpage)
	e.GET("/emb/css/lmgsstyles.css", RtEmbCSS)

	//
	// [b] harvesting ("rt-harvest.go")
	//

	e.GET("/harvest/exec/:id", RtHarvest)        // "u: /harvest/exec/1f8f1d22?q=graphene+batteries"
	e.GET("/corpora/list", RtCorporaList)        //
	e.GET("/corpora/delete/:name", RtCorporaDel) //

	//
	// [c] topic modeling ("rt-topics.go")
	//

	e.GET("/model/lda/:id", RtModelLDA)            // "u: /model/lda/1f8f1d22"
	e.GET("/model/selectk/:id", RtModelSelectK)    //
	e.GET("/model/trends/:id", RtModelTrends)      //
	e.GET("/model/correlations/:id", RtModelCorrs) //

	//
	// [d] keyword networks ("rt-network.go")
	//

	e.GET("/network/keywords/:id", RtKeywordNetwork)

	//
	// [e] nearest neighbors ("rt-neighbors.go")
	//

	e.GET("/neighbors/exec/:id", RtNeighbors) // "u: /neighbors/exec/1f8f1d22?term=perovskite"

	//
	// [f] session management ("rt-session.go")
	//

	e.GET("/setoption/:opt", RtSetOption) // "u: /setoption/ldagraph/yes"
	e.GET("/reset/session", RtResetSession)
	e.GET("/get/json/sessionvariables", RtGetJSSession)

	//
	// [g] websocket ("rt-websocket.go")
	//

	e.GET("/ws", RtWebsocket)

	e.HideBanner = true
	e.Logger.Fatal(e.Start(fmt.Sprintf("%s:%d", lnch.Config.HostIP, lnch.Config.HostPort)))
}
