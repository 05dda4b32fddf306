//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/e-gun/LitMineGoServer/internal/lnch"
	"github.com/e-gun/LitMineGoServer/internal/vv"
	"github.com/gorilla/websocket"
)

var Msg = lnch.NewMessageMakerWithDefaults()

//
// WEBSOCKET INFRASTRUCTURE: see https://tutorialedge.net/projects/chat-system-in-go-and-react/part-4-handling-multiple-clients/
//

type PollData struct {
	TotalWrk  int    `json:"Poolofwork"`
	Remain    int    `json:"Remaining"`
	Docs      int    `json:"Doccount"`
	Msg       string `json:"Statusmessage"`
	Elapsed   string `json:"Elapsed"`
	Extra     string `json:"Notes"`
	ID        string `json:"ID"`
	Iteration int
	JType     string
}

type WSClient struct {
	ID   string
	Conn *websocket.Conn
	Pool *WSPool
}

type WSPool struct {
	Add       chan *WSClient
	Remove    chan *WSClient
	ClientMap map[*WSClient]bool
	JSO       chan *WSJSOut
	ReadID    chan string
}

type WSJSOut struct {
	V     string `json:"value"`
	ID    string `json:"ID"`
	Close string `json:"close"`
}

// ReceiveID - get the jobID from the client; record it; then exit
func (c *WSClient) ReceiveID() {
	const (
		FAIL1 = `WSClient.ReceiveID() failed`
		FAIL2 = `WSClient.ReceiveID() never received the job id`
	)

	quit := time.Now().Add(time.Second * 1)

	for {
		_, m, err := c.Conn.ReadMessage()
		if err != nil {
			Msg.FYI(FAIL1)
			return
		}

		if len(m) != 0 {
			id := string(m)
			id = strings.Replace(id, `"`, "", -1)
			c.ID = id
			c.Pool.ReadID <- id
			break
		}

		if time.Now().After(quit) {
			Msg.FYI(FAIL2)
			break
		}
	}
}

// WSMessageLoop - output the constantly updated job progress to the websocket; then exit
func (c *WSClient) WSMessageLoop() {
	const (
		FAIL      = `WSClient.WSMessageLoop() never found '%s' in the JobMap`
		SUCCESS   = `WSClient.WSMessageLoop() found '%s' in the JobMap`
		VECAPPEND = `<br><span class="smallerthannormal">%s</span>`
	)

	// wait for the job to exist
	quit := time.Now().Add(time.Second * 1)

	for {
		jobinfo := WSFetchJobInfo(c.ID)
		if jobinfo.JobCount != 0 && jobinfo.Exists {
			Msg.FYI(fmt.Sprintf(SUCCESS, c.ID))
			break
		}

		if time.Now().After(quit) {
			Msg.FYI(fmt.Sprintf(FAIL, c.ID))
			break
		}
	}

	ji := WSFetchJobInfo(c.ID)

	var pd PollData
	pd.JType = ji.JType

	// loop until the job finishes
	for {
		jobinfo := WSFetchJobInfo(c.ID)
		if jobinfo.Exists {
			pd.Remain = jobinfo.Remain
			pd.Docs = jobinfo.Docs
			pd.TotalWrk = jobinfo.TotalWrk
			pd.Msg = strings.Replace(jobinfo.Summary, "Sought", "Seeking", -1)
		} else {
			break
		}

		pd.Elapsed = fmt.Sprintf("%.1fs", time.Now().Sub(jobinfo.Launched).Seconds())

		pd.Iteration = jobinfo.Iteration

		if jobinfo.VProgStrg != "" {
			pd.Extra = fmt.Sprintf(VECAPPEND, jobinfo.VProgStrg)
		}

		jso := &WSJSOut{
			V:     formatpoll(pd),
			ID:    c.ID,
			Close: "open",
		}

		c.Pool.JSO <- jso
		time.Sleep(vv.WSPOLLINGPAUSE)
	}
	WebsocketPool.Remove <- c
}

// WSPoolStartListening - the WSPool will listen for activity on its various channels (only called once at app startup)
func (pool *WSPool) WSPoolStartListening() {
	const (
		MSG1 = "Starting polling loop for %s"
		MSG2 = "WSPool client failed on WriteMessage()"
	)

	writemsg := func(jso *WSJSOut) {
		for cl := range pool.ClientMap {
			if cl.ID == jso.ID {
				js, y := json.Marshal(jso)
				Msg.EC(y)
				e := cl.Conn.WriteMessage(websocket.TextMessage, js)
				if e != nil {
					Msg.WARN(MSG2)
					delete(pool.ClientMap, cl)
				}
			}
		}
	}

	for {
		select {
		case id := <-pool.Add:
			pool.ClientMap[id] = true
		case id := <-pool.Remove:
			delete(pool.ClientMap, id)
		case id := <-pool.ReadID:
			Msg.PEEK(fmt.Sprintf(MSG1, id))
		case wrt := <-pool.JSO:
			writemsg(wrt)
		}
	}
}

// WSFillNewPool - build a new WSPool (one and only one built at app startup)
func WSFillNewPool() *WSPool {
	return &WSPool{
		Add:       make(chan *WSClient),
		Remove:    make(chan *WSClient),
		ClientMap: make(map[*WSClient]bool),
		JSO:       make(chan *WSJSOut),
		ReadID:    make(chan string),
	}
}

// formatpoll - build HTML to send to the JS on the other side
func formatpoll(pd PollData) string {
	// example:
	// Harvesting <span class="sought">»graphene batteries«</span>: <span class="progress">31%</span> completed&nbsp;(0.3s)<br>
	// (<span class="progress">199</span> documents)<br>

	const (
		FU  = `Finishing up...&nbsp;`
		DD  = `Deduplicating and storing the finds...&nbsp;`
		GF  = `Formatting the results...&nbsp;`
		PCT = `: <span class="progress">%s</span> completed&nbsp;(%s)<br>`
		EL1 = `&nbsp;(%s)<br>%s`
		EL2 = `&nbsp;(%s)`
		HIT = `(<span class="progress">%d</span> documents)<br>`
	)

	pctd := ((float32(pd.TotalWrk) - float32(pd.Remain)) / float32(pd.TotalWrk)) * 100
	pcts := fmt.Sprintf("%.0f", pctd) + "%"

	htm := pd.Msg // e.g.: Harvesting <span class="sought">»graphene batteries«</span>

	// conditionally add "finishing" message
	tp := func() string {
		// harvests get one; model builds do not
		m := ""

		if pd.JType == "" {
			m = FU
		}

		return fmt.Sprintf(EL1, pd.Elapsed, m)
	}()

	// conditionally add message based on iteration #
	it := func() string {
		var m string
		switch pd.Iteration {
		case 2:
			m = DD
		case 3:
			m = GF
		default:
			// no change
		}
		return m
	}()

	if pctd != 0 && pd.Remain != 0 && pd.TotalWrk != 0 {
		// normal in progress
		htm += fmt.Sprintf(PCT, pcts, pd.Elapsed)
		htm += it
	} else if pd.Remain == 0 && pd.TotalWrk != 0 {
		// finished, mostly
		htm += tp
	} else if pd.TotalWrk == 0 {
		// model builds have no "total work"
		htm += fmt.Sprintf(EL2, pd.Elapsed)
	} else {
		// fallback
		htm += fmt.Sprintf(EL2, pd.Elapsed)
	}

	if pd.Docs > 0 && pd.JType == "" {
		htm += fmt.Sprintf(HIT, pd.Docs)
	}

	if len(pd.Extra) != 0 {
		htm += pd.Extra
	}

	return htm
}
