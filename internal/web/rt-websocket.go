//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"net/http"

	"github.com/e-gun/LitMineGoServer/internal/vlt"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the server and the js are same-origin; everyone else gets refused at PoliceRequestAndResponse anyway
	CheckOrigin: func(r *http.Request) bool { return true },
}

// RtWebsocket - progress info for a job
func RtWebsocket(c echo.Context) error {
	// the client sends the job id; the WSPool will forward polling data to it until the job is deleted

	const (
		FAIL = "RtWebsocket() could not upgrade the connection"
	)

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		Msg.WARN(FAIL)
		return nil
	}

	client := &vlt.WSClient{
		Conn: ws,
		Pool: vlt.WebsocketPool,
	}

	vlt.WebsocketPool.Add <- client
	client.ReceiveID()
	client.WSMessageLoop()

	return nil
}
