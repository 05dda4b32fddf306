//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"bytes"
	"embed"
	"fmt"
	"net/http"
	"runtime"
	"text/template"

	"github.com/e-gun/LitMineGoServer/internal/lnch"
	"github.com/e-gun/LitMineGoServer/internal/vlt"
	"github.com/e-gun/LitMineGoServer/internal/vv"
	"github.com/labstack/echo/v4"
)

//go:embed emb
var efs embed.FS

// RtFrontpage - send the html for "/"
func RtFrontpage(c echo.Context) error {
	const (
		FPAGE = "emb/frontpage.html"
	)

	// will set the cookie if it is missing
	vlt.ReadUUIDCookie(c)

	env := fmt.Sprintf("%s: %s - %s (%d workers)", runtime.Version(), runtime.GOOS, runtime.GOARCH, lnch.Config.WorkerCount)

	subs := map[string]interface{}{
		"version": vv.VERSION,
		"env":     env,
	}

	f, e := efs.ReadFile(FPAGE)
	Msg.EC(e)

	tmpl, e := template.New("fp").Parse(string(f))
	Msg.EC(e)

	var b bytes.Buffer
	err := tmpl.Execute(&b, subs)
	Msg.EC(err)

	return c.HTML(http.StatusOK, b.String())
}

// RtEmbCSS - send "lmgsstyles.css" after building it from the embedded template
func RtEmbCSS(c echo.Context) error {
	const (
		ECSS = "emb/css/lmgs.css"
		FONT = "system-ui"
	)

	j, e := efs.ReadFile(ECSS)
	if e != nil {
		Msg.WARN(fmt.Sprintf("RtEmbCSS() can't find %s", ECSS))
		return c.String(http.StatusNotFound, "")
	}

	subs := map[string]interface{}{
		"fontname": FONT,
	}

	tmpl, e := template.New("css").Parse(string(j))
	Msg.EC(e)

	var b bytes.Buffer
	err := tmpl.Execute(&b, subs)
	Msg.EC(err)

	c.Response().Header().Add("Content-Type", "text/css")
	return c.String(http.StatusOK, b.String())
}
