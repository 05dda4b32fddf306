//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/e-gun/LitMineGoServer/internal/vv"
	"github.com/labstack/echo/v4"
)

// JobOutputJSON - the JSON payload every modeling/harvesting route hands back to the JS
type JobOutputJSON struct {
	Title      string `json:"title"`
	Jobsummary string `json:"jobsummary"`
	Found      string `json:"found"`
	Image      string `json:"image"`
	JS         string `json:"js"`
}

// jobresult - wrap up a finished job and ship it
func jobresult(c echo.Context, title string, summary string, htm string, img string) error {
	joj := JobOutputJSON{
		Title:      title,
		Jobsummary: summary,
		Found:      htm,
		Image:      img,
		JS:         "",
	}
	return c.JSONPretty(http.StatusOK, joj, vv.JSONINDENT)
}

// joberror - the route failed; tell the JS about it politely
func joberror(c echo.Context, m string) error {
	const (
		EHTM = `<p class="jobfailure">%s</p>`
	)
	joj := JobOutputJSON{
		Title:      "error",
		Jobsummary: "",
		Found:      fmt.Sprintf(EHTM, m),
		Image:      "",
		JS:         "",
	}
	return c.JSONPretty(http.StatusOK, joj, vv.JSONINDENT)
}

// zebrarows - wrap table columns in alternating vectorrow/nthrow rows
func zebrarows(tablecolumn []string) string {
	const (
		NTH      = 2
		TABLEROW = `
	<tr class="%s">%s
	</tr>`
	)

	var tablerows []string
	for i := range tablecolumn {
		rn := "vectorrow"
		if i%NTH == 0 {
			rn = "nthrow"
		}
		tablerows = append(tablerows, fmt.Sprintf(TABLEROW, rn, tablecolumn[i]))
	}
	return strings.Join(tablerows, "\n")
}
