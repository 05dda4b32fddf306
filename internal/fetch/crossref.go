//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package fetch

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/e-gun/LitMineGoServer/internal/lnch"
	"github.com/e-gun/LitMineGoServer/internal/str"
	"github.com/e-gun/LitMineGoServer/internal/vv"
)

//
// CROSSREF: JSON over GET; pagination via "offset"; abstracts (when present) arrive as JATS XML
//

var crossrefclient = newpoliteclient(vv.CROSSREFPAUSE)

type crossrefresponse struct {
	Message struct {
		Total int            `json:"total-results"`
		Items []crossrefwork `json:"items"`
	} `json:"message"`
}

type crossrefwork struct {
	DOI      string   `json:"DOI"`
	Title    []string `json:"title"`
	Abstract string   `json:"abstract"`
	URL      string   `json:"URL"`
	CitedBy  int      `json:"is-referenced-by-count"`
	Venue    []string `json:"container-title"`
	Author   []struct {
		Given  string `json:"given"`
		Family string `json:"family"`
	} `json:"author"`
	Published struct {
		DateParts [][]int `json:"date-parts"`
	} `json:"published"`
}

// FetchCrossref - page through the works endpoint until the cap or the result set runs out
func FetchCrossref(ctx context.Context, q HarvestQuery, report func(int)) ([]str.DbDocument, error) {
	const (
		MSG1 = "FetchCrossref() pulled %d of %d (total-results: %d)"
	)

	var docs []str.DbDocument

	for offset := 0; len(docs) < q.Cap; offset += vv.HARVESTPAGESIZE {
		var res crossrefresponse
		err := getjson(ctx, crossrefclient, crossrefqueryurl(q, offset), &res)
		if err != nil {
			return docs, err
		}

		for i := range res.Message.Items {
			d := crossreftodoc(res.Message.Items[i])
			if d.Year != 0 && (d.Year < q.YearFrom || d.Year > q.YearTo) {
				continue
			}
			docs = append(docs, d)
			if len(docs) >= q.Cap {
				break
			}
		}

		report(len(docs))
		Msg.PEEK(fmt.Sprintf(MSG1, len(docs), q.Cap, res.Message.Total))

		if len(res.Message.Items) < vv.HARVESTPAGESIZE || offset+vv.HARVESTPAGESIZE >= res.Message.Total {
			break
		}
	}

	return docs, nil
}

func crossrefqueryurl(q HarvestQuery, offset int) string {
	v := url.Values{}
	v.Set("query", q.Query)
	v.Set("filter", fmt.Sprintf("from-pub-date:%d-01-01,until-pub-date:%d-12-31", q.YearFrom, q.YearTo))
	v.Set("rows", strconv.Itoa(vv.HARVESTPAGESIZE))
	v.Set("offset", strconv.Itoa(offset))
	if lnch.Config.CrossrefMailto != "" {
		v.Set("mailto", lnch.Config.CrossrefMailto)
	}
	return vv.CROSSREFAPIURL + "?" + v.Encode()
}

func crossreftodoc(w crossrefwork) str.DbDocument {
	ttl := ""
	if len(w.Title) != 0 {
		ttl = whitespacecollapse(w.Title[0])
	}

	venue := ""
	if len(w.Venue) != 0 {
		venue = w.Venue[0]
	}

	yr := 0
	if len(w.Published.DateParts) != 0 && len(w.Published.DateParts[0]) != 0 {
		yr = w.Published.DateParts[0][0]
	}

	var au []string
	for _, a := range w.Author {
		n := strings.TrimSpace(a.Given + " " + a.Family)
		if n != "" {
			au = append(au, n)
		}
	}

	doi := NormalizeDOI(w.DOI)

	return str.DbDocument{
		UID:       vv.CROSSREF + "/" + doi,
		Source:    vv.CROSSREF,
		ExtID:     doi,
		DOI:       doi,
		Title:     ttl,
		Abstract:  StripJATS(w.Abstract),
		Authors:   au,
		Venue:     venue,
		Year:      yr,
		CiteCount: w.CitedBy,
		URL:       w.URL,
		Fetched:   time.Now(),
	}
}

var jatstags = regexp.MustCompile(`</?jats:[^>]*>|</?[a-z]+[^>]*>`)

// StripJATS - crossref abstracts come wrapped in "<jats:p>...</jats:p>" and friends
func StripJATS(a string) string {
	if a == "" {
		return ""
	}
	a = jatstags.ReplaceAllString(a, " ")
	a = strings.TrimPrefix(whitespacecollapse(a), "Abstract ")
	return a
}
