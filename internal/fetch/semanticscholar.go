//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package fetch

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/e-gun/LitMineGoServer/internal/str"
	"github.com/e-gun/LitMineGoServer/internal/vv"
)

//
// SEMANTIC SCHOLAR: JSON over GET; you must name the fields you want or you get almost nothing back
//

var semscholarclient = newpoliteclient(vv.SEMSCHOLARPAUSE)

type semscholarresponse struct {
	Total  int              `json:"total"`
	Offset int              `json:"offset"`
	Next   int              `json:"next"`
	Data   []semscholarwork `json:"data"`
}

type semscholarwork struct {
	PaperID     string `json:"paperId"`
	Title       string `json:"title"`
	Abstract    string `json:"abstract"`
	Year        int    `json:"year"`
	Venue       string `json:"venue"`
	URL         string `json:"url"`
	CiteCount   int    `json:"citationCount"`
	ExternalIDs struct {
		DOI string `json:"DOI"`
	} `json:"externalIds"`
	Authors []struct {
		Name string `json:"name"`
	} `json:"authors"`
}

// FetchSemScholar - page through the graph api until the cap or "next" stops advancing
func FetchSemScholar(ctx context.Context, q HarvestQuery, report func(int)) ([]str.DbDocument, error) {
	const (
		MSG1 = "FetchSemScholar() pulled %d of %d (total: %d)"
	)

	var docs []str.DbDocument

	offset := 0
	for len(docs) < q.Cap {
		var res semscholarresponse
		err := getjson(ctx, semscholarclient, semscholarqueryurl(q, offset), &res)
		if err != nil {
			return docs, err
		}

		for i := range res.Data {
			d := semscholartodoc(res.Data[i])
			if d.Year != 0 && (d.Year < q.YearFrom || d.Year > q.YearTo) {
				continue
			}
			docs = append(docs, d)
			if len(docs) >= q.Cap {
				break
			}
		}

		report(len(docs))
		Msg.PEEK(fmt.Sprintf(MSG1, len(docs), q.Cap, res.Total))

		if res.Next == 0 || res.Next <= offset || len(res.Data) == 0 {
			break
		}
		offset = res.Next
	}

	return docs, nil
}

func semscholarqueryurl(q HarvestQuery, offset int) string {
	v := url.Values{}
	v.Set("query", q.Query)
	v.Set("fields", vv.SEMSCHOLARFIELDS)
	v.Set("year", fmt.Sprintf("%d-%d", q.YearFrom, q.YearTo))
	v.Set("limit", strconv.Itoa(vv.HARVESTPAGESIZE))
	v.Set("offset", strconv.Itoa(offset))
	return vv.SEMSCHOLARURL + "?" + v.Encode()
}

func semscholartodoc(w semscholarwork) str.DbDocument {
	var au []string
	for _, a := range w.Authors {
		au = append(au, a.Name)
	}

	return str.DbDocument{
		UID:       vv.SEMSCHOLAR + "/" + w.PaperID,
		Source:    vv.SEMSCHOLAR,
		ExtID:     w.PaperID,
		DOI:       NormalizeDOI(w.ExternalIDs.DOI),
		Title:     w.Title,
		Abstract:  w.Abstract,
		Authors:   au,
		Venue:     w.Venue,
		Year:      w.Year,
		CiteCount: w.CiteCount,
		URL:       w.URL,
		Fetched:   time.Now(),
	}
}
