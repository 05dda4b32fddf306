//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package fetch

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/e-gun/LitMineGoServer/internal/lnch"
	"github.com/e-gun/LitMineGoServer/internal/str"
	"github.com/e-gun/LitMineGoServer/internal/vv"
)

//
// OPENALEX: JSON over GET; pagination via "page"; abstracts arrive as an inverted index
//

var openalexclient = newpoliteclient(vv.OPENALEXPAUSE)

type openalexresults struct {
	Meta struct {
		Count int `json:"count"`
	} `json:"meta"`
	Results []openalexwork `json:"results"`
}

type openalexwork struct {
	ID          string           `json:"id"`
	DOI         string           `json:"doi"`
	Title       string           `json:"title"`
	PubYear     int              `json:"publication_year"`
	CitedBy     int              `json:"cited_by_count"`
	AbstractInv map[string][]int `json:"abstract_inverted_index"`
	Authorships []struct {
		Author struct {
			DisplayName string `json:"display_name"`
		} `json:"author"`
	} `json:"authorships"`
	PrimaryLocation struct {
		Source struct {
			DisplayName string `json:"display_name"`
		} `json:"source"`
		LandingPage string `json:"landing_page_url"`
	} `json:"primary_location"`
}

// FetchOpenAlex - page through the works endpoint until the cap or the result set runs out
func FetchOpenAlex(ctx context.Context, q HarvestQuery, report func(int)) ([]str.DbDocument, error) {
	const (
		MSG1 = "FetchOpenAlex() pulled %d of %d (meta count: %d)"
	)

	var docs []str.DbDocument

	for page := 1; len(docs) < q.Cap; page++ {
		var res openalexresults
		err := getjson(ctx, openalexclient, openalexqueryurl(q, page), &res)
		if err != nil {
			return docs, err
		}

		for i := range res.Results {
			docs = append(docs, openalextodoc(res.Results[i]))
			if len(docs) >= q.Cap {
				break
			}
		}

		report(len(docs))
		Msg.PEEK(fmt.Sprintf(MSG1, len(docs), q.Cap, res.Meta.Count))

		if len(res.Results) < vv.HARVESTPAGESIZE || len(docs) >= res.Meta.Count {
			break
		}
	}

	return docs, nil
}

func openalexqueryurl(q HarvestQuery, page int) string {
	v := url.Values{}
	v.Set("search", q.Query)
	v.Set("filter", fmt.Sprintf("from_publication_date:%d-01-01,to_publication_date:%d-12-31", q.YearFrom, q.YearTo))
	v.Set("per-page", strconv.Itoa(vv.HARVESTPAGESIZE))
	v.Set("page", strconv.Itoa(page))
	if lnch.Config.CrossrefMailto != "" {
		// openalex's polite pool works the same way as crossref's
		v.Set("mailto", lnch.Config.CrossrefMailto)
	}
	return vv.OPENALEXAPIURL + "?" + v.Encode()
}

func openalextodoc(w openalexwork) str.DbDocument {
	// "https://openalex.org/W2741809807" -> "W2741809807"
	extid := w.ID
	if i := strings.LastIndex(extid, "/"); i != -1 {
		extid = extid[i+1:]
	}

	var au []string
	for _, a := range w.Authorships {
		if a.Author.DisplayName != "" {
			au = append(au, a.Author.DisplayName)
		}
	}

	return str.DbDocument{
		UID:       vv.OPENALEX + "/" + extid,
		Source:    vv.OPENALEX,
		ExtID:     extid,
		DOI:       NormalizeDOI(w.DOI),
		Title:     w.Title,
		Abstract:  uninvert(w.AbstractInv),
		Authors:   au,
		Venue:     w.PrimaryLocation.Source.DisplayName,
		Year:      w.PubYear,
		CiteCount: w.CitedBy,
		URL:       w.PrimaryLocation.LandingPage,
		Fetched:   time.Now(),
	}
}

// uninvert - rebuild an abstract from openalex's inverted index: word -> [positions]
func uninvert(inv map[string][]int) string {
	if len(inv) == 0 {
		return ""
	}

	type wp struct {
		w string
		p int
	}

	var wps []wp
	for w, pp := range inv {
		for _, p := range pp {
			wps = append(wps, wp{w, p})
		}
	}

	sort.Slice(wps, func(i, j int) bool { return wps[i].p < wps[j].p })

	words := make([]string, len(wps))
	for i, x := range wps {
		words[i] = x.w
	}

	return strings.Join(words, " ")
}
