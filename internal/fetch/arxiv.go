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
	"strings"
	"time"

	"github.com/e-gun/LitMineGoServer/internal/str"
	"github.com/e-gun/LitMineGoServer/internal/vv"
)

//
// ARXIV: Atom XML over GET; pagination via "start"
//

var arxivclient = newpoliteclient(vv.ARXIVPAUSE)

type arxivfeed struct {
	Total   int          `xml:"totalResults"`
	Entries []arxiventry `xml:"entry"`
}

type arxiventry struct {
	ID        string `xml:"id"`
	Title     string `xml:"title"`
	Summary   string `xml:"summary"`
	Published string `xml:"published"`
	DOI       string `xml:"doi"`
	Authors   []struct {
		Name string `xml:"name"`
	} `xml:"author"`
	Categories []struct {
		Term string `xml:"term,attr"`
	} `xml:"category"`
	Links []struct {
		Href string `xml:"href,attr"`
		Rel  string `xml:"rel,attr"`
	} `xml:"link"`
}

// FetchArxiv - page through the arxiv Atom feed until the cap or the feed runs out
func FetchArxiv(ctx context.Context, q HarvestQuery, report func(int)) ([]str.DbDocument, error) {
	const (
		MSG1 = "FetchArxiv() pulled %d of %d (feed total: %d)"
	)

	var docs []str.DbDocument

	for start := 0; start < q.Cap; start += vv.HARVESTPAGESIZE {
		want := vv.HARVESTPAGESIZE
		if q.Cap-start < want {
			want = q.Cap - start
		}

		var feed arxivfeed
		err := getxml(ctx, arxivclient, arxivqueryurl(q, start, want), &feed)
		if err != nil {
			return docs, err
		}

		for i := range feed.Entries {
			docs = append(docs, arxivtodoc(feed.Entries[i]))
		}

		report(len(docs))
		Msg.PEEK(fmt.Sprintf(MSG1, len(docs), q.Cap, feed.Total))

		if len(feed.Entries) < want || len(docs) >= feed.Total {
			break
		}
	}

	return docs, nil
}

// arxivqueryurl - search_query with an optional submittedDate range; sorted newest first
func arxivqueryurl(q HarvestQuery, start int, count int) string {
	sq := fmt.Sprintf(`all:%s`, q.Query)
	if q.YearFrom > vv.MINYEAR || q.YearTo < vv.MAXYEAR {
		dr := fmt.Sprintf("submittedDate:[%d01010000 TO %d12312359]", q.YearFrom, q.YearTo)
		sq = fmt.Sprintf("(%s) AND %s", sq, dr)
	}

	v := url.Values{}
	v.Set("search_query", sq)
	v.Set("start", strconv.Itoa(start))
	v.Set("max_results", strconv.Itoa(count))
	v.Set("sortBy", "submittedDate")
	v.Set("sortOrder", "descending")

	return vv.ARXIVAPIURL + "?" + v.Encode()
}

func arxivtodoc(e arxiventry) str.DbDocument {
	// the Atom id looks like "http://arxiv.org/abs/2301.00001v2"
	extid := e.ID
	if i := strings.LastIndex(extid, "/abs/"); i != -1 {
		extid = extid[i+len("/abs/"):]
	}
	// strip the version suffix so v1 and v2 of a paper share a UID
	if i := strings.LastIndex(extid, "v"); i > 0 {
		if _, err := strconv.Atoi(extid[i+1:]); err == nil {
			extid = extid[:i]
		}
	}

	yr := 0
	if t, err := time.Parse(time.RFC3339, e.Published); err == nil {
		yr = t.Year()
	}

	var au []string
	for _, a := range e.Authors {
		au = append(au, whitespacecollapse(a.Name))
	}

	venue := ""
	if len(e.Categories) != 0 {
		venue = "arXiv [" + e.Categories[0].Term + "]"
	}

	link := e.ID
	for _, l := range e.Links {
		if l.Rel == "alternate" {
			link = l.Href
		}
	}

	return str.DbDocument{
		UID:      vv.ARXIVSRC + "/" + extid,
		Source:   vv.ARXIVSRC,
		ExtID:    extid,
		DOI:      NormalizeDOI(e.DOI),
		Title:    whitespacecollapse(e.Title),
		Abstract: whitespacecollapse(e.Summary),
		Authors:  au,
		Venue:    venue,
		Year:     yr,
		URL:      link,
		Fetched:  time.Now(),
	}
}

// whitespacecollapse - the Atom feed hard-wraps titles and abstracts
func whitespacecollapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
