//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/e-gun/LitMineGoServer/internal/str"
	"github.com/e-gun/LitMineGoServer/internal/vv"
)

//
// PUBMED: two-step e-utilities dance: esearch returns PMIDs; esummary turns PMIDs into records
// esummary has no abstracts; pubmed ships disabled in DEFAULTSOURCES for exactly that reason
//

var pubmedclient = newpoliteclient(vv.PUBMEDPAUSE)

type pubmedesearch struct {
	Result struct {
		Count  string   `json:"count"`
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

type pubmedsummary struct {
	UID     string `json:"uid"`
	Title   string `json:"title"`
	Source  string `json:"source"`
	PubDate string `json:"pubdate"`
	ELocID  string `json:"elocationid"`
	Authors []struct {
		Name string `json:"name"`
	} `json:"authors"`
	ArticleIDs []struct {
		IDType string `json:"idtype"`
		Value  string `json:"value"`
	} `json:"articleids"`
}

// FetchPubmed - esearch for the ids; then esummary in HARVESTPAGESIZE batches
func FetchPubmed(ctx context.Context, q HarvestQuery, report func(int)) ([]str.DbDocument, error) {
	const (
		MSG1 = "FetchPubmed() esearch matched %s; requesting %d"
	)

	sv := url.Values{}
	sv.Set("db", "pubmed")
	sv.Set("term", q.Query)
	sv.Set("retmode", "json")
	sv.Set("retmax", strconv.Itoa(q.Cap))
	sv.Set("datetype", "pdat")
	sv.Set("mindate", strconv.Itoa(q.YearFrom))
	sv.Set("maxdate", strconv.Itoa(q.YearTo))

	var es pubmedesearch
	err := getjson(ctx, pubmedclient, vv.PUBMEDESEARCH+"?"+sv.Encode(), &es)
	if err != nil {
		return nil, err
	}

	ids := es.Result.IDList
	Msg.PEEK(fmt.Sprintf(MSG1, es.Result.Count, len(ids)))

	var docs []str.DbDocument

	for start := 0; start < len(ids); start += vv.HARVESTPAGESIZE {
		end := start + vv.HARVESTPAGESIZE
		if end > len(ids) {
			end = len(ids)
		}

		batch, err := pubmedsummaries(ctx, ids[start:end])
		if err != nil {
			return docs, err
		}
		docs = append(docs, batch...)
		report(len(docs))
	}

	return docs, nil
}

func pubmedsummaries(ctx context.Context, ids []string) ([]str.DbDocument, error) {
	const (
		FAIL = "pubmedsummaries() could not unwrap the esummary result set"
	)

	v := url.Values{}
	v.Set("db", "pubmed")
	v.Set("retmode", "json")
	v.Set("id", strings.Join(ids, ","))

	body, err := pubmedclient.getbody(ctx, vv.PUBMEDESUMMARY+"?"+v.Encode())
	if err != nil {
		return nil, err
	}

	// the result object maps each pmid to its summary; plus a "uids" list that is not a summary
	var outer struct {
		Result map[string]json.RawMessage `json:"result"`
	}
	if err = json.Unmarshal(body, &outer); err != nil {
		return nil, fmt.Errorf(FAIL)
	}

	var docs []str.DbDocument
	for _, id := range ids {
		raw, ok := outer.Result[id]
		if !ok {
			continue
		}
		var sum pubmedsummary
		if err = json.Unmarshal(raw, &sum); err != nil {
			continue
		}
		docs = append(docs, pubmedtodoc(sum))
	}

	return docs, nil
}

func pubmedtodoc(s pubmedsummary) str.DbDocument {
	yr := 0
	if len(s.PubDate) >= 4 {
		if y, err := strconv.Atoi(s.PubDate[:4]); err == nil {
			yr = y
		}
	}

	doi := ""
	for _, aid := range s.ArticleIDs {
		if aid.IDType == "doi" {
			doi = NormalizeDOI(aid.Value)
		}
	}

	var au []string
	for _, a := range s.Authors {
		au = append(au, a.Name)
	}

	return str.DbDocument{
		UID:     vv.PUBMED + "/" + s.UID,
		Source:  vv.PUBMED,
		ExtID:   s.UID,
		DOI:     doi,
		Title:   whitespacecollapse(s.Title),
		Authors: au,
		Venue:   s.Source,
		Year:    yr,
		URL:     "https://pubmed.ncbi.nlm.nih.gov/" + s.UID + "/",
		Fetched: time.Now(),
	}
}
