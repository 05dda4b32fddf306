//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package fetch

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/e-gun/LitMineGoServer/internal/gen"
	"github.com/e-gun/LitMineGoServer/internal/str"
	"github.com/e-gun/LitMineGoServer/internal/vlt"
	"github.com/e-gun/LitMineGoServer/internal/vv"
)

//
// THE HARVESTER: fan a query out to every active source; merge; deduplicate
//

type fetcher func(context.Context, HarvestQuery, func(int)) ([]str.DbDocument, error)

var fetchers = map[string]fetcher{
	vv.ARXIVSRC:   FetchArxiv,
	vv.OPENALEX:   FetchOpenAlex,
	vv.CROSSREF:   FetchCrossref,
	vv.PUBMED:     FetchPubmed,
	vv.SEMSCHOLAR: FetchSemScholar,
}

// HarvestQuery - everything a harvest run needs to know
type HarvestQuery struct {
	ID       string // the job id; the websocket polls on this
	User     string // the session that launched the job
	Query    string
	Cap      int // per-source document cap
	YearFrom int
	YearTo   int
	Sources  map[string]bool
}

// Validate - reject garbage before it reaches the wire; the returned error is shown to the user
func (q *HarvestQuery) Validate() error {
	const (
		FAIL1 = "harvest query is empty"
		FAIL2 = "harvest query contains unacceptable character(s): %s"
		FAIL3 = "no sources are active; enable at least one"
		FAIL4 = "year range %d-%d is invalid"
		FAIL5 = "unknown source: %s"
	)

	q.Query = strings.TrimSpace(q.Query)
	if q.Query == "" {
		return fmt.Errorf(FAIL1)
	}

	if bad := strings.IndexAny(q.Query, vv.UNACCEPTABLEINPUT); bad != -1 {
		return fmt.Errorf(FAIL2, string(q.Query[bad]))
	}

	active := 0
	for s, on := range q.Sources {
		if _, ok := fetchers[s]; !ok {
			return fmt.Errorf(FAIL5, s)
		}
		if on {
			active++
		}
	}
	if active == 0 {
		return fmt.Errorf(FAIL3)
	}

	if q.YearFrom < vv.MINYEAR {
		q.YearFrom = vv.MINYEAR
	}
	if q.YearTo > vv.MAXYEAR || q.YearTo == 0 {
		q.YearTo = vv.MAXYEAR
	}
	if q.YearFrom > q.YearTo {
		return fmt.Errorf(FAIL4, q.YearFrom, q.YearTo)
	}

	if q.Cap <= 0 {
		q.Cap = vv.DEFAULTHARVESTCAP
	}
	if q.Cap > vv.MAXHARVESTCAP {
		q.Cap = vv.MAXHARVESTCAP
	}

	return nil
}

// Harvest - run the fan-out; block until every source reports; return the merged, deduplicated corpus
func Harvest(ctx context.Context, q HarvestQuery) ([]str.DbDocument, error) {
	const (
		FAIL = "Harvest() got nothing back from any source"
		MSG1 = "Harvest() launching %d source(s) for »%s«"
		MSG2 = "%s returned an error: %v"
		MSG3 = "Harvest() finished: %d document(s) after deduplication"
		SUMM = `Harvesting <span class="sought">»%s«</span>`
	)

	var srcs []string
	for s, on := range q.Sources {
		if on {
			srcs = append(srcs, s)
		}
	}
	sort.Strings(srcs)

	Msg.FYI(fmt.Sprintf(MSG1, len(srcs), q.Query))

	vlt.WSInfo.UpdateSummMsg <- vlt.WSJIKVs{Key: q.ID, Val: fmt.Sprintf(SUMM, gen.AvoidLongLines(q.Query, 40))}
	vlt.WSInfo.UpdateTW <- vlt.WSJIKVi{Key: q.ID, Val: len(srcs) * q.Cap}
	vlt.WSInfo.UpdateIteration <- vlt.WSJIKVi{Key: q.ID, Val: 1}

	var (
		mtx     sync.Mutex
		wg      sync.WaitGroup
		alldocs []str.DbDocument
		perdone = make(map[string]int)
		lasterr error
	)

	// every source reports its own running count; the poll shows the sum
	progress := func(src string) func(int) {
		return func(n int) {
			mtx.Lock()
			perdone[src] = n
			total := 0
			for _, v := range perdone {
				total += v
			}
			mtx.Unlock()
			vlt.WSInfo.UpdateDocs <- vlt.WSJIKVi{Key: q.ID, Val: total}
			vlt.WSInfo.UpdateRemain <- vlt.WSJIKVi{Key: q.ID, Val: len(srcs)*q.Cap - total}
		}
	}

	for _, s := range srcs {
		wg.Add(1)
		go func(src string) {
			defer wg.Done()
			docs, err := fetchers[src](ctx, q, progress(src))
			mtx.Lock()
			defer mtx.Unlock()
			if err != nil {
				// a dead source should not sink the whole harvest
				Msg.WARN(fmt.Sprintf(MSG2, src, err))
				lasterr = err
			}
			alldocs = append(alldocs, docs...)
		}(s)
	}

	wg.Wait()

	vlt.WSInfo.UpdateIteration <- vlt.WSJIKVi{Key: q.ID, Val: 2}

	if len(alldocs) == 0 {
		if lasterr != nil {
			return nil, lasterr
		}
		return nil, fmt.Errorf(FAIL)
	}

	merged := Deduplicate(alldocs)
	vlt.WSInfo.UpdateDocs <- vlt.WSJIKVi{Key: q.ID, Val: len(merged)}
	vlt.WSInfo.UpdateRemain <- vlt.WSJIKVi{Key: q.ID, Val: 0}

	Msg.FYI(fmt.Sprintf(MSG3, len(merged)))

	return merged, nil
}
