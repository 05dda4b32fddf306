//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"fmt"
	"strings"
	"time"
)

// DbDocument - one bibliographic record as stored in the corpus tables
type DbDocument struct {
	UID       string   // "<source>/<externalid>"
	Source    string   // "arxiv", "openalex", ...
	ExtID     string   // the id the source itself uses
	DOI       string   // normalized: lowercase, no resolver prefix
	Title     string
	Abstract  string
	Authors   []string
	Venue     string
	Year      int
	CiteCount int
	URL       string
	Fetched   time.Time
}

// Citation - "Smith et al. (2019), Journal of Things" style one-liner for the tables
func (d *DbDocument) Citation() string {
	au := "anon."
	if len(d.Authors) == 1 {
		au = d.Authors[0]
	} else if len(d.Authors) > 1 {
		au = d.Authors[0] + " et al."
	}

	y := ""
	if d.Year != 0 {
		y = fmt.Sprintf(" (%d)", d.Year)
	}

	v := ""
	if d.Venue != "" {
		v = ", " + d.Venue
	}

	return au + y + v
}

// HasAbstract - title-only records make poor topic model fodder
func (d *DbDocument) HasAbstract() bool {
	return len(strings.TrimSpace(d.Abstract)) > 0
}

// ModelText - the text unit that prep and the modelers consume
func (d *DbDocument) ModelText() string {
	if d.HasAbstract() {
		return d.Title + ". " + d.Abstract
	}
	return d.Title
}

// BagWithLocus - one bag of words plus the document it came from; the modelers score it, the tables cite it
type BagWithLocus struct {
	Loc         string // "doc/<uid>"
	Bag         string
	ModifiedBag string
	Score       float64
}

// DocUID - "doc/arxiv/2301.00001" -> "arxiv/2301.00001"
func (b *BagWithLocus) DocUID() string {
	tb := strings.SplitN(b.Loc, "/", 2)
	if len(tb) != 2 {
		return b.Loc
	}
	return tb[1]
}
