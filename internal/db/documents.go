//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/e-gun/LitMineGoServer/internal/lnch"
	"github.com/e-gun/LitMineGoServer/internal/str"
	"github.com/e-gun/LitMineGoServer/internal/vv"
)

//
// THE CORPUS TABLES: every harvest lands in vv.DBDOCTABLE under a corpus name; the modelers load it back out
//

// DocTableInit - create vv.DBDOCTABLE if it is not already there
func DocTableInit() {
	const (
		CREATE = `
			CREATE TABLE IF NOT EXISTS %s
			(
			  corpus    text,
			  uid       text,
			  source    text,
			  extid     text,
			  doi       text,
			  title     text,
			  abstract  text,
			  authors   text,
			  venue     text,
			  year      integer,
			  citecount integer,
			  url       text,
			  fetched   text
			)`
	)

	ex := fmt.Sprintf(CREATE, vv.DBDOCTABLE)

	var err error
	if lnch.Config.SQLite {
		_, err = LiteDB.Exec(ex)
	} else {
		_, err = SQLPool.Exec(context.Background(), ex)
	}
	Msg.EC(err)
}

// StoreCorpus - save a harvest under a corpus name; replaces any corpus already saved under that name
func StoreCorpus(corpus string, docs []str.DbDocument) {
	const (
		MSG1 = "StoreCorpus() saved %d document(s) as '%s'"
		INSP = `
			INSERT INTO %s (corpus, uid, source, extid, doi, title, abstract, authors, venue, year, citecount, url, fetched)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
		INSL = `
			INSERT INTO %s (corpus, uid, source, extid, doi, title, abstract, authors, venue, year, citecount, url, fetched)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	)

	DeleteCorpus(corpus)

	for i := range docs {
		d := docs[i]
		au, err := json.Marshal(d.Authors)
		Msg.EC(err)

		args := []any{corpus, d.UID, d.Source, d.ExtID, d.DOI, d.Title, d.Abstract, string(au),
			d.Venue, d.Year, d.CiteCount, d.URL, d.Fetched.Format(time.RFC3339)}

		if lnch.Config.SQLite {
			_, err = LiteDB.Exec(fmt.Sprintf(INSL, vv.DBDOCTABLE), args...)
		} else {
			_, err = SQLPool.Exec(context.Background(), fmt.Sprintf(INSP, vv.DBDOCTABLE), args...)
		}
		Msg.EC(err)
	}

	Msg.FYI(fmt.Sprintf(MSG1, len(docs), corpus))
}

// LoadCorpus - pull a saved corpus back out of vv.DBDOCTABLE
func LoadCorpus(corpus string) []str.DbDocument {
	const (
		QP = `SELECT uid, source, extid, doi, title, abstract, authors, venue, year, citecount, url, fetched FROM %s WHERE corpus = $1 ORDER BY year DESC, uid`
		QL = `SELECT uid, source, extid, doi, title, abstract, authors, venue, year, citecount, url, fetched FROM %s WHERE corpus = ? ORDER BY year DESC, uid`
	)

	var docs []str.DbDocument

	scanone := func(scan func(...any) error) {
		var d str.DbDocument
		var au string
		var fe string
		err := scan(&d.UID, &d.Source, &d.ExtID, &d.DOI, &d.Title, &d.Abstract, &au, &d.Venue, &d.Year, &d.CiteCount, &d.URL, &fe)
		Msg.EC(err)
		Msg.EC(json.Unmarshal([]byte(au), &d.Authors))
		if t, e := time.Parse(time.RFC3339, fe); e == nil {
			d.Fetched = t
		}
		docs = append(docs, d)
	}

	if lnch.Config.SQLite {
		rows, err := LiteDB.Query(fmt.Sprintf(QL, vv.DBDOCTABLE), corpus)
		Msg.EC(err)
		defer rows.Close()
		for rows.Next() {
			scanone(rows.Scan)
		}
	} else {
		rows, err := SQLPool.Query(context.Background(), fmt.Sprintf(QP, vv.DBDOCTABLE), corpus)
		Msg.EC(err)
		defer rows.Close()
		for rows.Next() {
			scanone(rows.Scan)
		}
	}

	return docs
}

// Corpora - the names of every saved corpus, plus its size
func Corpora() map[string]int {
	const (
		Q = `SELECT corpus, COUNT(*) FROM %s GROUP BY corpus`
	)

	found := make(map[string]int)
	q := fmt.Sprintf(Q, vv.DBDOCTABLE)

	if lnch.Config.SQLite {
		rows, err := LiteDB.Query(q)
		Msg.EC(err)
		defer rows.Close()
		for rows.Next() {
			var n string
			var c int
			Msg.EC(rows.Scan(&n, &c))
			found[n] = c
		}
	} else {
		rows, err := SQLPool.Query(context.Background(), q)
		Msg.EC(err)
		defer rows.Close()
		for rows.Next() {
			var n string
			var c int
			Msg.EC(rows.Scan(&n, &c))
			found[n] = c
		}
	}

	return found
}

// DeleteCorpus - drop every row saved under this corpus name
func DeleteCorpus(corpus string) {
	const (
		DP = `DELETE FROM %s WHERE corpus = $1`
		DL = `DELETE FROM %s WHERE corpus = ?`
	)

	var err error
	if lnch.Config.SQLite {
		_, err = LiteDB.Exec(fmt.Sprintf(DL, vv.DBDOCTABLE), corpus)
	} else {
		_, err = SQLPool.Exec(context.Background(), fmt.Sprintf(DP, vv.DBDOCTABLE), corpus)
	}

	if err != nil && !strings.Contains(err.Error(), "does not exist") {
		Msg.EC(err)
	}
}
