//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/e-gun/LitMineGoServer/internal/lnch"
	"github.com/e-gun/LitMineGoServer/internal/vv"
)

//
// THE MODEL CACHE: topic models and embeddings are expensive; store them gzipped and keyed by fingerprint
//

// ModelCacheInit - initialize vv.DBBLOBTABLE
func ModelCacheInit() {
	const (
		CREATE = `
			CREATE TABLE IF NOT EXISTS %s
			(
			  fingerprint character(32),
			  modeltype   text,
			  blobsize    int,
			  blobdata    bytea
			)`
		CREATELT = `
			CREATE TABLE IF NOT EXISTS %s
			(
			  fingerprint text,
			  modeltype   text,
			  blobsize    integer,
			  blobdata    blob
			)`
	)

	var err error
	if lnch.Config.SQLite {
		_, err = LiteDB.Exec(fmt.Sprintf(CREATELT, vv.DBBLOBTABLE))
	} else {
		_, err = SQLPool.Exec(context.Background(), fmt.Sprintf(CREATE, vv.DBBLOBTABLE))
	}
	Msg.EC(err)
}

// ModelCacheCheck - has a model with this fingerprint already been stored?
func ModelCacheCheck(fp string) bool {
	const (
		QP  = `SELECT fingerprint FROM %s WHERE fingerprint = $1 LIMIT 1`
		QL  = `SELECT fingerprint FROM %s WHERE fingerprint = ? LIMIT 1`
		F   = `ModelCacheCheck() found %s`
		DNE = "does not exist"
	)

	var found string
	var err error

	if lnch.Config.SQLite {
		err = LiteDB.QueryRow(fmt.Sprintf(QL, vv.DBBLOBTABLE), fp).Scan(&found)
	} else {
		err = SQLPool.QueryRow(context.Background(), fmt.Sprintf(QP, vv.DBBLOBTABLE), fp).Scan(&found)
	}

	if err != nil {
		// "no rows in result set" if you did not find the fingerprint
		if strings.Contains(err.Error(), DNE) {
			ModelCacheInit()
		}
		return false
	}

	Msg.TMI(fmt.Sprintf(F, found))
	return true
}

// ModelCacheAdd - marshal, compress, and store any model under its fingerprint
func ModelCacheAdd(fp string, mtype string, model any) {
	const (
		MSG1 = "ModelCacheAdd(): "
		FAIL = "ModelCacheAdd() failed when calling json.Marshal(model): nothing stored"
		INSP = `
			INSERT INTO %s
				(fingerprint, modeltype, blobsize, blobdata)
			VALUES ($1, $2, $3, $4)`
		INSL = `
			INSERT INTO %s
				(fingerprint, modeltype, blobsize, blobdata)
			VALUES (?, ?, ?, ?)`
		GZ = gzip.BestSpeed
	)

	eb, err := json.Marshal(model)
	if err != nil {
		Msg.NOTE(FAIL)
		return
	}

	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, GZ)
	Msg.EC(err)
	_, err = zw.Write(eb)
	Msg.EC(err)
	err = zw.Close()
	Msg.EC(err)

	b := buf.Bytes()

	if lnch.Config.SQLite {
		_, err = LiteDB.Exec(fmt.Sprintf(INSL, vv.DBBLOBTABLE), fp, mtype, len(b), b)
	} else {
		_, err = SQLPool.Exec(context.Background(), fmt.Sprintf(INSP, vv.DBBLOBTABLE), fp, mtype, len(b), b)
	}
	Msg.EC(err)
	Msg.TMI(MSG1 + fp)

	// compressed is c. 33% of original
	buf.Reset()
}

// ModelCacheFetch - pull a stored model back out; false if the unmarshal found nothing usable
func ModelCacheFetch(fp string, into any) bool {
	const (
		MSG2 = "ModelCacheFetch() pulled an empty blob for %s"
		QP   = `SELECT blobdata FROM %s WHERE fingerprint = $1 LIMIT 1`
		QL   = `SELECT blobdata FROM %s WHERE fingerprint = ? LIMIT 1`
	)

	var blob []byte
	var err error

	if lnch.Config.SQLite {
		err = LiteDB.QueryRow(fmt.Sprintf(QL, vv.DBBLOBTABLE), fp).Scan(&blob)
	} else {
		err = SQLPool.QueryRow(context.Background(), fmt.Sprintf(QP, vv.DBBLOBTABLE), fp).Scan(&blob)
	}

	if err != nil || len(blob) == 0 {
		Msg.PEEK(fmt.Sprintf(MSG2, fp))
		return false
	}

	// the data in the table is zipped and needs unzipping
	zr, err := gzip.NewReader(bytes.NewReader(blob))
	Msg.EC(err)
	decompr, err := io.ReadAll(zr)
	Msg.EC(err)
	Msg.EC(zr.Close())

	err = json.Unmarshal(decompr, into)
	if err != nil {
		Msg.NOTE(fmt.Sprintf(MSG2, fp))
		return false
	}

	return true
}

// ModelCacheReset - drop vv.DBBLOBTABLE
func ModelCacheReset() {
	const (
		MSG1 = "ModelCacheReset() dropped "
		MSG2 = "ModelCacheReset(): 'DROP TABLE %s' returned an (ignored) error: \n\t%s"
		E    = `DROP TABLE %s`
	)

	ex := fmt.Sprintf(E, vv.DBBLOBTABLE)

	var err error
	if lnch.Config.SQLite {
		_, err = LiteDB.Exec(ex)
	} else {
		_, err = SQLPool.Exec(context.Background(), ex)
	}

	if err != nil {
		Msg.TMI(fmt.Sprintf(MSG2, vv.DBBLOBTABLE, err.Error()))
	} else {
		Msg.NOTE(MSG1 + vv.DBBLOBTABLE)
	}
}

// ModelCacheSize - how much space is the model cache using?
func ModelCacheSize(priority int) {
	const (
		SZQ  = "SELECT COALESCE(SUM(blobsize), 0) AS total FROM " + vv.DBBLOBTABLE
		MSG4 = "Disk space used by stored models is currently %dMB"
	)

	var size int64
	var err error

	if lnch.Config.SQLite {
		err = LiteDB.QueryRow(SZQ).Scan(&size)
	} else {
		err = SQLPool.QueryRow(context.Background(), SZQ).Scan(&size)
	}
	Msg.EC(err)
	Msg.Emit(fmt.Sprintf(MSG4, size/1024/1024), priority)
}
