//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package emb

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/e-gun/LitMineGoServer/internal/db"
	"github.com/e-gun/LitMineGoServer/internal/lnch"
	"github.com/e-gun/LitMineGoServer/internal/str"
	"github.com/e-gun/LitMineGoServer/internal/vlt"
	"github.com/e-gun/LitMineGoServer/internal/vv"
	"github.com/e-gun/wego/pkg/embedding"
	"github.com/e-gun/wego/pkg/model"
	"github.com/e-gun/wego/pkg/model/glove"
	"github.com/e-gun/wego/pkg/model/lexvec"
	"github.com/e-gun/wego/pkg/model/modelutil/vector"
	"github.com/e-gun/wego/pkg/model/word2vec"
	"github.com/e-gun/wego/pkg/search"
)

var Msg = lnch.NewMessageMakerWithDefaults()

// Fingerprint - identify a corpus + modeler combination so stored embeddings can be reused
func Fingerprint(corpusname string, modeltype string, stemlang string, bags []str.BagWithLocus) string {
	h := sha256.New()
	io.WriteString(h, corpusname)
	io.WriteString(h, modeltype)
	io.WriteString(h, stemlang)
	for i := range bags {
		io.WriteString(h, bags[i].ModifiedBag)
	}
	return fmt.Sprintf("%x", h.Sum(nil))[0:32]
}

// GenerateNeighborsData - the Neighbors data for a keyword within a corpus: the model is cached; the queries are not
func GenerateNeighborsData(jobid string, se str.ServerSession, keyword string, bags []str.BagWithLocus) map[string]search.Neighbors {
	const (
		FMSG  = `Fetching a stored model`
		GMSG  = `Generating a model`
		FAIL1 = "GenerateNeighborsData() could not find neighbors of a neighbor: '%s' neighbors (via '%s')"
		FAIL2 = "GenerateNeighborsData() failed to produce a Searcher"
		FAIL3 = "GenerateNeighborsData() failed to yield Neighbors"
		MQMSG = `Querying the model`
		MTYPE = "embeddings"
	)

	fp := Fingerprint(se.ActiveCorp, se.VecModeler, se.StemLang, bags)

	var embs embedding.Embeddings
	if db.ModelCacheCheck(fp) && db.ModelCacheFetch(fp, &embs) {
		vlt.WSInfo.UpdateSummMsg <- vlt.WSJIKVs{Key: jobid, Val: FMSG}
	} else {
		vlt.WSInfo.UpdateSummMsg <- vlt.WSJIKVs{Key: jobid, Val: GMSG}
		embs = GenerateEmbeddings(jobid, se.VecModeler, bags)
		db.ModelCacheAdd(fp, MTYPE, embs)
	}

	vlt.WSInfo.UpdateSummMsg <- vlt.WSJIKVs{Key: jobid, Val: MQMSG}

	searcher, err := search.New(embs...)
	if err != nil {
		Msg.FYI(FAIL2)
		searcher = func() *search.Searcher { return &search.Searcher{} }()
	}

	ncount := se.VecNeighbCt // how many neighbors to output; min is 1
	if ncount < vv.VECTORNEIGHBORSMIN || ncount > vv.VECTORNEIGHBORSMAX {
		ncount = vv.VECTORNEIGHBORS
	}

	nn := make(map[string]search.Neighbors)
	neighbors, err := searcher.SearchInternal(keyword, ncount)
	if err != nil {
		Msg.FYI(FAIL3)
		neighbors = search.Neighbors{}
	}

	nn[keyword] = neighbors
	for _, n := range neighbors {
		meta, e := searcher.SearchInternal(n.Word, ncount)
		if e != nil {
			Msg.FYI(fmt.Sprintf(FAIL1, n.Word, keyword))
		} else {
			nn[n.Word] = meta
		}
	}

	return nn
}

// GenerateEmbeddings - turn a bagged corpus into a collection of semantic vector embeddings
func GenerateEmbeddings(jobid string, modeltype string, bags []str.BagWithLocus) embedding.Embeddings {
	const (
		FAIL1 = "model initialization failed"
		FAIL2 = "GenerateEmbeddings() failed to train vector embeddings"
		MSG1  = "GenerateEmbeddings() gathered %d bags"
		MSG2  = "GenerateEmbeddings() successfully trained a %s model"
		TBMSG = `Turning %d bags into a unified text block`
	)

	Msg.PEEK(fmt.Sprintf(MSG1, len(bags)))
	vlt.WSInfo.UpdateSummMsg <- vlt.WSJIKVs{Key: jobid, Val: fmt.Sprintf(TBMSG, len(bags))}

	thetext := buildtextblock(bags)

	// [a] vectorize the text block

	var vmodel model.Model
	var ti int

	switch modeltype {
	case "glove":
		cfg := glovevectorconfig()
		m, err := glove.NewForOptions(cfg)
		if err != nil {
			Msg.MAND(FAIL1)
		}
		vmodel = m
		ti = cfg.Iter
	case "lexvec":
		cfg := lexvecvectorconfig()
		m, err := lexvec.NewForOptions(cfg)
		if err != nil {
			Msg.MAND(FAIL1)
		}
		vmodel = m
		ti = cfg.Iter
	default:
		cfg := w2vvectorconfig()
		m, err := word2vec.NewForOptions(cfg)
		if err != nil {
			Msg.MAND(FAIL1)
		}
		vmodel = m
		ti = cfg.Iter
	}

	// input for word2vec.Train() is 'io.ReadSeeker'
	b := bytes.NewReader([]byte(thetext))

	finished := make(chan bool)

	// .Train() but do not block; so we can also .Reporter()
	go func() {
		if err := vmodel.Train(b); err != nil {
			Msg.MAND(FAIL2)
		} else {
			Msg.TMI(fmt.Sprintf(MSG2, modeltype))
		}
		finished <- true
	}()

	ct := make(chan int)
	rep := make(chan string)
	go vmodel.Reporter(ct, rep)

	done := make(chan struct{})
	go trainingreports(jobid, ti, ct, rep, done)

	<-finished
	close(done)

	// use buffers; skip the disk; the blob cache handles storage
	var buf bytes.Buffer
	w := io.Writer(&buf)
	err := vmodel.Save(w, vector.Agg)
	Msg.EC(err)

	r := io.Reader(&buf)
	embs, err := embedding.Load(r)
	Msg.EC(err)

	return embs
}

// trainingreports - relay wego's training progress to the job hub; returns when done closes so no goroutine outlives its training run
func trainingreports(jobid string, ti int, ct chan int, rep chan string, done chan struct{}) {
	const (
		VMSG = `Training run <code>#%d</code> out of <code>%d</code> total iterations.`
	)

	in := 0
	for {
		select {
		case m := <-ct:
			in = m
		case <-rep:
			// [LMGS] trained 100062 words 529.0315ms
		case <-done:
			return
		}
		vlt.WSInfo.UpdateVProgMsg <- vlt.WSJIKVs{Key: jobid, Val: fmt.Sprintf(VMSG, in, ti)}
		vlt.WSInfo.UpdateIteration <- vlt.WSJIKVi{Key: jobid, Val: in}
		time.Sleep(vv.WSPOLLINGPAUSE)
	}
}

// buildtextblock - turn the bagged corpus into the single long string the trainers eat
func buildtextblock(bags []str.BagWithLocus) string {
	var sb strings.Builder
	sb.Grow(vv.CHARSPERABSTRACT * len(bags))
	for i := range bags {
		t := bags[i].ModifiedBag
		if t == "" {
			t = bags[i].Bag
		}
		sb.WriteString(t + " ")
	}
	return strings.TrimSpace(sb.String())
}
