//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tm

import (
	"fmt"
	"sort"

	"github.com/e-gun/LitMineGoServer/internal/lnch"
	"github.com/e-gun/LitMineGoServer/internal/prep"
	"github.com/e-gun/LitMineGoServer/internal/str"
	"github.com/e-gun/LitMineGoServer/internal/vv"
	"github.com/james-bowman/nlp"
	"gonum.org/v1/gonum/mat"
)

var Msg = lnch.NewMessageMakerWithDefaults()

//
// LDA VIA THE VARIATIONAL MODELER
//

// LDAResult - everything the routes and graphers want to know about a fitted model
type LDAResult struct {
	K               int
	DocsOverTopics  mat.Matrix // rows = topics; columns = documents
	TopicsOverWords mat.Matrix // rows = topics; columns = words
	Vectoriser      *nlp.CountVectoriser
	Corpus          []string
	Bags            []str.BagWithLocus
}

// LDAModel - build the lda model for the corpus
func LDAModel(ntopics int, corpus []string, bags []str.BagWithLocus) (*LDAResult, error) {
	const (
		FAIL = "LDAModel() failed to model topics for the documents: %w"
	)

	vectoriser := prep.NewVectoriser()

	lda := nlp.NewLatentDirichletAllocation(ntopics)
	lda.Processes = lnch.Config.WorkerCount
	lda.Iterations = vv.LDAITER
	lda.TransformationPasses = vv.LDAXFORMPASSES

	pipeline := nlp.NewPipeline(vectoriser, lda)

	docsOverTopics, err := pipeline.FitTransform(corpus...)
	if err != nil {
		return nil, fmt.Errorf(FAIL, err)
	}

	topicsOverWords := lda.Components()

	res := &LDAResult{
		K:               ntopics,
		DocsOverTopics:  docsOverTopics,
		TopicsOverWords: topicsOverWords,
		Vectoriser:      vectoriser,
		Corpus:          corpus,
		Bags:            bags,
	}

	return res, nil
}

type topicsorter struct {
	W string
	V float64
}

// SortedTopics - sorted most significant words for each topic
func (r *LDAResult) SortedTopics(topn int) map[int][]topicsorter {
	tr, tc := r.TopicsOverWords.Dims()

	if topn > tc {
		topn = tc
	}

	vocab := prep.VocabByIndex(r.Vectoriser)

	tops := make(map[int][]topicsorter)
	for topic := 0; topic < tr; topic++ {
		tss := make([]topicsorter, tc)
		for word := 0; word < tc; word++ {
			tss[word] = topicsorter{
				W: vocab[word],
				V: r.TopicsOverWords.At(topic, word),
			}
		}
		sort.Slice(tss, func(i, j int) bool {
			return tss[i].V > tss[j].V
		})
		tops[topic] = tss[0:topn]
	}
	return tops
}

// TopWords - just the words, no weights; the coherence and exclusivity scorers want these
func (r *LDAResult) TopWords(topn int) [][]string {
	tops := r.SortedTopics(topn)
	out := make([][]string, r.K)
	for t := 0; t < r.K; t++ {
		ww := make([]string, len(tops[t]))
		for i := range tops[t] {
			ww[i] = tops[t][i].W
		}
		out[t] = ww
	}
	return out
}

// DocsPerTopic - N documents have topic X as their dominant topic
func (r *LDAResult) DocsPerTopic() []int {
	counter := make([]int, r.K)
	dr, dc := r.DocsOverTopics.Dims()
	for doc := 0; doc < dc; doc++ {
		max := float64(0)
		winner := 0
		for topic := 0; topic < dr; topic++ {
			// any given corpus[doc] will look like
			// Topic #0=0.006009, Topic #1=0.006915, Topic #2=0.000688, Topic #3=0.449514, Topic #4=0.536875
			if r.DocsOverTopics.At(topic, doc) > max {
				winner = topic
				max = r.DocsOverTopics.At(topic, doc)
			}
		}
		counter[winner] += 1
	}
	return counter
}

// DocsByWeight - scaled total accumulated weight of each topic
func (r *LDAResult) DocsByWeight() []float64 {
	counter := make([]float64, r.K)
	dr, dc := r.DocsOverTopics.Dims()
	for doc := 0; doc < dc; doc++ {
		for topic := 0; topic < dr; topic++ {
			counter[topic] += r.DocsOverTopics.At(topic, doc)
		}
	}

	mx := make([]float64, len(counter))
	copy(mx, counter)
	sort.Float64s(mx)
	high := mx[len(mx)-1]

	scaled := make([]float64, r.K)
	for i := 0; i < r.K; i++ {
		scaled[i] = counter[i] / high
	}
	return scaled
}

// DominantTopics - the winning topic for every document
func (r *LDAResult) DominantTopics() []int {
	dr, dc := r.DocsOverTopics.Dims()
	winners := make([]int, dc)
	for doc := 0; doc < dc; doc++ {
		max := float64(0)
		for topic := 0; topic < dr; topic++ {
			if r.DocsOverTopics.At(topic, doc) > max {
				winners[doc] = topic
				max = r.DocsOverTopics.At(topic, doc)
			}
		}
	}
	return winners
}

// TopDocPerTopic - the document most associated with each topic
func (r *LDAResult) TopDocPerTopic() []str.BagWithLocus {
	dr, dc := r.DocsOverTopics.Dims()

	winners := make([]str.BagWithLocus, r.K)
	for topic := 0; topic < dr; topic++ {
		max := float64(0)
		winner := 0
		for doc := 0; doc < dc; doc++ {
			if r.DocsOverTopics.At(topic, doc) > max {
				winner = doc
				max = r.DocsOverTopics.At(topic, doc)
			}
		}
		winners[topic] = r.Bags[winner]
		winners[topic].Score = max
	}
	return winners
}
