//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package prep

import (
	"fmt"
	"sort"

	"github.com/e-gun/LitMineGoServer/internal/gen"
	"github.com/e-gun/LitMineGoServer/internal/str"
	"github.com/james-bowman/nlp"
)

//
// THE DOCUMENT-TERM MATRIX: nlp.CountVectoriser output has terms as rows and documents as columns
//

// NewVectoriser - a CountVectoriser primed with the current stopword configuration
func NewVectoriser() *nlp.CountVectoriser {
	stops := gen.StringMapKeysIntoSlice(GetStopSet())
	return nlp.NewCountVectoriser(stops...)
}

// BagsAsCorpus - the strings the vectoriser will consume; the stemmed bags unless they turned out empty
func BagsAsCorpus(bags []str.BagWithLocus) []string {
	corpus := make([]string, len(bags))
	for i := 0; i < len(bags); i++ {
		if len(bags[i].ModifiedBag) > 0 {
			corpus[i] = bags[i].ModifiedBag
		} else {
			corpus[i] = bags[i].Bag
		}
	}
	return corpus
}

// VocabByIndex - invert vectoriser.Vocabulary: row index -> term
func VocabByIndex(vectoriser *nlp.CountVectoriser) []string {
	vocab := make([]string, len(vectoriser.Vocabulary))
	for w, i := range vectoriser.Vocabulary {
		vocab[i] = w
	}
	return vocab
}

// TopTfidfTerms - the n highest-scoring terms per document; one []string per input text
func TopTfidfTerms(corpus []string, n int) ([][]string, error) {
	const (
		FAIL = "TopTfidfTerms() could not FitTransform() the corpus: %w"
	)

	vectoriser := NewVectoriser()
	tfidf := nlp.NewTfidfTransformer()
	pipeline := nlp.NewPipeline(vectoriser, tfidf)

	weighted, err := pipeline.FitTransform(corpus...)
	if err != nil {
		return nil, fmt.Errorf(FAIL, err)
	}

	vocab := VocabByIndex(vectoriser)
	rows, cols := weighted.Dims()

	type ts struct {
		term  string
		score float64
	}

	out := make([][]string, cols)
	for c := 0; c < cols; c++ {
		var scored []ts
		for r := 0; r < rows; r++ {
			v := weighted.At(r, c)
			if v > 0 {
				scored = append(scored, ts{vocab[r], v})
			}
		}
		sort.Slice(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

		top := n
		if top > len(scored) {
			top = len(scored)
		}
		for i := 0; i < top; i++ {
			out[c] = append(out[c], scored[i].term)
		}
	}

	return out, nil
}
