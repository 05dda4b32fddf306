//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tm

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/e-gun/LitMineGoServer/internal/vv"
)

//
// TOPIC COUNT SELECTION: fit the grid; score each K; the best harmonic mean of coherence and exclusivity wins
//

// KScore - one grid point and how it fared
type KScore struct {
	K           int
	Coherence   float64
	Exclusivity float64
	Score       float64
}

// ParseKGrid - "4,6,8" -> []int{4, 6, 8}; validated, deduplicated, sorted
func ParseKGrid(grid string) ([]int, error) {
	const (
		FAIL1 = "the topic grid is empty"
		FAIL2 = "'%s' is not a number"
		FAIL3 = "%d topics is out of range; the grid accepts %d-%d"
		FAIL4 = "the grid has %d points; the cap is %d"
	)

	if strings.TrimSpace(grid) == "" {
		grid = vv.KGRIDDEFAULT
	}

	var kk []int
	seen := make(map[int]bool)

	for _, p := range strings.Split(grid, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		k, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf(FAIL2, p)
		}
		if k < vv.LDATOPICSMIN || k > vv.LDATOPICSMAX {
			return nil, fmt.Errorf(FAIL3, k, vv.LDATOPICSMIN, vv.LDATOPICSMAX)
		}
		if !seen[k] {
			seen[k] = true
			kk = append(kk, k)
		}
	}

	if len(kk) == 0 {
		return nil, fmt.Errorf(FAIL1)
	}
	if len(kk) > vv.KGRIDMAXPOINTS {
		return nil, fmt.Errorf(FAIL4, len(kk), vv.KGRIDMAXPOINTS)
	}

	sort.Ints(kk)
	return kk, nil
}

// SelectTopicCount - fit a sampler at every K in the grid and rank the results; report() is per-iteration across the whole grid
func SelectTopicCount(grid []int, corpus []string, report func(int)) ([]KScore, int) {
	const (
		MSG1 = "SelectTopicCount() fitting K=%d"
	)

	scores := make([]KScore, len(grid))

	done := 0
	for i, k := range grid {
		Msg.FYI(fmt.Sprintf(MSG1, k))

		g := NewGibbsLDA(k, vv.GIBBSALPHA, vv.GIBBSBETA, corpus)
		g.Train(vv.GIBBSITER, func(it int) {
			report(done + it)
		})
		done += vv.GIBBSITER

		tw := g.TopWords(vv.COHERENCETOPN)
		coh := MeanScore(UMassCoherence(tw, corpus))
		exc := MeanScore(Exclusivity(g.Phi(), g.Vocab(), g.TopWords(vv.EXCLUSIVITYTOPN), vv.FREXWEIGHT))

		scores[i] = KScore{K: k, Coherence: coh, Exclusivity: exc}
	}

	// rescale both metrics onto [0, 1] and combine; the harmonic mean punishes a model that is
	// good on one axis and terrible on the other
	cc := make([]float64, len(scores))
	ee := make([]float64, len(scores))
	for i := range scores {
		cc[i] = scores[i].Coherence
		ee[i] = scores[i].Exclusivity
	}
	cc = MinMaxScale(cc)
	ee = MinMaxScale(ee)

	for i := range scores {
		if cc[i]+ee[i] > 0 {
			scores[i].Score = 2 * cc[i] * ee[i] / (cc[i] + ee[i])
		}
	}

	// the winner; ties go to the smaller K: fewer topics are easier to read
	best := scores[0].K
	bestscore := scores[0].Score
	for _, s := range scores[1:] {
		if s.Score > bestscore {
			best = s.K
			bestscore = s.Score
		}
	}

	return scores, best
}
