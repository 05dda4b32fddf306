//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package prep

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/e-gun/LitMineGoServer/internal/gen"
	"github.com/e-gun/LitMineGoServer/internal/vv"
)

//
// STOPWORDS
//

// readstopconfig - read the vv.CONFIGSTOPWORDS file and return []stopwords; if it does not exist, generate it
func readstopconfig() []string {
	const (
		ERR1 = "readstopconfig() cannot find UserHomeDir"
		ERR2 = "readstopconfig() failed to parse "
		MSG1 = "readstopconfig() wrote stopword configuration file: "
	)

	stops := gen.StringMapKeysIntoSlice(getenglishstops())

	h, e := os.UserHomeDir()
	if e != nil {
		Msg.MAND(ERR1)
		return stops
	}

	_, yes := os.Stat(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGSTOPWORDS)

	if yes != nil {
		sort.Strings(stops)
		content, err := json.MarshalIndent(stops, vv.JSONINDENT, vv.JSONINDENT)
		Msg.EC(err)

		err = os.WriteFile(fmt.Sprintf(vv.CONFIGALTAPTH, h)+vv.CONFIGSTOPWORDS, content, vv.WRITEPERMS)
		Msg.EC(err)
		Msg.PEEK(MSG1 + vv.CONFIGSTOPWORDS)
	} else {
		loadedcfg, _ := os.Open(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGSTOPWORDS)
		decoderc := json.NewDecoder(loadedcfg)
		var stp []string
		errc := decoderc.Decode(&stp)
		_ = loadedcfg.Close()
		if errc != nil {
			Msg.CRIT(ERR2 + vv.CONFIGSTOPWORDS)
		} else {
			stops = stp
		}
	}
	return stops
}

var (
	// English100 - the most common english words; a topic that is all "the" and "of" is not a topic
	English100 = []string{"the", "of", "and", "a", "to", "in", "is", "that", "it", "was", "for", "on", "are", "as",
		"with", "his", "they", "at", "be", "this", "have", "from", "or", "one", "had", "by", "but", "not",
		"what", "all", "were", "we", "when", "your", "can", "said", "there", "an", "each", "which", "she",
		"do", "how", "their", "if", "will", "other", "about", "out", "many", "then", "them", "these", "so",
		"some", "her", "would", "make", "him", "into", "has", "two", "more", "no", "way", "could", "my",
		"than", "been", "who", "its", "did", "may", "such", "also", "between", "both", "during", "each",
		"i", "our", "us", "any", "only", "over", "under", "after", "before", "while", "where", "because",
		"through", "most", "same", "very", "been", "being", "those", "however", "although", "thus"}
	// AcademicExtra - boilerplate that infests every abstract regardless of field
	AcademicExtra = []string{"paper", "study", "results", "result", "show", "shows", "shown", "propose", "proposed",
		"present", "presents", "presented", "based", "using", "used", "use", "approach", "method", "methods",
		"novel", "new", "analysis", "data", "model", "models", "demonstrate", "demonstrates", "provide",
		"provides", "consider", "considered", "obtain", "obtained", "found", "find", "known", "well",
		"first", "second", "three", "different", "several", "respectively", "moreover", "furthermore",
		"therefore", "finally", "recent", "recently", "et", "al", "ie", "eg", "via"}
	EnglishStop = append(English100, AcademicExtra...)
	// EnglishKeep - members of EnglishStop we will not toss
	EnglishKeep = []string{"model", "models", "data"}
)

func getenglishstops() map[string]struct{} {
	es := gen.SetSubtraction(EnglishStop, EnglishKeep)
	return gen.ToSet(es)
}

// GetStopSet - the stopwords the baggers and vectorisers will drop
func GetStopSet() map[string]struct{} {
	return gen.ToSet(readstopconfig())
}
