//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"encoding/json"

	"github.com/e-gun/LitMineGoServer/internal/str"
	"github.com/e-gun/LitMineGoServer/internal/vv"
)

// MakeDefaultSession - fill in the blanks when setting up a new session
func MakeDefaultSession(id string) str.ServerSession {
	// note that SessionMap clears every time the server restarts

	var s str.ServerSession
	s.ID = id
	s.ActiveSrc = activesourcemapper()
	s.HarvestCap = Config.HarvestCap
	s.YearFrom = vv.MINYEAR
	s.YearTo = vv.MAXYEAR
	s.LdaTopics = Config.LdaTopics
	s.LdaGraph = Config.LdaGraph
	s.LDA2D = true
	s.KGrid = Config.KGrid
	s.VecModeler = Config.VectorModel
	s.VecNeighbCt = Config.VectorNeighb
	s.VecGraphExt = Config.VectorWebExt
	s.StemLang = Config.StemLang

	// readUUIDCookie() called this function, and it will save the session once we return

	return s
}

// activesourcemapper - unpack the default source selection into a fresh map
func activesourcemapper() map[string]bool {
	const (
		FAIL = "activesourcemapper() could not unmarshal the default source list"
	)

	sm := make(map[string]bool)
	err := json.Unmarshal([]byte(vv.DEFAULTSOURCES), &sm)
	if err != nil {
		Msg.WARN(FAIL)
		for _, s := range []string{vv.ARXIVSRC, vv.OPENALEX, vv.CROSSREF} {
			sm[s] = true
		}
	}

	// the launch configuration can override the shipped defaults
	for k, v := range Config.DefSrc {
		sm[k] = v
	}

	return sm
}
