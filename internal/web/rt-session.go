//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/e-gun/LitMineGoServer/internal/db"
	"github.com/e-gun/LitMineGoServer/internal/gen"
	"github.com/e-gun/LitMineGoServer/internal/tm"
	"github.com/e-gun/LitMineGoServer/internal/vlt"
	"github.com/e-gun/LitMineGoServer/internal/vv"
	"github.com/labstack/echo/v4"
)

// RtSetOption - modify the session in light of the selection made
func RtSetOption(c echo.Context) error {
	const (
		FAIL1 = "RtSetOption() was given bad input: %s"
		FAIL2 = "RtSetOption() hit an impossible case"
	)
	user := vlt.ReadUUIDCookie(c)
	optandval := c.Param("opt")
	parsed := strings.Split(optandval, "/")

	if len(parsed) != 2 {
		Msg.WARN(fmt.Sprintf(FAIL1, optandval))
		return c.String(http.StatusOK, "")
	}

	opt := parsed[0]
	val := parsed[1]

	ynoptionlist := []string{"arxivsource", "openalexsource", "crossrefsource", "pubmedsource",
		"semanticscholarsource", "ldagraph", "ldagraph2dimensions", "extendedgraph"}

	s := vlt.AllSessions.GetSess(user)

	if gen.IsInSlice(opt, ynoptionlist) {
		valid := []string{"yes", "no"}
		if gen.IsInSlice(val, valid) {
			var b bool
			if val == "yes" {
				b = true
			} else {
				b = false
			}
			switch opt {
			case "arxivsource":
				s.ActiveSrc[vv.ARXIVSRC] = b
			case "openalexsource":
				s.ActiveSrc[vv.OPENALEX] = b
			case "crossrefsource":
				s.ActiveSrc[vv.CROSSREF] = b
			case "pubmedsource":
				s.ActiveSrc[vv.PUBMED] = b
			case "semanticscholarsource":
				s.ActiveSrc[vv.SEMSCHOLAR] = b
			case "ldagraph":
				s.LdaGraph = b
			case "ldagraph2dimensions":
				s.LDA2D = b
			case "extendedgraph":
				s.VecGraphExt = b
			default:
				Msg.WARN(FAIL2)
			}
		}
	}

	valoptionlist := []string{"modeler", "stemlang", "kgrid", "corpus"}
	if gen.IsInSlice(opt, valoptionlist) {
		switch opt {
		case "modeler":
			valid := []string{"w2v", "glove", "lexvec"}
			if gen.IsInSlice(val, valid) {
				s.VecModeler = val
			}
		case "stemlang":
			// the languages snowball can actually stem
			valid := []string{"english", "spanish", "french", "russian", "swedish", "norwegian", "hungarian"}
			if gen.IsInSlice(val, valid) {
				s.StemLang = val
			}
		case "kgrid":
			if _, e := tm.ParseKGrid(val); e == nil {
				s.KGrid = val
			}
		case "corpus":
			if _, ok := db.Corpora()[val]; ok {
				s.ActiveCorp = val
			}
		default:
			Msg.WARN(FAIL2)
		}
	}

	spinoptionlist := []string{"harvestcap", "ldatopics", "neighborcount", "yearfrom", "yearto"}
	if gen.IsInSlice(opt, spinoptionlist) {
		intval, e := strconv.Atoi(val)
		if e == nil {
			switch opt {
			case "harvestcap":
				if intval < 1 {
					s.HarvestCap = 1
				} else if intval > vv.MAXHARVESTCAP {
					s.HarvestCap = vv.MAXHARVESTCAP
				} else {
					s.HarvestCap = intval
				}
			case "ldatopics":
				if intval < vv.LDATOPICSMIN {
					s.LdaTopics = vv.LDATOPICSMIN
				} else if intval > vv.LDATOPICSMAX {
					s.LdaTopics = vv.LDATOPICSMAX
				} else {
					s.LdaTopics = intval
				}
			case "neighborcount":
				if intval < vv.VECTORNEIGHBORSMIN {
					s.VecNeighbCt = vv.VECTORNEIGHBORSMIN
				} else if intval > vv.VECTORNEIGHBORSMAX {
					s.VecNeighbCt = vv.VECTORNEIGHBORSMAX
				} else {
					s.VecNeighbCt = intval
				}
			case "yearfrom":
				s.YearFrom = clampyear(intval)
			case "yearto":
				s.YearTo = clampyear(intval)
			default:
				Msg.WARN(FAIL2)
			}
		}

		// an inverted range harvests nothing; snap the ends together
		if s.YearFrom > s.YearTo {
			s.YearFrom = s.YearTo
		}
	}

	vlt.AllSessions.InsertSess(s)
	return c.String(http.StatusOK, "")
}

func clampyear(y int) int {
	if y < vv.MINYEAR {
		return vv.MINYEAR
	}
	if y > vv.MAXYEAR {
		return vv.MAXYEAR
	}
	return y
}

// RtResetSession - delete and then reset the session
func RtResetSession(c echo.Context) error {
	user := vlt.ReadUUIDCookie(c)

	// any running jobs this client owns should die with the session
	vlt.WSInfo.Reset <- user

	vlt.AllSessions.Delete(user)

	// then reset it
	vlt.ReadUUIDCookie(c)
	e := c.Redirect(http.StatusFound, "/")
	Msg.EC(e)
	return nil
}

// RtGetJSSession - return the values the front end js wants to display
func RtGetJSSession(c echo.Context) error {
	// see the interface clicks inside of RtFrontpage()'s js

	user := vlt.ReadUUIDCookie(c)
	s := vlt.AllSessions.GetSess(user)

	type JSO struct {
		ArxivSrc    string `json:"arxivsource"`
		OpenAlexSrc string `json:"openalexsource"`
		CrossrefSrc string `json:"crossrefsource"`
		PubmedSrc   string `json:"pubmedsource"`
		SemSchSrc   string `json:"semanticscholarsource"`
		ActiveCorp  string `json:"activecorpus"`
		HarvestCap  string `json:"harvestcap"`
		YearFrom    string `json:"yearfrom"`
		YearTo      string `json:"yearto"`
		LdaTopicCt  string `json:"ldatopiccount"`
		LdaGraph    string `json:"ldagraph"`
		Lda2D       string `json:"ldagraph2dimensions"`
		KGrid       string `json:"kgrid"`
		VecModeler  string `json:"vecmodeler"`
		VecNeighbCt string `json:"neighborcount"`
		VecGraphExt string `json:"extendedgraph"`
		StemLang    string `json:"stemlang"`
	}

	t2y := func(b bool) string {
		if b {
			return "yes"
		} else {
			return "no"
		}
	}

	i2s := func(i int) string { return fmt.Sprintf("%d", i) }

	var jso JSO
	jso.ArxivSrc = t2y(s.ActiveSrc[vv.ARXIVSRC])
	jso.OpenAlexSrc = t2y(s.ActiveSrc[vv.OPENALEX])
	jso.CrossrefSrc = t2y(s.ActiveSrc[vv.CROSSREF])
	jso.PubmedSrc = t2y(s.ActiveSrc[vv.PUBMED])
	jso.SemSchSrc = t2y(s.ActiveSrc[vv.SEMSCHOLAR])
	jso.ActiveCorp = s.ActiveCorp
	jso.HarvestCap = i2s(s.HarvestCap)
	jso.YearFrom = i2s(s.YearFrom)
	jso.YearTo = i2s(s.YearTo)
	jso.LdaTopicCt = i2s(s.LdaTopics)
	jso.LdaGraph = t2y(s.LdaGraph)
	jso.Lda2D = t2y(s.LDA2D)
	jso.KGrid = s.KGrid
	jso.VecModeler = s.VecModeler
	jso.VecNeighbCt = i2s(s.VecNeighbCt)
	jso.VecGraphExt = t2y(s.VecGraphExt)
	jso.StemLang = s.StemLang

	return c.JSONPretty(http.StatusOK, jso, vv.JSONINDENT)
}
