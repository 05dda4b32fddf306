//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

import "time"

const (
	MYNAME    = "LitMineGoServer"
	SHORTNAME = "LMGS"
	VERSION   = "0.4.2"
	PROJURL   = "https://github.com/e-gun/LitMineGoServer"

	ARXIVSRC   = "arxiv"
	OPENALEX   = "openalex"
	CROSSREF   = "crossref"
	PUBMED     = "pubmed"
	SEMSCHOLAR = "semanticscholar"

	// DEFAULTSOURCES - pubmed ships disabled: esummary yields no abstracts, so it pads the corpus with title-only docs
	DEFAULTSOURCES = "{\"arxiv\": true, \"openalex\": true, \"crossref\": true, \"pubmed\": false, \"semanticscholar\": true}"

	BLACKANDWHITE            = false
	CONFIGLOCATION           = "."
	CONFIGALTAPTH            = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGBASIC              = "lmgs-conf.json"
	CONFIGPROLIX             = "lmgs-prolix-conf.json"
	CONFIGSTOPWORDS          = "lmgs-stopwords.json"
	CONFIGVECTORW2V          = "lmgs-vector-conf-w2v.json"
	CONFIGVECTORGLOVE        = "lmgs-vector-conf-glove.json"
	CONFIGVECTORLEXVEC       = "lmgs-vector-conf-lexvec.json"
	DBBLOBTABLE              = "stored_models"
	DBDOCTABLE               = "harvested_documents"
	DEFAULTECHOLOGLEVEL      = 0
	DEFAULTGOLOGLEVEL        = 0
	DEFAULTHARVESTCAP        = 400
	DEFAULTPSQLHOST          = "127.0.0.1"
	DEFAULTPSQLUSER          = "litmine_wr"
	DEFAULTPSQLPORT          = 5432
	DEFAULTPSQLDB            = "litmineDB"
	DEFAULTSTEMLANG          = "english"
	HARVESTPAGESIZE          = 100
	JSONINDENT               = "  "
	MAXECHOREQPERSECONDPERIP = 60
	MAXHARVESTCAP            = 2000 // the polite tiers of the APIs get unhappy well before you can fetch a "real" corpus
	MAXHARVESTINFOLISTLEN    = 100
	MAXHARVESTPERIPADDR      = 2
	MAXHARVESTTOTAL          = 4
	MAXINPUTLEN              = 256
	MAXTITLELENGTH           = 110
	MAXYEAR                  = 2100
	MINYEAR                  = 1800
	SERVEDFROMHOST           = "127.0.0.1"
	SERVEDFROMPORT           = 8200
	SIMULTANEOUSJOBS         = 3 // cap on the number of db connections at (S * Config.WorkerCount)
	TICKERISACTIVE           = false
	TICKERDELAY              = 30 * time.Second
	TIMEOUTRD                = 15 * time.Second
	TIMEOUTWR                = 300 * time.Second // topic model grids are slow; do not hang up on them
	USEGZIP                  = false
	WRITEPERMS               = 0644
	WSPOLLINGPAUSE           = 10000000 * 10 // 10000000 * 10 = every .1s

	UNACCEPTABLEINPUT = `"'!@:,=_/` // echo+net/url will not even deliver some of these: #%&;
)
