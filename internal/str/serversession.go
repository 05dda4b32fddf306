//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

// ServerSession - all the per-client state; lives in the SessionVault
type ServerSession struct {
	ID          string
	LoginName   string
	ActiveSrc   map[string]bool // which bibliographic sources to harvest
	ActiveCorp  string          // name of the corpus the modeling routes will load
	HarvestCap  int
	YearFrom    int
	YearTo      int
	LdaTopics   int
	LdaGraph    bool
	LDA2D       bool
	KGrid       string
	VecModeler  string // "w2v", "glove", "lexvec"
	VecNeighbCt int
	VecGraphExt bool
	StemLang    string
}
