//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

//
// TOPIC MODELS, NETWORKS, AND EMBEDDINGS
//

const (
	LDATOPICS       = 7
	LDATOPICSMIN    = 2
	LDATOPICSMAX    = 40
	LDAITER         = 50
	LDAXFORMPASSES  = 25
	LDASENTPERBAG   = 1
	GIBBSITER       = 250
	GIBBSALPHA      = 0.1
	GIBBSBETA       = 0.01
	KGRIDDEFAULT    = "4,6,8,10,12"
	KGRIDMAXPOINTS  = 8
	COHERENCETOPN   = 10
	EXCLUSIVITYTOPN = 10
	FREXWEIGHT      = 0.7
	TOPICTOPWORDS   = 8
	CTMCORRMIN      = 0.25

	TFIDFKEYWORDS    = 6
	COOCCURMINWEIGHT = 2
	PAGERANKDAMP     = 0.85
	PAGERANKTOL      = 1e-6

	VECTORNEIGHBORS    = 16
	VECTORNEIGHBORSMIN = 1
	VECTORNEIGHBORSMAX = 40
	VECTORMODELDEFAULT = "w2v"

	TSNEPERPLEXITY = 150
	TSNELEARNRATE  = 100
	TSNEMAXITER    = 150

	DEFAULTCHRTWIDTH  = "1500px"
	DEFAULTCHRTHEIGHT = "1200px"

	CHARSPERABSTRACT = 1200 // preallocation hint; a typical abstract is shorter
)
