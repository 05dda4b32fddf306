//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

import "time"

//
// THE BIBLIOGRAPHIC APIS
//

// each service publishes a politeness policy; the pauses below stay on the right side of every one of them

const (
	ARXIVAPIURL    = "http://export.arxiv.org/api/query"
	OPENALEXAPIURL = "https://api.openalex.org/works"
	CROSSREFAPIURL = "https://api.crossref.org/works"
	PUBMEDESEARCH  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	PUBMEDESUMMARY = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esummary.fcgi"
	SEMSCHOLARURL  = "https://api.semanticscholar.org/graph/v1/paper/search"

	ARXIVPAUSE      = 3 * time.Second // arxiv asks for one request every three seconds
	OPENALEXPAUSE   = 150 * time.Millisecond
	CROSSREFPAUSE   = 1 * time.Second
	PUBMEDPAUSE     = 350 * time.Millisecond // 3/s without an api key
	SEMSCHOLARPAUSE = 1100 * time.Millisecond

	APITIMEOUT    = 30 * time.Second
	APIRETRIES    = 4
	APIBACKOFFMIN = 2 * time.Second

	SEMSCHOLARFIELDS = "title,abstract,year,authors,citationCount,externalIds,url,venue"
)
