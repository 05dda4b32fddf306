//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

type CurrentConfiguration struct {
	BadChars        string
	BlackAndWhite   bool
	CrossrefMailto  string
	DbDebug         bool
	DefSrc          map[string]bool
	EchoLog         int // "0: nothing; 1: terse; 2: verbose; 3: very verbose"
	Gzip            bool
	HarvestCap      int
	HostIP          string
	HostPort        int
	KGrid           string
	LdaGraph        bool
	LdaTopics       int
	LogLevel        int
	ManualGC        bool
	MaxJobIP        int
	MaxJobTot       int
	PGLogin         PostgresLogin
	ProfileCPU      bool
	ProfileMEM      bool
	QuietStart      bool
	ResetModels     bool
	SQLite          bool
	StemLang        string
	TickerActive    bool
	VectorChtHt     string
	VectorChtWd     string
	VectorModel     string
	VectorNeighb    int
	VectorWebExt    bool
	WorkerCount     int
}

type PostgresLogin struct {
	Host   string
	Port   int
	User   string
	Pass   string
	DBName string
}
