//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"text/template"

	"github.com/e-gun/LitMineGoServer/internal/str"
	"github.com/e-gun/LitMineGoServer/internal/vv"
)

// ConfigAtLaunch - read the configuration values from JSON and/or command line
func ConfigAtLaunch() {
	const (
		FAIL1 = "Could not parse your information as a valid collection of credentials. Use the following template:"
		FAIL2 = `"{\"Pass\": \"YOURPASSWORDHERE\" ,\"Host\": \"127.0.0.1\", \"Port\": 5432, \"DBName\": \"litmineDB\" ,\"User\": \"litmine_wr\"}"`
		FAIL3 = `Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead.`
		FAIL5 = "Refusing to set a workercount greater than NumCPU: %d > %d ---> setting workercount value to NumCPU: %d"
		FAIL6 = "Could not open '%s'"
		FAIL7 = "ConfigAtLaunch() failed to execute help text template"
	)

	Config = BuildDefaultConfig()

	uh, _ := os.UserHomeDir()
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)
	prolixcfg := fmt.Sprintf("%s%s", h, vv.CONFIGPROLIX)

	loadedcfg, e := os.Open(prolixcfg)
	if e != nil {
		Msg.TMI(fmt.Sprintf(FAIL6, prolixcfg))
	}

	decoderc := json.NewDecoder(loadedcfg)
	confc := str.CurrentConfiguration{}
	errc := decoderc.Decode(&confc)
	_ = loadedcfg.Close()

	if errc == nil {
		Config = &confc
	} else {
		Msg.TMI(fmt.Sprintf(FAIL3, prolixcfg))
	}

	// an old CONFIGPROLIX might zero some fields that must not be zero
	if Config.MaxJobTot == 0 {
		Config.MaxJobTot = vv.MAXHARVESTTOTAL
	}

	if Config.MaxJobIP == 0 {
		Config.MaxJobIP = vv.MAXHARVESTPERIPADDR
	}

	if Config.HarvestCap == 0 {
		Config.HarvestCap = vv.DEFAULTHARVESTCAP
	}

	if Config.KGrid == "" {
		Config.KGrid = vv.KGRIDDEFAULT
	}

	if Config.StemLang == "" {
		Config.StemLang = vv.DEFAULTSTEMLANG
	}

	args := os.Args[1:len(os.Args)]

	help := func() {
		PrintVersion(*Config)
		PrintBuildInfo(*Config)

		m := map[string]interface{}{
			"badchars":   Config.BadChars,
			"conffile":   vv.CONFIGPROLIX,
			"cpus":       runtime.NumCPU(),
			"echoll":     Config.EchoLog,
			"harvestcap": Config.HarvestCap,
			"home":       h,
			"host":       Config.HostIP,
			"kgrid":      Config.KGrid,
			"lmgsll":     Config.LogLevel,
			"mailto":     Config.CrossrefMailto,
			"maxcap":     vv.MAXHARVESTCAP,
			"maxipjobs":  Config.MaxJobIP,
			"maxtotjobs": Config.MaxJobTot,
			"port":       Config.HostPort,
			"projurl":    vv.PROJURL,
			"vmodel":     Config.VectorModel,
			"workers":    Config.WorkerCount}

		t := template.Must(template.New("").Parse(vv.HELPTEXTTEMPLATE))

		var b bytes.Buffer
		if ee := t.Execute(&b, m); ee != nil {
			Msg.CRIT(FAIL7)
		}
		fmt.Println(Msg.Styled(Msg.Color(b.String())))

		os.Exit(0)
	}

	for i, a := range args {
		switch a {
		case "-vv":
			PrintVersion(*Config)
			PrintBuildInfo(*Config)
			os.Exit(1)
		case "-v":
			fmt.Println(vv.VERSION + VersSuppl)
			os.Exit(1)
		case "-bw":
			Config.BlackAndWhite = true
		case "-cm":
			Config.CrossrefMailto = args[i+1]
		case "-db":
			Config.DbDebug = true
		case "-el":
			ll, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.EchoLog = ll
		case "-gl":
			ll, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.LogLevel = ll
		case "-gz":
			Config.Gzip = true
		case "-h":
			help()
		case "-hc":
			hc, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.HarvestCap = hc
		case "-kg":
			Config.KGrid = args[i+1]
		case "-md":
			Config.VectorModel = args[i+1]
		case "-mi":
			mi, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.MaxJobIP = mi
		case "-ms":
			ms, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.MaxJobTot = ms
		case "-pc":
			Config.ProfileCPU = true
		case "-pg":
			js := args[i+1]
			var pl str.PostgresLogin
			err := json.Unmarshal([]byte(js), &pl)
			if err != nil {
				Msg.MAND(FAIL1)
				Msg.CRIT(FAIL2)
			}
			Config.PGLogin = pl
		case "-pm":
			Config.ProfileMEM = true
		case "-q":
			Config.QuietStart = true
		case "-rm":
			Config.ResetModels = true
		case "-sa":
			Config.HostIP = args[i+1]
		case "-sp":
			p, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.HostPort = p
		case "-sq":
			Config.SQLite = true
		case "-tk":
			Config.TickerActive = true
		case "-ui":
			Config.BadChars = args[i+1]
		case "-wc":
			wc, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.WorkerCount = wc
		case "-wr":
			WriteDefaultProlixConfig()
			os.Exit(0)
		default:
			// do nothing
		}
	}

	y := ""
	if errc != nil {
		y = " *not*"
	}
	Msg.TMI(fmt.Sprintf("'%s%s'%s loaded", h, vv.CONFIGPROLIX, y))

	if !Config.SQLite {
		SetConfigPass(&confc)
	}

	if Config.HarvestCap > vv.MAXHARVESTCAP {
		Config.HarvestCap = vv.MAXHARVESTCAP
	}

	if Config.WorkerCount > runtime.NumCPU() {
		Msg.CRIT(fmt.Sprintf(FAIL5, Config.WorkerCount, runtime.NumCPU(), runtime.NumCPU()))
		Config.WorkerCount = runtime.NumCPU()
	}

	UpdateMessageMakerWithConfig(Msg)
}

// BuildDefaultConfig - return a CurrentConfiguration filled out with various default values
func BuildDefaultConfig() *str.CurrentConfiguration {
	var c str.CurrentConfiguration
	c.BadChars = vv.UNACCEPTABLEINPUT
	c.BlackAndWhite = vv.BLACKANDWHITE
	c.CrossrefMailto = ""
	c.DbDebug = false
	c.EchoLog = vv.DEFAULTECHOLOGLEVEL
	c.Gzip = vv.USEGZIP
	c.HarvestCap = vv.DEFAULTHARVESTCAP
	c.HostIP = vv.SERVEDFROMHOST
	c.HostPort = vv.SERVEDFROMPORT
	c.KGrid = vv.KGRIDDEFAULT
	c.LdaGraph = true
	c.LdaTopics = vv.LDATOPICS
	c.LogLevel = vv.DEFAULTGOLOGLEVEL
	c.ManualGC = false
	c.MaxJobIP = vv.MAXHARVESTPERIPADDR
	c.MaxJobTot = vv.MAXHARVESTTOTAL
	c.ProfileCPU = false
	c.ProfileMEM = false
	c.QuietStart = false
	c.ResetModels = false
	c.SQLite = false
	c.StemLang = vv.DEFAULTSTEMLANG
	c.TickerActive = vv.TICKERISACTIVE
	c.VectorChtHt = vv.DEFAULTCHRTHEIGHT
	c.VectorChtWd = vv.DEFAULTCHRTWIDTH
	c.VectorModel = vv.VECTORMODELDEFAULT
	c.VectorNeighb = vv.VECTORNEIGHBORS
	c.VectorWebExt = false
	c.WorkerCount = runtime.NumCPU()

	e := json.Unmarshal([]byte(vv.DEFAULTSOURCES), &c.DefSrc)
	if e != nil {
		fmt.Println("BuildDefaultConfig() could not json.Unmarshal DEFAULTSOURCES: " + vv.DEFAULTSOURCES)
	}

	pl := str.PostgresLogin{
		Host:   vv.DEFAULTPSQLHOST,
		Port:   vv.DEFAULTPSQLPORT,
		User:   vv.DEFAULTPSQLUSER,
		Pass:   "",
		DBName: vv.DEFAULTPSQLDB,
	}

	c.PGLogin = pl

	return &c
}

// SetConfigPass - make sure that Config.PGLogin.Pass != ""
func SetConfigPass(cfg *str.CurrentConfiguration) {
	const (
		FAIL3     = "FAILED to load database credentials from any of '%s', '%s' or '%s'"
		FAIL4     = "At a minimum be sure that a '%s' file exists and that it has the following format:"
		FAIL6     = "Could not open '%s'"
		BLANKPASS = "PostgreSQLPassword is blank. Check your '%s' file.\n"
	)
	type ConfigFile struct {
		PostgreSQLPassword string
	}

	uh, _ := os.UserHomeDir()
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)

	cf := fmt.Sprintf("%s/%s", vv.CONFIGLOCATION, vv.CONFIGBASIC)
	acf := fmt.Sprintf("%s%s", h, vv.CONFIGBASIC)

	if Config.PGLogin.Pass == "" {
		Config.PGLogin = str.PostgresLogin{}
		cfa, ee := os.Open(cf)
		if ee != nil {
			Msg.TMI(fmt.Sprintf(FAIL6, cf))
		}
		cfb, ee := os.Open(acf)
		if ee != nil {
			Msg.TMI(fmt.Sprintf(FAIL6, acf))
		}

		defer func(cfa *os.File) {
			err := cfa.Close()
			if err != nil {
			} // the file was almost certainly not found in the first place...
		}(cfa)
		defer func(cfb *os.File) {
			err := cfb.Close()
			if err != nil {
			} // the file was almost certainly not found in the first place...
		}(cfb)

		decodera := json.NewDecoder(cfa)
		confa := ConfigFile{}
		erra := decodera.Decode(&confa)

		decoderb := json.NewDecoder(cfb)
		confb := ConfigFile{}
		errb := decoderb.Decode(&confb)
		if erra != nil && errb != nil && cfg.PGLogin.DBName == "" {
			Msg.CRIT(fmt.Sprintf(FAIL3, cf, acf, fmt.Sprintf("%s%s", h, vv.CONFIGPROLIX)))
			Msg.CRIT(fmt.Sprintf(FAIL4, vv.CONFIGBASIC))
			fmt.Printf(vv.MINCONFIG)
			Msg.ExitOrHang(0)
		}

		thecfg := ConfigFile{}
		if erra == nil {
			thecfg = confa
		} else {
			thecfg = confb
		}

		if thecfg.PostgreSQLPassword == "" {
			Msg.MAND(fmt.Sprintf(BLANKPASS, vv.CONFIGBASIC))
		}

		Config.PGLogin = str.PostgresLogin{
			Host:   vv.DEFAULTPSQLHOST,
			Port:   vv.DEFAULTPSQLPORT,
			User:   vv.DEFAULTPSQLUSER,
			DBName: vv.DEFAULTPSQLDB,
			Pass:   thecfg.PostgreSQLPassword,
		}
	}
}

// WriteDefaultProlixConfig - write the full default configuration to ~/.config/ so the curious can edit it
func WriteDefaultProlixConfig() {
	const (
		WROTE = "wrote default configuration file: %s"
		FAIL  = "WriteDefaultProlixConfig() could not write '%s'"
	)

	uh, e := os.UserHomeDir()
	if e != nil {
		return
	}
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)
	prolixcfg := fmt.Sprintf("%s%s", h, vv.CONFIGPROLIX)

	if _, yes := os.Stat(prolixcfg); yes == nil {
		return
	}

	content, err := json.MarshalIndent(BuildDefaultConfig(), vv.JSONINDENT, vv.JSONINDENT)
	Msg.EC(err)

	err = os.WriteFile(prolixcfg, content, vv.WRITEPERMS)
	if err != nil {
		Msg.WARN(fmt.Sprintf(FAIL, prolixcfg))
		return
	}
	Msg.PEEK(fmt.Sprintf(WROTE, prolixcfg))
}
