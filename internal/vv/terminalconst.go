//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	MINCONFIG = `
{"PostgreSQLPassword": "YOURPASSWORDHERE"}
`

	TERMINALTEXT = `Copyright (C) %s / %s
      %s

      This program comes with ABSOLUTELY NO WARRANTY; without even the
      implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.

      This is free software, and you are welcome to redistribute it and/or
      modify it under the terms of the GNU General Public License version 3.`

	PROJYEAR = "2024-26"
	PROJAUTH = "E. Gunderson"
	PROJMAIL = "Department of Classics, 125 Queen’s Park, Toronto, ON  M5S 2C7 Canada"

	HELPTEXTTEMPLATE = `S3command line optionsS0:
   C1-bwC0          disable color output in the console
   C1-cmC0 C2{string}C0 set the "mailto" sent to crossref and openalex [C6currentC0: C3{{.mailto}}C0]
   C1-dbC0          debug database: log the SQL sent to the corpus store
   C1-elC0 C2{num}C0    set echo server log level (C10-3C0) [C6currentC0: C3{{.echoll}}C0]
   C1-glC0 C2{num}C0    set golang log level (C10-5C0) [C6currentC0: C3{{.lmgsll}}C0]
   C1-gzC0          enable gzip compression of the server's output
   C1-hC0           print this help information
   C1-hcC0 C2{num}C0    per-source harvest cap (C1≤{{.maxcap}}C0) [C6currentC0: C3{{.harvestcap}}C0]
   C1-kgC0 C2{string}C0 topic count grid for model comparison [C6currentC0: C3{{.kgrid}}C0]
   C1-mdC0 C2{string}C0 set the default embedding model type; available: C3gloveC0, C3lexvecC0, and C3w2vC0 [C6currentC0: C3{{.vmodel}}C0]
   C1-miC0 C2{num}C0    maximum number of concurrent jobs per IP address [C6currentC0: C3{{.maxipjobs}}C0]
   C1-msC0 C2{num}C0    maximum total number of concurrent jobs [C6currentC0: C3{{.maxtotjobs}}C0]
   C1-pcC0          enable CPU profiling run
   C1-pmC0          enable MEM profiling run
   C1-pgC0 C2{string}C0 supply full PostgreSQL credentials C4(*)C0
   C1-qC0           quiet startup: suppress copyright notice
   C1-rmC0          reset the stored topic model and embedding cache
   C1-saC0 C2{string}C0 server IP address [C6currentC0: C3{{.host}}C0]
   C1-spC0 C2{num}C0    server port [C6currentC0: C3{{.port}}C0]
   C1-sqC0          use an in-memory SQLite corpus store instead of PostgreSQL
   C1-tkC0          turn on the uptime ticker [unavailable if OS is Windows]
   C1-uiC0 C2{string}C0 unacceptable input characters [C6currentC0: C3{{.badchars}}C0]
   C1-vC0           print version info and exit
   C1-vvC0          print full version info and exit
   C1-wcC0 C2{int}C0    number of workers [C1cpu_countC0 is C3{{.cpus}}C0][C6currentC0: C3{{.workers}}C0]
   C1-wrC0          write "C3{{.conffile}}C0" to "C3{{.home}}C0" with the default configuration and exit
     (*) S3exampleS0:
         C4"{\"Pass\": \"YOURPASSWORDHERE\" ,\"Host\": \"127.0.0.1\", \"Port\": 5432, \"DBName\": \"litmineDB\" ,\"User\": \"litmine_wr\"}"C0

     S1NB:S0 a properly formatted version of "C3{{.conffile}}C0" in "C3{{.home}}C0" configures everything for you.
         See the sample configuration files at
             C3{{.projurl}}C0
`
)
