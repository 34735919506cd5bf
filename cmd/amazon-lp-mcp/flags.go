package main

import "github.com/urfave/cli/v2"

var (
	dataDirFlag = &cli.StringFlag{
		Name:    "data-dir",
		EnvVars: []string{"DATA_DIR"},
		Usage:   "Directory containing amazon-lp.json and transcripts.json. The embedded documents are used when unset.",
	}

	serverTypeFlag = &cli.StringFlag{
		Name:    "server-type",
		Aliases: []string{"t"},
		EnvVars: []string{"SERVER_TYPE"},
		Usage:   "Server type: http,stdio",
		Value:   "stdio",
	}

	portFlag = &cli.IntFlag{
		Name:    "port",
		Aliases: []string{"p"},
		EnvVars: []string{"PORT"},
		Usage:   "Port to run the HTTP server on",
		Value:   1995,
	}

	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		EnvVars: []string{"LOG_LEVEL"},
		Usage:   "Log level: trace,debug,info,warn,error",
		Value:   "info",
	}
)
