package main

import (
	"github.com/urfave/cli/v2"
)

func (s *srv) loadApp() {
	s.app = cli.NewApp()
	s.app.Name = "loterias"
	s.app.Usage = "Brazilian lottery results, saved picks and draw analysis"
	s.app.Action = cli.ShowAppHelp
	s.app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Value:   "config.toml",
			Usage:   "path of the TOML configuration file",
			EnvVars: []string{"CONFIG_FILE"},
		},
	}
	s.app.Before = s.loadConfig
	s.app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start service api",
			Category:    "Api",
			Description: "Serve the http api of draws, picks, plans and the admin panel.",
		},
		{
			Action:      s.startCron,
			Name:        "cron",
			Usage:       "Start cron jobs",
			Category:    "Worker",
			Description: "Fetch new draws from Caixa and downgrade expired pro plans periodically.",
		},
		{
			Action:      s.startNotify,
			Name:        "notify",
			Usage:       "Start notification consumer",
			Category:    "Worker",
			Description: "Consume prize and plan events from the configured broker.",
		},
		{
			Action:      s.startMigrate,
			Name:        "migrate",
			Usage:       "Migrate database",
			Category:    "Tool",
			Description: "Create or update all tables of the database.",
		},
		{
			Action:   s.startImport,
			Name:     "import",
			Usage:    "Import historical draws from a CSV file",
			Category: "Tool",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "game",
					Usage:    "game type of the draws, e.g. megasena",
					Required: true,
				},
				&cli.PathFlag{
					Name:     "file",
					Usage:    "CSV file with rows of sequence,date,numbers...",
					Required: true,
				},
			},
		},
		{
			Action:   s.startRefresh,
			Name:     "refresh",
			Usage:    "Fetch new draws from Caixa once",
			Category: "Tool",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "game",
					Usage: "only refresh this game type",
				},
			},
		},
	}
}
