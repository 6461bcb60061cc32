// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// rootCommand runs the library demo. Every flag defaults to the no-argument behavior.
func rootCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "shelf",
		Usage:   "Demonstrate music, users and books in an embedded SQLite database",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file (ignored when missing)",
				Value:   "config.toml",
			},
			&cli.StringFlag{
				Name:    "books",
				Aliases: []string{"b"},
				Usage:   "Path to the books JSON file (overrides library.books_path)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Action: r.Demo,
	}
}
