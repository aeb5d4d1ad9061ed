package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "inclusiveor_tools",
		Usage: "build and inspect inclusive-or values",
		Commands: []*cli.Command{
			{
				Name:      "combine",
				Usage:     "combine an optional left and an optional right value",
				UsageText: "combine [--left value] [--right value]",
				Action:    combineValues,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "left",
						Usage: "left value; the left side is absent if unset",
					},
					&cli.StringFlag{
						Name:  "right",
						Usage: "right value; the right side is absent if unset",
					},
					&cli.StringFlag{
						Name:  "left-type",
						Value: valueTypeString,
						Usage: "type of the left value (string, int or uuid)",
					},
					&cli.StringFlag{
						Name:  "right-type",
						Value: valueTypeString,
						Usage: "type of the right value (string, int or uuid)",
					},
				},
			},
		},
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
