// Package cli contains the euclid command line tool.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"
)

const (
	generalFlagConfig = "config"
	generalFlagDebug  = "debug"

	rayFlagOrigin    = "origin"
	rayFlagDirection = "direction"
	boxFlagMin       = "min"
	boxFlagMax       = "max"
)

var app = &cli.App{
	Name:            "euclid",
	Usage:           "fit planes and lines to points and intersect rays with boxes",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    generalFlagConfig,
			Aliases: []string{"c"},
			Usage:   "load configuration from `FILE`",
		},
		&cli.BoolFlag{
			Name:    generalFlagDebug,
			Aliases: []string{"vvv"},
			Usage:   "enable debug logging",
		},
	},
	Before: setupAction,
	Commands: []*cli.Command{
		{
			Name:      "fit-plane",
			Usage:     "fit a plane (a line in 2D) to the points in a file",
			ArgsUsage: "<points file or - for stdin>",
			Action:    FitPlaneAction,
		},
		{
			Name:      "fit-line",
			Usage:     "fit a line to the points in a file",
			ArgsUsage: "<points file or - for stdin>",
			Action:    FitLineAction,
		},
		{
			Name:  "ray-box",
			Usage: "intersect a ray with an axis aligned box",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     rayFlagOrigin,
					Usage:    "ray origin as comma separated coordinates, e.g. -1,0.5",
					Required: true,
				},
				&cli.StringFlag{
					Name:     rayFlagDirection,
					Usage:    "ray direction, normalized before use",
					Required: true,
				},
				&cli.StringFlag{
					Name:     boxFlagMin,
					Usage:    "minimum box corner",
					Required: true,
				},
				&cli.StringFlag{
					Name:     boxFlagMax,
					Usage:    "maximum box corner",
					Required: true,
				},
			},
			Action: RayBoxAction,
		},
	},
}

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	app.Writer = out
	app.ErrWriter = errOut
	return app
}
