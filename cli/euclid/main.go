// Package main is the euclid command itself.
package main

import (
	"log"
	"os"

	"go.viam.com/euclid/cli"
)

func main() {
	app := cli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
