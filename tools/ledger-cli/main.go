// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	_ "github.com/Fantom-foundation/Donation/state/gostate"
	_ "github.com/Fantom-foundation/Donation/state/sqlite"
)

var (
	configFlag = cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "the configuration file of the ledger",
		Value:   "ledger.yaml",
	}
	verboseFlag = cli.BoolFlag{
		Name:  "verbose",
		Usage: "enables debug logging",
	}
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "Donation Ledger Toolbox",
		HelpName:  "ledger-cli",
		Usage:     "A set of utilities to operate a donation ledger",
		Copyright: "(c) 2024 Fantom Foundation",
		Flags: []cli.Flag{
			&configFlag,
			&verboseFlag,
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			&initCommand,
			&fundCommand,
			&submitCommand,
			&queryCommand,
			&balanceCommand,
			&infoCommand,
		},
	}
}

func setupLogging(ctx *cli.Context) error {
	logger := pterm.DefaultLogger.WithLevel(pterm.LogLevelInfo)
	if ctx.Bool(verboseFlag.Name) {
		logger = logger.WithLevel(pterm.LogLevelDebug)
	}
	slog.SetDefault(slog.New(pterm.NewSlogHandler(logger)))
	return nil
}

func loadConfig(ctx *cli.Context) (Config, error) {
	path := ctx.String(configFlag.Name)
	cfg, err := Load(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load configuration %s: %w", path, err)
	}
	return cfg, nil
}
