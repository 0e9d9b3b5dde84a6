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
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/Fantom-foundation/Donation/common"
	"github.com/Fantom-foundation/Donation/ledger"
	"github.com/Fantom-foundation/Donation/state"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

var (
	beneficiaryFlag = cli.StringFlag{
		Name:     "beneficiary",
		Usage:    "the address receiving all donations",
		Required: true,
	}
	variantFlag = cli.StringFlag{
		Name:  "variant",
		Usage: "the storage variant of the ledger (go-ldb or sql-sqlite)",
	}
	directoryFlag = cli.StringFlag{
		Name:  "dir",
		Usage: "the directory of the ledger",
	}
)

var initCommand = cli.Command{
	Action: initLedger,
	Name:   "init",
	Usage:  "creates a ledger for a beneficiary and writes the configuration file",
	Flags: []cli.Flag{
		&beneficiaryFlag,
		&variantFlag,
		&directoryFlag,
	},
}

func initLedger(ctx *cli.Context) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	cfg := Default(home)
	cfg.Ledger.Beneficiary = ctx.String(beneficiaryFlag.Name)
	if ctx.IsSet(variantFlag.Name) {
		cfg.Ledger.Variant = ctx.String(variantFlag.Name)
	}
	if ctx.IsSet(directoryFlag.Name) {
		cfg.Ledger.Directory = ctx.String(directoryFlag.Name)
	}

	beneficiary, err := cfg.Beneficiary()
	if err != nil {
		return err
	}
	l, err := openLedger(&cfg, beneficiary)
	if err != nil {
		return err
	}
	if err := l.Close(); err != nil {
		return err
	}

	path := ctx.String(configFlag.Name)
	if err := Write(path, cfg); err != nil {
		return fmt.Errorf("failed to write configuration %s: %w", path, err)
	}
	pterm.Success.Printfln("Ledger %v created for beneficiary %v", l.Address(), beneficiary)
	return nil
}

// openLedger opens the configured ledger for the given beneficiary.
func openLedger(cfg *Config, beneficiary common.Address) (*ledger.Ledger, error) {
	params, err := cfg.Parameters()
	if err != nil {
		return nil, err
	}
	if cfg.Notifications.QueueSize < 1 {
		return nil, fmt.Errorf("invalid notification queue size %d", cfg.Notifications.QueueSize)
	}
	slog.Debug("opening ledger", "variant", params.Variant, "directory", params.Directory)
	return ledger.Open(params, beneficiary,
		ledger.WithLogger(slog.Default()),
		ledger.WithQueueSize(cfg.Notifications.QueueSize),
	)
}

// withLedger runs the operation on the configured ledger.
func withLedger(ctx *cli.Context, op func(*ledger.Ledger) error) (err error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	beneficiary, err := cfg.Beneficiary()
	if err != nil {
		return err
	}
	l, err := openLedger(&cfg, beneficiary)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, l.Close())
	}()
	return op(l)
}

// withState runs the operation on the state holding the configured ledger.
func withState(ctx *cli.Context, op func(state.State) error) (err error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	params, err := cfg.Parameters()
	if err != nil {
		return err
	}
	st, err := state.NewState(params)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, st.Close())
	}()
	return op(st)
}
