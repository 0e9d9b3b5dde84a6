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
	"github.com/Fantom-foundation/Donation/common"
	"github.com/Fantom-foundation/Donation/common/amount"
	"github.com/Fantom-foundation/Donation/ledger"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

var (
	fromFlag = cli.StringFlag{
		Name:     "from",
		Usage:    "the address of the donor",
		Required: true,
	}
	valueFlag = cli.StringFlag{
		Name:  "value",
		Usage: "the donated amount, decimal or 0x-prefixed hex",
		Value: "0",
	}
	reasonFlag = cli.StringFlag{
		Name:  "reason",
		Usage: "the reason of the donation",
	}
)

var submitCommand = cli.Command{
	Action: submit,
	Name:   "submit",
	Usage:  "donates an amount to the beneficiary of the ledger",
	Flags: []cli.Flag{
		&fromFlag,
		&valueFlag,
		&reasonFlag,
	},
}

func submit(ctx *cli.Context) error {
	from, err := common.HexToAddress(ctx.String(fromFlag.Name))
	if err != nil {
		return err
	}
	value, err := amount.Parse(ctx.String(valueFlag.Name))
	if err != nil {
		return err
	}
	return withLedger(ctx, func(l *ledger.Ledger) error {
		receipt, err := l.NewSession(from).Submit(ctx.String(reasonFlag.Name), value)
		if err != nil {
			return err
		}
		count, err := l.Index().Count()
		if err != nil {
			return err
		}
		pterm.Success.Printfln("Donation #%d of %v recorded, the ledger holds %d donations", receipt.Index, receipt.Record.Amount, count)
		return nil
	})
}
