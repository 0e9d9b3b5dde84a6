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

	"github.com/Fantom-foundation/Donation/common"
	"github.com/Fantom-foundation/Donation/common/amount"
	"github.com/Fantom-foundation/Donation/state"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

var (
	accountFlag = cli.StringFlag{
		Name:     "account",
		Usage:    "the address of the account",
		Required: true,
	}
	fundAmountFlag = cli.StringFlag{
		Name:     "amount",
		Usage:    "the amount to credit, decimal or 0x-prefixed hex",
		Required: true,
	}
)

var fundCommand = cli.Command{
	Action: fund,
	Name:   "fund",
	Usage:  "credits an account of the ledger environment, intended for development",
	Flags: []cli.Flag{
		&accountFlag,
		&fundAmountFlag,
	},
}

var balanceCommand = cli.Command{
	Action: balance,
	Name:   "balance",
	Usage:  "prints the balance of an account of the ledger environment",
	Flags: []cli.Flag{
		&accountFlag,
	},
}

func fund(ctx *cli.Context) error {
	account, err := common.HexToAddress(ctx.String(accountFlag.Name))
	if err != nil {
		return err
	}
	value, err := amount.Parse(ctx.String(fundAmountFlag.Name))
	if err != nil {
		return err
	}
	return withState(ctx, func(st state.State) error {
		current, err := st.GetBalance(account)
		if err != nil {
			return err
		}
		funded, overflow := amount.AddOverflow(current, value)
		if overflow {
			return fmt.Errorf("balance of %v would overflow", account)
		}
		update := common.Update{}
		update.AppendBalanceUpdate(account, funded)
		if err := st.Apply(update); err != nil {
			return err
		}
		pterm.Success.Printfln("Balance of %v is now %v", account, funded)
		return nil
	})
}

func balance(ctx *cli.Context) error {
	account, err := common.HexToAddress(ctx.String(accountFlag.Name))
	if err != nil {
		return err
	}
	return withState(ctx, func(st state.State) error {
		value, err := st.GetBalance(account)
		if err != nil {
			return err
		}
		pterm.Info.Printfln("Balance of %v: %v", account, value)
		return nil
	})
}
