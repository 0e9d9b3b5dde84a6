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
	"time"

	"github.com/Fantom-foundation/Donation/common/amount"
	"github.com/Fantom-foundation/Donation/ledger"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

var (
	exactAmountFlag = cli.StringFlag{
		Name:  "amount",
		Usage: "lists donations of exactly this amount, served by the amount index",
	}
	aboveFlag = cli.StringFlag{
		Name:  "above",
		Usage: "lists donations larger than this amount, requires a full scan",
	}
)

var queryCommand = cli.Command{
	Action: query,
	Name:   "query",
	Usage:  "lists recorded donations",
	Flags: []cli.Flag{
		&exactAmountFlag,
		&aboveFlag,
	},
}

// buildFilter converts the command line flags into a ledger filter. Without
// flags all donations are listed.
func buildFilter(ctx *cli.Context) (ledger.Filter, error) {
	if ctx.IsSet(exactAmountFlag.Name) && ctx.IsSet(aboveFlag.Name) {
		return ledger.Filter{}, fmt.Errorf("flags --%s and --%s are mutually exclusive", exactAmountFlag.Name, aboveFlag.Name)
	}
	if ctx.IsSet(exactAmountFlag.Name) {
		value, err := amount.Parse(ctx.String(exactAmountFlag.Name))
		if err != nil {
			return ledger.Filter{}, err
		}
		return ledger.Filter{Kind: ledger.ExactAmount, Amount: value.ToBig()}, nil
	}
	predicate := func(ledger.Record) bool { return true }
	if ctx.IsSet(aboveFlag.Name) {
		threshold, err := amount.Parse(ctx.String(aboveFlag.Name))
		if err != nil {
			return ledger.Filter{}, err
		}
		predicate = ledger.AmountAbove(threshold)
	}
	return ledger.Filter{Kind: ledger.PredicateScan, Predicate: predicate}, nil
}

func query(ctx *cli.Context) error {
	filter, err := buildFilter(ctx)
	if err != nil {
		return err
	}
	return withLedger(ctx, func(l *ledger.Ledger) error {
		records, err := l.Index().Query(filter)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			pterm.Info.Println("No matching donations")
			return nil
		}
		return printRecords(records)
	})
}

func printRecords(records []ledger.Record) error {
	data := pterm.TableData{{"Amount", "Reason", "Donor", "Time"}}
	for _, record := range records {
		data = append(data, []string{
			record.Amount.String(),
			record.Reason,
			record.Origin.String(),
			time.Unix(int64(record.Timestamp), 0).UTC().Format(time.RFC3339),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
