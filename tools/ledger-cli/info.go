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
	"github.com/Fantom-foundation/Donation/ledger"
	"github.com/Fantom-foundation/Donation/state"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

var infoCommand = cli.Command{
	Action: getInfo,
	Name:   "info",
	Usage:  "prints summary information about the configured ledger",
}

// getInfo reports what is recorded in the ledger directory, which may differ
// from the configured beneficiary if the configuration has been edited.
func getInfo(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	return withState(ctx, func(st state.State) error {
		beneficiary, err := st.GetBeneficiary()
		if err != nil {
			return err
		}
		if beneficiary.IsZero() {
			pterm.Warning.Println("No beneficiary recorded, run the init command first")
			return nil
		}
		count, err := st.GetLogCount()
		if err != nil {
			return err
		}
		if configured, err := cfg.Beneficiary(); err != nil || configured != beneficiary {
			pterm.Warning.Printfln("Configured beneficiary %q does not match the recorded one", cfg.Ledger.Beneficiary)
		}
		return pterm.DefaultTable.WithData(pterm.TableData{
			{"Beneficiary", beneficiary.String()},
			{"Ledger address", ledger.LedgerAddress(beneficiary).String()},
			{"Donations", pterm.Sprint(count)},
			{"Variant", cfg.Ledger.Variant},
			{"Directory", cfg.Ledger.Directory},
		}).Render()
	})
}
