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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Fantom-foundation/Donation/common"
	"github.com/Fantom-foundation/Donation/common/amount"
	"github.com/Fantom-foundation/Donation/ledger"
	"github.com/Fantom-foundation/Donation/state"
	"github.com/Fantom-foundation/Donation/state/gostate"
	"github.com/Fantom-foundation/Donation/state/sqlite"
)

const testBeneficiary = "0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0"

func TestConfig_WriteAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "ledger.yaml")
	cfg := Default(t.TempDir())
	cfg.Ledger.Beneficiary = testBeneficiary
	if err := Write(path, cfg); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if loaded != cfg {
		t.Errorf("unexpected config, wanted %v, got %v", cfg, loaded)
	}
}

func TestConfig_LoadKeepsDefaultsForMissingSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.yaml")
	content := "ledger:\n  beneficiary: " + testBeneficiary + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if got, want := cfg.Notifications.QueueSize, ledger.DefaultQueueSize; got != want {
		t.Errorf("unexpected queue size, wanted %d, got %d", want, got)
	}
	if got, want := cfg.Ledger.Variant, string(gostate.VariantGoLevelDb); got != want {
		t.Errorf("unexpected variant, wanted %s, got %s", want, got)
	}
	if cfg.Ledger.Beneficiary != testBeneficiary {
		t.Errorf("unexpected beneficiary %s", cfg.Ledger.Beneficiary)
	}
}

func TestCommands_NegativeQueueSizeIsRejected(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "ledger.yaml")
	cfg := Default(dir)
	cfg.Ledger.Beneficiary = testBeneficiary
	cfg.Ledger.Directory = filepath.Join(dir, "ledger")
	cfg.Notifications.QueueSize = -1
	if err := Write(config, cfg); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	err := newApp().Run([]string{"ledger-cli", "--config", config, "submit", "--from", testBeneficiary})
	if err == nil || !strings.Contains(err.Error(), "queue size") {
		t.Errorf("negative queue size should be rejected, got %v", err)
	}
}

func TestConfig_ParametersRequirePersistentLedger(t *testing.T) {
	cfg := Default(t.TempDir())
	if _, err := cfg.Parameters(); err != nil {
		t.Errorf("default configuration should be valid: %v", err)
	}

	cfg.Ledger.Variant = string(gostate.VariantGoMemory)
	if _, err := cfg.Parameters(); err == nil {
		t.Errorf("in-memory ledgers should be rejected")
	}

	cfg = Default(t.TempDir())
	cfg.Ledger.Directory = ""
	if _, err := cfg.Parameters(); err == nil {
		t.Errorf("missing directory should be rejected")
	}
}

func TestConfig_BeneficiaryMustBeSet(t *testing.T) {
	cfg := Default(t.TempDir())
	if _, err := cfg.Beneficiary(); err == nil {
		t.Errorf("missing beneficiary should be rejected")
	}
	cfg.Ledger.Beneficiary = "0x1234"
	if _, err := cfg.Beneficiary(); err == nil {
		t.Errorf("malformed beneficiary should be rejected")
	}
	cfg.Ledger.Beneficiary = testBeneficiary
	if _, err := cfg.Beneficiary(); err != nil {
		t.Errorf("failed to parse beneficiary: %v", err)
	}
}

func TestCommands_DonationRoundTrip(t *testing.T) {
	for _, variant := range []state.Variant{gostate.VariantGoLevelDb, sqlite.VariantSqlite} {
		t.Run(string(variant), func(t *testing.T) {
			dir := t.TempDir()
			config := filepath.Join(dir, "ledger.yaml")
			donor := "0x00000000000000000000000000000000000000aa"

			run := func(args ...string) {
				t.Helper()
				args = append([]string{"ledger-cli", "--config", config}, args...)
				if err := newApp().Run(args); err != nil {
					t.Fatalf("command %v failed: %v", args, err)
				}
			}

			run("init", "--beneficiary", testBeneficiary, "--variant", string(variant), "--dir", filepath.Join(dir, "ledger"))
			run("fund", "--account", donor, "--amount", "1000")
			run("submit", "--from", donor, "--value", "40", "--reason", "books")
			run("submit", "--from", donor, "--value", "50", "--reason", "lunch")
			run("query", "--amount", "40")
			run("query", "--above", "45")
			run("info")

			cfg, err := Load(config)
			if err != nil {
				t.Fatalf("failed to load config: %v", err)
			}
			params, err := cfg.Parameters()
			if err != nil {
				t.Fatalf("invalid parameters: %v", err)
			}
			beneficiary, _ := common.HexToAddress(testBeneficiary)
			l, err := ledger.Open(params, beneficiary)
			if err != nil {
				t.Fatalf("failed to open ledger: %v", err)
			}
			defer l.Close()

			records, err := l.Index().FilterByAmount(amount.New(50))
			if err != nil {
				t.Fatalf("failed to filter: %v", err)
			}
			if len(records) != 1 || records[0].Reason != "lunch" {
				t.Errorf("unexpected records %v", records)
			}
		})
	}
}

func TestCommands_QueryRejectsConflictingFlags(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "ledger.yaml")
	if err := newApp().Run([]string{"ledger-cli", "--config", config, "init", "--beneficiary", testBeneficiary, "--dir", filepath.Join(dir, "ledger")}); err != nil {
		t.Fatalf("failed to init ledger: %v", err)
	}
	if err := newApp().Run([]string{"ledger-cli", "--config", config, "query", "--amount", "1", "--above", "2"}); err == nil {
		t.Errorf("conflicting filters should be rejected")
	}
}
