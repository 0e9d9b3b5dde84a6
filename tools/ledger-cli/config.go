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
	"os"
	"path/filepath"

	"github.com/Fantom-foundation/Donation/common"
	"github.com/Fantom-foundation/Donation/ledger"
	"github.com/Fantom-foundation/Donation/state"
	"github.com/Fantom-foundation/Donation/state/gostate"
	"gopkg.in/yaml.v3"
)

// Config is the content of the configuration file of the tool.
type Config struct {
	Ledger struct {
		Beneficiary string `yaml:"beneficiary"`
		Variant     string `yaml:"variant"`
		Directory   string `yaml:"directory"`
	} `yaml:"ledger"`
	Notifications struct {
		QueueSize int `yaml:"queue_size"`
	} `yaml:"notifications"`
}

func Default(home string) Config {
	cfg := Config{}
	cfg.Ledger.Beneficiary = ""
	cfg.Ledger.Variant = string(gostate.VariantGoLevelDb)
	cfg.Ledger.Directory = filepath.Join(home, ".donation", "ledger")
	cfg.Notifications.QueueSize = ledger.DefaultQueueSize
	return cfg
}

// Load reads the configuration file at the given path. Settings missing in
// the file keep their default values.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	cfg := Default(home)
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Write(path string, cfg Config) error {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// Parameters returns the parameters of the state holding the ledger.
func (c *Config) Parameters() (state.Parameters, error) {
	variant := state.Variant(c.Ledger.Variant)
	if variant == gostate.VariantGoMemory {
		return state.Parameters{}, fmt.Errorf("variant %v does not persist the ledger", variant)
	}
	if c.Ledger.Directory == "" {
		return state.Parameters{}, fmt.Errorf("no ledger directory configured")
	}
	return state.Parameters{
		Variant:   variant,
		Directory: c.Ledger.Directory,
	}, nil
}

// Beneficiary returns the configured beneficiary.
func (c *Config) Beneficiary() (common.Address, error) {
	if c.Ledger.Beneficiary == "" {
		return common.Address{}, fmt.Errorf("no beneficiary configured, run the init command first")
	}
	return common.HexToAddress(c.Ledger.Beneficiary)
}
