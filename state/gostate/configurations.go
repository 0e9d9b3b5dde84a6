// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package gostate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Fantom-foundation/Donation/backend"
	"github.com/Fantom-foundation/Donation/common"
	"github.com/Fantom-foundation/Donation/state"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

const (
	VariantGoMemory  state.Variant = "go-memory"
	VariantGoLevelDb state.Variant = "go-ldb"
)

// levelDbDirectory is the sub-directory of the state directory holding the LevelDB files.
const levelDbDirectory = "ldb"

// writeBufferSize is the size of the LevelDB memtable.
const writeBufferSize = 16 * opt.MiB

func init() {
	state.RegisterStateFactory(VariantGoMemory, newGoMemoryState)
	state.RegisterStateFactory(VariantGoLevelDb, newGoLevelDbState)
}

// newGoMemoryState creates an in-memory state. The content of the state is
// lost when it is closed.
func newGoMemoryState(params state.Parameters) (state.State, error) {
	return newGoState(newMemoryStorage(), nil), nil
}

// newGoLevelDbState opens or creates a LevelDB backed state in the directory
// of the given parameters. The directory is locked while the state is open.
func newGoLevelDbState(params state.Parameters) (state.State, error) {
	if params.Directory == "" {
		return nil, fmt.Errorf("%w: variant %v requires a directory", state.UnsupportedConfiguration, VariantGoLevelDb)
	}
	if err := os.MkdirAll(params.Directory, 0700); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	lock, err := common.LockDirectory(params.Directory)
	if err != nil {
		return nil, err
	}
	db, err := backend.OpenLevelDb(filepath.Join(params.Directory, levelDbDirectory), &opt.Options{
		WriteBuffer: writeBufferSize,
	})
	if err != nil {
		return nil, errors.Join(fmt.Errorf("failed to open LevelDB: %w", err), lock.Release())
	}
	return newGoState(&ldbStorage{db: db}, lock), nil
}
