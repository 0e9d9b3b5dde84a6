// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package state

import (
	"fmt"

	"github.com/Fantom-foundation/Donation/common"
	"golang.org/x/exp/maps"
)

// ----------------------------------------------------------------------------
//                        for ledger users
// ----------------------------------------------------------------------------

// Parameters struct defining configuration parameters for state instances.
type Parameters struct {
	Variant   Variant
	Directory string // ignored by in-memory variants
}

// DefaultVariant is used if no variant is specified in the parameters.
const DefaultVariant = Variant("go-memory")

// UnsupportedConfiguration is the error returned if unsupported configuration
// parameters have been specified. The text may contain further details regarding the
// unsupported feature.
const UnsupportedConfiguration = common.ConstError("unsupported configuration")

// NewState is the public interface for creating state instances. If for the
// given parameters a state can be constructed, the resulting state is returned. If
// construction fails, an error is reported. If the requested configuration is not
// supported, the error is an UnsupportedConfiguration error.
func NewState(params Parameters) (State, error) {
	if params.Variant == "" {
		params.Variant = DefaultVariant
	}
	factory, found := stateFactoryRegistry[params.Variant]
	if !found {
		return nil, fmt.Errorf("%w: no registered implementation for %v", UnsupportedConfiguration, params.Variant)
	}
	return factory(params)
}

// ----------------------------------------------------------------------------
//                      for state implementations
// ----------------------------------------------------------------------------

type Variant string

type StateFactory func(params Parameters) (State, error)

var stateFactoryRegistry = map[Variant]StateFactory{}

// RegisterStateFactory registers a factory for the given variant. Registering
// two factories for the same variant is a programming error and panics.
func RegisterStateFactory(variant Variant, factory StateFactory) {
	if _, found := stateFactoryRegistry[variant]; found {
		panic(fmt.Sprintf("attempted to register multiple factories for %v", variant))
	}
	stateFactoryRegistry[variant] = factory
}

func GetAllRegisteredStateFactories() map[Variant]StateFactory {
	return maps.Clone(stateFactoryRegistry)
}
