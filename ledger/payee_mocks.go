// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ledger

import (
	reflect "reflect"

	common "github.com/Fantom-foundation/Donation/common"
	amount "github.com/Fantom-foundation/Donation/common/amount"
	gomock "go.uber.org/mock/gomock"
)

// MockPayee is a mock of Payee interface.
type MockPayee struct {
	ctrl     *gomock.Controller
	recorder *MockPayeeMockRecorder
}

// MockPayeeMockRecorder is the mock recorder for MockPayee.
type MockPayeeMockRecorder struct {
	mock *MockPayee
}

// NewMockPayee creates a new mock instance.
func NewMockPayee(ctrl *gomock.Controller) *MockPayee {
	mock := &MockPayee{ctrl: ctrl}
	mock.recorder = &MockPayeeMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPayee) EXPECT() *MockPayeeMockRecorder {
	return m.recorder
}

// Accept mocks base method.
func (m *MockPayee) Accept(from common.Address, value amount.Amount) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Accept", from, value)
	ret0, _ := ret[0].(error)
	return ret0
}

// Accept indicates an expected call of Accept.
func (mr *MockPayeeMockRecorder) Accept(from, value any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Accept", reflect.TypeOf((*MockPayee)(nil).Accept), from, value)
}
