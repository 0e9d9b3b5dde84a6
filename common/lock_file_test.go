// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLockFile_DefaultLockFileIsInvalid(t *testing.T) {
	lock := lockFile{}
	if lock.Valid() {
		t.Errorf("default lockfile should be invalid")
	}
}

func TestLockFile_CanBeAcquiredAndReleased(t *testing.T) {
	exists := func(path string) bool {
		_, err := os.Stat(path)
		return !errors.Is(err, os.ErrNotExist)
	}

	path := filepath.Join(t.TempDir(), "a")
	lock, err := CreateLockFile(path)
	if err != nil {
		t.Fatalf("failed to acquire lock: %v", err)
	}
	if !lock.Valid() || !exists(path) {
		t.Errorf("acquired lock should be valid and backed by a file")
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("failed to release lock: %v", err)
	}
	if lock.Valid() || exists(path) {
		t.Errorf("released lock should be invalid and its file removed")
	}
	if err := lock.Release(); err == nil {
		t.Errorf("second release should have failed")
	}
}

func TestLockDirectory_IsExclusive(t *testing.T) {
	dir := t.TempDir()
	lockA, err := LockDirectory(dir)
	if err != nil {
		t.Fatalf("failed to lock directory: %v", err)
	}
	if _, err := LockDirectory(dir); err == nil {
		t.Errorf("should not be able to lock a directory twice")
	}
	if err := lockA.Release(); err != nil {
		t.Fatalf("failed to release lock: %v", err)
	}
	lockB, err := LockDirectory(dir)
	if err != nil {
		t.Fatalf("should be able to lock a released directory: %v", err)
	}
	if err := lockB.Release(); err != nil {
		t.Errorf("failed to release lock: %v", err)
	}
}
