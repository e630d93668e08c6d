package main

import (
	"github.com/sirkon/seme/internal/anchors"
)

// lockGroup anchors sync primitives. A region over them covers everything that may run
// between taking a lock and releasing it.
const lockGroup = "lock"

func predefinedLockFuncs() map[anchors.Reference]string {
	return map[anchors.Reference]string{
		{Package: "sync", Type: "Mutex", Name: "Lock"}:      lockGroup,
		{Package: "sync", Type: "Mutex", Name: "TryLock"}:   lockGroup,
		{Package: "sync", Type: "Mutex", Name: "Unlock"}:    lockGroup,
		{Package: "sync", Type: "RWMutex", Name: "Lock"}:    lockGroup,
		{Package: "sync", Type: "RWMutex", Name: "TryLock"}: lockGroup,
		{Package: "sync", Type: "RWMutex", Name: "Unlock"}:  lockGroup,
		{Package: "sync", Type: "RWMutex", Name: "RLock"}:   lockGroup,
		{Package: "sync", Type: "RWMutex", Name: "RUnlock"}: lockGroup,

		// Interface calls.
		{Package: "sync", Type: "Locker", Name: "Lock"}:   lockGroup,
		{Package: "sync", Type: "Locker", Name: "Unlock"}: lockGroup,
	}
}
