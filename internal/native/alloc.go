// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import "sync/atomic"

var (
	// live counts allocated objects that have not been finalized.
	live atomic.Int64

	// failAllocs is the number of upcoming allocations that will fail.
	failAllocs atomic.Int64
)

// LiveObjects returns the number of pattern and surface objects that are
// allocated and not yet finalized. Static error objects are not counted.
func LiveObjects() int64 {
	return live.Load()
}

// FailAllocations makes the next n object allocations fail with
// StatusNoMemory. It returns a function restoring the previous setting.
// Intended for exercising error paths in tests.
func FailAllocations(n int) (restore func()) {
	prev := failAllocs.Swap(int64(n))
	return func() { failAllocs.Store(prev) }
}

// allocate reserves one live object slot, or reports false when an
// injected failure is pending.
func allocate() bool {
	for {
		n := failAllocs.Load()
		if n <= 0 {
			break
		}
		if failAllocs.CompareAndSwap(n, n-1) {
			return false
		}
	}
	live.Add(1)
	return true
}

func release() {
	live.Add(-1)
}

// refCount is an atomic reference count. A count of -1 marks a static
// object that is never finalized.
type refCount struct {
	n atomic.Int32
}

const staticRefs = -1

func (r *refCount) init() {
	r.n.Store(1)
}

func (r *refCount) setStatic() {
	r.n.Store(staticRefs)
}

func (r *refCount) isStatic() bool {
	return r.n.Load() == staticRefs
}

// inc adds a reference unless the object is static. It reports false,
// leaving the count at zero, if the object was already finalized.
func (r *refCount) inc() bool {
	for {
		n := r.n.Load()
		switch n {
		case staticRefs:
			return true
		case 0:
			return false
		}
		if r.n.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// dec drops a reference and reports whether it was the last one. Static
// and finalized objects are left alone.
func (r *refCount) dec() bool {
	for {
		n := r.n.Load()
		if n == staticRefs || n == 0 {
			return false
		}
		if r.n.CompareAndSwap(n, n-1) {
			return n == 1
		}
	}
}

// finalized reports whether the last reference has been dropped.
func (r *refCount) finalized() bool {
	return r.n.Load() == 0
}

// load returns the current count, 0 for static objects.
func (r *refCount) load() int {
	n := r.n.Load()
	if n == staticRefs {
		return 0
	}
	return int(n)
}
