// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package native is the object layer behind package paint.
//
// It plays the part a C rendering library plays for a binding: it owns
// pattern and surface objects, counts their references, records a sticky
// status on each object and performs all sampling and compositing. The
// public package never touches object state directly; it only calls the
// create/reference/destroy functions and the setters and getters here,
// then inspects the status.
//
// # Object model
//
// Every create function returns an object holding exactly one reference.
// Reference adds one, Destroy drops one, and the object is finalized when
// the count reaches zero. Creation that fails returns a shared static
// object in an error state instead of nil; Reference and Destroy are no-ops
// on those, so callers can always pair a create with a Destroy.
//
// Once an object's status leaves StatusSuccess it never changes again and
// every setter on it is ignored.
//
// # Enumerations
//
// Status, Extend, Filter and PatternType mirror the numeric values of the
// cairo enumerations so values can be exchanged with cairo-based code.
//
// # Concurrency
//
// Reference counts are atomic. Everything else is unsynchronized: an object
// must not be mutated from several goroutines at once.
package native
