// Copyright 2024 The Gofeather Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gferr defines the error taxonomy shared by every package of
// the forward-dynamics core (spec.md §7): a small fixed set of kinds,
// not types, so callers of Simulation.Integrate/RunTo can switch on
// Kind() without string matching or type assertions per package.
package gferr

import "github.com/cpmech/gosl/io"

// Kind enumerates the recoverable failure modes of the core. Every
// value returned from Simulation.Integrate/RunTo carries one of these.
type Kind int

const (
	// DimensionMismatch: joint/body counts, stacked-partition
	// mismatch, matrix-vector size mismatch.
	DimensionMismatch Kind = iota
	// SingularArticulation: j_i = s_i . IA_i . s_i == 0 during the
	// articulated-inertia or dynamics pass.
	SingularArticulation
	// SingularMatrix: pivot under tolerance in dense LU.
	SingularMatrix
	// InvalidRotationAxis: zero-magnitude axis given to a rotation
	// constructor.
	InvalidRotationAxis
	// UnsupportedMotorKind: a motor's post-lifting kind is neither
	// Acceleration nor Forcing.
	UnsupportedMotorKind
)

func (k Kind) String() string {
	switch k {
	case DimensionMismatch:
		return "DimensionMismatch"
	case SingularArticulation:
		return "SingularArticulation"
	case SingularMatrix:
		return "SingularMatrix"
	case InvalidRotationAxis:
		return "InvalidRotationAxis"
	case UnsupportedMotorKind:
		return "UnsupportedMotorKind"
	default:
		return "Unknown"
	}
}

// Error is a Kind-tagged error. The Featherstone pass never recovers
// locally (spec.md §7): every failure of this shape is constructed
// once, at the point of detection, and returned up to the caller of
// Integrate/RunTo unchanged.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// New builds a Kind-tagged error with an io.Sf-formatted message,
// mirroring gofem's chk.Err(format, args...) convention.
func New(k Kind, format string, args ...interface{}) error {
	return &Error{Kind: k, Msg: io.Sf("gofeather: %s: %s", k, io.Sf(format, args...))}
}

// As reports whether err is a *Error of kind k.
func As(err error, k Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == k
}
