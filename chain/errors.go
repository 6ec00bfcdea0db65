// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package chain

import "errors"

var (
	// ErrDetached is returned when Before or After is called on a builder
	// that was never stored in an OrderableMap.
	ErrDetached = errors.New("chain: builder is not attached to an orderable map")

	// ErrUnknownShorthand is returned when a shorthand was not registered
	// with Extend.
	ErrUnknownShorthand = errors.New("chain: unknown shorthand")
)
