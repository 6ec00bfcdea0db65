// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package render

import "errors"

var (
	// ErrUnknownRenderer is returned when no renderer has the requested name.
	ErrUnknownRenderer = errors.New("render: unknown renderer")

	// ErrInvalidKey is returned for a key the output format cannot express.
	ErrInvalidKey = errors.New("render: invalid key")

	// ErrUnsupportedValue is returned for values that are not part of a
	// configuration tree, such as channels or functions.
	ErrUnsupportedValue = errors.New("render: unsupported value")
)
