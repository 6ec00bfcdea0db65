// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package load

import "errors"

var (
	// ErrUnsupportedFormat is returned for a format or file extension the
	// loader does not read.
	ErrUnsupportedFormat = errors.New("load: unsupported format")

	// ErrNotObject is returned when a document's top level is not an object.
	ErrNotObject = errors.New("load: top level is not an object")
)
