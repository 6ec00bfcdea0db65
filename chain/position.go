// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package chain

import "github.com/albertocavalcante/chainconf/order"

// Position registers placement directives for one key of an OrderableMap.
// Each call replaces the key's previous directive.
type Position struct {
	key string
	m   *OrderableMap
}

// Key returns the key this handle positions.
func (p *Position) Key() string {
	return p.key
}

// Before places the key immediately before relative.
func (p *Position) Before(relative string) *Position {
	p.m.directives.Place(p.key, order.Before, relative)
	return p
}

// After places the key immediately after relative.
func (p *Position) After(relative string) *Position {
	p.m.directives.Place(p.key, order.After, relative)
	return p
}
