// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package chain

// Builder is implemented by every chainable builder.
// Embed Chainable in a struct to make its pointer a Builder.
type Builder interface {
	// End returns the parent the builder was created with, or nil.
	End() any

	chainable() *Chainable
}

// Configurer is implemented by builders that convert to plain values.
type Configurer interface {
	ToConfig() any
}

// Chainable links a builder to its parent and to the position handle it
// received when stored in an OrderableMap.
type Chainable struct {
	parent   any
	position *Position
}

// NewChainable creates a Chainable whose End returns parent.
func NewChainable(parent any) *Chainable {
	return &Chainable{parent: parent}
}

// End returns the parent, or nil at the root.
func (c *Chainable) End() any {
	return c.parent
}

// Batch calls fn with c and returns c.
func (c *Chainable) Batch(fn func(*Chainable)) *Chainable {
	return batch(c, fn)
}

// When calls whenTrue if cond holds and whenFalse otherwise. Nil branches
// are skipped.
func (c *Chainable) When(cond bool, whenTrue, whenFalse func(*Chainable)) *Chainable {
	return when(c, cond, whenTrue, whenFalse)
}

// Before asks the OrderableMap holding this builder to place it immediately
// before relative.
func (c *Chainable) Before(relative string) error {
	if c.position == nil {
		return ErrDetached
	}
	c.position.Before(relative)
	return nil
}

// After asks the OrderableMap holding this builder to place it immediately
// after relative.
func (c *Chainable) After(relative string) error {
	if c.position == nil {
		return ErrDetached
	}
	c.position.After(relative)
	return nil
}

// Attached reports whether the builder has been stored in an OrderableMap.
func (c *Chainable) Attached() bool {
	return c.position != nil
}

func (c *Chainable) chainable() *Chainable { return c }

func (c *Chainable) attach(p *Position) { c.position = p }

func batch[B any](b B, fn func(B)) B {
	if fn != nil {
		fn(b)
	}
	return b
}

func when[B any](b B, cond bool, whenTrue, whenFalse func(B)) B {
	if cond {
		return batch(b, whenTrue)
	}
	return batch(b, whenFalse)
}

// toConfig converts nested builders and leaves everything else untouched.
func toConfig(v any) any {
	if c, ok := v.(Configurer); ok {
		return c.ToConfig()
	}
	return v
}
