// Copyright 2026 multiversion Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package multiversion

import "code.hybscloud.com/atomix"

// Cached is the fast-path dispatcher: it resolves the winning
// implementation once and serves every later call from a single atomic
// slot. Use it for ordinary call sites where one function value of type F
// can represent the call; generic call sites need Chain or Targets instead.
//
// The slot holds 0 while unresolved, otherwise the flat implementation
// index plus one (the default sits at index len(specs)). Resolution is a
// pure function of the host CPU, so concurrent first calls may each resolve
// and store, but they all store the same value: the race is benign and the
// slot is written with relaxed ordering, matching the resolve-once contract
// without a lock. The transition is one-way; a Cached never re-resolves.
type Cached[F any] struct {
	table *Table[F]
	slot  atomix.Int32
}

// NewCached wraps a built table in a cached dispatcher. Each call site gets
// its own Cached; the slot is never shared.
func NewCached[F any](t *Table[F]) *Cached[F] {
	return &Cached[F]{table: t}
}

// Func returns the implementation for the running CPU, resolving it on
// first use. The common path is one relaxed atomic load and an index.
func (c *Cached[F]) Func() F {
	v := c.slot.LoadRelaxed()
	if v == 0 {
		idx := c.table.SelectIndex()
		if idx < 0 {
			idx = len(c.table.specs)
		}
		v = int32(idx) + 1
		c.slot.StoreRelaxed(v)
	}
	return c.table.impl(int(v) - 1)
}

// Resolved reports whether this call site has resolved its implementation.
func (c *Cached[F]) Resolved() bool {
	return c.slot.LoadRelaxed() != 0
}

// Table returns the dispatch table behind this call site.
func (c *Cached[F]) Table() *Table[F] {
	return c.table
}
