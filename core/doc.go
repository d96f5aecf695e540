// Copyright 2025 Poiesic Systems
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


// Package core implements the vectis hierarchical object model.
//
// The model is a typed containment tree with seven levels, from the
// outermost container down to terminal values:
//
//	Matrix ⊇ Layer ⊇ Net ⊇ Node ⊇ Tree ⊇ Branch ⊇ Leaf
//
// Each level accepts exactly one kind of child; composing a child of
// any other kind is a type-contract violation. Every object carries a
// process-unique identifier, an optional parent back-reference, an
// annotation bag for caller metadata, and an ordered child sequence.
// Two hashes are derived lazily from current state: a structural hash
// (content, child ids, parent id) used for equality and change
// detection, and a semantic hash (content only) that is stable across
// reattachment.
//
// Containers may carry a RetentionPolicy, applied after every insert.
//
// All tree mutation is single-writer by design; callers that mutate
// one hierarchy from multiple goroutines must supply their own
// locking. The identity Registry is the only concurrency-safe
// component in this package.
package core
