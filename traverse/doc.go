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


// Package traverse provides a configurable breadth-first walker over
// hierarchy objects.
//
// A Traverser is driven entirely by resolver functions: a children
// resolver for forward walks, a parent resolver for reverse walks,
// and a cross-link resolver for connections outside the containment
// tree. Forward, reverse, and cross semantics are expressed purely by
// resolver choice; the algorithm is always strict FIFO level-order.
// A visited set keyed by object identity breaks cycles, so traversal
// is safe on graphs with back-references, not only strict trees.
//
// Traversal is a pure, lazy generator over current state: it never
// fails, and ceasing to consume the sequence is always a safe
// cancellation.
package traverse
