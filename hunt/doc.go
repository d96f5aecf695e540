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


// Package hunt layers conjunctive predicate matching and scoring on
// top of graph traversal.
//
// A Context describes what is being searched for: optional match keys
// (identifier, data, structural hash, semantic hash) plus an optional
// custom predicate, all combined conjunctively. A Hunter wraps a
// required predicate with an optional scorer and an optional
// match-observed callback. An Engine drives a traverser and evaluates
// every registered hunter, in registration order, against every
// visited object, yielding match contexts lazily.
//
// Matching never fails for data-absence reasons: absence yields an
// empty sequence, not an error.
package hunt
