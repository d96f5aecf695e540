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


package core

// Storage is the collaborator a Layer binds to. LoadLayer and
// UnloadLayer are invoked exactly once per activation transition from
// the scoped lifecycle hooks. The core neither interprets nor
// recovers from failures these calls raise.
type Storage interface {
	LoadLayer(layer *Layer) error
	UnloadLayer(layer *Layer) error
}

// ObjectFactory builds hierarchy objects from raw data. The core
// defines the contract only; concrete factories live with the caller.
type ObjectFactory interface {
	Create(data any, annotations map[string]any) (Object, error)
}
