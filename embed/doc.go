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


// Package embed implements vector.Vectorizer against OpenAI-compatible
// embedding APIs (Ollama, LocalAI, vLLM, and hosted endpoints).
//
// A hierarchy object is rendered to text from its payload and
// annotations, then embedded through the configured model. Use
// embed/mock in tests to avoid a live endpoint.
package embed
