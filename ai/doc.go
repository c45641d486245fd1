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


// Package ai provides abstractions for the reasoning backend used by the
// extraction pipeline.
//
// The package defines the structured contract between agents and the
// language-model backend. Agents never talk to a model directly; they depend
// on these interfaces, which keeps the pipeline testable with fakes.
//
// # Interfaces
//
//   - Extractor: turns page text (plus optional taxonomy and domain hints)
//     into structured concepts, entities and relationships with confidence
//     scores.
//   - Summarizer: produces a comprehensive page summary. This is an upstream
//     page-content producer; the core pipeline only consumes its output.
//   - Provider: aggregates the services for initialization and lifecycle.
//
// # Implementation Packages
//
//   - ai/openai: production implementation using OpenAI-compatible chat APIs
//     through langchaingo.
//   - ai/mock: test doubles for unit testing without external services.
//
// Public constructors in ai/openai return interface types to enforce
// abstraction; mock constructors return concrete types so tests can inject
// behavior and assert call counts.
package ai
