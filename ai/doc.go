// Copyright 2025 TalentSift
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


// Package ai provides abstractions for the embedding services used by the
// screener.
//
// The ranking engine depends only on the Embedder interface, never on a
// concrete backend, so scoring logic can be tested without a model and
// backends can be swapped without touching the engine.
//
// # Implementation packages
//
//   - ai/openai: production implementation over OpenAI-compatible APIs
//     (Ollama, LocalAI, vLLM, OpenAI itself)
//   - ai/mock: deterministic test double with call counting
//
// The CachedEmbedder in this package decorates any Embedder with memory and
// persistent caching; since running the embedding model is the expensive
// part of a screening run, production wiring always goes through it.
//
// Public constructors (openai.NewProvider, openai.NewEmbedder) return
// interface types to enforce abstraction. Test constructors
// (mock.NewMockEmbedder) return concrete types so tests can inject behavior
// and assert call counts.
package ai
