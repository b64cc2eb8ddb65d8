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


// Package ranking scores candidate documents against a query and produces
// an ordered, explainable, partitioned result set.
//
// The Scorer turns two texts into a composite 0-100 match percentage
// (cosine similarity of their embeddings, optionally blended with a lexical
// overlap signal). The Engine orchestrates a whole run: pre-flight
// configuration checks, one shared query embedding, parallel per-document
// scoring with failure isolation, a deterministic stable sort, and the
// threshold/keyword partition into shortlisted and rejected records.
//
// For identical inputs and configuration, a run is bit-reproducible: tie
// order is pinned to input order and keyword tie order to first occurrence.
package ranking
