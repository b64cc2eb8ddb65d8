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


// Package storage defines the persistence boundary for computed embedding
// vectors.
//
// Embedding the same text with the same model always yields the same vector,
// so vectors are cached under content-derived IDs and reused across runs.
// The VectorCache interface keeps the ranking engine independent of the
// backing store; the badger sub-package provides the production
// implementation. Serialization uses the MUS format.
package storage
