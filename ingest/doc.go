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


// Package ingest turns files into plain-text candidate documents.
//
// The ranking core is indifferent to where text came from; this package is
// the upstream collaborator that honors the boundary contract: every input
// file produces a (name, text) pair, and a file whose extraction fails
// produces an empty-text placeholder rather than aborting the batch.
package ingest
