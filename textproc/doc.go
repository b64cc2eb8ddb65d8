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


// Package textproc segments raw document text into sentences and extracts
// frequency-ranked keyword sets.
//
// Everything here is pure string work: deterministic, allocation-light, and
// free of error conditions. The ranking engine uses sentence segmentation
// for explainability (top supporting sentences) and keyword extraction both
// for the keyword-overlap audit trail and for shortlist filtering.
package textproc
