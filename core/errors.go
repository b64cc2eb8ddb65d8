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


package core

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the base class for pre-flight configuration errors.
// All configuration sentinels wrap it, so callers can match the whole
// category with errors.Is(err, core.ErrConfiguration).
var ErrConfiguration = errors.New("configuration error")

var (
	// ErrEmptyQuery indicates the query text is empty or whitespace-only.
	ErrEmptyQuery = fmt.Errorf("%w: query text is empty", ErrConfiguration)

	// ErrNoDocuments indicates the document sequence is empty.
	ErrNoDocuments = fmt.Errorf("%w: no documents to rank", ErrConfiguration)

	// ErrNegativeThreshold indicates the shortlist threshold is below zero.
	// Thresholds above 100 are legal; they are simply never satisfied.
	ErrNegativeThreshold = fmt.Errorf("%w: threshold must not be negative", ErrConfiguration)

	// ErrInvalidTopSentences indicates a negative supporting-sentence count.
	ErrInvalidTopSentences = fmt.Errorf("%w: top sentences must not be negative", ErrConfiguration)

	// ErrInvalidKeywordTopN indicates a non-positive keyword cap.
	ErrInvalidKeywordTopN = fmt.Errorf("%w: keyword top-n must be positive", ErrConfiguration)
)
