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


package storage

import "errors"

var (
	// ErrClosed is returned when an operation is attempted on a closed cache.
	ErrClosed = errors.New("vector cache is closed")

	// ErrCorruptEntry is returned when a cached value cannot be decoded.
	ErrCorruptEntry = errors.New("corrupt vector cache entry")
)
