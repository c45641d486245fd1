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


package knowledge

import "errors"

var (
	// ErrNilExtractor indicates the constructor was created without a
	// reasoning backend.
	ErrNilExtractor = errors.New("extractor must not be nil")

	// ErrNoDocumentID indicates an extraction request without a document id.
	ErrNoDocumentID = errors.New("document id must not be empty")

	// ErrNoPages indicates an extraction request without any pages.
	ErrNoPages = errors.New("at least one page is required")

	// ErrNoRepository indicates SaveKnowledge was called on a constructor
	// built without a graph repository.
	ErrNoRepository = errors.New("no graph repository configured")
)
