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


// Package storage provides the persistence abstraction for extracted
// knowledge graphs.
//
// This package defines repository interfaces that decouple storage
// implementation from the extraction pipeline, so different backends
// (BadgerDB, in-memory, etc.) can be used interchangeably.
//
// # Constructor Return Type Pattern
//
// Public backend constructors return the storage interfaces rather than
// concrete types:
//
//	repo, err := badger.NewGraphRepository(backend)  // storage.GraphRepository
//
// This keeps consumers decoupled from BadgerDB specifics and lets tests
// substitute doubles without modification. Internal constructors may return
// concrete types.
//
// # Upsert semantics
//
// Graph nodes are content-addressed: extracting the same concept from two
// pages produces the same id. Upserts therefore merge rather than
// duplicate. A re-upserted node keeps its original CreatedAt and gets a
// fresh UpdatedAt.
package storage
