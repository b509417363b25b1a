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


// Package storage provides the storage abstraction layer for gleaner.
//
// This package defines the ArticleRepository interface that decouples storage
// implementation from the ingestion and search logic. It allows different
// storage backends (BadgerDB, PostgreSQL, in-memory BadgerDB for tests) to be
// used interchangeably.
//
// # Architecture
//
// The storage layer follows the Repository pattern:
//
//   - ArticleRepository: idempotent bulk upsert keyed by GUID and filtered, paginated queries
//   - Filter / Query: conjunctive filter across fields, disjunctive within a multi-valued field
//   - BulkResult: per-batch summary of an unordered bulk write
//
// # Bulk Writes
//
// Upsert is unordered. Each article is written independently so a failure on
// one article never prevents the others in the batch from being written. When
// any article fails, Upsert returns the BulkResult together with an error that
// wraps ErrBulkWriteFailed. Callers should treat the batch as best-effort and
// rely on the next ingestion run to retry: writing the same batch again is
// idempotent apart from UpdatedAt.
//
// # Usage
//
// Create a repository instance:
//
//	backend, err := badger.OpenBackend("/path/to/db", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	repo := badger.NewArticleRepository(backend)
//	defer repo.Close()
//
// Use in tests with in-memory storage:
//
//	repo, err := badger.NewMemoryRepository()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer repo.Close()
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation
// and timeout support. Pass context.Background() for operations
// without specific timeout requirements.
package storage
