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


// Package postgres implements storage.ArticleRepository on PostgreSQL using
// lib/pq.
//
// Articles live in a single table keyed by guid with btree indexes on title
// and pub_date and GIN indexes on the topics and entities arrays. Ensure
// creates the table and indexes when they are missing.
package postgres
