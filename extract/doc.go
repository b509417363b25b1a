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


// Package extract derives topic and entity terms from article text.
//
// Extraction is a fixed heuristic built on two black-box capabilities:
//
//   - Tagger: yields noun, verb and adjective candidate terms
//   - Recognizer: yields person, place and organization spans
//
// RuleTagger is the default implementation of both. It uses closed-class word
// lists, suffix rules, capitalisation and a small gazetteer. It is not a
// statistical model and makes no attempt at one.
//
// # Topics
//
// Extractor.Topics concatenates nouns, verbs and adjectives, strips every
// character that is not an ASCII letter or digit, drops terms of four or fewer
// characters, lowercases the rest and ranks them by frequency. Equal
// frequencies are ordered by first occurrence in the concatenated candidate
// list. At most core.MaxTopics terms are returned.
//
// # Entities
//
// Extractor.Entities concatenates people, places and organizations in that
// order with non-alphanumeric characters stripped. Entities are neither ranked
// nor deduplicated: a name mentioned twice appears twice.
//
// # Failure
//
// Extraction never returns an error. A capability failure yields an empty
// result for the affected category and is logged at debug level.
package extract
