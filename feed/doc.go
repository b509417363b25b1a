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


// Package feed fetches syndication feeds and maps their items onto articles.
//
// A Client fetches one URL per call. Every failure is returned as a
// *FetchError whose Kind says what went wrong:
//
//	InvalidURL          the URL is not http(s)://<non-whitespace>; nothing was fetched
//	NetworkUnreachable  DNS lookup or connection failed
//	Timeout             the request exceeded the per-call deadline
//	FetchFailed         anything else, including HTTP status and parse errors
//
// Callers decide what a failure means. The ingestion pipeline logs it and
// carries on with the next source.
package feed
