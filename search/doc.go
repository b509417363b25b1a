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


// Package search turns request parameters into article queries.
//
// Parameters arrive as strings, typically from a URL query. Page and limit
// are coerced to their defaults when missing, non-numeric or less than one;
// they never cause an error. Dates accept either a calendar date
// (2006-01-02) or an RFC 3339 timestamp. A calendar-date endDate covers the
// whole of that day. A malformed date is the only parameter error and is
// reported as ErrInvalidQueryParameter.
package search
