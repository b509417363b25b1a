// Package ingestion orchestrates one pass over the configured feed sources.
//
// A Pipeline run:
//   - fetches every source concurrently on a bounded worker pool, each with
//     its own request timeout
//   - records classified per-source failures and carries on
//   - normalizes and validates each fetched article, dropping invalid ones
//   - derives topics and entities from each article's description
//   - submits the whole batch to the store in one bulk upsert
//
// A failing source never aborts a run. A storage failure is the one error
// Run returns; the report describing the run is returned alongside it so the
// caller can still see what was fetched.
package ingestion
