// Package reextract re-runs topic and entity extraction over articles that
// are already stored.
//
// Stored topics and entities reflect the lexicon and rules in force when the
// article was ingested. After the extractor changes, Reextractor walks the
// store page by page, enriches each article again and writes it back with an
// upsert, so CreatedAt is preserved and UpdatedAt advances.
package reextract
