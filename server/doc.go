// Package server exposes health, manual fetch and search over HTTP.
//
//	GET /                 health check
//	GET /fetch-articles   run the ingestion pipeline now
//	GET /search-articles  filtered, paginated search
//
// Search accepts title, startDate, endDate, topics, entities, page and limit
// query parameters. topics and entities are comma separated.
package server
