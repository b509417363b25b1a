package postgres

const tableName = "articles"

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS articles (
		guid        TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		pub_date    TIMESTAMPTZ NOT NULL,
		source_url  TEXT NOT NULL,
		topics      TEXT[] NOT NULL DEFAULT '{}',
		entities    TEXT[] NOT NULL DEFAULT '{}',
		author      TEXT[] NOT NULL DEFAULT '{}',
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS articles_title_idx ON articles (title)`,
	`CREATE INDEX IF NOT EXISTS articles_pub_date_idx ON articles (pub_date DESC, guid DESC)`,
	`CREATE INDEX IF NOT EXISTS articles_topics_idx ON articles USING GIN (topics)`,
	`CREATE INDEX IF NOT EXISTS articles_entities_idx ON articles USING GIN (entities)`,
}

const articleColumns = `guid, title, description, pub_date, source_url, topics, entities, author, created_at, updated_at`

// upsertStatement replaces every field except created_at on conflict.
// xmax is zero only for a freshly inserted row.
const upsertStatement = `
	INSERT INTO articles (` + articleColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
	ON CONFLICT (guid) DO UPDATE SET
		title = EXCLUDED.title,
		description = EXCLUDED.description,
		pub_date = EXCLUDED.pub_date,
		source_url = EXCLUDED.source_url,
		topics = EXCLUDED.topics,
		entities = EXCLUDED.entities,
		author = EXCLUDED.author,
		updated_at = EXCLUDED.updated_at
	RETURNING (xmax = 0) AS inserted, created_at, updated_at`
