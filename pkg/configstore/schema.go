package configstore

// Tables that must exist for the database to count as installed.
var requiredTables = []string{"config", "config_i18n"}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS config (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE CHECK(length(name) > 0),
		value TEXT NOT NULL DEFAULT '',
		secured INTEGER NOT NULL DEFAULT 1,
		hidden INTEGER NOT NULL DEFAULT 1,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS config_i18n (
		id INTEGER NOT NULL REFERENCES config(id) ON DELETE CASCADE,
		locale TEXT NOT NULL DEFAULT 'en_US',
		title TEXT,
		description TEXT,
		PRIMARY KEY (id, locale)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_config_i18n_locale ON config_i18n(locale);`,
}

const (
	countTablesQuery = `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN (?, ?)`

	// Left join so entries without a translation keep empty strings.
	collectQuery = `SELECT c.name, COALESCE(i.title, ''), COALESCE(i.description, '')
		FROM config c
		LEFT JOIN config_i18n i ON i.id = c.id AND i.locale = ?
		ORDER BY c.id`

	upsertConfigQuery = `INSERT INTO config (name, value, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	selectConfigIDQuery = `SELECT id FROM config WHERE name = ?`

	upsertI18nQuery = `INSERT INTO config_i18n (id, locale, title, description)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id, locale) DO UPDATE SET title = excluded.title, description = excluded.description`
)
