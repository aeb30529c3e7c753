// Package store persists articles, feed history and feed health to an
// embedded SQLite database.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"policyradar/internal/core"
)

const schemaVersion = 1

// Store is the SQLite-backed article store.
type Store struct {
	db   *sql.DB
	path string
}

// ArticleKey is the (url, title) pair used for cross-run similarity checks.
type ArticleKey struct {
	URL   string
	Title string
}

// NewStore opens (creating if needed) the database under dataDir and runs
// schema initialization.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "policyradar.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return s, nil
}

// initialize creates the schema, gated on PRAGMA user_version so future
// migrations have a hook point.
func (s *Store) initialize() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version >= schemaVersion {
		return nil
	}

	statements := []string{
		`CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS sources (
			name TEXT PRIMARY KEY,
			url TEXT NOT NULL,
			category TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS feed_history (
			url TEXT PRIMARY KEY,
			last_success DATETIME,
			last_error TEXT,
			error_count INTEGER NOT NULL DEFAULT 0,
			success_count INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS feed_health_v2 (
			url TEXT PRIMARY KEY,
			total_attempts INTEGER NOT NULL DEFAULT 0,
			successful_attempts INTEGER NOT NULL DEFAULT 0,
			consecutive_failures INTEGER NOT NULL DEFAULT 0,
			last_success DATETIME,
			last_failure DATETIME,
			last_error_type TEXT,
			is_active INTEGER NOT NULL DEFAULT 1
		);`,
		`CREATE TABLE IF NOT EXISTS articles (
			hash TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			url TEXT NOT NULL,
			source TEXT NOT NULL,
			category TEXT NOT NULL,
			published_date DATETIME,
			summary TEXT,
			content TEXT,
			tags TEXT,
			keywords TEXT,
			policy_relevance REAL,
			source_reliability REAL,
			recency REAL,
			sector_specificity REAL,
			overall_relevance REAL,
			metadata TEXT,
			created_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS user_preferences (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS article_interactions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			article_hash TEXT NOT NULL,
			interaction TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_articles_category ON articles(category);`,
		`CREATE INDEX IF NOT EXISTS idx_articles_overall ON articles(overall_relevance);`,
		`CREATE INDEX IF NOT EXISTS idx_articles_published ON articles(published_date);`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	if _, err := s.db.Exec(
		"INSERT OR IGNORE INTO schema_version (version, applied_at) VALUES (?, ?)",
		schemaVersion, time.Now(),
	); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}
	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("failed to set schema version: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SaveArticle upserts one article keyed by its storage hash.
func (s *Store) SaveArticle(a *core.Article) error {
	tags, keywords, metadata, err := encodeJSONFields(a)
	if err != nil {
		return err
	}

	var published interface{}
	if a.PublishedDate != nil {
		published = *a.PublishedDate
	}

	_, err = s.db.Exec(insertArticleSQL,
		a.StorageHash(), a.Title, a.URL, a.Source, a.Category, published,
		a.Summary, a.Content, tags, keywords,
		a.Scores.PolicyRelevance, a.Scores.SourceReliability, a.Scores.Recency,
		a.Scores.SectorSpecificity, a.Scores.Overall, metadata, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to save article: %w", err)
	}
	return nil
}

const insertArticleSQL = `
	INSERT OR REPLACE INTO articles
	(hash, title, url, source, category, published_date, summary, content,
	 tags, keywords, policy_relevance, source_reliability, recency,
	 sector_specificity, overall_relevance, metadata, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

func encodeJSONFields(a *core.Article) (tags, keywords, metadata string, err error) {
	t, err := json.Marshal(a.Tags)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to encode tags: %w", err)
	}
	k, err := json.Marshal(a.Keywords)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to encode keywords: %w", err)
	}
	m, err := json.Marshal(a.Metadata)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to encode metadata: %w", err)
	}
	return string(t), string(k), string(m), nil
}

// SaveArticles upserts a batch in one transaction and returns the number
// saved.
func (s *Store) SaveArticles(articles []core.Article) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertArticleSQL)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	saved := 0
	for i := range articles {
		a := &articles[i]
		tags, keywords, metadata, err := encodeJSONFields(a)
		if err != nil {
			return saved, err
		}
		var published interface{}
		if a.PublishedDate != nil {
			published = *a.PublishedDate
		}
		if _, err := stmt.Exec(
			a.StorageHash(), a.Title, a.URL, a.Source, a.Category, published,
			a.Summary, a.Content, tags, keywords,
			a.Scores.PolicyRelevance, a.Scores.SourceReliability, a.Scores.Recency,
			a.Scores.SectorSpecificity, a.Scores.Overall, metadata, now,
		); err != nil {
			return saved, fmt.Errorf("failed to save article %q: %w", a.Title, err)
		}
		saved++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return saved, nil
}

// RecentArticles returns articles created within the window, highest
// overall relevance first, capped at limit.
func (s *Store) RecentArticles(window time.Duration, limit int) ([]core.Article, error) {
	rows, err := s.db.Query(`
		SELECT title, url, source, category, published_date, summary, content,
		       tags, keywords, policy_relevance, source_reliability, recency,
		       sector_specificity, overall_relevance, metadata
		FROM articles
		WHERE created_at >= ?
		ORDER BY overall_relevance DESC
		LIMIT ?`,
		time.Now().Add(-window), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	var out []core.Article
	for rows.Next() {
		var a core.Article
		var published sql.NullTime
		var summary, content, tags, keywords, metadata sql.NullString
		if err := rows.Scan(
			&a.Title, &a.URL, &a.Source, &a.Category, &published,
			&summary, &content, &tags, &keywords,
			&a.Scores.PolicyRelevance, &a.Scores.SourceReliability,
			&a.Scores.Recency, &a.Scores.SectorSpecificity, &a.Scores.Overall,
			&metadata,
		); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		if published.Valid {
			t := published.Time
			a.PublishedDate = &t
		}
		a.Summary = summary.String
		a.Content = content.String
		if tags.String != "" {
			if err := json.Unmarshal([]byte(tags.String), &a.Tags); err != nil {
				return nil, fmt.Errorf("failed to decode tags: %w", err)
			}
		}
		if keywords.String != "" {
			if err := json.Unmarshal([]byte(keywords.String), &a.Keywords); err != nil {
				return nil, fmt.Errorf("failed to decode keywords: %w", err)
			}
		}
		if metadata.String != "" {
			if err := json.Unmarshal([]byte(metadata.String), &a.Metadata); err != nil {
				return nil, fmt.Errorf("failed to decode metadata: %w", err)
			}
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// RecentArticleKeys returns the (url, title) pairs of articles created
// within the window, for cross-run near-duplicate checks.
func (s *Store) RecentArticleKeys(window time.Duration) ([]ArticleKey, error) {
	rows, err := s.db.Query(
		"SELECT url, title FROM articles WHERE created_at >= ?",
		time.Now().Add(-window),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query article keys: %w", err)
	}
	defer rows.Close()

	var out []ArticleKey
	for rows.Next() {
		var k ArticleKey
		if err := rows.Scan(&k.URL, &k.Title); err != nil {
			return nil, fmt.Errorf("failed to scan article key: %w", err)
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

// UpsertSource mirrors a registry entry into the sources table.
func (s *Store) UpsertSource(src core.Source) error {
	_, err := s.db.Exec(`
		INSERT INTO sources (name, url, category, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET url = excluded.url,
			category = excluded.category, updated_at = excluded.updated_at`,
		src.Name, src.URL, src.Category, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert source: %w", err)
	}
	return nil
}

// SourceCount reports the number of mirrored registry sources.
func (s *Store) SourceCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM sources").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count sources: %w", err)
	}
	return n, nil
}

// RecordFeedOutcome updates the feed_history row for one fetch outcome.
func (s *Store) RecordFeedOutcome(url string, success bool, errMsg string) error {
	var err error
	if success {
		_, err = s.db.Exec(`
			INSERT INTO feed_history (url, last_success, success_count)
			VALUES (?, ?, 1)
			ON CONFLICT(url) DO UPDATE SET last_success = excluded.last_success,
				success_count = success_count + 1`,
			url, time.Now(),
		)
	} else {
		_, err = s.db.Exec(`
			INSERT INTO feed_history (url, last_error, error_count)
			VALUES (?, ?, 1)
			ON CONFLICT(url) DO UPDATE SET last_error = excluded.last_error,
				error_count = error_count + 1`,
			url, errMsg,
		)
	}
	if err != nil {
		return fmt.Errorf("failed to record feed outcome: %w", err)
	}
	return nil
}

// LoadFeedHealth reads all persisted feed health records.
func (s *Store) LoadFeedHealth() ([]core.FeedHealth, error) {
	rows, err := s.db.Query(`
		SELECT url, total_attempts, successful_attempts, consecutive_failures,
		       last_success, last_failure, last_error_type, is_active
		FROM feed_health_v2`)
	if err != nil {
		return nil, fmt.Errorf("failed to query feed health: %w", err)
	}
	defer rows.Close()

	var out []core.FeedHealth
	for rows.Next() {
		var h core.FeedHealth
		var lastSuccess, lastFailure sql.NullTime
		var lastErrorType sql.NullString
		if err := rows.Scan(
			&h.URL, &h.TotalAttempts, &h.SuccessfulAttempts,
			&h.ConsecutiveFailures, &lastSuccess, &lastFailure,
			&lastErrorType, &h.Active,
		); err != nil {
			return nil, fmt.Errorf("failed to scan feed health: %w", err)
		}
		if lastSuccess.Valid {
			t := lastSuccess.Time
			h.LastSuccess = &t
		}
		if lastFailure.Valid {
			t := lastFailure.Time
			h.LastFailure = &t
		}
		h.LastErrorType = lastErrorType.String
		out = append(out, h)
	}
	return out, rows.Err()
}

// SaveFeedHealth upserts the given health records in one transaction.
func (s *Store) SaveFeedHealth(records []core.FeedHealth) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO feed_health_v2
		(url, total_attempts, successful_attempts, consecutive_failures,
		 last_success, last_failure, last_error_type, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, h := range records {
		var lastSuccess, lastFailure interface{}
		if h.LastSuccess != nil {
			lastSuccess = *h.LastSuccess
		}
		if h.LastFailure != nil {
			lastFailure = *h.LastFailure
		}
		if _, err := stmt.Exec(
			h.URL, h.TotalAttempts, h.SuccessfulAttempts, h.ConsecutiveFailures,
			lastSuccess, lastFailure, h.LastErrorType, h.Active,
		); err != nil {
			return fmt.Errorf("failed to save feed health for %s: %w", h.URL, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Prune deletes articles older than the retention window and returns how
// many rows were removed.
func (s *Store) Prune(retention time.Duration) (int64, error) {
	res, err := s.db.Exec(
		"DELETE FROM articles WHERE created_at < ?",
		time.Now().Add(-retention),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune articles: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count pruned rows: %w", err)
	}
	return n, nil
}
