package db

import (
	"context"
	"database/sql"

	log "github.com/honki-bobo/synthv-translator/logger"
	_ "github.com/mattn/go-sqlite3"
)

// CacheDB memoizes transcriptions in a local sqlite file. Song lyrics
// repeat the same words and syllables heavily, so a hit here skips the
// round trip to the external engine entirely.
type CacheDB struct {
	ctx context.Context
	DB  *sql.DB
}

func NewCacheDB(ctx context.Context, path string) (CacheDB, *log.Status) {
	var c CacheDB
	c.ctx = ctx
	var err error
	c.DB, err = sql.Open(`sqlite3`, path)
	if err != nil {
		return c, log.Error(ctx, 500, err, `Error opening cache database`, path)
	}
	query := `CREATE TABLE IF NOT EXISTS ipa_cache (
		lang TEXT NOT NULL,
		token TEXT NOT NULL,
		ipa TEXT NOT NULL,
		PRIMARY KEY (lang, token))`
	_, err = c.DB.Exec(query)
	if err != nil {
		return c, log.Error(ctx, 500, err, query)
	}
	return c, nil
}

func (c *CacheDB) Close() {
	_ = c.DB.Close()
}

// SelectIPA returns the cached transcription for a token, and whether
// one was found.
func (c *CacheDB) SelectIPA(lang string, token string) (string, bool, *log.Status) {
	var result string
	query := `SELECT ipa FROM ipa_cache WHERE lang = ? AND token = ?`
	rows, err := c.DB.Query(query, lang, token)
	if err != nil {
		return result, false, log.Error(c.ctx, 500, err, query)
	}
	defer rows.Close()
	var found bool
	if rows.Next() {
		err = rows.Scan(&result)
		if err != nil {
			return result, false, log.Error(c.ctx, 500, err, query)
		}
		found = true
	}
	err = rows.Err()
	if err != nil {
		log.Warn(c.ctx, err, query)
	}
	return result, found, nil
}

func (c *CacheDB) InsertIPA(lang string, token string, ipa string) *log.Status {
	query := `INSERT OR REPLACE INTO ipa_cache (lang, token, ipa) VALUES (?, ?, ?)`
	_, err := c.DB.Exec(query, lang, token, ipa)
	if err != nil {
		return log.Error(c.ctx, 500, err, query)
	}
	return nil
}
