package corpus

import (
	"database/sql"
	"fmt"
	"sort"

	_ "modernc.org/sqlite"
)

const SchemaSQL = `
CREATE TABLE IF NOT EXISTS word_frequencies (
    word TEXT PRIMARY KEY,
    count INTEGER NOT NULL
);
`

// Open opens the corpus database at path, creating the schema if needed.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(SchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

// SaveCounts replaces the stored word frequencies with counts.
func SaveCounts(dbPath string, counts map[string]int) error {
	conn, err := Open(dbPath)
	if err != nil {
		return err
	}
	defer conn.Close()

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM word_frequencies`); err != nil {
		return fmt.Errorf("clear frequencies: %w", err)
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Strings(words)
	for _, w := range words {
		if _, err := tx.Exec(`INSERT INTO word_frequencies(word, count) VALUES(?,?)`, w, counts[w]); err != nil {
			return fmt.Errorf("insert frequency: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Load reads the stored frequencies into a ranked table. Ties on count
// break alphabetically so ranks stay stable across loads.
func Load(dbPath string) (*Table, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.Query(`SELECT word FROM word_frequencies ORDER BY count DESC, word ASC`)
	if err != nil {
		return nil, fmt.Errorf("query frequencies: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scan frequency: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate frequencies: %w", err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("corpus at %s has no words", dbPath)
	}
	return New(words), nil
}
