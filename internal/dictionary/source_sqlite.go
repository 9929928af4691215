package dictionary

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/ipatrans/internal/registry"
)

// SQLiteSource reads dictionaries from a directory of per-language SQLite
// databases built by the ipadict tool. Each database is named <code>.db and
// holds a single entries(token, ipa) table.
type SQLiteSource struct {
	dir string
}

// NewSQLiteSource creates a source backed by the given database directory.
func NewSQLiteSource(dir string) *SQLiteSource {
	return &SQLiteSource{dir: dir}
}

// Load reads all entries of a language's dictionary database.
func (s *SQLiteSource) Load(lang registry.Language) (Dict, error) {
	path := filepath.Join(s.dir, databaseName(lang))

	// sql.Open would silently create an empty database for a missing file
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %v", ErrUnavailable, path, err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT token, ipa FROM entries")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query %s: %v", ErrUnavailable, path, err)
	}
	defer rows.Close()

	dict := make(Dict)
	for rows.Next() {
		var token, ipa string
		if err := rows.Scan(&token, &ipa); err != nil {
			return nil, fmt.Errorf("%w: failed to scan %s: %v", ErrUnavailable, path, err)
		}
		dict[token] = ipa
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", ErrUnavailable, path, err)
	}

	return dict, nil
}

// databaseName derives the database filename from the language's dictionary
// source reference, e.g. "en_US.json" -> "en_US.db".
func databaseName(lang registry.Language) string {
	name := strings.TrimSuffix(lang.Source, filepath.Ext(lang.Source))
	if name == "" {
		name = lang.Code
	}
	return name + ".db"
}
