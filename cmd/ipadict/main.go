package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/ipatrans/internal"
	"codeberg.org/snonux/ipatrans/internal/dictionary"
	"codeberg.org/snonux/ipatrans/internal/registry"
)

var (
	// Flags
	dataDir   string
	dbDir     string
	checkOnly bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ipadict [language-code...]",
	Short: "Dictionary maintenance for ipatrans",
	Long: `ipadict checks the JSON dictionary files used by ipatrans and converts
them into the SQLite format read by the --sqlite dictionary source.

Without language codes it processes every language in the registry.

Example:
  ipadict --check                # Parse all JSON dictionaries, print stats
  ipadict yue zh_hans            # Build yue.db and zh_hans.db
  ipadict --db-dir /var/lib/ipa  # Write databases to another directory`,
	Args:    cobra.ArbitraryArgs,
	RunE:    runCommand,
	Version: internal.Version,
}

func init() {
	rootCmd.Flags().StringVar(&dataDir, "data-dir", "data", "Directory holding the JSON dictionary files")
	rootCmd.Flags().StringVar(&dbDir, "db-dir", "", "Directory for the SQLite databases (default: data dir)")
	rootCmd.Flags().BoolVar(&checkOnly, "check", false, "Only parse and report, do not build databases")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string) error {
	reg := registry.Default()

	codes := args
	if len(codes) == 0 {
		codes = reg.Codes()
	}
	if dbDir == "" {
		dbDir = dataDir
	}

	source := dictionary.NewDirSource(dataDir)

	for _, code := range codes {
		lang, ok := reg.Lookup(code)
		if !ok {
			return fmt.Errorf("unsupported language code %q (available: %s)",
				code, strings.Join(reg.Codes(), ", "))
		}

		dict, err := source.Load(lang)
		if err != nil {
			return err
		}
		fmt.Printf("%-8s %6d entries\n", code, len(dict))

		if checkOnly {
			continue
		}

		dbPath := filepath.Join(dbDir, strings.TrimSuffix(lang.Source, ".json")+".db")
		if err := buildDatabase(dbPath, dict); err != nil {
			return fmt.Errorf("failed to build %s: %w", dbPath, err)
		}
		fmt.Printf("         wrote %s\n", dbPath)
	}

	return nil
}

// buildDatabase writes a dictionary into a fresh SQLite database with the
// entries(token, ipa) schema read by dictionary.SQLiteSource.
func buildDatabase(path string, dict dictionary.Dict) error {
	// Rebuild from scratch so stale entries never survive
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove old database: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE entries (token TEXT PRIMARY KEY, ipa TEXT NOT NULL)`); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO entries (token, ipa) VALUES (?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	// Insert in sorted order so rebuilt databases are reproducible
	tokens := make([]string, 0, len(dict))
	for token := range dict {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	for _, token := range tokens {
		if _, err := stmt.Exec(token, dict[token]); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert %q: %w", token, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
