package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// writeConfigFile writes a config file and loads it into viper. Viper is
// global state, so the test cleans it up afterwards.
func writeConfigFile(t *testing.T, content string) {
	t.Helper()
	t.Cleanup(viper.Reset)

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	InitConfig(cfgPath)
}

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "ipatrans [text]" {
		t.Errorf("Expected Use to be 'ipatrans [text]', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "IPA transcriber") {
		t.Errorf("Expected Short description to contain 'IPA transcriber'")
	}

	// Test that flags are set up
	flagTests := []struct {
		name     string
		expected bool
	}{
		{"config", true},
		{"lang", true},
		{"format", true},
		{"show-form", true},
		{"batch", true},
		{"output", true},
		{"list-languages", true},
		{"list-formats", true},
		{"data-dir", true},
		{"sqlite", true},
	}

	for _, tt := range flagTests {
		t.Run("flag_"+tt.name, func(t *testing.T) {
			var flag *pflag.Flag
			if tt.name == "config" {
				flag = cmd.PersistentFlags().Lookup(tt.name)
			} else {
				flag = cmd.Flags().Lookup(tt.name)
			}
			if flag == nil && tt.expected {
				t.Errorf("Expected flag %s to exist", tt.name)
			}
		})
	}
}

func TestSetupFlags(t *testing.T) {
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	// Test default values
	langFlag := cmd.Flags().Lookup("lang")
	if langFlag == nil {
		t.Fatal("lang flag not found")
	}
	if langFlag.DefValue != "en_US" {
		t.Errorf("Expected default lang to be en_US, got %s", langFlag.DefValue)
	}

	formatFlag := cmd.Flags().Lookup("format")
	if formatFlag == nil {
		t.Fatal("format flag not found")
	}
	if formatFlag.DefValue != "org" {
		t.Errorf("Expected default format to be org, got %s", formatFlag.DefValue)
	}

	dataDirFlag := cmd.Flags().Lookup("data-dir")
	if dataDirFlag == nil {
		t.Fatal("data-dir flag not found")
	}
	if dataDirFlag.DefValue != "data" {
		t.Errorf("Expected default data dir to be data, got %s", dataDirFlag.DefValue)
	}
}

func TestFlagParsing(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	err := cmd.ParseFlags([]string{
		"--lang", "yue",
		"--format", "jyutping",
		"--show-form",
		"--sqlite",
		"--data-dir", "/tmp/dicts",
	})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if flags.Language != "yue" {
		t.Errorf("Expected language yue, got %s", flags.Language)
	}
	if flags.Format != "jyutping" {
		t.Errorf("Expected format jyutping, got %s", flags.Format)
	}
	if !flags.ShowForm {
		t.Error("Expected show-form to be set")
	}
	if !flags.UseSQLite {
		t.Error("Expected sqlite to be set")
	}
	if flags.DataDir != "/tmp/dicts" {
		t.Errorf("Expected data dir /tmp/dicts, got %s", flags.DataDir)
	}
}

func TestConfigFileSettings(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	writeConfigFile(t, `language: yue
output:
  format: jyutping
  show_form: true
dictionary:
  sqlite: true
  data_dir: /etc/ipatrans/dicts
`)

	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	// Without flags, every setting must come from the config file
	if got := Language(cmd, flags); got != "yue" {
		t.Errorf("Language = %q, want yue", got)
	}
	if got := Format(cmd, flags); got != "jyutping" {
		t.Errorf("Format = %q, want jyutping", got)
	}
	if !ShowForm(cmd, flags) {
		t.Error("Expected show_form from config file")
	}
	if !UseSQLite(cmd, flags) {
		t.Error("Expected sqlite from config file")
	}
	if got := DataDir(cmd, flags); got != "/etc/ipatrans/dicts" {
		t.Errorf("DataDir = %q, want /etc/ipatrans/dicts", got)
	}
}

func TestFlagsWinOverConfigFile(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	writeConfigFile(t, `language: yue
output:
  format: jyutping
`)

	if err := cmd.ParseFlags([]string{"--lang", "fa", "--format", "num"}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if got := Language(cmd, flags); got != "fa" {
		t.Errorf("Language = %q, want fa (explicit flag)", got)
	}
	if got := Format(cmd, flags); got != "num" {
		t.Errorf("Format = %q, want num (explicit flag)", got)
	}
}

func TestDefaultsWithoutConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if got := Language(cmd, flags); got != "en_US" {
		t.Errorf("Language = %q, want en_US default", got)
	}
	if got := Format(cmd, flags); got != "org" {
		t.Errorf("Format = %q, want org default", got)
	}
	if ShowForm(cmd, flags) {
		t.Error("Expected show-form default false")
	}
	if UseSQLite(cmd, flags) {
		t.Error("Expected sqlite default false")
	}
}

func TestDataDirFlagWins(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if err := cmd.ParseFlags([]string{"--data-dir", "/explicit"}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if dir := DataDir(cmd, flags); dir != "/explicit" {
		t.Errorf("Expected explicit flag to win, got %s", dir)
	}
}
