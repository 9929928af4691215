package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/ipatrans/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ipatrans [text]",
		Short: "Dictionary-based IPA transcriber",
		Long: `ipatrans renders text in the International Phonetic Alphabet using
per-language dictionaries.

Space-delimited languages are transcribed word by word; Cantonese and
Mandarin are segmented with greedy longest match and support alternate
tone notations (numeric, Jyutping).

Examples:
  ipatrans --lang en_US "hello world"       # /hə.ˈloʊ/ /wɝld/
  ipatrans --lang yue --format jyutping 中文
  ipatrans --lang yue --batch lines.txt     # Transcribe a file line by line
  ipatrans --list-languages                 # Show supported language codes`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.ipatrans.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.Language, "lang", "l", flags.Language, "Language code (see --list-languages)")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", flags.Format, "Tone notation for character-based languages: org, num or jyutping")
	cmd.Flags().BoolVar(&flags.ShowForm, "show-form", false, "Prefix each transcription with the matched token")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Transcribe lines from file (one input per line)")
	cmd.Flags().StringVarP(&flags.OutputFile, "output", "o", "", "Write batch results to file instead of stdout")
	cmd.Flags().BoolVar(&flags.ListLanguages, "list-languages", false, "List supported language codes")
	cmd.Flags().BoolVar(&flags.ListFormats, "list-formats", false, "List supported output formats")

	// Dictionary source flags
	cmd.Flags().StringVar(&flags.DataDir, "data-dir", flags.DataDir, "Directory holding the dictionary data")
	cmd.Flags().BoolVar(&flags.UseSQLite, "sqlite", false, "Read SQLite dictionaries (<code>.db) instead of JSON files")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("dictionary.data_dir", cmd.Flags().Lookup("data-dir"))
	viper.BindPFlag("dictionary.sqlite", cmd.Flags().Lookup("sqlite"))
	viper.BindPFlag("output.format", cmd.Flags().Lookup("format"))
	viper.BindPFlag("output.show_form", cmd.Flags().Lookup("show-form"))
	viper.BindPFlag("language", cmd.Flags().Lookup("lang"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".ipatrans" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".ipatrans")
	}

	// Environment variables
	viper.SetEnvPrefix("IPATRANS")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// DataDir resolves the dictionary data directory: an explicit flag wins,
// then the config file, then the flag default.
func DataDir(cmd *cobra.Command, flags *Flags) string {
	if cmd.Flags().Changed("data-dir") {
		return flags.DataDir
	}
	if dir := viper.GetString("dictionary.data_dir"); dir != "" {
		return dir
	}
	return flags.DataDir
}

// Language resolves the language code with the same precedence as DataDir.
func Language(cmd *cobra.Command, flags *Flags) string {
	if cmd.Flags().Changed("lang") {
		return flags.Language
	}
	if lang := viper.GetString("language"); lang != "" {
		return lang
	}
	return flags.Language
}

// Format resolves the output format name with the same precedence as DataDir.
func Format(cmd *cobra.Command, flags *Flags) string {
	if cmd.Flags().Changed("format") {
		return flags.Format
	}
	if f := viper.GetString("output.format"); f != "" {
		return f
	}
	return flags.Format
}

// ShowForm resolves the show-form switch: an explicit flag wins, otherwise
// the bound viper key carries the config value (or the flag default).
func ShowForm(cmd *cobra.Command, flags *Flags) bool {
	if cmd.Flags().Changed("show-form") {
		return flags.ShowForm
	}
	return viper.GetBool("output.show_form")
}

// UseSQLite resolves the dictionary source switch like ShowForm.
func UseSQLite(cmd *cobra.Command, flags *Flags) bool {
	if cmd.Flags().Changed("sqlite") {
		return flags.UseSQLite
	}
	return viper.GetBool("dictionary.sqlite")
}
