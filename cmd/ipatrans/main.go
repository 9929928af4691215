package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/ipatrans/internal/batch"
	"codeberg.org/snonux/ipatrans/internal/cli"
	"codeberg.org/snonux/ipatrans/internal/dictionary"
	"codeberg.org/snonux/ipatrans/internal/format"
	"codeberg.org/snonux/ipatrans/internal/registry"
	"codeberg.org/snonux/ipatrans/internal/translation"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	reg := registry.Default()

	// Handle --list-languages flag
	if flags.ListLanguages {
		for _, code := range reg.Codes() {
			lang, _ := reg.Lookup(code)
			fmt.Printf("%-8s %s\n", code, lang.Name)
		}
		return nil
	}

	// Handle --list-formats flag
	if flags.ListFormats {
		for _, name := range format.Names() {
			fmt.Println(name)
		}
		return nil
	}

	// Resolve settings that may come from the config file
	language := cli.Language(cmd, flags)
	showForm := cli.ShowForm(cmd, flags)
	outputFormat, err := format.Parse(cli.Format(cmd, flags))
	if err != nil {
		return err
	}

	// Create translator over the selected dictionary source
	dataDir := cli.DataDir(cmd, flags)
	var source dictionary.Source
	if cli.UseSQLite(cmd, flags) {
		source = dictionary.NewSQLiteSource(dataDir)
	} else {
		source = dictionary.NewDirSource(dataDir)
	}
	translator := translation.NewTranslator(reg, dictionary.NewStore(reg, source))

	// Handle batch processing
	if flags.BatchFile != "" {
		proc := batch.NewProcessor(translator, language, showForm, outputFormat)
		results, err := proc.ProcessFile(flags.BatchFile)
		if err != nil {
			return err
		}
		return writeResults(results, flags.OutputFile)
	}

	// No input provided - show usage
	if len(args) == 0 {
		return cmd.Help()
	}

	result, err := translator.Translate(translation.Request{
		Text:          strings.Join(args, " "),
		Language:      language,
		ShowTokenForm: showForm,
		Format:        outputFormat,
	})
	if err != nil {
		return err
	}

	fmt.Println(result)
	return nil
}

func writeResults(results []batch.Result, outputFile string) error {
	if outputFile == "" {
		for _, r := range results {
			fmt.Println(r.Output)
		}
		return nil
	}

	var sb strings.Builder
	for _, r := range results {
		sb.WriteString(r.Output)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(outputFile, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Printf("Done! %d lines written to %s\n", len(results), outputFile)
	return nil
}
