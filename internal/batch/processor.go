package batch

import (
	"fmt"
	"os"
	"strings"

	"codeberg.org/snonux/ipatrans/internal/format"
	"codeberg.org/snonux/ipatrans/internal/translation"
)

// Result pairs one input line with its transcription.
type Result struct {
	Input  string
	Output string
}

// ReadLines reads transcription inputs from a batch file, one per line.
// Blank lines and lines starting with '#' are skipped. Lines keep their
// inner spacing, which is significant for character-based languages.
func ReadLines(filename string) ([]string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// Processor transcribes batch files line by line with fixed settings.
type Processor struct {
	translator *translation.Translator
	language   string
	showForm   bool
	format     format.Format
}

// NewProcessor creates a batch processor for one language and format.
func NewProcessor(translator *translation.Translator, language string, showForm bool, f format.Format) *Processor {
	return &Processor{
		translator: translator,
		language:   language,
		showForm:   showForm,
		format:     f,
	}
}

// ProcessFile transcribes every line of the batch file. The first
// translation error aborts the batch: both error kinds (unknown language,
// unavailable dictionary) would fail every following line too.
func (p *Processor) ProcessFile(filename string) ([]Result, error) {
	lines, err := ReadLines(filename)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(lines))
	for _, line := range lines {
		output, err := p.translator.Translate(translation.Request{
			Text:          line,
			Language:      p.language,
			ShowTokenForm: p.showForm,
			Format:        p.format,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to transcribe %q: %w", line, err)
		}
		results = append(results, Result{Input: line, Output: output})
	}

	return results, nil
}
