// Package report renders scoring reports for people and tools.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/maastricht-university/speechscore/orchestrator"
)

// Format is an output format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ErrUnknownFormat is returned for formats other than json, yaml and markdown.
var ErrUnknownFormat = fmt.Errorf("unknown report format: want one of %s, %s, %s", FormatJSON, FormatYAML, FormatMarkdown)

// ParseFormat accepts a format name case-insensitively; "md" is an alias
// for markdown.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatMarkdown:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w (got %q)", ErrUnknownFormat, s)
	}
}

// Write renders r to w in the given format.
func Write(w io.Writer, r *orchestrator.Report, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatMarkdown:
		return NewMarkdownWriter(w).Write(r)
	default:
		return fmt.Errorf("%w (got %q)", ErrUnknownFormat, f)
	}
}
