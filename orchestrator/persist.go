package orchestrator

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// ReportSuffix is appended to a transcript's base name for its saved report.
const ReportSuffix = ".score.json"

// ReportPath returns where the report for transcriptPath is written.
func ReportPath(transcriptPath string) string {
	ext := filepath.Ext(transcriptPath)
	return strings.TrimSuffix(transcriptPath, ext) + ReportSuffix
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// SaveReport writes r as indented JSON. The file is written under a
// temporary name and renamed so readers never see a partial report.
func SaveReport(path string, r *Report) error {
	tmp := path + ".tmp"
	if err := writeJSON(tmp, r); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
