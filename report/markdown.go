package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/maastricht-university/speechscore/orchestrator"
)

// MarkdownWriter renders a report as GitHub-flavored Markdown for sharing
// with the speaker.
type MarkdownWriter struct {
	output io.Writer
}

func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

func (w *MarkdownWriter) Write(r *orchestrator.Report) error {
	md := markdown.NewMarkdown(w.output)

	md.H1("Self-introduction Score")
	md.PlainText("")
	w.writeSummary(md, r)
	w.writeCriteria(md, r)
	for _, c := range r.PerCriterion {
		w.writeDetails(md, c)
	}
	return md.Build()
}

func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, r *orchestrator.Report) {
	duration := "not given"
	if r.DurationSecondsUsed != nil {
		duration = formatNumber(*r.DurationSecondsUsed) + " s"
	}
	md.Table(markdown.TableSet{
		Header: []string{"Overall", "Words", "Sentences", "Duration"},
		Rows: [][]string{{
			formatNumber(r.OverallScore) + " / 100",
			strconv.Itoa(r.WordCount),
			strconv.Itoa(r.SentenceCount),
			duration,
		}},
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeCriteria(md *markdown.Markdown, r *orchestrator.Report) {
	rows := make([][]string, 0, len(r.PerCriterion)+1)
	for _, c := range r.PerCriterion {
		rows = append(rows, []string{c.Criterion, formatNumber(c.Score), formatNumber(c.MaxScore)})
	}
	rows = append(rows, []string{"**Total**", formatNumber(r.Totals.Attained), formatNumber(r.Totals.Possible)})

	md.H2("Criteria")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Criterion", "Score", "Max"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeDetails(md *markdown.Markdown, c orchestrator.CriterionResult) {
	md.H3(c.Criterion)
	md.PlainText("")
	md.PlainText(c.Feedback)
	md.PlainText("")

	keys := make([]string, 0, len(c.Components))
	for k := range c.Components {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	items := make([]string, 0, len(keys))
	for _, k := range keys {
		items = append(items, fmt.Sprintf("%s: %v", k, c.Components[k]))
	}
	md.BulletList(items...)
	md.PlainText("")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
