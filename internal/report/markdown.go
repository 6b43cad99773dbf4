// Package report renders submission and batch reports as markdown for
// human review, most usefully the candidate tables behind ambiguous
// outcomes.
package report

import (
	"fmt"
	"io"

	md "github.com/nao1215/markdown"

	"github.com/fretmap/fretmap/pkg/submit"
)

// WriteBatch renders a batch report as a markdown document.
func WriteBatch(w io.Writer, batch *submit.BatchReport) error {
	doc := md.NewMarkdown(w)
	doc.H1("Batch Report")
	doc.PlainTextf("Processed %d submissions between %s and %s.",
		batch.Stats.Total,
		batch.StartedAt.Format("2006-01-02 15:04:05 MST"),
		batch.FinishedAt.Format("2006-01-02 15:04:05 MST"))
	doc.LF()

	doc.Table(md.TableSet{
		Header: []string{"Total", "Committed", "Rejected", "Ambiguous", "Failed"},
		Rows: [][]string{{
			fmt.Sprintf("%d", batch.Stats.Total),
			fmt.Sprintf("%d", batch.Stats.Committed),
			fmt.Sprintf("%d", batch.Stats.Rejected),
			fmt.Sprintf("%d", batch.Stats.Ambiguous),
			fmt.Sprintf("%d", batch.Stats.Failed),
		}},
	})
	doc.LF()

	for i := range batch.Reports {
		writeSubmission(doc, &batch.Reports[i])
	}
	return doc.Build()
}

// WriteSubmission renders one submission report as a markdown document.
func WriteSubmission(w io.Writer, report *submit.SubmissionReport) error {
	doc := md.NewMarkdown(w)
	writeSubmission(doc, report)
	return doc.Build()
}

func writeSubmission(doc *md.Markdown, report *submit.SubmissionReport) {
	doc.H2f("Submission %d: %s", report.Index, report.Status)
	if report.Reason != "" {
		doc.PlainText(report.Reason)
		doc.LF()
	}

	if report.Validation != nil && len(report.Validation.Conflicts) > 0 {
		rows := make([][]string, 0, len(report.Validation.Conflicts))
		for _, c := range report.Validation.Conflicts {
			severity := "error"
			if c.Warning {
				severity = "warning"
			}
			rows = append(rows, []string{c.Field, severity, c.Message})
		}
		doc.H3("Validation")
		doc.Table(md.TableSet{
			Header: []string{"Field", "Severity", "Message"},
			Rows:   rows,
		})
		doc.LF()
	}

	if len(report.Entities) > 0 {
		rows := make([][]string, 0, len(report.Entities))
		for _, e := range report.Entities {
			rows = append(rows, []string{
				e.Kind.String(),
				e.Outcome.Decision.String(),
				e.RecordID,
				e.Outcome.String(),
			})
		}
		doc.H3("Resolution")
		doc.Table(md.TableSet{
			Header: []string{"Entity", "Decision", "Record", "Detail"},
			Rows:   rows,
		})
		doc.LF()
	}
}
