package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fwojciec/utsushi"
	"github.com/fwojciec/utsushi/compare"
	"github.com/jedib0t/go-pretty/v6/table"
)

// diffOutput is the JSON document printed by the diff command. Pair indices
// and labels refer to Sources, which lists only the non-blank inputs.
type diffOutput struct {
	Sources []string              `json:"sources"`
	Pairs   []utsushi.PairDiff    `json:"pairs,omitempty"`
	Labeled []utsushi.LabeledDiff `json:"labeled,omitempty"`
}

type wordsOutput struct {
	Left  []utsushi.WordSpan `json:"left"`
	Right []utsushi.WordSpan `json:"right"`
}

type similarityOutput struct {
	Similarity float64 `json:"similarity"`
	ChangeType string  `json:"change_type"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// statRow is one compared pair in the stat table.
type statRow struct {
	Case  string
	Left  string
	Right string
	Stats utsushi.Stats
	Error string
}

func pairRows(caseID string, refs []string, pairs []utsushi.PairDiff) []statRow {
	rows := make([]statRow, len(pairs))
	for i, p := range pairs {
		rows[i] = statRow{
			Case:  caseID,
			Left:  sideName(compare.Label(p.Left), refs, p.Left),
			Right: sideName(compare.Label(p.Right), refs, p.Right),
			Stats: p.Diff.Stats,
		}
	}
	return rows
}

func labeledRows(caseID, baseRef string, refs []string, labeled []utsushi.LabeledDiff) []statRow {
	rows := make([]statRow, len(labeled))
	for i, l := range labeled {
		rows[i] = statRow{
			Case:  caseID,
			Left:  sideName(compare.Label(0), []string{baseRef}, 0),
			Right: sideName(l.Label, refs, i),
			Stats: l.Diff.Stats,
		}
	}
	return rows
}

func reportRows(reports []utsushi.ComparisonReport) []statRow {
	var rows []statRow
	for _, r := range reports {
		switch {
		case r.Error != "":
			rows = append(rows, statRow{Case: r.ID, Error: r.Error})
		case r.Labeled != nil:
			rows = append(rows, labeledRows(r.ID, "", nil, r.Labeled)...)
		default:
			rows = append(rows, pairRows(r.ID, nil, r.Pairs)...)
		}
	}
	return rows
}

// sideName labels a compared text, adding its reference when one is known.
func sideName(label string, refs []string, i int) string {
	if i < len(refs) && refs[i] != "" {
		return label + " " + refs[i]
	}
	return label
}

// writeStats renders per-pair line counts as a table.
func writeStats(w io.Writer, rows []statRow) error {
	withCase := false
	withError := false
	for _, r := range rows {
		withCase = withCase || r.Case != ""
		withError = withError || r.Error != ""
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)

	header := table.Row{"Left", "Right", "Added", "Removed", "Changed", "Unchanged"}
	if withCase {
		header = append(table.Row{"Case"}, header...)
	}
	if withError {
		header = append(header, "Error")
	}
	tbl.AppendHeader(header)

	var total utsushi.Stats
	for _, r := range rows {
		row := table.Row{r.Left, r.Right, r.Stats.Added, r.Stats.Removed, r.Stats.Changed, r.Stats.Unchanged}
		if withCase {
			row = append(table.Row{r.Case}, row...)
		}
		if withError {
			row = append(row, r.Error)
		}
		tbl.AppendRow(row)

		total.Added += r.Stats.Added
		total.Removed += r.Stats.Removed
		total.Changed += r.Stats.Changed
		total.Unchanged += r.Stats.Unchanged
	}

	footer := table.Row{fmt.Sprintf("Total: %d pairs", len(rows)), "", total.Added, total.Removed, total.Changed, total.Unchanged}
	if withCase {
		footer = append(table.Row{""}, footer...)
	}
	if withError {
		footer = append(footer, "")
	}
	tbl.AppendFooter(footer)

	_, err := fmt.Fprintln(w, tbl.Render())
	return err
}

// writeSpans renders word spans one per row, left side first.
func writeSpans(w io.Writer, left, right []utsushi.WordSpan) error {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Side", "Kind", "Text"})
	for _, s := range left {
		tbl.AppendRow(table.Row{"left", s.Kind.String(), strconv.Quote(s.Text)})
	}
	for _, s := range right {
		tbl.AppendRow(table.Row{"right", s.Kind.String(), strconv.Quote(s.Text)})
	}
	_, err := fmt.Fprintln(w, tbl.Render())
	return err
}

func writeSimilarity(w io.Writer, out similarityOutput) error {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Similarity", "Change type"})
	tbl.AppendRow(table.Row{strconv.FormatFloat(out.Similarity, 'f', 4, 64), out.ChangeType})
	_, err := fmt.Fprintln(w, tbl.Render())
	return err
}
