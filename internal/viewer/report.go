package viewer

import (
	"fmt"
	"io"
	"sort"

	"IndicatorScope/internal/calculator"
	"IndicatorScope/internal/model"
	"IndicatorScope/internal/output"
)

// ReportViewer writes the result as a text table, newest year first,
// followed by per-series statistics.
type ReportViewer struct{ *snapshot }

func (v *ReportViewer) Kind() model.ViewerKind { return model.ViewerReport }

func (v *ReportViewer) Display(w io.Writer) error {
	params, result, err := v.current()
	if err != nil {
		return err
	}
	name, labels := title(params, len(result))
	if _, err := fmt.Fprintf(w, "%s\n%s\n\n", name, subtitle(params)); err != nil {
		return err
	}

	years := calculator.Years(result)
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	table := output.NewTable(w, append([]string{"Year"}, labels...))
	for _, y := range years {
		row := []string{fmt.Sprint(y)}
		for _, s := range result {
			if val, ok := s.Lookup(y); ok {
				row = append(row, output.Number(val))
			} else {
				row = append(row, "-")
			}
		}
		table.AddRow(row...)
	}

	stats := [3][]string{{"Average"}, {"Min"}, {"Max"}}
	for _, s := range result {
		sum, err := calculator.Summarize(s)
		if err != nil {
			return err
		}
		stats[0] = append(stats[0], output.Number(sum.Mean))
		stats[1] = append(stats[1], fmt.Sprintf("%s (%d)", output.Number(sum.Min), sum.MinYear))
		stats[2] = append(stats[2], fmt.Sprintf("%s (%d)", output.Number(sum.Max), sum.MaxYear))
	}
	for _, row := range stats {
		table.AddRow(row...)
	}
	return table.Render()
}
