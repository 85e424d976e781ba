package viewer

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"IndicatorScope/internal/calculator"
	"IndicatorScope/internal/model"
)

// LineViewer plots every series as a line over the years.
type LineViewer struct{ *snapshot }

func (v *LineViewer) Kind() model.ViewerKind { return model.ViewerLine }

func (v *LineViewer) Display(w io.Writer) error {
	params, result, err := v.current()
	if err != nil {
		return err
	}
	name, labels := title(params, len(result))
	years := calculator.Years(result)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: name, Subtitle: subtitle(params)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	line.SetXAxis(yearLabels(years))
	for i, s := range result {
		data := make([]opts.LineData, len(years))
		for j, y := range years {
			if val, ok := s.Lookup(y); ok {
				data[j] = opts.LineData{Value: val}
			} else {
				data[j] = opts.LineData{Value: "-"}
			}
		}
		line.AddSeries(labels[i], data)
	}
	return line.Render(w)
}

// ScatterViewer plots each observation as a point.
type ScatterViewer struct{ *snapshot }

func (v *ScatterViewer) Kind() model.ViewerKind { return model.ViewerScatter }

func (v *ScatterViewer) Display(w io.Writer) error {
	params, result, err := v.current()
	if err != nil {
		return err
	}
	name, labels := title(params, len(result))
	years := calculator.Years(result)

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: name, Subtitle: subtitle(params)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
	)
	scatter.SetXAxis(yearLabels(years))
	for i, s := range result {
		data := make([]opts.ScatterData, len(years))
		for j, y := range years {
			if val, ok := s.Lookup(y); ok {
				data[j] = opts.ScatterData{Value: val, SymbolSize: 10}
			} else {
				data[j] = opts.ScatterData{Value: "-"}
			}
		}
		scatter.AddSeries(labels[i], data)
	}
	return scatter.Render(w)
}

// TimeViewer shows the series as grouped bars per year.
type TimeViewer struct{ *snapshot }

func (v *TimeViewer) Kind() model.ViewerKind { return model.ViewerTime }

func (v *TimeViewer) Display(w io.Writer) error {
	params, result, err := v.current()
	if err != nil {
		return err
	}
	name, labels := title(params, len(result))
	years := calculator.Years(result)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: name, Subtitle: subtitle(params)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
	)
	bar.SetXAxis(yearLabels(years))
	for i, s := range result {
		data := make([]opts.BarData, len(years))
		for j, y := range years {
			val, _ := s.Lookup(y)
			data[j] = opts.BarData{Value: val}
		}
		bar.AddSeries(labels[i], data)
	}
	return bar.Render(w)
}

// PieViewer compares the average of the first series with its
// complement to 100.
type PieViewer struct{ *snapshot }

func (v *PieViewer) Kind() model.ViewerKind { return model.ViewerPie }

func (v *PieViewer) Display(w io.Writer) error {
	params, result, err := v.current()
	if err != nil {
		return err
	}
	name, labels := title(params, len(result))
	avg, rest, err := calculator.Share(result[0])
	if err != nil {
		return err
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: name, Subtitle: subtitle(params)}),
	)
	pie.AddSeries(labels[0], []opts.PieData{
		{Name: "Average " + labels[0], Value: avg},
		{Name: "Remainder", Value: rest},
	})
	return pie.Render(w)
}

func yearLabels(years []int) []string {
	out := make([]string, len(years))
	for i, y := range years {
		out[i] = strconv.Itoa(y)
	}
	return out
}
