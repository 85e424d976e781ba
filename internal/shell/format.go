package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"IndicatorScope/internal/model"
	"IndicatorScope/internal/output"
	"IndicatorScope/internal/recorder"
	"IndicatorScope/internal/session"
	"IndicatorScope/internal/strategy"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed)
	dimColor  = color.New(color.Faint)
)

// FormatOutcome formats a recalculation outcome for the user.
func FormatOutcome(o model.Outcome) string {
	switch o {
	case model.Success:
		return okColor.Sprint("✓ " + o.Message())
	case model.InsufficientData:
		return warnColor.Sprint("! " + o.Message())
	default:
		return errColor.Sprint("✗ " + o.Message())
	}
}

// FormatViewerOutcome formats the result of adding a viewer.
func FormatViewerOutcome(kind model.ViewerKind, o session.ViewerOutcome) string {
	msg := fmt.Sprintf("%s: %s", kind, o.Message())
	if o == session.ViewerAdded {
		return okColor.Sprint(msg)
	}
	return errColor.Sprint(msg)
}

// FormatStatus describes the session state.
func FormatStatus(st session.Status) string {
	var b strings.Builder
	title := fmt.Sprintf("Analysis %d", st.Current.Kind)
	if def, ok := strategy.Lookup(st.Current.Kind); ok {
		title = def.Title
	}
	fmt.Fprintf(&b, "Current:  %s\n", title)
	fmt.Fprintf(&b, "          %s %d-%d\n", st.Current.Country, st.Current.StartYear, st.Current.EndYear)
	if st.Pending != st.Current {
		fmt.Fprintf(&b, "Selected: %s\n", dimColor.Sprint(st.Pending.String()))
	}

	viewers := make([]string, len(st.Viewers))
	for i, v := range st.Viewers {
		viewers[i] = string(v)
	}
	if len(viewers) == 0 {
		viewers = append(viewers, "none")
	}
	fmt.Fprintf(&b, "Viewers:  %s\n", strings.Join(viewers, ", "))

	if len(st.Result) == 0 {
		b.WriteString("Result:   none yet")
	} else {
		lengths := st.Result.Lengths()
		parts := make([]string, len(lengths))
		for i, n := range lengths {
			parts[i] = fmt.Sprintf("%d", n)
		}
		fmt.Fprintf(&b, "Result:   %d series (%s points)", len(lengths), strings.Join(parts, "/"))
	}
	return b.String()
}

// FormatHistory renders recorded runs as a table.
func FormatHistory(runs []recorder.RunEvent) string {
	if len(runs) == 0 {
		return "No runs recorded."
	}
	var b strings.Builder
	t := output.NewTable(&b, []string{"Time", "Trigger", "Kind", "Country", "Years", "Outcome"})
	for _, r := range runs {
		t.AddRow(
			r.Time.Format("2006-01-02 15:04:05"),
			r.Trigger,
			fmt.Sprint(int(r.Params.Kind)),
			r.Params.Country,
			fmt.Sprintf("%d-%d", r.Params.StartYear, r.Params.EndYear),
			r.Outcome.String(),
		)
	}
	if err := t.Render(); err != nil {
		return errColor.Sprintf("render history: %v", err)
	}
	return strings.TrimRight(b.String(), "\n")
}

const helpText = `Commands:
  set <kind> <country> <from> <to>   select an analysis
  kind <n>                           change the analysis kind
  add <viewer>                       add a viewer (line, scatter, time, pie, report)
  remove <viewer>                    remove a viewer
  recalc                             validate the selection and run it
  show                               render every viewer
  status                             show the session state
  history                            show recent runs
  kinds                              list the analyses
  help                               show this text
  quit                               leave the shell`

// WriteKinds writes the analysis catalog as a table.
func WriteKinds(w io.Writer) error {
	t := output.NewTable(w, []string{"Kind", "Title", "Mode", "Indicators"})
	for _, def := range strategy.Catalog {
		t.AddRow(fmt.Sprint(int(def.Kind)), def.Title, def.Mode.String(), strings.Join(def.Indicators, ", "))
	}
	return t.Render()
}
