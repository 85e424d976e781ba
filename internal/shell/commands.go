package shell

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"IndicatorScope/internal/model"
	"IndicatorScope/internal/session"
	"IndicatorScope/internal/viewer"
)

// Commands dispatches shell input to a Session.
type Commands struct {
	Session  *session.Session
	Renderer *viewer.Renderer
	Ctx      context.Context
}

// Handle runs one command line and returns the reply.
func (c *Commands) Handle(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}
	args := fields[1:]

	switch strings.ToLower(fields[0]) {
	case "set":
		return c.set(args), false
	case "kind":
		return c.kind(args), false
	case "add":
		return c.addViewer(args), false
	case "remove", "rm":
		return c.removeViewer(args), false
	case "recalc", "run":
		return FormatOutcome(c.Session.Recalculate(c.Ctx)), false
	case "show":
		return c.show(), false
	case "status":
		return FormatStatus(c.Session.Status()), false
	case "history":
		runs, err := c.Session.History(10)
		if err != nil {
			return errColor.Sprintf("history: %v", err), false
		}
		return FormatHistory(runs), false
	case "kinds":
		var b strings.Builder
		if err := WriteKinds(&b); err != nil {
			return errColor.Sprintf("kinds: %v", err), false
		}
		return strings.TrimRight(b.String(), "\n"), false
	case "help", "?":
		return helpText, false
	case "quit", "exit", "q":
		return "bye", true
	default:
		return fmt.Sprintf("unknown command %q, try help", fields[0]), false
	}
}

// set expects: kind country from to. The country may contain spaces.
func (c *Commands) set(args []string) string {
	if len(args) < 4 {
		return "usage: set <kind> <country> <from> <to>"
	}
	n := len(args)
	kind, err := model.ParseAnalysisKind(args[0])
	if err != nil {
		return FormatOutcome(model.MalformedInput)
	}
	from, err1 := strconv.Atoi(args[n-2])
	to, err2 := strconv.Atoi(args[n-1])
	if err1 != nil || err2 != nil {
		return FormatOutcome(model.MalformedInput)
	}
	country := strings.Join(args[1:n-2], " ")
	c.Session.SetParameters(kind, country, from, to)
	return fmt.Sprintf("selected kind=%d country=%s years=%d-%d, run recalc to apply", kind, country, from, to)
}

func (c *Commands) kind(args []string) string {
	if len(args) != 1 {
		return "usage: kind <n>"
	}
	kind, err := model.ParseAnalysisKind(args[0])
	if err != nil {
		return FormatOutcome(model.MalformedInput)
	}
	p := c.Session.Status().Pending
	c.Session.SetParameters(kind, p.Country, p.StartYear, p.EndYear)
	return fmt.Sprintf("selected kind=%d, run recalc to apply", kind)
}

func (c *Commands) addViewer(args []string) string {
	if len(args) == 0 {
		return "usage: add <viewer>"
	}
	kind, err := model.ParseViewerKind(strings.Join(args, " "))
	if err != nil {
		return errColor.Sprint(err.Error())
	}
	return FormatViewerOutcome(kind, c.Session.AddViewer(kind))
}

func (c *Commands) removeViewer(args []string) string {
	if len(args) == 0 {
		return "usage: remove <viewer>"
	}
	kind, err := model.ParseViewerKind(strings.Join(args, " "))
	if err != nil {
		return errColor.Sprint(err.Error())
	}
	if !c.Session.RemoveViewer(kind) {
		return fmt.Sprintf("%s: not shown", kind)
	}
	return fmt.Sprintf("%s: removed", kind)
}

func (c *Commands) show() string {
	if len(c.Session.Status().Viewers) == 0 {
		return "no viewers, use add <viewer>"
	}
	var written []string
	err := c.Session.Display(func(v viewer.Viewer) error {
		path, err := c.Renderer.Render(v)
		if path != "" {
			written = append(written, path)
		}
		return err
	})
	if err != nil {
		return warnColor.Sprintf("show: %v", err)
	}
	if len(written) == 0 {
		return ""
	}
	return "wrote " + strings.Join(written, ", ")
}
