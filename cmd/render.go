package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/tempo/internal"
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	projectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135"))
)

func kindIcon(k internal.Kind) string {
	switch k {
	case internal.KindWork:
		return "⚡"
	case internal.KindPomodoro:
		return "🍅"
	case internal.KindBreak:
		return "☕"
	case internal.KindLongBreak:
		return "🛌"
	}
	return "⏰"
}

// printStopped reports a committed session: its kind and total time.
func printStopped(sess *internal.Session) {
	fmt.Println(successStyle.Render("✅ Timer stopped!"))
	fmt.Printf("⏱️  Total time: %s\n", internal.FormatTotal(sess.Duration()))
	fmt.Println(dimStyle.Render("💾 Session saved."))
}

// printStartResult reports a start, including the session committed when a
// running timer was superseded.
func printStartResult(res *internal.StartResult) {
	if res.Stopped != nil {
		printStopped(res.Stopped)
	}

	t := res.Timer
	switch t.Kind {
	case internal.KindWork:
		fmt.Println(successStyle.Render(fmt.Sprintf("🚀 Starting work session for project: %s", t.Project)))
		if t.Description != "" {
			fmt.Printf("📝 Description: %s\n", t.Description)
		}
		fmt.Println(warningStyle.Render("⏰ Work timer started! Use 'stop' to finish or 'status' to check progress."))
	default:
		fmt.Println(successStyle.Render(fmt.Sprintf("%s Starting %s (%s)...",
			kindIcon(t.Kind), strings.ToLower(t.Kind.Label()), internal.FormatTotal(t.Target))))
		fmt.Println(warningStyle.Render("⏰ Timer started! Use 'stop' to finish early or 'status' to check progress."))
	}
}

// printStatus reports the running timer without mutating it.
func printStatus(status *internal.TimerStatus) {
	t := status.Timer
	fmt.Printf("%s %s", kindIcon(t.Kind), titleStyle.Render(t.Kind.Label()))
	if t.Kind == internal.KindWork {
		fmt.Printf(" — %s", projectStyle.Render(t.Project))
	}
	fmt.Println()

	fmt.Printf("⏱️  Elapsed time: %s\n", internal.FormatClock(status.Elapsed))

	// Targets are display-only; the timer keeps running past them.
	if t.Target > 0 {
		remaining := t.Target - status.Elapsed
		if remaining >= 0 {
			fmt.Printf("🎯 Remaining: %s of %s\n",
				internal.FormatClock(remaining), internal.FormatTotal(t.Target))
		} else {
			fmt.Println(warningStyle.Render(fmt.Sprintf("🎯 Past target by %s — stop whenever you're ready.",
				internal.FormatClock(-remaining))))
		}
	}
}

// printProjectTotals renders project → total rows in insertion order.
func printProjectTotals(totals []internal.ProjectTotal, emptyHint string) {
	if len(totals) == 0 {
		fmt.Println(dimStyle.Render(emptyHint))
		return
	}

	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', 0)
	for _, pt := range totals {
		_, _ = fmt.Fprintf(w, "%s\t%s\t\n",
			projectStyle.Render(pt.Project), internal.FormatTotal(pt.Total))
	}
	_ = w.Flush()
}

// printProjectDetail renders one project's session list, oldest first.
func printProjectDetail(name string, sessions []internal.Session) {
	var total time.Duration
	for _, sess := range sessions {
		total += sess.Duration()
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("📊 Project: %s", name)))
	fmt.Printf("Total time: %s\n", internal.FormatTotal(total))
	fmt.Printf("Sessions: %d\n\n", len(sessions))

	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(w, titleStyle.Render("Start")+"\t"+titleStyle.Render("Duration")+"\t"+titleStyle.Render("Description")+"\t")
	for _, sess := range sessions {
		desc := sess.Description
		if desc == "" {
			desc = dimStyle.Render("—")
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t\n",
			dimStyle.Render(sess.Start.Format("2006-01-02 15:04")),
			internal.FormatTotal(sess.Duration()),
			desc)
	}
	_ = w.Flush()
}
