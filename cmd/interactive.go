package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/iksnae/tempo/internal"
	"github.com/spf13/cobra"
)

// interactiveCmd represents the interactive command
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Start interactive mode",
	Long: `Start an interactive prompt where timers survive between commands.

This is the main way to use tempo: one process keeps the running timer in
memory, and commands like 'stop', 'status', and project queries operate on
it. Exiting with a timer running discards that timer's time.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		return runInteractive(app)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// runInteractive reads commands from stdin until exit or EOF. Commands run
// strictly one at a time; elapsed time is computed on demand, never pushed.
func runInteractive(app *App) error {
	fmt.Println()
	fmt.Println(titleStyle.Render("🌻 tempo — interactive time tracker"))
	fmt.Println("Type 'help' for available commands or 'exit' to quit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("tempo> ")
		if !scanner.Scan() {
			fmt.Println()
			fmt.Println("👋 Goodbye!")
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		quit, err := dispatch(app, line)
		if err != nil {
			fmt.Println(errorStyle.Render("❌ " + err.Error()))
		}
		if quit {
			return nil
		}
		fmt.Println()
	}
}

// dispatch parses and runs one interactive command. It returns true when
// the loop should exit.
func dispatch(app *App, line string) (bool, error) {
	parts := strings.Fields(line)
	name := strings.ToLower(parts[0])
	args := parts[1:]

	switch name {
	case "work":
		if len(args) == 0 {
			fmt.Println("Usage: work <project> [description]")
			return false, nil
		}
		res, err := app.Engine.StartWork(args[0], strings.Join(args[1:], " "))
		if err != nil {
			return false, err
		}
		printStartResult(res)

	case "pomodoro", "pomo":
		res, err := app.Engine.StartPomodoro()
		if err != nil {
			return false, err
		}
		printStartResult(res)

	case "break":
		res, err := app.Engine.StartBreak()
		if err != nil {
			return false, err
		}
		printStartResult(res)

	case "long-break":
		res, err := app.Engine.StartLongBreak()
		if err != nil {
			return false, err
		}
		printStartResult(res)

	case "stop":
		sess, err := app.Engine.Stop()
		if err != nil {
			return false, err
		}
		printStopped(sess)

	case "status", "s":
		status, err := app.Engine.Status()
		var idle *internal.NoActiveTimerError
		if errors.As(err, &idle) {
			fmt.Println("⏸️  No timer is currently running.")
			return false, nil
		}
		if err != nil {
			return false, err
		}
		printStatus(status)

	case "projects":
		fmt.Println(headerStyle.Render("📂 Your Projects"))
		printProjectTotals(app.Store.ListProjects(),
			"No projects yet. Start working on one with 'work <project>'!")

	case "today":
		fmt.Println(headerStyle.Render("📅 Today's Summary"))
		printProjectTotals(todayTotals(app.Store),
			"No sessions today yet. Get started with 'work <project>'!")

	case "project":
		if len(args) == 0 {
			fmt.Println("Usage: project <project-name>")
			return false, nil
		}
		sessions := app.Store.SessionsForProject(args[0])
		if len(sessions) == 0 {
			return false, &internal.NotFoundError{Project: args[0]}
		}
		printProjectDetail(args[0], sessions)

	case "delete-project":
		if len(args) == 0 {
			fmt.Println("Usage: delete-project <project-name>")
			return false, nil
		}
		fmt.Println(warningStyle.Render(fmt.Sprintf("⚠️  About to delete all sessions for %q. This is irreversible!", args[0])))
		if !confirm(os.Stdin, "Confirm (y/N): ") {
			fmt.Println("Deletion cancelled.")
			return false, nil
		}
		deleted, err := app.Store.DeleteProject(args[0])
		if err != nil {
			return false, err
		}
		fmt.Println(successStyle.Render(fmt.Sprintf("✅ Deleted %d session(s) for %q.", deleted, args[0])))

	case "help", "h":
		printInteractiveHelp()

	case "clear", "cls":
		fmt.Print("\x1B[2J\x1B[1;1H")

	case "exit", "quit", "q":
		if app.Engine.Running() {
			fmt.Println(warningStyle.Render("⚠️  A timer is still running; its time will be lost. Use 'stop' first to save it."))
			if !confirm(os.Stdin, "Exit anyway? (y/N): ") {
				return false, nil
			}
		}
		fmt.Println("👋 Goodbye!")
		return true, nil

	default:
		fmt.Printf("❓ Unknown command: %q. Type 'help' for available commands.\n", name)
	}

	return false, nil
}

func printInteractiveHelp() {
	fmt.Println("🌻 tempo commands:")
	fmt.Println("  work <project> [description]  Start work timer for a project")
	fmt.Println("  pomodoro (or pomo)            Start a pomodoro timer")
	fmt.Println("  break                         Start a short break timer")
	fmt.Println("  long-break                    Start a long break timer")
	fmt.Println("  stop                          Stop current timer and save session")
	fmt.Println("  status (or s)                 Show current timer status")
	fmt.Println("  projects                      List all projects")
	fmt.Println("  today                         Show today's work summary")
	fmt.Println("  project <name>                Show sessions for a project")
	fmt.Println("  delete-project <name>         Delete all sessions for a project")
	fmt.Println("  clear (or cls)                Clear screen")
	fmt.Println("  help (or h)                   Show this help")
	fmt.Println("  exit/quit (or q)              Exit interactive mode")
}
