package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iksnae/tempo/internal"
)

// runForeground keeps a one-shot timer command alive, repainting elapsed
// time once a second until the user interrupts. The interrupt is treated
// as an explicit stop: the session is committed before the process exits.
func runForeground(app *App) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	fmt.Println(dimStyle.Render("Press Ctrl+C to stop and save the session."))

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			status, err := app.Engine.Status()
			if err != nil {
				return err
			}
			t := status.Timer
			if t.Kind == internal.KindWork {
				fmt.Printf("\r%s %s | %s   ", kindIcon(t.Kind), t.Project, internal.FormatClock(status.Elapsed))
			} else if status.Elapsed > t.Target {
				fmt.Printf("\r%s %s (past target)   ", kindIcon(t.Kind), internal.FormatClock(status.Elapsed))
			} else {
				fmt.Printf("\r%s %s / %s   ", kindIcon(t.Kind), internal.FormatClock(status.Elapsed), internal.FormatClock(t.Target))
			}
		case <-sig:
			fmt.Println()
			sess, err := app.Engine.Stop()
			if err != nil {
				return err
			}
			printStopped(sess)
			return nil
		}
	}
}
