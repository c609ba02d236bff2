// Command owl-demo drives a small terminal live-screen to exercise
// the engine package's main operations: registering blocks, updating
// them on a timer, writing scrollback above the sticky region, and a
// clean stop on Ctrl-C.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ConnorRigby/owl/engine"
)

func main() {
	var (
		configPath string
		refreshMS  int
		width      int
		scenario   string
		verbose    bool
	)

	root := &cobra.Command{
		Use:   "owl-demo",
		Short: "Demonstrates owl's sticky terminal block region",
		Long: `owl-demo registers a handful of live blocks at the bottom of the
terminal and updates them on a timer, to show off the differential
renderer without requiring a host application.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cmd.Flags().Changed("refresh") {
				cfg.RefreshMillis = refreshMS
			}
			if cmd.Flags().Changed("width") {
				cfg.Width = width
			}
			if cmd.Flags().Changed("scenario") {
				cfg.Scenario = scenario
			}

			log := logrus.New()
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			return runDemo(cfg, log)
		},
	}

	root.Flags().StringVar(&configPath, "config", "", "path to a demo.toml config file")
	root.Flags().IntVar(&refreshMS, "refresh", 100, "tick period in milliseconds")
	root.Flags().IntVar(&width, "width", 0, "fixed terminal width, 0 for auto-detect")
	root.Flags().StringVar(&scenario, "scenario", "status", "demo scenario: status or tail")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runDemo(cfg config, log *logrus.Logger) error {
	e, err := engine.Start(engine.Options{
		Name:          uuid.NewString(),
		RefreshEvery:  cfg.refresh(),
		TerminalWidth: cfg.Width,
		Logger:        log,
	})
	if err != nil {
		return fmt.Errorf("start engine: %w", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	switch cfg.Scenario {
	case "tail":
		go runTailScenario(e)
	default:
		go runStatusScenario(e)
	}

	<-sigCh
	return e.Stop()
}

// runStatusScenario registers a couple of blocks and advances the
// progress block's state every 200ms, exercising AddBlock and Update.
func runStatusScenario(e *engine.Engine) {
	boxer := engine.NewBoxFormatter(engine.BoxOptions{MinWidth: 30, Border: true})

	e.AddBlock("title", "owl-demo", func(state any) string {
		return boxer.Format(state.(string))
	})
	e.AddBlock("progress", 0, func(state any) string {
		pct := state.(int)
		filled := pct / 5
		return fmt.Sprintf("[%s%s] %3d%%", repeat("#", filled), repeat(".", 20-filled), pct)
	})

	pct := 0
	for range time.Tick(200 * time.Millisecond) {
		pct = (pct + 5) % 105
		e.Update("progress", pct)
	}
}

// runTailScenario simulates a subprocess logging above the sticky
// region via PutChars, exercising the write-queue path.
func runTailScenario(e *engine.Engine) {
	e.AddBlock("status", "tailing...", nil)

	i := 0
	for range time.Tick(300 * time.Millisecond) {
		i++
		_ = e.PutChars([]byte(fmt.Sprintf("log line %d\n", i)))
	}
}

func repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, 0, n*len(s))
	for i := 0; i < n; i++ {
		b = append(b, s...)
	}
	return string(b)
}
