// Package main is the entry point for the crest demo TUI.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/crest"
	"github.com/llehouerou/crest/internal/config"
	"github.com/llehouerou/crest/internal/icons"
	"github.com/llehouerou/crest/internal/logging"
	"github.com/llehouerou/crest/internal/notify"
	"github.com/llehouerou/crest/teahost"
)

type options struct {
	verbosity  int
	iconStyle  string
	notify     bool
	configPath string
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return newRootCmd(startDemo).Execute()
}

func newRootCmd(run func(options) error) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "crest-demo",
		Short: "Interactive showcase of the crest input-action registry",
		Long: `crest-demo binds a handful of game-style actions to terminal keys and
on-screen touch buttons, then lets you rebind keys, grow and shrink
callback lists and unbind actions while everything stays live. Binding
changes are mirrored as desktop notifications when a session bus is
around.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	cmd.Flags().CountVarP(&opts.verbosity, "verbose", "v",
		"Increase log verbosity (repeatable)")
	cmd.Flags().StringVar(&opts.iconStyle, "icons", "",
		"Icon style: nerd, unicode or none")
	cmd.Flags().BoolVar(&opts.notify, "notify", false,
		"Announce binding changes as desktop notifications")
	cmd.Flags().StringVar(&opts.configPath, "config", "",
		"Config file to use instead of the default search paths")

	return cmd
}

func startDemo(opts options) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	verbosity := cfg.Verbosity
	if opts.verbosity > 0 {
		verbosity = opts.verbosity
	}
	// The TUI owns the terminal, so logs go to the state file only.
	logging.Setup(verbosity, false)

	style := cfg.Icons
	if opts.iconStyle != "" {
		style = opts.iconStyle
	}
	icons.Init(style)

	host := teahost.NewHost()
	styles := teahost.DefaultStyles()

	regOpts := append(cfg.Options(),
		crest.WithAppearance(styles),
		crest.WithLogger(logging.Component("registry")),
	)
	reg := crest.New(host, regOpts...)

	if opts.notify || cfg.Notify.Enabled {
		if notifier, err := notify.New(); err != nil {
			nlog := logging.Component("notify")
			nlog.Warn().Err(err).Msg("desktop notifications unavailable")
		} else {
			announcer := notify.NewAnnouncer(notifier)
			announcer.Watch(reg.Events())
			defer announcer.Close()
		}
	}

	log := &eventLog{}
	watchSignals(reg, log)
	setupActions(reg, log)

	p := tea.NewProgram(
		teahost.NewModel(host, styles, newDemoModel(reg, log)),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	// Let in-flight callbacks finish before the process goes away.
	reg.Wait()
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
