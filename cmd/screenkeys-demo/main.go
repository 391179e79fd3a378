package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	screenkeys "github.com/fallereugene/screen-keyboard-input-components"
	"github.com/fallereugene/screen-keyboard-input-components/form"
	"github.com/fallereugene/screen-keyboard-input-components/internal/config"
	"github.com/fallereugene/screen-keyboard-input-components/internal/logging"
)

type model struct {
	form form.Model
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+c" {
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.form.View() }

func main() {
	if err := run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "form definition (.toml, .yaml or .json); built-in form if empty")
		watch      = flag.Bool("watch", false, "reload the form when the definition file changes")
		logFile    = flag.String("log-file", "", "write logs to this file")
		logLevel   = flag.String("log-level", "info", "log level: debug, info, warn, error")
		logFormat  = flag.String("log-format", "text", "log format: text or json")
		version    = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println(screenkeys.VersionTag())
		return nil
	}

	logCfg := logging.DefaultConfig()
	logCfg.Component = "screenkeys-demo"
	if *logFile != "" {
		logCfg.Output = "file"
		logCfg.FilePath = *logFile
	}
	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		return err
	}
	logCfg.Level = level
	format, err := logging.ParseFormat(*logFormat)
	if err != nil {
		return err
	}
	logCfg.Format = format

	logger, err := logging.New(logCfg)
	if err != nil {
		return err
	}
	defer logger.Close()

	def := config.DefaultForm()
	var loader *config.Loader
	if *configPath != "" {
		loader = config.NewLoader(*configPath)
		if def, err = loader.Load(); err != nil {
			return err
		}
	}

	f, err := form.New(def, form.Options{Logger: logger.Logger})
	if err != nil {
		return err
	}
	p := tea.NewProgram(model{form: f}, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if loader != nil && *watch {
		loader.OnChange(func(next *config.Form) {
			p.Send(form.ReloadMsg{Form: next})
		})
		if err := loader.Watch(); err != nil {
			return err
		}
		drained := make(chan struct{})
		go func() {
			defer close(drained)
			for err := range loader.Errors() {
				logger.Warn("form definition rejected", "path", *configPath, "error", err)
			}
		}()
		defer func() {
			_ = loader.Close()
			<-drained
		}()
	}

	_, err = p.Run()
	return err
}
