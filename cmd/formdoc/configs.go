package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/scott-cotton/cli"

	"github.com/andreyvit/formdoc"
	"github.com/andreyvit/formdoc/ar2005"
	"github.com/andreyvit/formdoc/internal/config"
	"github.com/andreyvit/formdoc/internal/logging"
	"github.com/andreyvit/formdoc/recordstore"
)

type MainConfig struct {
	Record     bool   `cli:"name=record desc='work with single ARRecord documents instead of ARRecordSet'"`
	ConfigPath string `cli:"name=config desc='path to the YAML config file'"`
	Color      bool   `cli:"name=color desc='force colored output'"`
	NoColor    bool   `cli:"name=nocolor desc='disable colored output'"`

	conf *config.Config
	log  zerolog.Logger

	Main *cli.Command
}

func (cfg *MainConfig) setup() error {
	if cfg.Color && cfg.NoColor {
		return fmt.Errorf("%w: -color and -nocolor are mutually exclusive", cli.ErrUsage)
	}
	conf, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return err
	}
	log, err := logging.New(logging.Config{
		Level:  conf.Logging.Level,
		Format: conf.Logging.Format,
		Output: os.Stderr,
	})
	if err != nil {
		return err
	}
	cfg.conf, cfg.log = conf, log
	return nil
}

func (cfg *MainConfig) settings() *config.Config {
	if cfg.conf == nil {
		conf, err := config.Load("")
		if err != nil {
			panic(err)
		}
		cfg.conf = conf
	}
	return cfg.conf
}

func (cfg *MainConfig) schema() *formdoc.Schema {
	if cfg.Record {
		return ar2005.Record
	}
	return ar2005.RecordSet
}

func (cfg *MainConfig) xmlOpts() []formdoc.Option {
	return []formdoc.Option{formdoc.Indent("", cfg.settings().Output.Indent)}
}

// useColor decides whether output to w is colored: flags first, then the
// config, then whether w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	switch {
	case cfg.Color:
		return true
	case cfg.NoColor:
		return false
	}
	switch cfg.settings().Output.Color {
	case "always":
		return true
	case "never":
		return false
	}
	if color.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (cfg *MainConfig) palette(w io.Writer) palette {
	return newPalette(cfg.useColor(w))
}

func (cfg *MainConfig) openStore() (*recordstore.Store, error) {
	conf := cfg.settings()
	return recordstore.Open(conf.Store.Path, cfg.schema(), recordstore.Options{
		Logger:  cfg.log,
		Timeout: conf.Store.Timeout,
	})
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only report failures'"`

	Check *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write result to the file instead of stdout'"`

	Fmt *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type ShowConfig struct {
	*MainConfig

	Show *cli.Command
}

type ExportConfig struct {
	*MainConfig

	Export *cli.Command
}

type NewConfig struct {
	*MainConfig

	New *cli.Command
}

type StoreConfig struct {
	*MainConfig
	Path string `cli:"name=db desc='record store path (overrides config)'"`

	Cmd *cli.Command
}

func (cfg *StoreConfig) openStore() (*recordstore.Store, error) {
	if cfg.Path != "" {
		cfg.settings().Store.Path = cfg.Path
	}
	return cfg.MainConfig.openStore()
}
