package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "formdoc").
		WithSynopsis("formdoc [opts] command [opts]").
		WithDescription("formdoc validates, formats and stores AR2005 antenatal record documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return formdocMain(cfg, cc, args)
		}).
		WithSubs(
			NewCommand(cfg),
			CheckCommand(cfg),
			FmtCommand(cfg),
			ShowCommand(cfg),
			DiffCommand(cfg),
			ExportCommand(cfg),
			PutCommand(cfg),
			GetCommand(cfg),
			ListCommand(cfg),
			RemoveCommand(cfg))
}

func NewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &NewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("new").
		WithSynopsis("new").
		WithDescription("print an empty document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return newDoc(cfg, cc, args)
		})
	cfg.New = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check [-q] file...").
		WithDescription("parse documents and report schema violations").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("fmt").
		WithSynopsis("fmt [-w] file").
		WithDescription("rewrite a document in canonical form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtDoc(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func ShowCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ShowConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("show").
		WithAliases("s").
		WithSynopsis("show file").
		WithDescription("print the fields of a document as a tree").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return show(cfg, cc, args)
		})
	cfg.Show = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff a b").
		WithDescription("compare two documents in canonical form; exits 1 if they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("export").
		WithSynopsis("export file").
		WithDescription("print a document as YAML").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return export(cfg, cc, args)
		})
	cfg.Export = cmd
	return cmd
}

func storeCommand(mainCfg *MainConfig, name, synopsis, desc string, run func(cfg *StoreConfig, cc *cli.Context, args []string) error) *cli.Command {
	cfg := &StoreConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand(name).
		WithSynopsis(synopsis).
		WithDescription(desc).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
	cfg.Cmd = cmd
	return cmd
}

func PutCommand(mainCfg *MainConfig) *cli.Command {
	return storeCommand(mainCfg, "put", "put [-db path] file [id]", "store a document, allocating an ID unless given", put)
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	return storeCommand(mainCfg, "get", "get [-db path] id", "print a stored document", get)
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	return storeCommand(mainCfg, "ls", "ls [-db path]", "list stored documents", list)
}

func RemoveCommand(mainCfg *MainConfig) *cli.Command {
	return storeCommand(mainCfg, "rm", "rm [-db path] id", "delete a stored document", remove)
}
