package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/andreyvit/formdoc"
	"github.com/andreyvit/formdoc/ar2005"
)

func readInput(cc *cli.Context, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cc.In)
	}
	return os.ReadFile(path)
}

func loadDoc(cfg *MainConfig, cc *cli.Context, path string) (*formdoc.Document, error) {
	data, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	doc, err := formdoc.Parse(data, cfg.schema())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func emptyDoc(schema *formdoc.Schema) *formdoc.Document {
	if schema == ar2005.Record {
		return ar2005.NewRecord()
	}
	doc := formdoc.NewDocument(schema)
	rec := doc.Root().AppendRepeatedChild("ARRecord")
	rec.AddChild("AR1")
	rec.AddChild("AR2")
	return doc
}

func newDoc(cfg *NewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.New.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: new takes no arguments", cli.ErrUsage)
	}
	return emptyDoc(cfg.schema()).Encode(cc.Out, cfg.xmlOpts()...)
}

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires at least one file", cli.ErrUsage)
	}
	failed := 0
	for _, path := range args {
		doc, err := loadDoc(cfg.MainConfig, cc, path)
		if err != nil {
			failed++
			fmt.Fprintln(cc.Out, err)
			continue
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: ok (%s)\n", path, summarize(doc))
		}
	}
	if failed > 0 {
		cfg.log.Info().Int("failed", failed).Int("total", len(args)).Msg("check finished")
		return cli.ExitCodeErr(1)
	}
	return nil
}

// summarize describes a parsed document in a few words.
func summarize(doc *formdoc.Document) string {
	root := doc.Root()
	if root.Model() == ar2005.ARRecordSet {
		n := root.CountRepeatedChildren("ARRecord")
		if n == 1 {
			return "1 record"
		}
		return fmt.Sprintf("%d records", n)
	}
	var sections int
	for _, prop := range root.Model().Props() {
		if !root.Field(prop.Name()).IsAbsent() {
			sections++
		}
	}
	return fmt.Sprintf("%d of %d sections", sections, root.Model().NumProps())
}

func fmtDoc(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: fmt requires 1 file, got %v", cli.ErrUsage, args)
	}
	doc, err := loadDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	data, err := doc.Serialize(cfg.xmlOpts()...)
	if err != nil {
		return err
	}
	if cfg.Write && args[0] != "-" {
		return os.WriteFile(args[0], data, 0o644)
	}
	_, err = cc.Out.Write(data)
	return err
}

func show(cfg *ShowConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Show.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: show requires 1 file, got %v", cli.ErrUsage, args)
	}
	doc, err := loadDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	return writeTree(cc.Out, doc.Root(), cfg.palette(cc.Out), cfg.settings().Output.Indent)
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 files, got %v", cli.ErrUsage, args)
	}
	var texts [2]string
	for i, path := range args {
		doc, err := loadDoc(cfg.MainConfig, cc, path)
		if err != nil {
			return err
		}
		data, err := doc.Serialize(cfg.xmlOpts()...)
		if err != nil {
			return err
		}
		texts[i] = string(data)
	}
	out, differs := lineDiff(texts[0], texts[1], cfg.palette(cc.Out))
	if !differs {
		return nil
	}
	if _, err := io.WriteString(cc.Out, out); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: export requires 1 file, got %v", cli.ErrUsage, args)
	}
	doc, err := loadDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	data, err := exportYAML(doc)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(data)
	return err
}
