package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/scott-cotton/cli"
)

func put(cfg *StoreConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cmd.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: put requires a file and an optional id, got %v", cli.ErrUsage, args)
	}
	doc, err := loadDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	var id string
	if len(args) == 2 {
		id = args[1]
	}

	s, err := cfg.openStore()
	if err != nil {
		return err
	}
	defer s.Close()
	meta, err := s.Put(id, doc)
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "%s\t%d\n", meta.ID, meta.ModCount)
	return nil
}

func get(cfg *StoreConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cmd.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: get requires an id, got %v", cli.ErrUsage, args)
	}
	s, err := cfg.openStore()
	if err != nil {
		return err
	}
	defer s.Close()
	doc, _, err := s.Get(args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return doc.Encode(cc.Out, cfg.xmlOpts()...)
}

func list(cfg *StoreConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cmd.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: ls takes no arguments", cli.ErrUsage)
	}
	s, err := cfg.openStore()
	if err != nil {
		return err
	}
	defer s.Close()
	metas, err := s.List()
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(cc.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tVERSION\tSIZE\tSAVED")
	for _, m := range metas {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", m.ID, m.ModCount, m.Size, m.Saved.Format(time.RFC3339))
	}
	return tw.Flush()
}

func remove(cfg *StoreConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cmd.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: rm requires an id, got %v", cli.ErrUsage, args)
	}
	s, err := cfg.openStore()
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.Delete(args[0]); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return nil
}
