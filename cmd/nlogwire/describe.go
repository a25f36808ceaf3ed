package main

import (
	"io"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/philipp01105/nlogwire/config"
	"github.com/philipp01105/nlogwire/pipeline"
	"github.com/philipp01105/nlogwire/wire"
)

const (
	describeShort = "Print the ordered handler and processor pipeline"
	describeLong  = `
		Loads the configuration and prints the handlers and processors in
		the order they are pushed onto the logger. The logger calls them in
		reverse: the last row of each kind runs first.

		Nothing is created on disk and no handler is opened.`
	describeExample = `
		nlogwire describe -c config/logging.yaml`
)

func describeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "describe",
		Short:   heredoc.Doc(describeShort),
		Long:    heredoc.Doc(describeLong),
		Example: heredoc.Doc(describeExample),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			logDir, err := cfg.ResolveLogDir()
			if err != nil {
				return err
			}
			asm, err := wire.Assemble(cfg, logDir)
			if err != nil {
				return err
			}
			renderAssembly(cmd.OutOrStdout(), cfg, asm)
			return nil
		},
	}
}

// directiveTypes maps entry names of each kind to their configured type
func directiveTypes(cfg *config.Config) map[pipeline.Kind]map[string]string {
	types := map[pipeline.Kind]map[string]string{
		pipeline.KindHandler:   {},
		pipeline.KindProcessor: {},
	}
	for _, d := range cfg.Handlers {
		types[pipeline.KindHandler][d.Name] = d.Type
	}
	for _, d := range cfg.Processors {
		types[pipeline.KindProcessor][d.Name] = d.Type
	}
	return types
}

func renderAssembly(w io.Writer, cfg *config.Config, asm pipeline.Assembly) {
	types := directiveTypes(cfg)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Kind", "Name", "Priority", "Type"})
	table.SetAutoWrapText(false)

	for _, part := range [][]pipeline.Entry{asm.Handlers, asm.Processors} {
		for i, e := range part {
			typ, ok := types[e.Kind][e.Name]
			priority := strconv.Itoa(e.Priority)
			switch {
			case e.Kind == pipeline.KindHandler && e.Name == pipeline.FallbackName:
				typ, priority = "built-in", "last"
			case !ok:
				typ = "built-in"
			}
			table.Append([]string{strconv.Itoa(i + 1), e.Kind.String(), e.Name, priority, typ})
		}
	}

	fallback := "no"
	if asm.FallbackInjected {
		fallback = "yes"
	}
	table.SetFooter([]string{"", "", "", "fallback", fallback})
	table.Render()
}
