package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"

	"github.com/philipp01105/nlogwire/config"
	"github.com/philipp01105/nlogwire/core"
	"github.com/philipp01105/nlogwire/logger"
	"github.com/philipp01105/nlogwire/wire"
)

const (
	emitShort = "Build the pipeline and write one message through it"
	emitLong  = `
		Builds the logger described by the configuration, creating the log
		directory when needed, and logs the message.

		With --priority the message goes through the reporter adapter, so
		priorities such as "access" end up on their own channel.`
	emitExample = `
		nlogwire emit -c logging.yaml --level warn "disk almost full"
		nlogwire emit -c logging.yaml --priority access "GET /cart 200"
		nlogwire emit -c logging.yaml --metrics "hello"`
)

type emitFlags struct {
	level    string
	priority string
	metrics  bool
}

func emitCmd(root *rootFlags) *cobra.Command {
	flags := &emitFlags{}

	cmd := &cobra.Command{
		Use:     "emit [flags] message",
		Short:   heredoc.Doc(emitShort),
		Long:    heredoc.Doc(emitLong),
		Example: heredoc.Doc(emitExample),
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !core.IsLevelName(flags.level) {
				return errors.Errorf("unknown level %q", flags.level)
			}
			cfg, err := config.Load(root.configPath)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), cfg, flags, strings.Join(args, " "))
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.level, "level", "l", "info", "level of the message")
	f.StringVarP(&flags.priority, "priority", "p", "", "report the message with this reporter priority")
	f.BoolVar(&flags.metrics, "metrics", false, "print handler statistics after writing")
	return cmd
}

func emit(out io.Writer, cfg *config.Config, flags *emitFlags, msg string) error {
	c, err := wire.Build(cfg)
	if err != nil {
		return err
	}

	if flags.priority != "" {
		if c.Reporter == nil {
			_ = c.Close()
			return errors.New("--priority needs hookToReporter to be enabled")
		}
		c.Reporter.Log(msg, flags.priority)
	} else {
		c.Logger.Log(logger.ParseLevel(flags.level), msg)
	}

	if err := c.Close(); err != nil {
		return errors.Wrap(err, "close handlers")
	}

	if !flags.metrics {
		return nil
	}
	reg := prometheus.NewRegistry()
	if err := reg.Register(c.Collector("nlog")); err != nil {
		return errors.WithStack(err)
	}
	families, err := reg.Gather()
	if err != nil {
		return errors.WithStack(err)
	}
	renderMetrics(out, families)
	return nil
}

func renderMetrics(w io.Writer, families []*dto.MetricFamily) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Labels", "Value"})
	table.SetAutoWrapText(false)

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			sort.Strings(labels)
			table.Append([]string{mf.GetName(), strings.Join(labels, ","), fmt.Sprintf("%g", m.GetCounter().GetValue())})
		}
	}
	table.Render()
}
