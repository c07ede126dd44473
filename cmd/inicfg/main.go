// Command inicfg reads and edits INI configuration files.
//
// Usage:
//
//	inicfg get <file> <Section:Key>          - Print one value
//	inicfg set <file> <Section:Key> <value>  - Store a value and save the file
//	inicfg section <file> <name>             - Show all keys of a section
//	inicfg sections <file>                   - List section names
//	inicfg dump <file> [--format toml]       - Print the file as ini, toml, yaml or json
//
// Global flags:
//
//	--streaming       parse line by line instead of reading the whole file
//	--comment ";"     comment marker (repeatable)
package main

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/ini"
)

type options struct {
	streaming bool
	comments  []string
	logger    *zap.Logger
}

func (o *options) open(path string) (*ini.Config, error) {
	strategy := ini.StrategyEager
	if o.streaming {
		strategy = ini.StrategyStreaming
	}
	return ini.NewBuilder().
		WithFile(path).
		WithStrategy(strategy).
		WithCommentMarkers(o.comments...).
		WithLogger(o.logger).
		Build()
}

func main() {
	logger := newLogger()
	defer logger.Sync()

	if err := newRootCmd(logger).Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		var perr *ini.ParseError
		if errors.As(err, &perr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newRootCmd(logger *zap.Logger) *cobra.Command {
	opts := &options{logger: logger}

	root := &cobra.Command{
		Use:           "inicfg",
		Short:         "Read and edit INI configuration files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&opts.streaming, "streaming", false, "parse the file line by line")
	root.PersistentFlags().StringSliceVar(&opts.comments, "comment", []string{ini.DefaultCommentMarker}, "comment marker")

	root.AddCommand(
		newGetCmd(opts),
		newSetCmd(opts),
		newSectionCmd(opts),
		newSectionsCmd(opts),
		newDumpCmd(opts),
	)
	return root
}

func newGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "get <file> <Section:Key>",
		Short:   "Print one value",
		Example: "inicfg get app.ini Settings:Theme",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.open(args[0])
			if err != nil {
				return err
			}
			value, ok, err := cfg.Get(args[1])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%s: %w", args[1], ini.ErrKeyNotFound)
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func newSetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "set <file> <Section:Key> <value>",
		Short:   "Store a value and save the file",
		Example: "inicfg set app.ini Settings:Theme Light",
		Args:    cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := opts.open(args[0])
			if err != nil {
				return err
			}
			if err := cfg.Set(args[1], args[2]); err != nil {
				return err
			}
			return cfg.Save()
		},
	}
}

func newSectionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "section <file> <name>",
		Short: "Show all keys of a section",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.open(args[0])
			if err != nil {
				return err
			}
			values, ok := cfg.GetSection(args[1])
			if !ok {
				return fmt.Errorf("%s: %w", args[1], ini.ErrSectionNotFound)
			}

			keys := make([]string, 0, len(values))
			for k := range values {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Key", "Value"})
			for _, k := range keys {
				table.Append([]string{k, values[k]})
			}
			table.Render()
			return nil
		},
	}
}

func newSectionsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sections <file>",
		Short: "List section names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.open(args[0])
			if err != nil {
				return err
			}
			for _, name := range cfg.Sections() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newDumpCmd(opts *options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the file as ini, toml, yaml or json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ini.ParseFormat(format)
			if err != nil {
				return err
			}
			cfg, err := opts.open(args[0])
			if err != nil {
				return err
			}
			return cfg.Export(cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "ini", "output format: ini, toml, yaml, json")
	return cmd
}
