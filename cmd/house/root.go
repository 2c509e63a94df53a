package main

import (
	"github.com/kjkrol/gohouse/internal/config"
	"github.com/kjkrol/gohouse/internal/logx"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	configPath string
	vertex     string
	fragment   string
	strict     bool
	watch      bool

	vv, v, q bool
}

func newRootCmd() *cobra.Command {
	return newRootCommand(&options{})
}

func newRootCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "house",
		Short:        "Render a textured house of cubes",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd.Flags())
			if err != nil {
				return err
			}
			logx.UserLevel = logx.LevelFromFlags(opts.vv, opts.v, opts.q)
			logger := logx.SetDefaultLogger()
			return run(cmd.Context(), cfg, logger)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "TOML file overriding the built-in settings")
	f.StringVar(&opts.vertex, "vertex", "", "vertex shader source")
	f.StringVar(&opts.fragment, "fragment", "", "fragment shader source")
	f.BoolVar(&opts.strict, "strict", false, "exit if the shaders fail to compile or link")
	f.BoolVar(&opts.watch, "watch", false, "recompile the shaders when their sources change")
	f.BoolVar(&opts.vv, "vv", false, "debug output")
	f.BoolVarP(&opts.v, "verbose", "v", false, "show shader compile progress")
	f.BoolVarP(&opts.q, "quiet", "q", false, "only print errors")
	return cmd
}

// load reads the config file and applies the flags that were set on the
// command line on top of it.
func (o *options) load(flags *pflag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, err
	}
	if flags.Changed("vertex") {
		cfg.Shaders.Vertex = o.vertex
	}
	if flags.Changed("fragment") {
		cfg.Shaders.Fragment = o.fragment
	}
	if flags.Changed("strict") {
		cfg.Shaders.Strict = o.strict
	}
	if flags.Changed("watch") {
		cfg.Shaders.Watch = o.watch
	}
	return cfg, cfg.Validate()
}
