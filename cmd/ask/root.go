package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/nao1215/ask"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// askFunc runs one prompt. It is ask.Ask outside of tests.
type askFunc func(message string, options ...ask.Option) (string, error)

// config is the merged result of flags, ASK_* environment variables and
// the optional YAML config file, in that order of precedence.
type config struct {
	Default     string   `mapstructure:"default"`
	HelpMessage string   `mapstructure:"help_message"`
	Suggest     []string `mapstructure:"suggest"`
	Fuzzy       bool     `mapstructure:"fuzzy"`
	Files       bool     `mapstructure:"files"`
	Required    bool     `mapstructure:"required"`
	MinLength   int      `mapstructure:"min_length"`
	MaxLength   int      `mapstructure:"max_length"`
	Pattern     string   `mapstructure:"pattern"`
	PageSize    int      `mapstructure:"page_size"`
	Theme       string   `mapstructure:"theme"`
	HistoryFile string   `mapstructure:"history_file"`
	Mask        string   `mapstructure:"mask"`
	Verbose     bool     `mapstructure:"verbose"`
}

func newRootCmd(logger *log.Logger, run askFunc) *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "ask [flags] MESSAGE",
		Short: "Ask a question on the terminal and print the answer",
		Long: `ask shows an interactive prompt on the controlling terminal and prints the
accepted answer on stdout.

Exit status is 0 for an answer, 2 when the prompt is canceled with Esc and
130 when it is interrupted with Ctrl+C.`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cfgFile)
			if err != nil {
				return err
			}
			if cfg.Verbose {
				logger.SetLevel(log.DebugLevel)
			}

			options, err := cfg.options(logger)
			if err != nil {
				return err
			}

			logger.Debug("asking", "message", args[0], "config", v.ConfigFileUsed())
			answer, err := run(args[0], options...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), answer)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "YAML config file with default flag values")
	flags.StringP("default", "d", "", "answer used when the input is empty")
	flags.String("help-message", "", "help line shown under the prompt")
	flags.StringSliceP("suggest", "s", nil, "suggestion candidates (repeatable or comma separated)")
	flags.Bool("fuzzy", false, "match suggestions fuzzily instead of by prefix")
	flags.Bool("files", false, "suggest file paths")
	flags.Bool("required", false, "reject empty answers")
	flags.Int("min-length", 0, "minimum answer length in characters")
	flags.Int("max-length", 0, "maximum answer length in characters")
	flags.String("pattern", "", "regular expression the answer must match")
	flags.Int("page-size", ask.DefaultPageSize, "number of suggestions shown at once")
	flags.String("theme", "", "color theme ("+themeNames()+")")
	flags.String("history-file", "", "remember answers in this file and suggest them")
	flags.String("mask", "", "show the accepted answer as this mask, one per character")
	flags.BoolP("verbose", "v", false, "log debug output to stderr")

	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		_ = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
	v.SetEnvPrefix("ASK")
	v.AutomaticEnv()

	return cmd
}

// loadConfig reads the optional config file and merges it with flags and
// the environment.
func loadConfig(v *viper.Viper, cfgFile string) (config, error) {
	var cfg config
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// options turns the configuration into prompt options.
func (c config) options(logger *log.Logger) ([]ask.Option, error) {
	options := []ask.Option{ask.WithLogger(logger)}

	if c.Default != "" {
		options = append(options, ask.WithDefault(c.Default))
	}
	if c.HelpMessage != "" {
		options = append(options, ask.WithHelpMessage(c.HelpMessage))
	}

	switch {
	case c.Files:
		options = append(options, ask.WithSuggester(ask.NewFileSuggester()))
	case len(c.Suggest) > 0 && c.Fuzzy:
		options = append(options, ask.WithSuggester(ask.NewFuzzySuggester(c.Suggest)))
	case len(c.Suggest) > 0:
		options = append(options, ask.WithSuggester(ask.NewPrefixSuggester(c.Suggest)))
	}

	if c.Required {
		options = append(options, ask.WithValidator(ask.Required("")))
	}
	if c.MinLength > 0 {
		options = append(options, ask.WithValidator(ask.MinLength(c.MinLength, "")))
	}
	if c.MaxLength > 0 {
		options = append(options, ask.WithValidator(ask.MaxLength(c.MaxLength, "")))
	}
	if c.Pattern != "" {
		re, err := regexp.Compile(c.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid pattern %q: %w", ask.ErrInvalidConfiguration, c.Pattern, err)
		}
		options = append(options, ask.WithValidator(ask.MatchRegexp(re, "")))
	}

	if c.PageSize != 0 {
		options = append(options, ask.WithPageSize(c.PageSize))
	}
	if c.Theme != "" {
		theme, ok := ask.ThemeByName(c.Theme)
		if !ok {
			return nil, fmt.Errorf("%w: unknown theme %q, available: %s", ask.ErrInvalidConfiguration, c.Theme, themeNames())
		}
		options = append(options, ask.WithColorScheme(theme))
	}
	if c.HistoryFile != "" {
		options = append(options, ask.WithFileHistory(c.HistoryFile, 0))
	}
	if c.Mask != "" {
		options = append(options, ask.WithFormatter(ask.MaskFormatter(c.Mask)))
	}

	return options, nil
}

func themeNames() string {
	names := make([]string, len(ask.Themes))
	for i, theme := range ask.Themes {
		names[i] = theme.Name
	}
	return strings.Join(names, ", ")
}
