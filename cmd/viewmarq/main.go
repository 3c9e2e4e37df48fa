// cmd/viewmarq/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tamzrod/viewmarq/internal/config"
	"github.com/tamzrod/viewmarq/internal/display"
	"github.com/tamzrod/viewmarq/internal/logging"
	"github.com/tamzrod/viewmarq/internal/sign"
)

var (
	cfgPath        string
	connectTimeout time.Duration
	noAdjust       bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "viewmarq",
		Short:         "Drive a ViewMarq LED sign over Modbus TCP",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Path to sign config YAML (required)")
	root.PersistentFlags().DurationVar(&connectTimeout, "connect-timeout", 0, "Give up connecting after this long (0 waits forever)")
	if err := root.MarkPersistentFlagRequired("config"); err != nil {
		panic(err)
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "send",
			Short: "Compile the configured lines and send them",
			Args:  cobra.NoArgs,
			RunE: withSign(func(ctx context.Context, s *sign.Sign, _ []string) error {
				return s.Refresh(ctx)
			}),
		},
		&cobra.Command{
			Use:   "print",
			Short: "Print the compiled command without connecting",
			Args:  cobra.NoArgs,
			RunE: withSign(func(_ context.Context, s *sign.Sign, _ []string) error {
				s.WriteMessage()
				return s.PrintMessage(os.Stdout)
			}),
		},
		&cobra.Command{
			Use:   "raw <command>",
			Short: "Send a hand-written command string",
			Args:  cobra.ExactArgs(1),
			RunE: withSign(func(ctx context.Context, s *sign.Sign, args []string) error {
				s.WriteRaw(args[0])
				return s.Send(ctx)
			}),
		},
		&cobra.Command{
			Use:   "test <none|green|red|amber|advanced>",
			Short: "Show a maintenance test pattern",
			Args:  cobra.ExactArgs(1),
			RunE: withSign(func(ctx context.Context, s *sign.Sign, args []string) error {
				p, err := display.ParseTestPattern(args[0])
				if err != nil {
					return err
				}
				if err := s.SetTestCondition(p); err != nil {
					return err
				}
				return s.Refresh(ctx)
			}),
		},
		decimalCmd(),
		stringCmd(),
	)

	return root
}

func decimalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decimal <slot> <value>",
		Short: "Send the configured lines, then update a numeric variable",
		Args:  cobra.ExactArgs(2),
		RunE: withSign(func(ctx context.Context, s *sign.Sign, args []string) error {
			slot, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("slot: %w", err)
			}
			if err := s.Refresh(ctx); err != nil {
				return err
			}

			if v, err := strconv.ParseInt(args[1], 10, 32); err == nil {
				return s.UpdateDecimal(ctx, slot, int32(v), !noAdjust)
			}
			f, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("value: %w", err)
			}
			return s.UpdateReal(ctx, slot, f, !noAdjust)
		}),
	}
	cmd.Flags().BoolVar(&noAdjust, "no-adjust", false, "Do not resize the DEC field")
	return cmd
}

func stringCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "string <slot> <text>",
		Short: "Send the configured lines, then update a string variable",
		Args:  cobra.ExactArgs(2),
		RunE: withSign(func(ctx context.Context, s *sign.Sign, args []string) error {
			slot, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("slot: %w", err)
			}
			if err := s.Refresh(ctx); err != nil {
				return err
			}
			return s.UpdateString(ctx, slot, args[1], !noAdjust)
		}),
	}
	cmd.Flags().BoolVar(&noAdjust, "no-adjust", false, "Do not resize the STR field")
	return cmd
}

// withSign loads config, sets up logging and builds the sign before fn runs.
func withSign(fn func(ctx context.Context, s *sign.Sign, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		// --------------------
		// Load + validate config
		// --------------------

		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if err := config.Validate(cfg); err != nil {
			return err
		}
		config.Normalize(cfg)

		if err := logging.Init(cfg.Log); err != nil {
			return err
		}

		// --------------------
		// Build sign
		// --------------------

		s, closeSign, err := sign.Build(cfg.Sign)
		if err != nil {
			return fmt.Errorf("sign build failed: %w", err)
		}
		defer func() {
			if err := closeSign(); err != nil {
				log.Warn().Err(err).Msg("close sign")
			}
		}()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if connectTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, connectTimeout)
			defer cancel()
		}

		log.Debug().Str("endpoint", cfg.Sign.Endpoint).Int("id", cfg.Sign.ID).Msg("sign ready")
		return fn(ctx, s, args)
	}
}
