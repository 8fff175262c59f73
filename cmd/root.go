package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/VolumeFi/gpu-dao-cw/internal/config"
	"github.com/VolumeFi/gpu-dao-cw/internal/contract"
	"github.com/VolumeFi/gpu-dao-cw/internal/store"
	"github.com/VolumeFi/gpu-dao-cw/internal/ui"
	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/VolumeFi/gpu-dao-cw/cmd.Version=1.2.3" .
var Version = "0.1.0"

var (
	cfgDir    string
	cfg       *config.Config
	verbose   bool
	sender    string
	assumeYes bool
)

// errNoSender is returned when neither --sender nor default_sender is set.
var errNoSender = errors.New("no sender: pass --sender or run gpudao config set default_sender <id>")

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "gpudao",
	Short: "Operate the gpu-dao token sale contract",
	Long: `gpudao runs the gpu-dao sale contract against a local state file.

  Record purchases, finalize the sale into a new token and pool, process
  claims, and push administrative updates to remote chains through the
  scheduler.

Every call runs as the identity given by --sender (or default_sender from
the config). State lives in a bbolt file; see: gpudao config list`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger(verbose)
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(cmd.OutOrStdout(), ui.Banner(Version))
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Err(err.Error()))
		os.Exit(1)
	}
}

func init() {
	// GPUDAO_CONFIG_DIR is read by config.Load when --config is empty.
	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "config directory (default: $"+config.EnvDir+" or ~/.gpudao)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVarP(&sender, "sender", "s", "", "caller identity (default: config default_sender)")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation prompts")

	// Register all sub-commands.
	rootCmd.AddCommand(
		instantiateCmd,
		purchaseCmd,
		finalizeCmd,
		claimCmd,
		refundCmd,
		remoteCmd,
		skywayBindCmd,
		execCmd,
		replyCmd,
		queryCmd,
		chainCmd,
		encodeCmd,
		selectorCmd,
		configCmd,
	)
}

func setupLogger(debug bool) {
	lvl := log.LevelInfo
	if debug {
		lvl = log.LevelDebug
	}
	color := isatty.IsTerminal(os.Stderr.Fd())
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, lvl, color)))
}

// callerID resolves the identity a call runs as.
func callerID() (string, error) {
	if sender != "" {
		return sender, nil
	}
	if cfg.DefaultSender != "" {
		return cfg.DefaultSender, nil
	}
	return "", errNoSender
}

// withContract opens the state file, runs fn and closes the file again.
func withContract(fn func(c *contract.Contract) error) error {
	return withDB(func(db store.DB) error {
		c := contract.New(db, contract.Env{
			ContractAddress: cfg.ContractAddress,
			ChainID:         cfg.ChainID,
		}, contract.WithLogger(log.Root()))
		return fn(c)
	})
}
