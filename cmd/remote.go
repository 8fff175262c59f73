package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/VolumeFi/gpu-dao-cw/internal/contract"
	"github.com/VolumeFi/gpu-dao-cw/internal/num"
	"github.com/VolumeFi/gpu-dao-cw/internal/remote"
	"github.com/VolumeFi/gpu-dao-cw/internal/state"
	"github.com/VolumeFi/gpu-dao-cw/internal/store"
	"github.com/VolumeFi/gpu-dao-cw/internal/ui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var remoteChain string

var errNoChain = errors.New("no chain: pass --chain or run gpudao config set default_chain <id>")

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Send an administrative command to a remote chain",
	Long: `Encode an administrative call for the remote receiver contract and
dispatch it through the scheduler job registered for the chain.

The chain comes from --chain, then default_chain in the config. On a
terminal without either, an interactive picker lists the registered chains.

Examples:
  gpudao remote set_paloma --chain ethereum-main
  gpudao remote update_compass 0x1111111111111111111111111111111111111111 --chain bsc-main
  gpudao remote update_gas_fee 30000000000`,
}

var skywayBindCmd = &cobra.Command{
	Use:   "skyway-bind <erc20-address>",
	Short: "Bind the sale token to an ERC-20 on a remote chain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chainID, err := resolveChain()
		if err != nil {
			return err
		}
		return execute(cmd, contract.ExecuteMsg{SetErc20ToDenom: &contract.SetErc20ToDenom{
			ChainID:      chainID,
			Erc20Address: args[0],
		}})
	},
}

// remoteMsg builds the ExecuteMsg variant for a remote command.
func remoteMsg(c remote.Command, chainID, arg string) (contract.ExecuteMsg, error) {
	var v num.Uint256
	if c.Kind == remote.KindUint256 {
		var err error
		if v, err = num.ParseUint256(arg); err != nil {
			return contract.ExecuteMsg{}, fmt.Errorf("%s: %w", c.Arg, err)
		}
	}

	switch c.Name {
	case remote.SetPaloma.Name:
		return contract.ExecuteMsg{SetPaloma: &contract.SetPaloma{ChainID: chainID}}, nil
	case remote.UpdateCompass.Name:
		return contract.ExecuteMsg{UpdateCompass: &contract.UpdateCompass{ChainID: chainID, NewCompass: arg}}, nil
	case remote.UpdateRefundWallet.Name:
		return contract.ExecuteMsg{UpdateRefundWallet: &contract.UpdateRefundWallet{ChainID: chainID, NewRefundWallet: arg}}, nil
	case remote.UpdateGasFee.Name:
		return contract.ExecuteMsg{UpdateGasFee: &contract.UpdateGasFee{ChainID: chainID, NewGasFee: v}}, nil
	case remote.UpdateServiceFeeCollector.Name:
		return contract.ExecuteMsg{UpdateServiceFeeCollector: &contract.UpdateServiceFeeCollector{
			ChainID: chainID, NewServiceFeeCollector: arg,
		}}, nil
	case remote.UpdateServiceFee.Name:
		return contract.ExecuteMsg{UpdateServiceFee: &contract.UpdateServiceFee{ChainID: chainID, NewServiceFee: v}}, nil
	}
	return contract.ExecuteMsg{}, fmt.Errorf("%w: %q", remote.ErrUnknownCommand, c.Name)
}

func newRemoteSubcommand(c remote.Command) *cobra.Command {
	use := c.Name
	argCheck := cobra.NoArgs
	if c.Kind != remote.KindNone {
		use += " <" + c.Arg + ">"
		argCheck = cobra.ExactArgs(1)
	}
	return &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Dispatch %s (selector %s)", c.Signature(), c.SelectorHex()),
		Args:  argCheck,
		RunE: func(cmd *cobra.Command, args []string) error {
			chainID, err := resolveChain()
			if err != nil {
				return err
			}
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			m, err := remoteMsg(c, chainID, arg)
			if err != nil {
				return err
			}
			return execute(cmd, m)
		},
	}
}

// resolveChain picks the target chain for an admin command.
func resolveChain() (string, error) {
	if remoteChain != "" {
		return remoteChain, nil
	}
	if cfg.DefaultChain != "" {
		return cfg.DefaultChain, nil
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return "", errNoChain
	}
	return pickChain()
}

func pickChain() (string, error) {
	var chains []state.Entry[state.ChainSetting]
	err := withDB(func(db store.DB) error {
		var err error
		chains, err = state.ListChains(db)
		return err
	})
	if err != nil {
		return "", err
	}
	if len(chains) == 0 {
		return "", fmt.Errorf("%w; register one with: gpudao chain set <chain-id> <job-id>", errNoChain)
	}

	items := make([]ui.PickerItem, 0, len(chains))
	for _, c := range chains {
		items = append(items, ui.PickerItem{Label: c.Key, SubLabel: c.Value.JobID, Value: c.Key})
	}
	picked, err := ui.PickItem("Select target chain", items)
	if err != nil {
		return "", err
	}
	if picked == "" {
		return "", errors.New("cancelled")
	}
	return picked, nil
}

func init() {
	remoteCmd.PersistentFlags().StringVar(&remoteChain, "chain", "", "target chain id")
	skywayBindCmd.Flags().StringVar(&remoteChain, "chain", "", "target chain id")
	for _, c := range remote.Commands() {
		remoteCmd.AddCommand(newRemoteSubcommand(c))
	}
}
