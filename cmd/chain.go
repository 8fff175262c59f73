package cmd

import (
	"errors"
	"fmt"

	"github.com/VolumeFi/gpu-dao-cw/internal/contract"
	"github.com/VolumeFi/gpu-dao-cw/internal/state"
	"github.com/VolumeFi/gpu-dao-cw/internal/store"
	"github.com/VolumeFi/gpu-dao-cw/internal/ui"
	"github.com/spf13/cobra"
)

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Manage the remote chain registry",
	Long: `Register the scheduler job that reaches each remote chain.

The registry is provisioned out of band: these commands write the state
file directly and do not go through the owner check.`,
}

var chainSetCmd = &cobra.Command{
	Use:   "set <chain-id> <job-id>",
	Short: "Register or replace the job for a chain",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db store.DB) error {
			if err := state.ProvisionChain(db, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("%s → %s", ui.ChainName(args[0]), args[1])))
			return nil
		})
	},
}

var chainListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered chains",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db store.DB) error {
			entries, err := state.ListChains(db)
			if err != nil {
				return err
			}
			chains := make([]contract.ChainSettingResponse, 0, len(entries))
			for _, e := range entries {
				chains = append(chains, contract.ChainSettingResponse{ChainID: e.Key, JobID: e.Value.JobID})
			}
			fmt.Fprintln(cmd.OutOrStdout(), chainTable(chains))
			return nil
		})
	},
}

var chainRmCmd = &cobra.Command{
	Use:   "rm <chain-id>",
	Short: "Remove a chain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db store.DB) error {
			err := state.RemoveChain(db, args[0])
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: %q", contract.ErrUnknownChain, args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Success("Removed "+args[0]))
			return nil
		})
	},
}

func withDB(fn func(store.DB) error) error {
	db, err := store.OpenBolt(cfg.StorePath)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}

func init() {
	chainCmd.AddCommand(chainSetCmd, chainListCmd, chainRmCmd)
}
