package cmd

import (
	"fmt"

	"github.com/VolumeFi/gpu-dao-cw/internal/contract"
	"github.com/VolumeFi/gpu-dao-cw/internal/msg"
	"github.com/VolumeFi/gpu-dao-cw/internal/num"
	"github.com/VolumeFi/gpu-dao-cw/internal/ui"
	"github.com/spf13/cobra"
)

var (
	instPusdDenom string
	instOwners    []string

	finFactory     string
	finName        string
	finSymbol      string
	finDescription string
	finMint        string
	finDistribute  string
	finPusd        string
)

var instantiateCmd = &cobra.Command{
	Use:   "instantiate",
	Short: "Create the sale",
	Long: `Create the sale with its pricing denom and owner set. The sender is
always added to the owners.

Examples:
  gpudao instantiate --pusd-denom upusd --owner paloma1alice --owner paloma1bob -s paloma1creator`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := callerID()
		if err != nil {
			return err
		}
		return withContract(func(c *contract.Contract) error {
			resp, err := c.Instantiate(contract.MessageInfo{Sender: from}, contract.InstantiateMsg{
				PusdDenom: instPusdDenom,
				Owners:    instOwners,
			})
			if err != nil {
				return err
			}
			printResponse(cmd, "instantiate", resp)
			return nil
		})
	},
}

var purchaseCmd = &cobra.Command{
	Use:   "purchase <purchaser> <amount>",
	Short: "Record a purchase commitment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := num.ParseUint128(args[1])
		if err != nil {
			return fmt.Errorf("amount: %w", err)
		}
		return execute(cmd, contract.ExecuteMsg{Purchase: &contract.Purchase{
			Purchaser: args[0],
			Amount:    amount,
		}})
	},
}

var finalizeCmd = &cobra.Command{
	Use:   "finalize",
	Short: "End the sale, mint the token and create its pool",
	Long: `Finalize the sale. This creates factory/<contract>/<symbol>, mints
--mint of it to the contract and asks the AMM factory to pair it against
the pricing denom. Finalizing cannot be undone.

Examples:
  gpudao finalize --factory paloma1factory --name "GPU Token" --symbol GPU \
    --mint 1000000 --distribute 400000 --pusd 50000`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := &contract.Finalize{
			PalomadexAmmFactory: finFactory,
			TokenName:           finName,
			TokenSymbol:         finSymbol,
		}
		if cmd.Flags().Changed("description") {
			f.TokenDescription = &finDescription
		}
		for _, a := range []struct {
			flag string
			raw  string
			dst  *num.Uint128
		}{
			{"mint", finMint, &f.MintAmount},
			{"distribute", finDistribute, &f.DistributeAmount},
			{"pusd", finPusd, &f.PusdAmount},
		} {
			v, err := num.ParseUint128(a.raw)
			if err != nil {
				return fmt.Errorf("--%s: %w", a.flag, err)
			}
			*a.dst = v
		}

		if !assumeYes {
			prompt := fmt.Sprintf("Finalize the sale as %s? This cannot be undone.", f.TokenSymbol)
			if !ui.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), prompt) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn("Aborted."))
				return nil
			}
		}
		return execute(cmd, contract.ExecuteMsg{Finalize: f})
	},
}

var claimCmd = &cobra.Command{
	Use:   "claim <purchaser>",
	Short: "Settle a purchaser's allocation after finalize",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return execute(cmd, contract.ExecuteMsg{Claim: &contract.Claim{Purchaser: args[0]}})
	},
}

var refundCmd = &cobra.Command{
	Use:   "refund",
	Short: "Run the refund hook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return execute(cmd, contract.ExecuteMsg{Refund: &contract.Refund{}})
	},
}

// execute runs m as the caller and prints the outcome.
func execute(cmd *cobra.Command, m contract.ExecuteMsg) error {
	from, err := callerID()
	if err != nil {
		return err
	}
	return withContract(func(c *contract.Contract) error {
		resp, err := c.Execute(contract.MessageInfo{Sender: from}, m)
		if err != nil {
			return err
		}
		action, _ := resp.Attr("action")
		printResponse(cmd, action, resp)
		return nil
	})
}

func printResponse(cmd *cobra.Command, title string, resp *msg.Response) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Response(title, resp))
	fmt.Fprintln(out, ui.Success(fmt.Sprintf("%s committed (%d message(s))", title, len(resp.Messages))))
}

func init() {
	instantiateCmd.Flags().StringVar(&instPusdDenom, "pusd-denom", "", "denom accepted for purchases (required)")
	instantiateCmd.Flags().StringSliceVar(&instOwners, "owner", nil, "owner identity (repeatable)")
	_ = instantiateCmd.MarkFlagRequired("pusd-denom")

	finalizeCmd.Flags().StringVar(&finFactory, "factory", "", "AMM factory contract (required)")
	finalizeCmd.Flags().StringVar(&finName, "name", "", "token display name")
	finalizeCmd.Flags().StringVar(&finSymbol, "symbol", "", "token symbol, used as subdenom (required)")
	finalizeCmd.Flags().StringVar(&finDescription, "description", "", "token description")
	finalizeCmd.Flags().StringVar(&finMint, "mint", "0", "amount to mint to the contract")
	finalizeCmd.Flags().StringVar(&finDistribute, "distribute", "0", "amount reserved for distribution")
	finalizeCmd.Flags().StringVar(&finPusd, "pusd", "0", "pricing denom amount for the pool")
	_ = finalizeCmd.MarkFlagRequired("factory")
	_ = finalizeCmd.MarkFlagRequired("symbol")
}
