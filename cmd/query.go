package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/VolumeFi/gpu-dao-cw/internal/contract"
	"github.com/VolumeFi/gpu-dao-cw/internal/state"
	"github.com/VolumeFi/gpu-dao-cw/internal/ui"
	"github.com/spf13/cobra"
)

var (
	queryStartAfter string
	queryLimit      uint32
	queryJSON       bool
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Read contract state",
}

var queryStateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show the sale state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, contract.QueryMsg{State: &struct{}{}}, func(data []byte) (string, error) {
			var st state.SaleState
			if err := json.Unmarshal(data, &st); err != nil {
				return "", err
			}
			phase := "collecting"
			if st.Finished {
				phase = "finalized"
			}
			pairs := [][2]string{
				{"Phase", phase},
				{"Pricing denom", st.PusdDenom},
				{"Total supply", st.TotalSupply.String()},
			}
			if st.Denom != "" {
				pairs = append(pairs, [2]string{"Token denom", ui.Addr(st.Denom)})
			}
			for i, o := range st.Owners {
				pairs = append(pairs, [2]string{fmt.Sprintf("Owner[%d]", i), ui.Addr(o)})
			}
			return ui.KeyValueBlock("Sale", pairs), nil
		})
	},
}

var queryInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show which contract version wrote the state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, contract.QueryMsg{ContractInfo: &struct{}{}}, func(data []byte) (string, error) {
			var info state.ContractInfo
			if err := json.Unmarshal(data, &info); err != nil {
				return "", err
			}
			return ui.KeyValueBlock("Contract", [][2]string{
				{"Contract", info.Contract},
				{"Version", info.Version},
			}), nil
		})
	},
}

var queryPurchaseCmd = &cobra.Command{
	Use:   "purchase <purchaser>",
	Short: "Show one purchaser's outstanding commitment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q := contract.QueryMsg{Purchase: &contract.PurchaseQuery{Purchaser: args[0]}}
		return runQuery(cmd, q, func(data []byte) (string, error) {
			var r contract.PurchaseResponse
			if err := json.Unmarshal(data, &r); err != nil {
				return "", err
			}
			return ui.KeyValueBlock("Purchase", [][2]string{
				{"Purchaser", ui.Addr(r.Purchaser)},
				{"Amount", ui.Val(r.Amount.String())},
			}), nil
		})
	},
}

var queryPurchasesCmd = &cobra.Command{
	Use:   "purchases",
	Short: "List outstanding commitments",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q := contract.QueryMsg{Purchases: &contract.PurchasesQuery{StartAfter: queryStartAfter, Limit: limitFlag(cmd)}}
		return runQuery(cmd, q, func(data []byte) (string, error) {
			var r contract.PurchasesResponse
			if err := json.Unmarshal(data, &r); err != nil {
				return "", err
			}
			if len(r.Purchases) == 0 {
				return ui.Meta("No purchases."), nil
			}
			t := ui.NewTable(ui.Column{Title: "PURCHASER"}, ui.Column{Title: "AMOUNT", Align: ui.AlignRight})
			for _, p := range r.Purchases {
				t.AddRow(p.Purchaser, p.Amount.String())
			}
			return t.Render(), nil
		})
	},
}

var queryChainCmd = &cobra.Command{
	Use:   "chain <chain-id>",
	Short: "Show the job registered for a chain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q := contract.QueryMsg{ChainSetting: &contract.ChainSettingQuery{ChainID: args[0]}}
		return runQuery(cmd, q, func(data []byte) (string, error) {
			var r contract.ChainSettingResponse
			if err := json.Unmarshal(data, &r); err != nil {
				return "", err
			}
			return ui.KeyValueBlock("Chain", [][2]string{
				{"Chain", ui.ChainName(r.ChainID)},
				{"Job", r.JobID},
			}), nil
		})
	},
}

var queryChainsCmd = &cobra.Command{
	Use:   "chains",
	Short: "List registered chains",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q := contract.QueryMsg{ChainSettings: &contract.ChainSettingsQuery{StartAfter: queryStartAfter, Limit: limitFlag(cmd)}}
		return runQuery(cmd, q, func(data []byte) (string, error) {
			var r contract.ChainSettingsResponse
			if err := json.Unmarshal(data, &r); err != nil {
				return "", err
			}
			return chainTable(r.Chains), nil
		})
	},
}

func chainTable(chains []contract.ChainSettingResponse) string {
	if len(chains) == 0 {
		return ui.Meta("No chains registered.")
	}
	t := ui.NewTable(ui.Column{Title: "CHAIN"}, ui.Column{Title: "JOB"})
	for _, c := range chains {
		t.AddRow(c.ChainID, c.JobID)
	}
	return t.Render()
}

func limitFlag(cmd *cobra.Command) *uint32 {
	if !cmd.Flags().Changed("limit") {
		return nil
	}
	l := queryLimit
	return &l
}

// runQuery answers q and prints it with render, or as indented JSON
// with --json.
func runQuery(cmd *cobra.Command, q contract.QueryMsg, render func([]byte) (string, error)) error {
	return withContract(func(c *contract.Contract) error {
		data, err := c.Query(q)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if queryJSON {
			var buf bytes.Buffer
			if err := json.Indent(&buf, data, "", "  "); err != nil {
				return err
			}
			fmt.Fprintln(out, buf.String())
			return nil
		}
		s, err := render(data)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, s)
		return nil
	})
}

func init() {
	queryCmd.PersistentFlags().BoolVar(&queryJSON, "json", false, "print the raw JSON response")
	for _, c := range []*cobra.Command{queryPurchasesCmd, queryChainsCmd} {
		c.Flags().StringVar(&queryStartAfter, "start-after", "", "resume after this key")
		c.Flags().Uint32Var(&queryLimit, "limit", 10, "page size (max 30)")
	}
	queryCmd.AddCommand(queryStateCmd, queryInfoCmd, queryPurchaseCmd, queryPurchasesCmd, queryChainCmd, queryChainsCmd)
}
