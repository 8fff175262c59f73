package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/VolumeFi/gpu-dao-cw/internal/contract"
	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Use:   "exec <json|->",
	Short: "Run a raw ExecuteMsg",
	Long: `Run an ExecuteMsg given as JSON, or read from stdin with "-".

Examples:
  gpudao exec '{"purchase":{"purchaser":"paloma1buyer","amount":"100"}}'
  echo '{"refund":{}}' | gpudao exec -`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var m contract.ExecuteMsg
		if err := decodeArg(cmd, args[0], &m); err != nil {
			return err
		}
		return execute(cmd, m)
	},
}

var replyCmd = &cobra.Command{
	Use:   "reply <json|->",
	Short: "Deliver a sub-message result to the contract",
	Long: `Hand the contract the outcome of a sub-message, as the host does after
the pool creation dispatched by finalize.

Examples:
  gpudao reply '{"id":1,"result":{"ok":{"events":[{"type":"wasm","attributes":[{"key":"pair_contract_addr","value":"paloma1pair"}]}]}}}'
  gpudao reply '{"id":1,"result":{"err":"pair exists"}}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var r contract.Reply
		if err := decodeArg(cmd, args[0], &r); err != nil {
			return err
		}
		return withContract(func(c *contract.Contract) error {
			resp, err := c.Reply(r)
			if err != nil {
				return err
			}
			printResponse(cmd, "reply", resp)
			return nil
		})
	},
}

// decodeArg strictly decodes arg, or stdin when arg is "-", into v.
func decodeArg(cmd *cobra.Command, arg string, v any) error {
	var data []byte
	if arg == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		data = b
	} else {
		data = []byte(arg)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("%w: empty input", contract.ErrInvalidMsg)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", contract.ErrInvalidMsg, err)
	}
	return nil
}
