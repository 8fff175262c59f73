package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/VolumeFi/gpu-dao-cw/internal/remote"
	"github.com/VolumeFi/gpu-dao-cw/internal/ui"
	"github.com/spf13/cobra"
)

var encodeRaw bool

var encodeCmd = &cobra.Command{
	Use:   "encode <command> [arg]",
	Short: "Show the payload a remote command would dispatch",
	Long: `Build the ABI-encoded payload for a remote command without touching
state. This is the exact byte string the scheduler job receives.

Examples:
  gpudao encode set_paloma
  gpudao encode update_compass 0x1111111111111111111111111111111111111111
  gpudao encode update_service_fee 1000 --raw`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := remote.Lookup(args[0])
		if err != nil {
			return err
		}
		arg := ""
		if len(args) == 2 {
			arg = args[1]
		}
		payload, err := c.Encode(arg)
		if err != nil {
			return fmt.Errorf("encoding failed: %w", err)
		}

		out := cmd.OutOrStdout()
		if encodeRaw {
			fmt.Fprintln(out, "0x"+hex.EncodeToString(payload))
			return nil
		}

		pairs := [][2]string{
			{"Signature", c.Signature()},
			{"Selector", c.SelectorHex()},
		}
		if c.Kind != remote.KindNone {
			pairs = append(pairs, [2]string{fmt.Sprintf("%s (%s)", c.Arg, c.Kind), arg})
		}
		pairs = append(pairs, [2]string{"Payload", ui.Val("0x" + hex.EncodeToString(payload))})
		pairs = append(pairs, [2]string{"Bytes", fmt.Sprintf("%d", len(payload))})

		fmt.Fprintln(out, ui.KeyValueBlock("Encoded Payload", pairs))
		return nil
	},
}

func init() {
	encodeCmd.Flags().BoolVar(&encodeRaw, "raw", false, "print only the payload hex")
}
