package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/VolumeFi/gpu-dao-cw/internal/remote"
	"github.com/VolumeFi/gpu-dao-cw/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/sha3"
)

var selectorCmd = &cobra.Command{
	Use:   "selector [command|signature|0xselector]",
	Short: "List or compute 4-byte function selectors",
	Long: `Without arguments, list the selectors of every remote command.
With a command name show that command, with a signature compute its
selector, and with a 0x-prefixed selector find the matching command.

Examples:
  gpudao selector
  gpudao selector update_gas_fee
  gpudao selector "update_gas_fee(uint256 fee)"   # → 0x6e9bc3f6
  gpudao selector 0x23fde8e2                      # → set_paloma`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			t := ui.NewTable(ui.Column{Title: "COMMAND"}, ui.Column{Title: "SIGNATURE"}, ui.Column{Title: "SELECTOR"})
			for _, c := range remote.Commands() {
				t.AddRow(c.Name, c.Signature(), c.SelectorHex())
			}
			fmt.Fprintln(out, t.Render())
			return nil
		}

		input := args[0]

		// If input starts with 0x, it's a selector to look up.
		if strings.HasPrefix(input, "0x") || strings.HasPrefix(input, "0X") {
			name := lookupSelector(input)
			fmt.Fprintln(out, ui.KeyValueBlock("Selector Lookup", [][2]string{
				{"Selector", strings.ToLower(input)},
				{"Command", ui.Val(name)},
			}))
			return nil
		}

		if !strings.Contains(input, "(") {
			c, err := remote.Lookup(input)
			if err != nil {
				return err
			}
			input = c.Signature()
		}

		sig := normalizeSignature(input)
		h := sha3.NewLegacyKeccak256()
		h.Write([]byte(sig))
		hash := h.Sum(nil)

		fmt.Fprintln(out, ui.KeyValueBlock("Function Selector", [][2]string{
			{"Signature", sig},
			{"Selector", ui.Val("0x" + hex.EncodeToString(hash[:4]))},
			{"Full Hash", "0x" + hex.EncodeToString(hash)},
		}))
		return nil
	},
}

// lookupSelector returns the remote command with the given selector, or
// "unknown".
func lookupSelector(sel string) string {
	sel = strings.ToLower(sel)
	for _, c := range remote.Commands() {
		if c.SelectorHex() == sel {
			return c.Name
		}
	}
	return "unknown"
}

// normalizeSignature removes parameter names, keeping only types.
// "update_compass(address new_compass)" → "update_compass(address)"
func normalizeSignature(sig string) string {
	parenIdx := strings.Index(sig, "(")
	if parenIdx < 0 || !strings.HasSuffix(sig, ")") {
		return sig
	}

	name := strings.TrimSpace(sig[:parenIdx])
	paramStr := sig[parenIdx+1 : len(sig)-1]

	var types []string
	for _, p := range strings.Split(paramStr, ",") {
		// Take only the first word (the type), skip the name.
		if parts := strings.Fields(p); len(parts) > 0 {
			types = append(types, parts[0])
		}
	}

	return name + "(" + strings.Join(types, ",") + ")"
}
