// verify-selectors: recomputes keccak256 selectors for every remote command,
// compares them with the method ids go-ethereum derives from the receiver
// ABI and with the selectors the deployed receiver is known to expose, and
// prints a summary table. Exits 1 on any mismatch.
//
// Run from the module root:
//
//	go run ./scripts/verify-selectors
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/VolumeFi/gpu-dao-cw/internal/remote"
)

// deployed are the selectors of the receiver contract on the remote chains.
var deployed = map[string]string{
	"set_paloma":                   "23fde8e2",
	"update_compass":               "6974af69",
	"update_refund_wallet":         "c98856aa",
	"update_gas_fee":               "6e9bc3f6",
	"update_service_fee_collector": "30e59cbc",
	"update_service_fee":           "c4ec2ff1",
}

func main() {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COMMAND\tSIGNATURE\tKECCAK\tABI\tDEPLOYED\tOK")

	bad := 0
	for _, c := range remote.Commands() {
		sel := c.Selector()
		got := hex.EncodeToString(sel[:])
		id, err := remote.MethodID(c.Name)
		abiID := "-"
		if err == nil {
			abiID = hex.EncodeToString(id)
		}
		want := deployed[c.Name]

		ok := got == abiID && got == want
		mark := "✓"
		if !ok {
			mark = "✗"
			bad++
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", c.Name, c.Signature(), got, abiID, want, mark)
	}
	w.Flush()

	if len(deployed) != len(remote.Commands()) {
		fmt.Fprintf(os.Stderr, "expected %d commands, found %d\n", len(deployed), len(remote.Commands()))
		bad++
	}
	if bad > 0 {
		os.Exit(1)
	}
}
