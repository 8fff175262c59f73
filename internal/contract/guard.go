package contract

import (
	"fmt"

	"github.com/VolumeFi/gpu-dao-cw/internal/state"
)

// requireOwner fails unless sender is in the owner set. It has no side
// effects and must run before any other check of a guarded call.
func requireOwner(st *state.SaleState, sender string) error {
	if !st.IsOwner(sender) {
		return fmt.Errorf("%w: %s is not an owner", ErrUnauthorized, sender)
	}
	return nil
}
