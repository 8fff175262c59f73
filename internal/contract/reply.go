package contract

import (
	"fmt"

	"github.com/VolumeFi/gpu-dao-cw/internal/msg"
)

// Reply handles the result of a sub-message sent with a reply id. A failed
// pool creation is reported but does not reopen the sale.
func (c *Contract) Reply(r Reply) (*msg.Response, error) {
	if r.ID != CreatePairReplyID {
		return nil, fmt.Errorf("%w: %d", ErrUnknownReply, r.ID)
	}
	if r.Result.Err != nil {
		c.log.Info("Pool creation failed", "err", *r.Result.Err)
		return nil, fmt.Errorf("%w: %s", ErrPairCreation, *r.Result.Err)
	}
	if r.Result.Ok == nil {
		return nil, invalidMsg("reply %d has no result", r.ID)
	}

	resp := msg.NewResponse().AddAttribute("action", "create_pair_reply")
	if pair, ok := pairAddress(r.Result.Ok.Events); ok {
		resp.AddAttribute("pair_contract_addr", pair)
	}
	c.log.Debug("Pool created", "events", len(r.Result.Ok.Events))
	return resp, nil
}

func pairAddress(events []Event) (string, bool) {
	for _, ev := range events {
		if ev.Type != "wasm" {
			continue
		}
		for _, a := range ev.Attributes {
			if a.Key == "pair_contract_addr" {
				return a.Value, true
			}
		}
	}
	return "", false
}
