package contract

import (
	"fmt"
	"strings"

	"github.com/VolumeFi/gpu-dao-cw/internal/msg"
	"github.com/VolumeFi/gpu-dao-cw/internal/num"
	"github.com/VolumeFi/gpu-dao-cw/internal/state"
)

// displayExponent is the decimal exponent of a token's display unit.
const displayExponent = 6

func (c *Contract) purchase(cl *call, p Purchase) (*msg.Response, error) {
	if cl.st.Finished {
		return nil, ErrAlreadyFinalized
	}
	if strings.TrimSpace(p.Purchaser) == "" {
		return nil, invalidMsg("purchaser is empty")
	}
	// A zero commitment would create an entry with nothing to claim.
	if p.Amount.IsZero() {
		return nil, invalidMsg("purchase amount is zero")
	}

	cur, err := state.PurchaseList.Load(cl.kv, p.Purchaser)
	switch {
	case err == nil:
	case isNotFound(err):
		cur = new(num.Uint128)
	default:
		return nil, err
	}
	total, err := cur.CheckedAdd(p.Amount)
	if err != nil {
		return nil, fmt.Errorf("purchase by %s: %w", p.Purchaser, err)
	}
	if err := state.PurchaseList.Save(cl.kv, p.Purchaser, &total); err != nil {
		return nil, err
	}

	return msg.NewResponse().
		AddAttribute("action", "purchase").
		AddAttribute("purchaser", p.Purchaser).
		AddAttribute("amount", p.Amount.String()), nil
}

func (c *Contract) finalize(cl *call, f Finalize) (*msg.Response, error) {
	st := cl.st
	if st.Finished {
		return nil, ErrAlreadyFinalized
	}
	factory, err := c.validator.Validate(f.PalomadexAmmFactory)
	if err != nil {
		return nil, fmt.Errorf("palomadex_amm_factory: %w", err)
	}
	if strings.TrimSpace(f.TokenSymbol) == "" {
		return nil, invalidMsg("token_symbol is empty")
	}

	creator := c.env.ContractAddress
	denom := "factory/" + creator + "/" + f.TokenSymbol
	description := ""
	if f.TokenDescription != nil {
		description = *f.TokenDescription
	}

	create := msg.CreateDenom(msg.CreateDenomMsg{
		Subdenom: f.TokenSymbol,
		Metadata: msg.Metadata{
			Description: description,
			DenomUnits: []msg.DenomUnit{
				{Denom: denom, Exponent: 0, Aliases: []string{}},
				{Denom: f.TokenSymbol, Exponent: displayExponent, Aliases: []string{}},
			},
			Base:    denom,
			Display: f.TokenSymbol,
			Name:    f.TokenName,
			Symbol:  f.TokenSymbol,
		},
	})
	mint := msg.MintTokens(msg.MintMsg{
		Denom:         denom,
		Amount:        f.MintAmount,
		MintToAddress: creator,
	})
	pair, err := msg.CreatePairExecute(factory, msg.CreatePair{
		PairType:   msg.XykPair(),
		AssetInfos: []msg.AssetInfo{msg.Native(denom), msg.Native(st.PusdDenom)},
	})
	if err != nil {
		return nil, err
	}

	supply, err := st.TotalSupply.CheckedAdd(f.MintAmount)
	if err != nil {
		return nil, fmt.Errorf("total supply: %w", err)
	}
	st.Finished = true
	st.Denom = denom
	st.TotalSupply = supply
	if err := state.Sale.Save(cl.kv, st); err != nil {
		return nil, err
	}

	// The pool is created only after the mint has landed.
	return msg.NewResponse().
		AddMessage(create).
		AddMessage(mint).
		AddSubMessage(msg.SubMsg{ID: CreatePairReplyID, Msg: pair, ReplyOn: msg.ReplySuccess}).
		AddAttribute("action", "finalize").
		AddAttribute("denom", denom).
		AddAttribute("mint_amount", f.MintAmount.String()).
		AddAttribute("distribute_amount", f.DistributeAmount.String()).
		AddAttribute("pusd_amount", f.PusdAmount.String()), nil
}

func (c *Contract) claim(cl *call, cm Claim) (*msg.Response, error) {
	if !cl.st.Finished {
		return nil, ErrNotFinalized
	}
	amount, err := state.PurchaseList.Load(cl.kv, cm.Purchaser)
	if isNotFound(err) {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchPurchaser, cm.Purchaser)
	}
	if err != nil {
		return nil, err
	}
	if err := state.PurchaseList.Remove(cl.kv, cm.Purchaser); err != nil {
		return nil, err
	}
	return msg.NewResponse().
		AddAttribute("action", "claim").
		AddAttribute("purchaser", cm.Purchaser).
		AddAttribute("amount", amount.String()), nil
}

// refund is a placeholder for returning funds of an abandoned sale.
func (c *Contract) refund(*call) (*msg.Response, error) {
	return msg.NewResponse().AddAttribute("action", "refund"), nil
}
