// Package contract implements the gpu-dao sale contract: the owner guard,
// the sale lifecycle and the remote administration commands.
//
// Each entry point runs inside one store transaction. A call either commits
// all of its writes and returns its messages, or fails and leaves the store
// untouched.
package contract

import (
	"slices"
	"strings"

	"github.com/VolumeFi/gpu-dao-cw/internal/address"
	"github.com/VolumeFi/gpu-dao-cw/internal/msg"
	"github.com/VolumeFi/gpu-dao-cw/internal/num"
	"github.com/VolumeFi/gpu-dao-cw/internal/state"
	"github.com/VolumeFi/gpu-dao-cw/internal/store"
	"github.com/ethereum/go-ethereum/log"
)

const (
	contractName = "crates.io:gpu-dao-cw"

	// CreatePairReplyID tags the pool creation sub-message in finalize.
	CreatePairReplyID uint64 = 1
)

// Version is recorded in ContractInfo at instantiation.
var Version = "0.1.0"

// Env describes the contract instance on its host chain.
type Env struct {
	ContractAddress string
	ChainID         string
}

// MessageInfo identifies the caller of an entry point.
type MessageInfo struct {
	Sender string
	Funds  []msg.Coin
}

// Contract executes calls against the state held in db.
type Contract struct {
	db        store.DB
	env       Env
	validator address.Validator
	log       log.Logger
}

// Option configures a Contract.
type Option func(*Contract)

// WithValidator replaces the default host address validator.
func WithValidator(v address.Validator) Option {
	return func(c *Contract) { c.validator = v }
}

// WithLogger sets the logger used for call diagnostics.
func WithLogger(l log.Logger) Option {
	return func(c *Contract) { c.log = l }
}

// New creates a Contract over db.
func New(db store.DB, env Env, opts ...Option) *Contract {
	c := &Contract{
		db:        db,
		env:       env,
		validator: address.Basic{},
		log:       log.Root(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Env returns the instance environment.
func (c *Contract) Env() Env { return c.env }

// Instantiate creates the sale. The sender always ends up in the owner set.
func (c *Contract) Instantiate(info MessageInfo, m InstantiateMsg) (*msg.Response, error) {
	err := c.db.Update(func(kv store.KVStore) error {
		exists, err := state.Sale.Exists(kv)
		if err != nil {
			return err
		}
		if exists {
			return ErrAlreadyInstantiated
		}
		if strings.TrimSpace(m.PusdDenom) == "" {
			return invalidMsg("pusd_denom is empty")
		}

		owners := make([]string, 0, len(m.Owners)+1)
		for _, o := range append(slices.Clone(m.Owners), info.Sender) {
			v, err := c.validator.Validate(o)
			if err != nil {
				return err
			}
			if !slices.Contains(owners, v) {
				owners = append(owners, v)
			}
		}

		st := &state.SaleState{
			Owners:      owners,
			Finished:    false,
			TotalSupply: num.NewUint128(0),
			PusdDenom:   m.PusdDenom,
		}
		if err := state.Sale.Save(kv, st); err != nil {
			return err
		}
		return state.Info.Save(kv, &state.ContractInfo{Contract: contractName, Version: Version})
	})
	if err != nil {
		err = classify(err)
		c.log.Debug("Instantiate failed", "sender", info.Sender, "err", err)
		return nil, err
	}
	c.log.Debug("Instantiated", "sender", info.Sender, "pusd_denom", m.PusdDenom)
	return msg.NewResponse().AddAttribute("action", "instantiate"), nil
}

// Execute runs one ExecuteMsg variant.
func (c *Contract) Execute(info MessageInfo, m ExecuteMsg) (*msg.Response, error) {
	h, err := m.route()
	if err != nil {
		return nil, err
	}

	var resp *msg.Response
	err = c.db.Update(func(kv store.KVStore) error {
		st, err := loadSale(kv)
		if err != nil {
			return err
		}
		if h.guarded {
			if err := requireOwner(st, info.Sender); err != nil {
				return err
			}
		}
		resp, err = h.run(c, &call{kv: kv, st: st, info: info})
		return err
	})
	if err != nil {
		err = classify(err)
		c.log.Debug("Execute failed", "action", h.action, "sender", info.Sender, "err", err)
		return nil, err
	}
	c.log.Debug("Executed", "action", h.action, "sender", info.Sender, "messages", len(resp.Messages))
	return resp, nil
}

// call is the per-transaction context handed to a handler.
type call struct {
	kv   store.KVStore
	st   *state.SaleState
	info MessageInfo
}

type handler struct {
	action  string
	guarded bool
	run     func(*Contract, *call) (*msg.Response, error)
}

// route picks the handler for the single variant set in m. Every variant
// that mutates state or emits messages is guarded.
func (m ExecuteMsg) route() (handler, error) {
	var hs []handler
	add := func(set bool, action string, guarded bool, run func(*Contract, *call) (*msg.Response, error)) {
		if set {
			hs = append(hs, handler{action: action, guarded: guarded, run: run})
		}
	}

	add(m.Purchase != nil, "purchase", true, func(c *Contract, cl *call) (*msg.Response, error) {
		return c.purchase(cl, *m.Purchase)
	})
	add(m.Finalize != nil, "finalize", true, func(c *Contract, cl *call) (*msg.Response, error) {
		return c.finalize(cl, *m.Finalize)
	})
	add(m.Claim != nil, "claim", true, func(c *Contract, cl *call) (*msg.Response, error) {
		return c.claim(cl, *m.Claim)
	})
	add(m.Refund != nil, "refund", false, func(c *Contract, cl *call) (*msg.Response, error) {
		return c.refund(cl)
	})
	add(m.SetPaloma != nil, "set_paloma", true, func(c *Contract, cl *call) (*msg.Response, error) {
		return c.setPaloma(cl, *m.SetPaloma)
	})
	add(m.UpdateCompass != nil, "update_compass", true, func(c *Contract, cl *call) (*msg.Response, error) {
		return c.updateCompass(cl, *m.UpdateCompass)
	})
	add(m.UpdateRefundWallet != nil, "update_refund_wallet", true, func(c *Contract, cl *call) (*msg.Response, error) {
		return c.updateRefundWallet(cl, *m.UpdateRefundWallet)
	})
	add(m.UpdateGasFee != nil, "update_gas_fee", true, func(c *Contract, cl *call) (*msg.Response, error) {
		return c.updateGasFee(cl, *m.UpdateGasFee)
	})
	add(m.UpdateServiceFeeCollector != nil, "update_service_fee_collector", true, func(c *Contract, cl *call) (*msg.Response, error) {
		return c.updateServiceFeeCollector(cl, *m.UpdateServiceFeeCollector)
	})
	add(m.UpdateServiceFee != nil, "update_service_fee", true, func(c *Contract, cl *call) (*msg.Response, error) {
		return c.updateServiceFee(cl, *m.UpdateServiceFee)
	})
	add(m.SetErc20ToDenom != nil, "set_erc20_to_denom", true, func(c *Contract, cl *call) (*msg.Response, error) {
		return c.setErc20ToDenom(cl, *m.SetErc20ToDenom)
	})

	switch len(hs) {
	case 1:
		return hs[0], nil
	case 0:
		return handler{}, invalidMsg("no execute variant set")
	default:
		return handler{}, invalidMsg("%d execute variants set", len(hs))
	}
}

func loadSale(kv store.KVStore) (*state.SaleState, error) {
	st, err := state.Sale.Load(kv)
	if isNotFound(err) {
		return nil, ErrNotInstantiated
	}
	return st, err
}
