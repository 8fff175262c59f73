package contract

import (
	"encoding/json"
	"fmt"

	"github.com/VolumeFi/gpu-dao-cw/internal/state"
	"github.com/VolumeFi/gpu-dao-cw/internal/store"
)

const (
	defaultLimit = 10
	maxLimit     = 30
)

// pageLimit clamps a requested page size. Zero or unset uses the default.
func pageLimit(l *uint32) int {
	if l == nil || *l == 0 {
		return defaultLimit
	}
	if *l > maxLimit {
		return maxLimit
	}
	return int(*l)
}

// Query answers a read-only request with its JSON response.
func (c *Contract) Query(q QueryMsg) ([]byte, error) {
	set := 0
	for _, ok := range []bool{
		q.State != nil, q.ContractInfo != nil, q.Purchase != nil,
		q.Purchases != nil, q.ChainSetting != nil, q.ChainSettings != nil,
	} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, invalidMsg("query must set exactly one variant, got %d", set)
	}

	var out interface{}
	err := c.db.View(func(kv store.KVStore) error {
		var err error
		switch {
		case q.State != nil:
			out, err = loadSale(kv)
		case q.ContractInfo != nil:
			out, err = c.queryInfo(kv)
		case q.Purchase != nil:
			out, err = queryPurchase(kv, q.Purchase.Purchaser)
		case q.Purchases != nil:
			out, err = queryPurchases(kv, *q.Purchases)
		case q.ChainSetting != nil:
			out, err = queryChain(kv, q.ChainSetting.ChainID)
		case q.ChainSettings != nil:
			out, err = queryChains(kv, *q.ChainSettings)
		}
		return err
	})
	if err != nil {
		return nil, classify(err)
	}
	return json.Marshal(out)
}

func (c *Contract) queryInfo(kv store.KVStore) (*state.ContractInfo, error) {
	info, err := state.Info.Load(kv)
	if isNotFound(err) {
		return nil, ErrNotInstantiated
	}
	return info, err
}

func queryPurchase(kv store.KVStore, purchaser string) (*PurchaseResponse, error) {
	amount, err := state.PurchaseList.Load(kv, purchaser)
	if isNotFound(err) {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchPurchaser, purchaser)
	}
	if err != nil {
		return nil, err
	}
	return &PurchaseResponse{Purchaser: purchaser, Amount: *amount}, nil
}

func queryPurchases(kv store.KVStore, q PurchasesQuery) (*PurchasesResponse, error) {
	entries, err := state.PurchaseList.Range(kv, q.StartAfter, pageLimit(q.Limit))
	if err != nil {
		return nil, err
	}
	resp := &PurchasesResponse{Purchases: make([]PurchaseResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Purchases = append(resp.Purchases, PurchaseResponse{Purchaser: e.Key, Amount: e.Value})
	}
	return resp, nil
}

func queryChain(kv store.KVStore, chainID string) (*ChainSettingResponse, error) {
	cs, err := state.ChainSettings.Load(kv, chainID)
	if isNotFound(err) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChain, chainID)
	}
	if err != nil {
		return nil, err
	}
	return &ChainSettingResponse{ChainID: chainID, JobID: cs.JobID}, nil
}

func queryChains(kv store.KVStore, q ChainSettingsQuery) (*ChainSettingsResponse, error) {
	entries, err := state.ChainSettings.Range(kv, q.StartAfter, pageLimit(q.Limit))
	if err != nil {
		return nil, err
	}
	resp := &ChainSettingsResponse{Chains: make([]ChainSettingResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Chains = append(resp.Chains, ChainSettingResponse{ChainID: e.Key, JobID: e.Value.JobID})
	}
	return resp, nil
}
