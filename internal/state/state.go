// Package state defines the persisted contract entities and their storage
// accessors. Every accessor takes the KVStore of the running transaction;
// nothing here caches values between calls.
package state

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/VolumeFi/gpu-dao-cw/internal/num"
	"github.com/VolumeFi/gpu-dao-cw/internal/store"
)

// SaleState is the contract singleton.
type SaleState struct {
	Owners      []string    `json:"owners"`
	Finished    bool        `json:"finished"`
	TotalSupply num.Uint128 `json:"total_supply"`
	PusdDenom   string      `json:"pusd_denom"`

	// Denom is the factory denom created at finalize.
	Denom string `json:"denom,omitempty"`
}

// IsOwner reports whether id is in the owner set.
func (s *SaleState) IsOwner(id string) bool {
	return slices.Contains(s.Owners, id)
}

// ContractInfo records which code and version wrote the state.
type ContractInfo struct {
	Contract string `json:"contract"`
	Version  string `json:"version"`
}

// ChainSetting routes scheduler jobs for one remote chain.
type ChainSetting struct {
	JobID string `json:"job_id"`
}

var (
	Sale          = NewItem[SaleState](NamespaceState)
	Info          = NewItem[ContractInfo](NamespaceContractInfo)
	PurchaseList  = NewMap[num.Uint128](NamespacePurchaseList)
	ChainSettings = NewMap[ChainSetting](NamespaceChainSettings)
)

// ErrEmptyChainID is returned when provisioning without a chain id.
var ErrEmptyChainID = errors.New("state: chain id is empty")

// ProvisionChain writes the job target for chainID. Contract operations
// never call this; it is used by operators and tests to seed the registry.
func ProvisionChain(db store.DB, chainID, jobID string) error {
	chainID = strings.TrimSpace(chainID)
	if chainID == "" {
		return ErrEmptyChainID
	}
	if strings.TrimSpace(jobID) == "" {
		return fmt.Errorf("state: job id for %s is empty", chainID)
	}
	return db.Update(func(kv store.KVStore) error {
		return ChainSettings.Save(kv, chainID, &ChainSetting{JobID: jobID})
	})
}

// RemoveChain deletes the setting for chainID. Removing an unknown chain
// wraps store.ErrNotFound.
func RemoveChain(db store.DB, chainID string) error {
	return db.Update(func(kv store.KVStore) error {
		ok, err := ChainSettings.Has(kv, chainID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("chain %s: %w", chainID, store.ErrNotFound)
		}
		return ChainSettings.Remove(kv, chainID)
	})
}

// ListChains returns every provisioned chain in key order.
func ListChains(db store.DB) ([]Entry[ChainSetting], error) {
	var out []Entry[ChainSetting]
	err := db.View(func(kv store.KVStore) error {
		var err error
		out, err = ChainSettings.Range(kv, "", 0)
		return err
	})
	return out, err
}
