package msg

import (
	"encoding/json"
	"fmt"
)

// PairType selects the pool curve. Only xyk is used.
type PairType struct {
	Xyk    *struct{} `json:"xyk,omitempty"`
	Stable *struct{} `json:"stable,omitempty"`
	Custom *string   `json:"custom,omitempty"`
}

// XykPair returns the constant-product pair type.
func XykPair() PairType { return PairType{Xyk: &struct{}{}} }

// AssetInfo is a pool asset: a CW20 contract or a native denom.
type AssetInfo struct {
	Token       *TokenAsset  `json:"token,omitempty"`
	NativeToken *NativeAsset `json:"native_token,omitempty"`
}

// TokenAsset identifies a CW20 token contract.
type TokenAsset struct {
	ContractAddr string `json:"contract_addr"`
}

// NativeAsset identifies a bank denom.
type NativeAsset struct {
	Denom string `json:"denom"`
}

// Native returns a native-denom asset.
func Native(denom string) AssetInfo {
	return AssetInfo{NativeToken: &NativeAsset{Denom: denom}}
}

// CreatePair is the AMM factory's pair-creation request.
type CreatePair struct {
	PairType   PairType    `json:"pair_type"`
	AssetInfos []AssetInfo `json:"asset_infos"`
	InitParams []byte      `json:"init_params"`
}

type factoryExecute struct {
	CreatePair *CreatePair `json:"create_pair,omitempty"`
}

// CreatePairExecute builds a wasm execute of create_pair on factory.
func CreatePairExecute(factory string, p CreatePair) (CosmosMsg, error) {
	body, err := json.Marshal(factoryExecute{CreatePair: &p})
	if err != nil {
		return CosmosMsg{}, fmt.Errorf("encode create_pair: %w", err)
	}
	return CosmosMsg{Wasm: &WasmMsg{Execute: &WasmExecute{
		ContractAddr: factory,
		Msg:          body,
		Funds:        []Coin{},
	}}}, nil
}
