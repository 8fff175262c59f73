package contract

import (
	"github.com/VolumeFi/gpu-dao-cw/internal/msg"
	"github.com/VolumeFi/gpu-dao-cw/internal/num"
)

// InstantiateMsg creates the sale.
type InstantiateMsg struct {
	PusdDenom string   `json:"pusd_denom"`
	Owners    []string `json:"owners"`
}

// ExecuteMsg is a tagged union: exactly one field must be set.
type ExecuteMsg struct {
	Purchase                  *Purchase                  `json:"purchase,omitempty"`
	Finalize                  *Finalize                  `json:"finalize,omitempty"`
	Claim                     *Claim                     `json:"claim,omitempty"`
	Refund                    *Refund                    `json:"refund,omitempty"`
	SetPaloma                 *SetPaloma                 `json:"set_paloma,omitempty"`
	UpdateCompass             *UpdateCompass             `json:"update_compass,omitempty"`
	UpdateRefundWallet        *UpdateRefundWallet        `json:"update_refund_wallet,omitempty"`
	UpdateGasFee              *UpdateGasFee              `json:"update_gas_fee,omitempty"`
	UpdateServiceFeeCollector *UpdateServiceFeeCollector `json:"update_service_fee_collector,omitempty"`
	UpdateServiceFee          *UpdateServiceFee          `json:"update_service_fee,omitempty"`
	SetErc20ToDenom           *SetErc20ToDenom           `json:"set_erc20_to_denom,omitempty"`
}

type Purchase struct {
	Purchaser string      `json:"purchaser"`
	Amount    num.Uint128 `json:"amount"`
}

// Finalize ends the sale and creates the token and its pool.
type Finalize struct {
	PalomadexAmmFactory string      `json:"palomadex_amm_factory"`
	TokenName           string      `json:"token_name"`
	TokenSymbol         string      `json:"token_symbol"`
	TokenDescription    *string     `json:"token_description,omitempty"`
	MintAmount          num.Uint128 `json:"mint_amount"`
	DistributeAmount    num.Uint128 `json:"distribute_amount"`
	PusdAmount          num.Uint128 `json:"pusd_amount"`
}

type Claim struct {
	Purchaser string `json:"purchaser"`
}

type Refund struct{}

type SetPaloma struct {
	ChainID string `json:"chain_id"`
}

type UpdateCompass struct {
	ChainID    string `json:"chain_id"`
	NewCompass string `json:"new_compass"`
}

type UpdateRefundWallet struct {
	ChainID         string `json:"chain_id"`
	NewRefundWallet string `json:"new_refund_wallet"`
}

type UpdateGasFee struct {
	ChainID   string      `json:"chain_id"`
	NewGasFee num.Uint256 `json:"new_gas_fee"`
}

type UpdateServiceFeeCollector struct {
	ChainID                string `json:"chain_id"`
	NewServiceFeeCollector string `json:"new_service_fee_collector"`
}

type UpdateServiceFee struct {
	ChainID       string      `json:"chain_id"`
	NewServiceFee num.Uint256 `json:"new_service_fee"`
}

// SetErc20ToDenom binds the sale token to an ERC-20 on a remote chain.
type SetErc20ToDenom struct {
	ChainID      string `json:"chain_id"`
	Erc20Address string `json:"erc20_address"`
}

// QueryMsg is a tagged union: exactly one field must be set.
type QueryMsg struct {
	State         *struct{}           `json:"state,omitempty"`
	ContractInfo  *struct{}           `json:"contract_info,omitempty"`
	Purchase      *PurchaseQuery      `json:"purchase,omitempty"`
	Purchases     *PurchasesQuery     `json:"purchases,omitempty"`
	ChainSetting  *ChainSettingQuery  `json:"chain_setting,omitempty"`
	ChainSettings *ChainSettingsQuery `json:"chain_settings,omitempty"`
}

type PurchaseQuery struct {
	Purchaser string `json:"purchaser"`
}

type PurchasesQuery struct {
	StartAfter string  `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
}

type ChainSettingQuery struct {
	ChainID string `json:"chain_id"`
}

type ChainSettingsQuery struct {
	StartAfter string  `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
}

type PurchaseResponse struct {
	Purchaser string      `json:"purchaser"`
	Amount    num.Uint128 `json:"amount"`
}

type PurchasesResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
}

type ChainSettingResponse struct {
	ChainID string `json:"chain_id"`
	JobID   string `json:"job_id"`
}

type ChainSettingsResponse struct {
	Chains []ChainSettingResponse `json:"chains"`
}

// Reply reports the outcome of a sub-message back to the contract.
type Reply struct {
	ID     uint64       `json:"id"`
	Result SubMsgResult `json:"result"`
}

// SubMsgResult is exactly one of Ok or Err.
type SubMsgResult struct {
	Ok  *SubMsgResponse `json:"ok,omitempty"`
	Err *string         `json:"err,omitempty"`
}

type SubMsgResponse struct {
	Events []Event `json:"events"`
	Data   []byte  `json:"data,omitempty"`
}

type Event struct {
	Type       string          `json:"type"`
	Attributes []msg.Attribute `json:"attributes"`
}
