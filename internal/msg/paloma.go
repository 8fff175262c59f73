package msg

import "github.com/VolumeFi/gpu-dao-cw/internal/num"

// PalomaMsg is the host chain's custom message set. Exactly one field is set.
type PalomaMsg struct {
	SchedulerMsg    *SchedulerMsg    `json:"scheduler_msg,omitempty"`
	TokenFactoryMsg *TokenFactoryMsg `json:"token_factory_msg,omitempty"`
	SkywayMsg       *SkywayMsg       `json:"skyway_msg,omitempty"`
}

// SchedulerMsg hands a payload to a cross-chain job.
type SchedulerMsg struct {
	ExecuteJob ExecuteJob `json:"execute_job"`
}

// ExecuteJob routes Payload to the job identified by JobID.
type ExecuteJob struct {
	JobID   string `json:"job_id"`
	Payload []byte `json:"payload"`
}

// TokenFactoryMsg carries either a denom creation or a mint.
// Both fields serialize, absent ones as null.
type TokenFactoryMsg struct {
	CreateDenom *CreateDenomMsg `json:"create_denom"`
	MintTokens  *MintMsg        `json:"mint_tokens"`
}

// CreateDenomMsg creates factory/<creator>/<subdenom>.
type CreateDenomMsg struct {
	Subdenom string   `json:"subdenom"`
	Metadata Metadata `json:"metadata"`
}

// Metadata describes a bank denom.
type Metadata struct {
	Description string      `json:"description"`
	DenomUnits  []DenomUnit `json:"denom_units"`
	Base        string      `json:"base"`
	Display     string      `json:"display"`
	Name        string      `json:"name"`
	Symbol      string      `json:"symbol"`
}

// DenomUnit is one unit of a denom with its decimal exponent.
type DenomUnit struct {
	Denom    string   `json:"denom"`
	Exponent uint32   `json:"exponent"`
	Aliases  []string `json:"aliases"`
}

// MintMsg mints Amount of Denom to MintToAddress.
type MintMsg struct {
	Denom         string      `json:"denom"`
	Amount        num.Uint128 `json:"amount"`
	MintToAddress string      `json:"mint_to_address"`
}

// SkywayMsg configures the bridge.
type SkywayMsg struct {
	SetErc20ToDenom SetErc20ToDenom `json:"set_erc20_to_denom"`
}

// SetErc20ToDenom binds an ERC-20 on a remote chain to a host denom.
type SetErc20ToDenom struct {
	Erc20Address     string `json:"erc20_address"`
	TokenDenom       string `json:"token_denom"`
	ChainReferenceID string `json:"chain_reference_id"`
}

// ExecuteJobMsg wraps a scheduler dispatch as a CosmosMsg.
func ExecuteJobMsg(jobID string, payload []byte) CosmosMsg {
	return CosmosMsg{Custom: &PalomaMsg{SchedulerMsg: &SchedulerMsg{
		ExecuteJob: ExecuteJob{JobID: jobID, Payload: payload},
	}}}
}

// CreateDenom wraps a denom creation as a CosmosMsg.
func CreateDenom(m CreateDenomMsg) CosmosMsg {
	return CosmosMsg{Custom: &PalomaMsg{TokenFactoryMsg: &TokenFactoryMsg{CreateDenom: &m}}}
}

// MintTokens wraps a mint as a CosmosMsg.
func MintTokens(m MintMsg) CosmosMsg {
	return CosmosMsg{Custom: &PalomaMsg{TokenFactoryMsg: &TokenFactoryMsg{MintTokens: &m}}}
}

// BindErc20 wraps a skyway binding as a CosmosMsg.
func BindErc20(m SetErc20ToDenom) CosmosMsg {
	return CosmosMsg{Custom: &PalomaMsg{SkywayMsg: &SkywayMsg{SetErc20ToDenom: m}}}
}
