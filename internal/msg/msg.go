// Package msg models the outbound messages and responses a contract call
// hands back to its host. JSON field names and enum tagging follow the
// host's serde encoding: externally tagged, snake_case.
package msg

import "github.com/VolumeFi/gpu-dao-cw/internal/num"

// ReplyOn controls when the host calls back into the contract.
type ReplyOn string

const (
	ReplyAlways  ReplyOn = "always"
	ReplyError   ReplyOn = "error"
	ReplySuccess ReplyOn = "success"
	ReplyNever   ReplyOn = "never"
)

// Attribute is one key/value entry of a response's event trail.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SubMsg is a message plus its reply policy. The host dispatches messages
// in order; a message with a reply policy other than never runs as a
// sub-call whose outcome is reported back through Reply.
type SubMsg struct {
	ID       uint64    `json:"id"`
	Msg      CosmosMsg `json:"msg"`
	GasLimit *uint64   `json:"gas_limit"`
	ReplyOn  ReplyOn   `json:"reply_on"`
}

// CosmosMsg is exactly one of its fields.
type CosmosMsg struct {
	Custom *PalomaMsg `json:"custom,omitempty"`
	Wasm   *WasmMsg   `json:"wasm,omitempty"`
}

// Coin is an amount of a native denom.
type Coin struct {
	Denom  string      `json:"denom"`
	Amount num.Uint128 `json:"amount"`
}

// WasmMsg is exactly one of its fields.
type WasmMsg struct {
	Execute *WasmExecute `json:"execute,omitempty"`
}

// WasmExecute calls another contract with a JSON message.
type WasmExecute struct {
	ContractAddr string `json:"contract_addr"`
	Msg          []byte `json:"msg"`
	Funds        []Coin `json:"funds"`
}

// Response is the successful outcome of a contract call.
type Response struct {
	Messages   []SubMsg    `json:"messages"`
	Attributes []Attribute `json:"attributes"`
	Data       []byte      `json:"data,omitempty"`
}

// NewResponse returns an empty response.
func NewResponse() *Response {
	return &Response{Messages: []SubMsg{}, Attributes: []Attribute{}}
}

// AddMessage appends a fire-and-forget message.
func (r *Response) AddMessage(m CosmosMsg) *Response {
	r.Messages = append(r.Messages, SubMsg{Msg: m, ReplyOn: ReplyNever})
	return r
}

// AddSubMessage appends a message with a reply policy.
func (r *Response) AddSubMessage(s SubMsg) *Response {
	r.Messages = append(r.Messages, s)
	return r
}

// AddAttribute appends an attribute.
func (r *Response) AddAttribute(key, value string) *Response {
	r.Attributes = append(r.Attributes, Attribute{Key: key, Value: value})
	return r
}

// Attr returns the first attribute value for key.
func (r *Response) Attr(key string) (string, bool) {
	for _, a := range r.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}
