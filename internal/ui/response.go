package ui

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/VolumeFi/gpu-dao-cw/internal/msg"
)

// Response renders the attributes and outbound messages of a call.
func Response(title string, r *msg.Response) string {
	pairs := make([][2]string, 0, len(r.Attributes))
	for _, a := range r.Attributes {
		pairs = append(pairs, [2]string{a.Key, a.Value})
	}

	var sb strings.Builder
	sb.WriteString(KeyValueBlock(title, pairs))
	sb.WriteString("\n")
	if len(r.Messages) == 0 {
		return sb.String()
	}

	t := NewTable(
		Column{Title: "#", Align: AlignRight},
		Column{Title: "KIND"},
		Column{Title: "REPLY"},
		Column{Title: "DETAIL", Width: 72},
	)
	for i, m := range r.Messages {
		reply := string(m.ReplyOn)
		if m.ReplyOn != msg.ReplyNever {
			reply = fmt.Sprintf("%s (id %d)", m.ReplyOn, m.ID)
		}
		kind, detail := Describe(m.Msg)
		t.AddRow(fmt.Sprint(i+1), kind, reply, detail)
	}
	sb.WriteString(t.Render())
	return sb.String()
}

// Describe summarizes a message as a kind and a one-line detail.
func Describe(m msg.CosmosMsg) (kind, detail string) {
	switch {
	case m.Wasm != nil && m.Wasm.Execute != nil:
		return "wasm/execute", m.Wasm.Execute.ContractAddr + " " + string(m.Wasm.Execute.Msg)
	case m.Custom == nil:
		return "unknown", ""
	case m.Custom.SchedulerMsg != nil:
		j := m.Custom.SchedulerMsg.ExecuteJob
		return "scheduler/execute_job", j.JobID + " 0x" + hex.EncodeToString(j.Payload)
	case m.Custom.TokenFactoryMsg != nil && m.Custom.TokenFactoryMsg.CreateDenom != nil:
		cd := m.Custom.TokenFactoryMsg.CreateDenom
		return "token_factory/create_denom", cd.Metadata.Base
	case m.Custom.TokenFactoryMsg != nil && m.Custom.TokenFactoryMsg.MintTokens != nil:
		mt := m.Custom.TokenFactoryMsg.MintTokens
		return "token_factory/mint", mt.Amount.String() + " " + mt.Denom + " → " + mt.MintToAddress
	case m.Custom.SkywayMsg != nil:
		s := m.Custom.SkywayMsg.SetErc20ToDenom
		return "skyway/set_erc20_to_denom", s.ChainReferenceID + " " + s.Erc20Address + " ↔ " + s.TokenDenom
	}
	return "unknown", ""
}
