package msg

import (
	"encoding/json"
	"testing"

	"github.com/VolumeFi/gpu-dao-cw/internal/num"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteJobJSON(t *testing.T) {
	m := ExecuteJobMsg("job-1", []byte{0x23, 0xfd, 0xe8, 0xe2})
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"custom":{"scheduler_msg":{"execute_job":{"job_id":"job-1","payload":"I/3o4g=="}}}}`,
		string(data))
}

func TestTokenFactoryJSON(t *testing.T) {
	m := MintTokens(MintMsg{Denom: "factory/c/GPU", Amount: num.NewUint128(5), MintToAddress: "c"})
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"custom":{"token_factory_msg":{"create_denom":null,"mint_tokens":{"denom":"factory/c/GPU","amount":"5","mint_to_address":"c"}}}}`,
		string(data))
}

func TestCreatePairExecuteJSON(t *testing.T) {
	m, err := CreatePairExecute("factory1", CreatePair{
		PairType:   XykPair(),
		AssetInfos: []AssetInfo{Native("factory/c/GPU"), Native("upusd")},
	})
	require.NoError(t, err)
	require.NotNil(t, m.Wasm)
	assert.Equal(t, "factory1", m.Wasm.Execute.ContractAddr)
	assert.JSONEq(t,
		`{"create_pair":{"pair_type":{"xyk":{}},"asset_infos":[{"native_token":{"denom":"factory/c/GPU"}},{"native_token":{"denom":"upusd"}}],"init_params":null}}`,
		string(m.Wasm.Execute.Msg))
}

func TestResponseBuilders(t *testing.T) {
	r := NewResponse().
		AddMessage(ExecuteJobMsg("j", nil)).
		AddSubMessage(SubMsg{ID: 1, Msg: ExecuteJobMsg("k", nil), ReplyOn: ReplySuccess}).
		AddAttribute("action", "test").
		AddAttribute("action", "ignored")

	require.Len(t, r.Messages, 2)
	assert.Equal(t, ReplyNever, r.Messages[0].ReplyOn)
	assert.Equal(t, ReplySuccess, r.Messages[1].ReplyOn)
	assert.Equal(t, uint64(1), r.Messages[1].ID)

	v, ok := r.Attr("action")
	assert.True(t, ok)
	assert.Equal(t, "test", v)

	_, ok = r.Attr("missing")
	assert.False(t, ok)
}
