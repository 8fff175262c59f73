package contract

import (
	"fmt"

	"github.com/VolumeFi/gpu-dao-cw/internal/address"
	"github.com/VolumeFi/gpu-dao-cw/internal/msg"
	"github.com/VolumeFi/gpu-dao-cw/internal/num"
	"github.com/VolumeFi/gpu-dao-cw/internal/remote"
	"github.com/VolumeFi/gpu-dao-cw/internal/state"
)

// jobFor resolves the scheduler job that reaches chainID.
func jobFor(cl *call, chainID string) (string, error) {
	cs, err := state.ChainSettings.Load(cl.kv, chainID)
	if isNotFound(err) {
		return "", fmt.Errorf("%w: %q", ErrUnknownChain, chainID)
	}
	if err != nil {
		return "", err
	}
	return cs.JobID, nil
}

// dispatch wraps an encoded remote call in a single scheduler message.
func dispatch(cmd remote.Command, jobID string, payload []byte) *msg.Response {
	return msg.NewResponse().
		AddMessage(msg.ExecuteJobMsg(jobID, payload)).
		AddAttribute("action", cmd.Name)
}

func sendNone(cl *call, cmd remote.Command, chainID string) (*msg.Response, error) {
	job, err := jobFor(cl, chainID)
	if err != nil {
		return nil, err
	}
	payload, err := cmd.EncodeNone()
	if err != nil {
		return nil, err
	}
	return dispatch(cmd, job, payload), nil
}

func sendAddress(cl *call, cmd remote.Command, chainID, addr string) (*msg.Response, error) {
	job, err := jobFor(cl, chainID)
	if err != nil {
		return nil, err
	}
	payload, err := cmd.EncodeAddress(addr)
	if err != nil {
		return nil, err
	}
	return dispatch(cmd, job, payload), nil
}

func sendUint(cl *call, cmd remote.Command, chainID string, v num.Uint256) (*msg.Response, error) {
	job, err := jobFor(cl, chainID)
	if err != nil {
		return nil, err
	}
	payload, err := cmd.EncodeUint(v)
	if err != nil {
		return nil, err
	}
	return dispatch(cmd, job, payload), nil
}

func (c *Contract) setPaloma(cl *call, m SetPaloma) (*msg.Response, error) {
	return sendNone(cl, remote.SetPaloma, m.ChainID)
}

func (c *Contract) updateCompass(cl *call, m UpdateCompass) (*msg.Response, error) {
	resp, err := sendAddress(cl, remote.UpdateCompass, m.ChainID, m.NewCompass)
	if err != nil {
		return nil, err
	}
	return resp.
		AddAttribute("chain_id", m.ChainID).
		AddAttribute("new_compass", m.NewCompass), nil
}

func (c *Contract) updateRefundWallet(cl *call, m UpdateRefundWallet) (*msg.Response, error) {
	return sendAddress(cl, remote.UpdateRefundWallet, m.ChainID, m.NewRefundWallet)
}

func (c *Contract) updateGasFee(cl *call, m UpdateGasFee) (*msg.Response, error) {
	return sendUint(cl, remote.UpdateGasFee, m.ChainID, m.NewGasFee)
}

func (c *Contract) updateServiceFeeCollector(cl *call, m UpdateServiceFeeCollector) (*msg.Response, error) {
	return sendAddress(cl, remote.UpdateServiceFeeCollector, m.ChainID, m.NewServiceFeeCollector)
}

func (c *Contract) updateServiceFee(cl *call, m UpdateServiceFee) (*msg.Response, error) {
	return sendUint(cl, remote.UpdateServiceFee, m.ChainID, m.NewServiceFee)
}

// setErc20ToDenom asks the bridge to map an ERC-20 on chainID to the
// denom created at finalize.
func (c *Contract) setErc20ToDenom(cl *call, m SetErc20ToDenom) (*msg.Response, error) {
	if !cl.st.Finished {
		return nil, ErrNotFinalized
	}
	if _, err := jobFor(cl, m.ChainID); err != nil {
		return nil, err
	}
	token, err := address.ParseEVM(m.Erc20Address)
	if err != nil {
		return nil, fmt.Errorf("erc20_address: %w", err)
	}
	return msg.NewResponse().
		AddMessage(msg.BindErc20(msg.SetErc20ToDenom{
			Erc20Address:     token.Hex(),
			TokenDenom:       cl.st.Denom,
			ChainReferenceID: m.ChainID,
		})).
		AddAttribute("action", "set_erc20_to_denom").
		AddAttribute("chain_id", m.ChainID).
		AddAttribute("erc20_address", token.Hex()), nil
}
