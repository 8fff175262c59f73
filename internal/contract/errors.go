package contract

import (
	"errors"
	"fmt"

	"github.com/VolumeFi/gpu-dao-cw/internal/address"
	"github.com/VolumeFi/gpu-dao-cw/internal/num"
	"github.com/VolumeFi/gpu-dao-cw/internal/store"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrAlreadyFinalized    = errors.New("the contract has already been finalized")
	ErrNotFinalized        = errors.New("the contract has not been finalized yet")
	ErrNoSuchPurchaser     = errors.New("no such purchaser")
	ErrUnknownChain        = errors.New("unknown chain")
	ErrInvalidAddress      = address.ErrInvalid
	ErrStorage             = errors.New("storage failure")
	ErrAlreadyInstantiated = errors.New("contract already instantiated")
	ErrNotInstantiated     = errors.New("contract not instantiated")
	ErrOverflow            = num.ErrOverflow
	ErrInvalidMsg          = errors.New("invalid message")
	ErrUnknownReply        = errors.New("unknown reply id")
	ErrPairCreation        = errors.New("pair creation failed")
)

// callErrors are the outcomes a handler reports on purpose. Anything else
// escaping a transaction came from the store and is reported as ErrStorage.
var callErrors = []error{
	ErrUnauthorized,
	ErrAlreadyFinalized,
	ErrNotFinalized,
	ErrNoSuchPurchaser,
	ErrUnknownChain,
	ErrInvalidAddress,
	ErrStorage,
	ErrAlreadyInstantiated,
	ErrNotInstantiated,
	ErrOverflow,
	ErrInvalidMsg,
	ErrUnknownReply,
	ErrPairCreation,
}

func classify(err error) error {
	if err == nil {
		return nil
	}
	for _, e := range callErrors {
		if errors.Is(err, e) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}

func invalidMsg(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidMsg, fmt.Sprintf(format, args...))
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
