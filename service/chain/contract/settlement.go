package contract

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	bCtx "github.com/nftbay/auction-api/base/ctx"
	"github.com/nftbay/auction-api/base/log"
	"github.com/nftbay/auction-api/domain"
	"github.com/nftbay/auction-api/service/chain"
)

// NativeSettlement moves native-coin value from the engine's operator
// account. The engine escrows buyer payments with the operator before
// forwarding, so `from` is informational here; the signing account is the
// operator.
type NativeSettlement struct {
	chainService chain.Client
}

func NewNativeSettlement(chainService chain.Client) *NativeSettlement {
	return &NativeSettlement{chainService: chainService}
}

var _ domain.SettlementLedger = (*NativeSettlement)(nil)

func (s *NativeSettlement) Transfer(ctx bCtx.Ctx, chainId domain.ChainId, from, to domain.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return domain.ErrInvalidParameters
	}
	if amount.Sign() == 0 {
		return nil
	}
	if _, err := s.chainService.Send(ctx, int32(chainId), common.HexToAddress(string(to)), amount, nil); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"from":   from,
			"to":     to,
			"amount": amount.String(),
		}).Error("settlement transfer failed")
		return err
	}
	return nil
}
