package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	baseabi "github.com/nftbay/auction-api/base/abi"
	bCtx "github.com/nftbay/auction-api/base/ctx"
	"github.com/nftbay/auction-api/base/log"
	"github.com/nftbay/auction-api/domain"
	"github.com/nftbay/auction-api/service/chain"
)

// Erc721 reads and moves tokens on the asset ledger through chain.Client.
// The engine's operator key must hold transfer approval from the seller for
// TransferFrom to succeed; the engine checks that at listing time.
type Erc721 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc721(chainService chain.Client) *Erc721 {
	return &Erc721{
		abi:          baseabi.ERC721TokenABI,
		chainService: chainService,
	}
}

var _ domain.NftCustody = (*Erc721)(nil)

func (e *Erc721) OwnerOf(ctx bCtx.Ctx, chainId domain.ChainId, contract domain.Address, tokenId domain.TokenId) (domain.Address, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return "", err
	}
	unpacked, err := e.chainService.Call(ctx, int32(chainId), common.HexToAddress(string(contract)), nil, e.abi, "ownerOf", id)
	if err != nil {
		return "", err
	}
	return domain.Address(unpacked[0].(common.Address).String()).ToLower(), nil
}

func (e *Erc721) IsApprovedForAll(ctx bCtx.Ctx, chainId domain.ChainId, contract domain.Address, owner, operator domain.Address) (bool, error) {
	unpacked, err := e.chainService.Call(
		ctx, int32(chainId), common.HexToAddress(string(contract)), nil, e.abi,
		"isApprovedForAll", common.HexToAddress(string(owner)), common.HexToAddress(string(operator)),
	)
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (e *Erc721) TransferFrom(ctx bCtx.Ctx, chainId domain.ChainId, contract domain.Address, from, to domain.Address, tokenId domain.TokenId) (domain.TxHash, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return "", err
	}
	data, err := e.abi.Pack("transferFrom", common.HexToAddress(string(from)), common.HexToAddress(string(to)), id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"contract": contract,
			"tokenId":  tokenId,
		}).Error("abi.Pack failed")
		return "", err
	}
	receipt, err := e.chainService.Send(ctx, int32(chainId), common.HexToAddress(string(contract)), nil, data)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"contract": contract,
			"tokenId":  tokenId,
			"from":     from,
			"to":       to,
		}).Error("transferFrom failed")
		return "", err
	}
	if err := confirmTransfer(receipt, common.HexToAddress(string(contract)), common.HexToAddress(string(to)), id); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"contract": contract,
			"tokenId":  tokenId,
			"tx":       receipt.TxHash.Hex(),
		}).Error("transfer not confirmed by receipt")
		return "", err
	}
	return domain.TxHash(receipt.TxHash.Hex()), nil
}

// confirmTransfer requires the mined receipt to carry the token contract's
// Transfer event landing the token with the expected recipient.
func confirmTransfer(receipt *types.Receipt, contract, to common.Address, tokenId *big.Int) error {
	for _, l := range receipt.Logs {
		if l.Address != contract {
			continue
		}
		transfer, err := baseabi.ToErc721TransferLog(l)
		if err != nil {
			continue
		}
		if transfer.To == to && transfer.TokenId.Cmp(tokenId) == 0 {
			return nil
		}
	}
	return xerrors.New("no matching transfer log in receipt")
}
