package domain

import (
	"github.com/nftbay/auction-api/base/ctx"
)

// NftCustody is the ownership ledger of the auctioned assets. The engine
// observes ownership and approval, moves a token on a successful buy, and
// moves it back when settlement fails after custody already changed hands.
// TransferFrom returns the hash of the confirmed transfer for audit records.
type NftCustody interface {
	OwnerOf(c ctx.Ctx, chainId ChainId, contract Address, tokenId TokenId) (Address, error)
	IsApprovedForAll(c ctx.Ctx, chainId ChainId, contract Address, owner, operator Address) (bool, error)
	TransferFrom(c ctx.Ctx, chainId ChainId, contract Address, from, to Address, tokenId TokenId) (TxHash, error)
}
