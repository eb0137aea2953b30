package domain

import (
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

var (
	Big1  = big.NewInt(1)
	Big10 = big.NewInt(10)
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) ToBigInt() (*big.Int, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok {
		return nil, xerrors.Errorf("invalid token id %s", i)
	}
	return id, nil
}

// TxHash is the transaction hash of a confirmed on-chain transfer
type TxHash string

// Table names the mongo collection a repository reads and writes
type Table string

const (
	TableAuctionActivities Table = "auction_activities"
	TableHealthCheck       Table = "health_check"
)
