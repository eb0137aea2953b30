package contract

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/suite"

	baseabi "github.com/nftbay/auction-api/base/abi"
)

var (
	tokenContract = common.HexToAddress("0xdddd000000000000000000000000000000000004")
	fromAddr      = common.HexToAddress("0xaaaa000000000000000000000000000000000001")
	toAddr        = common.HexToAddress("0xbbbb000000000000000000000000000000000002")
)

type confirmTransferSuite struct {
	suite.Suite
}

func transferLog(contract common.Address, from, to common.Address, tokenId int64) *types.Log {
	return &types.Log{
		Address: contract,
		Topics: []common.Hash{
			baseabi.ERC721TokenABI.Events["Transfer"].ID,
			common.BytesToHash(from.Bytes()),
			common.BytesToHash(to.Bytes()),
			common.BigToHash(big.NewInt(tokenId)),
		},
	}
}

func (s *confirmTransferSuite) TestMatchingLogConfirms() {
	receipt := &types.Receipt{
		TxHash: common.HexToHash("0x01"),
		Logs:   []*types.Log{transferLog(tokenContract, fromAddr, toAddr, 7)},
	}
	s.Nil(confirmTransfer(receipt, tokenContract, toAddr, big.NewInt(7)))
}

func (s *confirmTransferSuite) TestIgnoresOtherContracts() {
	other := common.HexToAddress("0xeeee000000000000000000000000000000000005")
	receipt := &types.Receipt{
		Logs: []*types.Log{transferLog(other, fromAddr, toAddr, 7)},
	}
	s.NotNil(confirmTransfer(receipt, tokenContract, toAddr, big.NewInt(7)))
}

func (s *confirmTransferSuite) TestWrongRecipientFails() {
	receipt := &types.Receipt{
		Logs: []*types.Log{transferLog(tokenContract, fromAddr, fromAddr, 7)},
	}
	s.NotNil(confirmTransfer(receipt, tokenContract, toAddr, big.NewInt(7)))
}

func (s *confirmTransferSuite) TestWrongTokenIdFails() {
	receipt := &types.Receipt{
		Logs: []*types.Log{transferLog(tokenContract, fromAddr, toAddr, 8)},
	}
	s.NotNil(confirmTransfer(receipt, tokenContract, toAddr, big.NewInt(7)))
}

func (s *confirmTransferSuite) TestEmptyReceiptFails() {
	s.NotNil(confirmTransfer(&types.Receipt{}, tokenContract, toAddr, big.NewInt(7)))
}

func (s *confirmTransferSuite) TestDecodeTransferLog() {
	transfer, err := baseabi.ToErc721TransferLog(transferLog(tokenContract, fromAddr, toAddr, 7))
	s.Require().Nil(err)
	s.Equal(fromAddr, transfer.From)
	s.Equal(toAddr, transfer.To)
	s.Equal(int64(7), transfer.TokenId.Int64())
}

func (s *confirmTransferSuite) TestDecodeRejectsForeignLog() {
	l := transferLog(tokenContract, fromAddr, toAddr, 7)
	l.Topics = l.Topics[:3]
	_, err := baseabi.ToErc721TransferLog(l)
	s.NotNil(err)

	l = transferLog(tokenContract, fromAddr, toAddr, 7)
	l.Topics[0] = common.HexToHash("0x02")
	_, err = baseabi.ToErc721TransferLog(l)
	s.NotNil(err)
}

func TestConfirmTransferSuite(t *testing.T) {
	suite.Run(t, new(confirmTransferSuite))
}
