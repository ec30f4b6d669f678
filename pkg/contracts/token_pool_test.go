package contracts

import (
	"math/big"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/umbracle/ethgo"
)

func TestSetApprovers(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockContractHandler := NewMockIContractHandler(mockCtrl)
	mockTxn := NewMockIPendingTxn(mockCtrl)

	poolHandler := &TokenPoolHandler{
		ContractHandler: mockContractHandler,
	}

	approvers := []ethgo.Address{ethgo.HexToAddress("0x0000000000000000000000000000000000000def")}

	mockContractHandler.EXPECT().Txn(SetApprovers, approvers).Return(mockTxn, nil).Times(1)
	got, err := poolHandler.SetApprovers(approvers)
	assert.NoError(t, err)
	assert.Equal(t, mockTxn, got)

	mockContractHandler.EXPECT().Txn(SetApprovers, approvers).Return(nil, errors.New("error")).Times(1)
	got, err = poolHandler.SetApprovers(approvers)
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestSetChainToLimit(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockContractHandler := NewMockIContractHandler(mockCtrl)
	mockTxn := NewMockIPendingTxn(mockCtrl)

	poolHandler := &TokenPoolHandler{
		ContractHandler: mockContractHandler,
	}

	tests := []struct {
		name           string
		selector       uint64
		amounts        []*big.Int
		numOfApprovers []*big.Int
	}{
		{
			name:           "equal lengths",
			selector:       16015286601757825753,
			amounts:        []*big.Int{big.NewInt(10), big.NewInt(100)},
			numOfApprovers: []*big.Int{big.NewInt(1), big.NewInt(2)},
		},
		{
			name:           "mismatched lengths are passed through",
			selector:       14767482510784806043,
			amounts:        []*big.Int{big.NewInt(10), big.NewInt(100), big.NewInt(1000)},
			numOfApprovers: []*big.Int{big.NewInt(1), big.NewInt(2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockContractHandler.EXPECT().Txn(SetChainToLimit, tt.selector, tt.amounts, tt.numOfApprovers).Return(mockTxn, nil).Times(1)

			got, err := poolHandler.SetChainToLimit(tt.selector, tt.amounts, tt.numOfApprovers)
			assert.NoError(t, err)
			assert.Equal(t, mockTxn, got)
		})
	}
}
