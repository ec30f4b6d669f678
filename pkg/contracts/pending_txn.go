package contracts

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/umbracle/ethgo"
)

// receiptWaiter is satisfied by a sent ethgo contract.Txn.
type receiptWaiter interface {
	Wait() (*ethgo.Receipt, error)
}

// PendingTxn is a broadcast transaction that has not been confirmed yet.
type PendingTxn struct {
	txn          receiptWaiter
	blocks       IBlockNumberReader
	pollInterval time.Duration
}

func NewPendingTxn(txn receiptWaiter, blocks IBlockNumberReader, pollInterval time.Duration) *PendingTxn {
	return &PendingTxn{
		txn:          txn,
		blocks:       blocks,
		pollInterval: pollInterval,
	}
}

// Hash returns the broadcast transaction hash when the underlying txn exposes
// it. It stays valid after AwaitConfirmation gives up.
func (p *PendingTxn) Hash() (ethgo.Hash, bool) {
	hasher, ok := p.txn.(interface{ Hash() ethgo.Hash })
	if !ok {
		return ethgo.Hash{}, false
	}
	return hasher.Hash(), true
}

// AwaitConfirmation blocks until the transaction is mined and `confirmations`
// blocks (counting the inclusion block) exist on top of it.
// A reverted receipt is an error.
func (p *PendingTxn) AwaitConfirmation(ctx context.Context, confirmations uint64) (*TxnReference, error) {
	receipt, err := p.waitReceipt(ctx)
	if err != nil {
		return nil, err
	}
	if receipt.Status == ReceiptStatusFailed {
		return nil, errors.Errorf("transaction %s reverted in block %d", receipt.TransactionHash, receipt.BlockNumber)
	}

	ref := &TxnReference{
		Hash:        receipt.TransactionHash,
		BlockNumber: receipt.BlockNumber,
	}
	if confirmations <= 1 {
		return ref, nil
	}

	target := receipt.BlockNumber + confirmations - 1
	for {
		head, err := p.blocks.BlockNumber()
		if err != nil {
			return nil, errors.Wrap(err, "failed call to eth_blockNumber")
		}
		if head >= target {
			return ref, nil
		}

		select {
		case <-ctx.Done():
			return nil, errors.Wrapf(ctx.Err(), "stopped waiting for %d confirmations of %s", confirmations, ref.Hash)
		case <-time.After(p.pollInterval):
		}
	}
}

type receiptResult struct {
	receipt *ethgo.Receipt
	err     error
}

// waitReceipt returns early on ctx cancellation, but txn.Wait has no way to
// be interrupted: the goroutine keeps polling until the receipt arrives or the
// process exits. Every caller is a one-shot task that exits right after.
func (p *PendingTxn) waitReceipt(ctx context.Context) (*ethgo.Receipt, error) {
	done := make(chan receiptResult, 1)
	go func() {
		receipt, err := p.txn.Wait()
		done <- receiptResult{receipt, err}
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "stopped waiting for transaction receipt")
	case res := <-done:
		if res.err != nil {
			return nil, errors.Wrap(res.err, "failed to get transaction receipt")
		}
		if res.receipt == nil {
			return nil, errors.New("empty transaction receipt")
		}
		return res.receipt, nil
	}
}
