package journal

import (
	"context"
	"strings"
)

type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepConfirmed StepStatus = "confirmed"
	StepFailed    StepStatus = "failed"

	keyPrefix = "ccip:grant"
)

// StepRecord is the last known outcome of one step of a multi-write task.
type StepRecord struct {
	Step        string     `json:"step"`
	Status      StepStatus `json:"status"`
	TxnHash     string     `json:"txnHash,omitempty"`
	BlockNumber uint64     `json:"blockNumber,omitempty"`
	Error       string     `json:"error,omitempty"`
}

// IStepJournal persists per-step outcomes so a re-run can resume from the
// first step that has not confirmed.
type IStepJournal interface {
	Load(ctx context.Context, key string) (map[string]StepRecord, error)
	Record(ctx context.Context, key string, record StepRecord) error
}

// GrantKey identifies a role grant batch of one token towards one pool.
func GrantKey(network, token, pool string) string {
	return strings.Join([]string{keyPrefix, network, strings.ToLower(token), strings.ToLower(pool)}, ":")
}
