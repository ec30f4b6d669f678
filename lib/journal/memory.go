package journal

import (
	"context"
	"sync"
)

var _ IStepJournal = &MemoryStepJournal{}

// MemoryStepJournal keeps step records for the lifetime of the process.
type MemoryStepJournal struct {
	mutex   sync.Mutex
	batches map[string]map[string]StepRecord
}

func NewMemoryStepJournal() *MemoryStepJournal {
	return &MemoryStepJournal{
		batches: make(map[string]map[string]StepRecord),
	}
}

func (j *MemoryStepJournal) Load(_ context.Context, key string) (map[string]StepRecord, error) {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	records := make(map[string]StepRecord, len(j.batches[key]))
	for step, record := range j.batches[key] {
		records[step] = record
	}
	return records, nil
}

func (j *MemoryStepJournal) Record(_ context.Context, key string, record StepRecord) error {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	if _, ok := j.batches[key]; !ok {
		j.batches[key] = make(map[string]StepRecord)
	}
	j.batches[key][record.Step] = record
	return nil
}
