package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/aviwein/memorial-search/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStaging struct {
	batches [][]domain.ScrapedRecord
	acked   [][]string
	err     error
}

func (f *fakeStaging) Pending(_ context.Context, _ int) ([]domain.ScrapedRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.batches) == 0 {
		return nil, nil
	}
	batch := f.batches[0]
	f.batches = f.batches[1:]
	return batch, nil
}

func (f *fakeStaging) MarkSynced(_ context.Context, ids []string) error {
	f.acked = append(f.acked, ids)
	return nil
}

type fakeIndexer struct {
	indexed int
	err     error
}

func (f *fakeIndexer) IndexBulk(_ context.Context, records []domain.ScrapedRecord) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.indexed += len(records)
	return len(records), nil
}

func staged(ids ...string) []domain.ScrapedRecord {
	out := make([]domain.ScrapedRecord, len(ids))
	for i, id := range ids {
		out[i] = domain.ScrapedRecord{ID: id, Name: "Someone", SourceName: "Legacy"}
	}
	return out
}

func TestScrapedSyncV2_DrainsAndAcks(t *testing.T) {
	staging := &fakeStaging{batches: [][]domain.ScrapedRecord{staged("a", "b", "c")}}
	indexer := &fakeIndexer{}
	p := NewScrapedSyncV2(staging, indexer)

	count, err := p.Run(t.Context())

	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, 3, indexer.indexed)
	require.Len(t, staging.acked, 1)
	assert.Equal(t, []string{"a", "b", "c"}, staging.acked[0])
}

func TestScrapedSyncV2_EmptyStagingIsNoop(t *testing.T) {
	p := NewScrapedSyncV2(&fakeStaging{}, &fakeIndexer{})

	count, err := p.Run(t.Context())

	require.NoError(t, err)
	assert.Zero(t, count)
}

// A failed index batch stays unacknowledged so the next sync retries it.
func TestScrapedSyncV2_IndexFailureLeavesBatchPending(t *testing.T) {
	staging := &fakeStaging{batches: [][]domain.ScrapedRecord{staged("a", "b")}}
	indexer := &fakeIndexer{err: errors.New("index unavailable")}
	p := NewScrapedSyncV2(staging, indexer)

	_, err := p.Run(t.Context())

	require.Error(t, err)
	assert.Empty(t, staging.acked)
}

func TestScrapedSyncV2_Name(t *testing.T) {
	assert.Equal(t, "sync-scraped-v2", NewScrapedSyncV2(nil, nil).Name())
}
