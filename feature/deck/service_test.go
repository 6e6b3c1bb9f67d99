package deck

import (
	"context"
	"encoding/json"
	"testing"

	"deck-reconciler/core/store"
	"deck-reconciler/feature/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubClient resolves every bulk identifier to a minimal record and counts
// calls.
type stubClient struct {
	collectionCalls int
	namedCalls      int
}

func (s *stubClient) Collection(_ context.Context, names []string) (*catalog.CollectionResult, error) {
	s.collectionCalls++
	result := &catalog.CollectionResult{}
	for _, name := range names {
		result.Data = append(result.Data, catalog.Record{ID: name, Name: name, CMC: 1})
	}
	return result, nil
}

func (s *stubClient) NamedExact(_ context.Context, _ string) (*catalog.Record, error) {
	s.namedCalls++
	return nil, catalog.ErrNotFound
}

func (s *stubClient) NamedFuzzy(_ context.Context, _ string) (*catalog.Record, error) {
	s.namedCalls++
	return nil, catalog.ErrNotFound
}

func newTestService(client catalog.Client) (*Service, store.Store) {
	st := store.NewMemory()
	resolver := catalog.NewResolver(client, zap.NewNop())
	return NewService(st, resolver, zap.NewNop()), st
}

func TestService_Diff(t *testing.T) {
	svc, _ := newTestService(&stubClient{})
	report := svc.Diff("4 Bolt\n4 Guide", "3 Bolt\n4 Guide\n3 Swiftspear")
	assert.Equal(t, 1, report.Summary.Equal)
	assert.Equal(t, 1, report.Summary.Differs)
	assert.Equal(t, 1, report.Summary.OnlyRight)
}

func TestService_MergePersistsChoices(t *testing.T) {
	svc, st := newTestService(&stubClient{})
	ctx := context.Background()

	result := svc.Merge(ctx, "4 Bolt", "3 Bolt",
		map[string]Choice{"Bolt": ChoiceRight}, map[string]bool{})
	require.Len(t, result.Rows, 1)
	assert.Equal(t, 3, result.Rows[0].Quantity)
	assert.Equal(t, "3 Bolt", result.Export)

	// The override survives into the next merge of the same decks.
	result = svc.Merge(ctx, "4 Bolt", "3 Bolt", nil, map[string]bool{})
	assert.Equal(t, ChoiceRight, result.Rows[0].Chosen)

	raw, ok, err := st.Get(ctx, "merge_choices_v1")
	require.NoError(t, err)
	require.True(t, ok)
	var persisted map[string]Choice
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Equal(t, ChoiceRight, persisted["Bolt"])
}

func TestService_MergePrunesStaleChoices(t *testing.T) {
	svc, st := newTestService(&stubClient{})
	ctx := context.Background()

	svc.Merge(ctx, "4 Bolt", "3 Bolt", map[string]Choice{"Bolt": ChoiceRight}, map[string]bool{})
	// Bolt left both decks; its persisted choice must be pruned.
	svc.Merge(ctx, "2 Guide", "2 Guide", nil, map[string]bool{})

	raw, ok, err := st.Get(ctx, "merge_choices_v1")
	require.NoError(t, err)
	require.True(t, ok)
	var persisted map[string]Choice
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.NotContains(t, persisted, "Bolt")
}

func TestService_MergeCorruptChoicesDegrade(t *testing.T) {
	svc, st := newTestService(&stubClient{})
	ctx := context.Background()
	require.NoError(t, st.Set(ctx, "merge_choices_v1", "{not json"))

	result := svc.Merge(ctx, "4 Bolt", "4 Bolt", nil, map[string]bool{})
	require.Len(t, result.Rows, 1)
	assert.Equal(t, ChoiceLeft, result.Rows[0].Chosen)
}

func TestService_ResolveCachesAcrossCalls(t *testing.T) {
	client := &stubClient{}
	svc, _ := newTestService(client)
	ctx := context.Background()

	result, records, err := svc.Resolve(ctx, []string{"Bolt", "Guide"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Resolved)
	assert.NotNil(t, records["Bolt"])
	assert.Equal(t, 1, client.collectionCalls)

	// Second pass over the same names issues zero network calls.
	result, _, err = svc.Resolve(ctx, []string{"Bolt", "Guide"})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Requested)
	assert.Equal(t, 1, client.collectionCalls)
	assert.Equal(t, 0, client.namedCalls)
}

func TestService_StatsResolvesAndAggregates(t *testing.T) {
	svc, _ := newTestService(&stubClient{})
	report, result, err := svc.Stats(context.Background(), "4 Bolt\n2 Guide")
	require.NoError(t, err)
	assert.Equal(t, 6, report.Total)
	assert.Equal(t, 6, report.Resolved)
	assert.Equal(t, 6, report.Curve[1])
	assert.Equal(t, 2, result.Resolved)
}
