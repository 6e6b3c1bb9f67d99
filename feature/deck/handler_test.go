package deck_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"deck-reconciler/core/store"
	"deck-reconciler/feature/catalog"
	"deck-reconciler/feature/deck"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fixedClient resolves every bulk identifier to a one-cost red card.
type fixedClient struct{}

func (fixedClient) Collection(_ context.Context, names []string) (*catalog.CollectionResult, error) {
	result := &catalog.CollectionResult{}
	for _, name := range names {
		result.Data = append(result.Data, catalog.Record{
			ID:     name,
			Name:   name,
			CMC:    1,
			Colors: []string{"R"},
		})
	}
	return result, nil
}

func (fixedClient) NamedExact(context.Context, string) (*catalog.Record, error) {
	return nil, catalog.ErrNotFound
}

func (fixedClient) NamedFuzzy(context.Context, string) (*catalog.Record, error) {
	return nil, catalog.ErrNotFound
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	logger := zap.NewNop()
	resolver := catalog.NewResolver(fixedClient{}, logger)
	svc := deck.NewService(store.NewMemory(), resolver, logger)

	app := fiber.New()
	deck.NewHandler(svc).RegisterRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) (int, map[string]json.RawMessage) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000) // 2s timeout
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

func TestHandleDiff(t *testing.T) {
	app := setupApp(t)

	status, body := postJSON(t, app, "/deck/diff", deck.DiffRequest{
		Left:  "4 Lightning Bolt\n2 Island",
		Right: "3 Lightning Bolt",
	})

	assert.Equal(t, 200, status)

	var rows []deck.DiffRow
	require.NoError(t, json.Unmarshal(body["rows"], &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Island", rows[0].Name)
	assert.Equal(t, deck.StatusOnlyLeft, rows[0].Status)
	assert.Equal(t, "Lightning Bolt", rows[1].Name)
	assert.Equal(t, deck.StatusDiffers, rows[1].Status)
}

func TestHandleDiff_BadBody(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest("POST", "/deck/diff", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleMerge(t *testing.T) {
	app := setupApp(t)

	status, body := postJSON(t, app, "/deck/merge", deck.MergeRequest{
		Left:    "4 Lightning Bolt",
		Right:   "3 Lightning Bolt",
		Choices: map[string]deck.Choice{"Lightning Bolt": deck.ChoiceRight},
	})

	assert.Equal(t, 200, status)

	var export string
	require.NoError(t, json.Unmarshal(body["export"], &export))
	assert.Equal(t, "3 Lightning Bolt", export)
}

func TestHandleResolve(t *testing.T) {
	app := setupApp(t)

	status, body := postJSON(t, app, "/deck/resolve", deck.ResolveRequest{
		Names: []string{"Lightning Bolt"},
	})

	assert.Equal(t, 200, status)

	var summary catalog.Result
	require.NoError(t, json.Unmarshal(body["summary"], &summary))
	assert.Equal(t, 1, summary.Resolved)

	var records map[string]*catalog.Record
	require.NoError(t, json.Unmarshal(body["records"], &records))
	require.Contains(t, records, "Lightning Bolt")
	assert.Equal(t, "Lightning Bolt", records["Lightning Bolt"].Name)
}

func TestHandleResolve_FromTexts(t *testing.T) {
	app := setupApp(t)

	status, body := postJSON(t, app, "/deck/resolve", deck.ResolveRequest{
		Left:  "4 Lightning Bolt",
		Right: "2 Island",
	})

	assert.Equal(t, 200, status)

	var summary catalog.Result
	require.NoError(t, json.Unmarshal(body["summary"], &summary))
	assert.Equal(t, 2, summary.Resolved)
}

func TestHandleStats(t *testing.T) {
	app := setupApp(t)

	status, body := postJSON(t, app, "/deck/stats", deck.StatsRequest{
		Text: "4 Lightning Bolt",
	})

	assert.Equal(t, 200, status)

	var report struct {
		Total    int `json:"total"`
		Resolved int `json:"resolved"`
	}
	require.NoError(t, json.Unmarshal(body["stats"], &report))
	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 4, report.Resolved)
}
