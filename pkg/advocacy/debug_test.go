package advocacy

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestDebugInfoOffByDefault(t *testing.T) {
	srv, _ := newTestServer(t, `{}`)
	c := newTestClient(t, Config{BaseURL: srv.URL})

	_, err := c.GetSubscription(context.Background())
	require.NoError(t, err)

	require.False(t, c.Debug())
	_, ok := c.DebugInfo()
	require.False(t, ok)
}

func TestDebugInfoKeepsLatestCall(t *testing.T) {
	srv, _ := newTestServer(t, `{"id":"5"}`)
	c := newTestClient(t, Config{BaseURL: srv.URL, APIKey: "K1", AccessToken: "abc", Debug: true})
	ctx := context.Background()

	_, err := c.SearchTargets(ctx, NewParams("state", "MA"))
	require.NoError(t, err)
	first, ok := c.DebugInfo()
	require.True(t, ok)
	require.Equal(t, "targets/search", first.Path)

	_, err = c.UpdateCustomTarget(ctx, Fields{"name": "x"}, "5")
	require.NoError(t, err)

	rec, ok := c.DebugInfo()
	require.True(t, ok)
	require.NotEqual(t, uuid.Nil, rec.RequestID)
	require.NotEqual(t, first.RequestID, rec.RequestID)
	require.Equal(t, http.MethodPut, rec.Method)
	require.Equal(t, "targets/custom/5", rec.Path)
	require.Equal(t, srv.URL+"/api/v1/targets/custom/5?apikey=K1", rec.URL)
	require.Equal(t, "abc", rec.AccessToken)
	require.Empty(t, rec.Query)
	require.Equal(t, Fields{"name": "x"}, rec.Body)
	require.Equal(t, http.StatusOK, rec.StatusCode)
	require.Equal(t, map[string]interface{}{"id": "5"}, rec.Response)
	require.NoError(t, rec.Err)
}

func TestDebugInfoCapturesFailures(t *testing.T) {
	srv, _ := newTestServer(t, ``)
	c := newTestClient(t, Config{BaseURL: srv.URL, Debug: true})

	_, err := c.GetCommitteeList(context.Background())
	require.Error(t, err)

	rec, ok := c.DebugInfo()
	require.True(t, ok)
	var malformed *MalformedResponseError
	require.ErrorAs(t, rec.Err, &malformed)
	require.Equal(t, http.StatusOK, rec.StatusCode)
}

func TestDebugSinkReceivesRecords(t *testing.T) {
	srv, _ := newTestServer(t, `[]`)

	var got []DebugRecord
	sink := DebugSinkFunc(func(_ context.Context, rec DebugRecord) error {
		got = append(got, rec)
		return nil
	})
	c := newTestClient(t, Config{BaseURL: srv.URL}, WithDebugSink(sink))
	ctx := context.Background()

	_, err := c.GetTargetGroups(ctx)
	require.NoError(t, err)
	require.Empty(t, got, "sink must not be called while debug is off")

	c.SetDebug(true)
	_, err = c.GetTargetGroups(ctx)
	require.NoError(t, err)
	_, err = c.GetDistricts(ctx, "02115")
	require.NoError(t, err)

	require.Len(t, got, 2)
	require.Equal(t, "target-groups", got[0].Path)
	require.Equal(t, NewParams("zip", "02115"), got[1].Query)
}

func TestFailingDebugSinkDoesNotFailCall(t *testing.T) {
	srv, _ := newTestServer(t, `{"ok":true}`)
	sink := DebugSinkFunc(func(context.Context, DebugRecord) error {
		return errors.New("disk full")
	})
	c := newTestClient(t, Config{BaseURL: srv.URL, Debug: true}, WithDebugSink(sink))

	resp, err := c.GetSubscription(context.Background())
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{"ok": true}, resp.Value)
}

func TestValidationFailuresAreNotCaptured(t *testing.T) {
	srv, _ := newTestServer(t, `{}`)
	c := newTestClient(t, Config{BaseURL: srv.URL, Debug: true})

	_, err := c.execute(context.Background(), "PATCH", "targets/custom", nil, nil)
	require.Error(t, err)
	_, ok := c.DebugInfo()
	require.False(t, ok)
}
