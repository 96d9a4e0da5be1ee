package adsbone

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vipwatch/internal/models"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client := NewClient("https://api.test.local", 5*time.Second)
	client.minInterval = 0 // no rate limiting in tests unless the test sets one
	httpmock.ActivateNonDefault(client.httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return client
}

func TestClient_Military(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("GET", "https://api.test.local/v2/mil",
		httpmock.NewStringResponder(200, `{
			"ac": [{"hex":"ae001f","flight":"SAM29000","alt_baro":31000,"gs":480}],
			"total": 1, "now": 1718000000000, "msg": "No error"
		}`))

	resp, err := client.Military(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Aircraft, 1)
	assert.Equal(t, "ae001f", resp.Aircraft[0].Hex)
	assert.Equal(t, "SAM29000", resp.Aircraft[0].Callsign)
}

func TestClient_ByHex(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("GET", "https://api.test.local/v2/hex/ae001f,ae0020",
		httpmock.NewStringResponder(200, `{"ac":[{"hex":"ae001f"}],"total":1,"msg":"No error"}`))

	resp, err := client.ByHex(context.Background(), []string{"ae001f", "ae0020"})
	require.NoError(t, err)
	assert.Len(t, resp.Aircraft, 1)
}

func TestClient_ByHex_NoCodes(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.ByHex(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Aircraft)
	assert.Zero(t, httpmock.GetTotalCallCount())
}

func TestClient_ServerError(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("GET", "https://api.test.local/v2/mil",
		httpmock.NewStringResponder(500, "internal server error"))

	resp, err := client.Military(context.Background())
	require.Error(t, err)
	assert.Nil(t, resp)
}

func TestClient_MalformedBody(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("GET", "https://api.test.local/v2/mil",
		httpmock.NewStringResponder(200, "<html>not json</html>"))

	resp, err := client.Military(context.Background())
	require.Error(t, err)
	assert.Nil(t, resp)
	// Callers tell an unreadable body apart from a transport failure
	assert.ErrorIs(t, err, models.ErrMalformedResponse)
}

func TestClient_RateLimit(t *testing.T) {
	client := newTestClient(t)
	client.minInterval = 150 * time.Millisecond

	httpmock.RegisterResponder("GET", "https://api.test.local/v2/mil",
		httpmock.NewStringResponder(200, `{"ac":[],"total":0,"msg":"No error"}`))

	start := time.Now()
	_, err := client.Military(context.Background())
	require.NoError(t, err)
	_, err = client.Military(context.Background())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), client.minInterval)
}

func TestClient_RateLimitCancelled(t *testing.T) {
	client := newTestClient(t)
	client.minInterval = 10 * time.Second

	httpmock.RegisterResponder("GET", "https://api.test.local/v2/mil",
		httpmock.NewStringResponder(200, `{"ac":[],"total":0,"msg":"No error"}`))

	_, err := client.Military(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = client.Military(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_RequestHeaders(t *testing.T) {
	client := newTestClient(t)

	var gotUA, gotAccept string
	httpmock.RegisterResponder("GET", "https://api.test.local/v2/mil",
		func(req *http.Request) (*http.Response, error) {
			gotUA = req.Header.Get("User-Agent")
			gotAccept = req.Header.Get("Accept")
			return httpmock.NewStringResponse(200, `{"ac":[],"total":0,"msg":"No error"}`), nil
		})

	_, err := client.Military(context.Background())
	require.NoError(t, err)
	assert.Equal(t, userAgent, gotUA)
	assert.Equal(t, "application/json", gotAccept)
}
