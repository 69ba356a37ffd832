package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/utils/response"
	"github.com/stretchr/testify/require"
)

const testUserID int64 = 7

// decodeEnvelope unpacks the response envelope and, when dest is non-nil,
// re-decodes its data into dest.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, dest any) *response.APIResponse {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	if dest != nil {
		data, err := json.Marshal(resp.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, dest))
	}

	return &resp
}
