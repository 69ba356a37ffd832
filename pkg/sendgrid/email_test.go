package sendgrid_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sendgrid_client "github.com/aaravmahajanofficial/ecommerce-analytics/pkg/sendgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmailService(t *testing.T) {
	service := sendgrid_client.NewEmailService("test-api-key", "sender@example.com", "Test Sender")

	assert.NotNil(t, service)
}

type sendgridV3Payload struct {
	Personalizations []struct {
		To      []map[string]string `json:"to"`
		Cc      []map[string]string `json:"cc,omitempty"`
		Bcc     []map[string]string `json:"bcc,omitempty"`
		Subject string              `json:"subject"`
	} `json:"personalizations"`
	From    map[string]string `json:"from"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
}

func TestEmailService_Send(t *testing.T) {
	apiKey := "SG.test-api-key"
	fromEmail := "alerts@example.com"
	fromName := "Inventory Alerts"
	ctx := t.Context()

	tests := []struct {
		name          string
		msg           *sendgrid_client.Message
		status        int
		expectedError string
		checkPayload  func(t *testing.T, payload sendgridV3Payload)
	}{
		{
			name: "Success - Plain and HTML content",
			msg: &sendgrid_client.Message{
				To:          "ops@example.com",
				Subject:     "Low stock: PH-1",
				Content:     "Phone has 3 units left",
				HTMLContent: "<p>Phone has 3 units left</p>",
			},
			status: http.StatusAccepted,
			checkPayload: func(t *testing.T, p sendgridV3Payload) {
				require.Len(t, p.Personalizations, 1)
				pers := p.Personalizations[0]
				require.Len(t, pers.To, 1)
				assert.Equal(t, "ops@example.com", pers.To[0]["email"])
				assert.Equal(t, "Low stock: PH-1", pers.Subject)
				assert.Equal(t, fromEmail, p.From["email"])
				assert.Equal(t, fromName, p.From["name"])

				require.Len(t, p.Content, 2)
				assert.Equal(t, "text/plain", p.Content[0].Type)
				assert.Equal(t, "text/html", p.Content[1].Type)
			},
		},
		{
			name: "Success - CC, BCC and no HTML",
			msg: &sendgrid_client.Message{
				To:      "ops@example.com",
				CC:      []string{"buyer@example.com"},
				BCC:     []string{"audit@example.com"},
				Subject: "Low stock",
				Content: "text only",
			},
			status: http.StatusAccepted,
			checkPayload: func(t *testing.T, p sendgridV3Payload) {
				pers := p.Personalizations[0]
				require.Len(t, pers.Cc, 1)
				assert.Equal(t, "buyer@example.com", pers.Cc[0]["email"])
				require.Len(t, pers.Bcc, 1)
				assert.Equal(t, "audit@example.com", pers.Bcc[0]["email"])
				require.Len(t, p.Content, 1)
				assert.Equal(t, "text only", p.Content[0].Value)
			},
		},
		{
			name:          "Failure - SendGrid API Error (4xx)",
			msg:           &sendgrid_client.Message{To: "bad@example.com", Subject: "x", Content: "x"},
			status:        http.StatusBadRequest,
			expectedError: "failed to send email, status code: 400",
		},
		{
			name:          "Failure - SendGrid API Error (5xx)",
			msg:           &sendgrid_client.Message{To: "ops@example.com", Subject: "x", Content: "x"},
			status:        http.StatusInternalServerError,
			expectedError: "failed to send email, status code: 500",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			var payload sendgridV3Payload

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "Bearer "+apiKey, r.Header.Get("Authorization"))

				body, err := io.ReadAll(r.Body)
				assert.NoError(t, err)
				assert.NoError(t, json.Unmarshal(body, &payload))

				w.WriteHeader(tc.status)
			}))
			defer server.Close()

			service := sendgrid_client.NewEmailService(apiKey, fromEmail, fromName)
			service.GetSendGridClient().Request.BaseURL = server.URL

			// Act
			err := service.Send(ctx, tc.msg)

			// Assert
			if tc.expectedError == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			}

			if tc.checkPayload != nil {
				tc.checkPayload(t, payload)
			}
		})
	}

	t.Run("Failure - Missing recipient", func(t *testing.T) {
		service := sendgrid_client.NewEmailService(apiKey, fromEmail, fromName)

		err := service.Send(ctx, &sendgrid_client.Message{Subject: "x"})

		assert.EqualError(t, err, "email recipient is required")
	})

	t.Run("Failure - Network Error", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		service := sendgrid_client.NewEmailService(apiKey, fromEmail, fromName)
		service.GetSendGridClient().Request.BaseURL = server.URL
		server.Close()

		err := service.Send(ctx, &sendgrid_client.Message{To: "ops@example.com", Subject: "x", Content: "x"})

		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "connection refused") || strings.Contains(err.Error(), "dial tcp"))
	})
}
