package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/abhishek/learngrow/internal/completion"
	"github.com/abhishek/learngrow/internal/domain"
	"github.com/abhishek/learngrow/internal/repository/memory"
	"github.com/abhishek/learngrow/internal/service"
	"github.com/abhishek/learngrow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatRecords(t *testing.T, ts *testServer) *memory.ChatRecordRepository {
	t.Helper()
	records, ok := ts.repos.ChatRecord.(*memory.ChatRecordRepository)
	require.True(t, ok)
	return records
}

func TestChatbotHandler_Ask(t *testing.T) {
	ts := newTestServer(t, &stubGateway{result: &completion.Result{Answer: "4"}})

	resp := ts.postJSON(t, "/api/chatbot", map[string]string{
		"email":    "user@x.com",
		"question": "2+2?",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Answer string `json:"answer"`
	}
	testutil.AssertJSONResponse(t, resp, &body)
	assert.Equal(t, "4", body.Answer)

	stored := chatRecords(t, ts).Records()
	require.Len(t, stored, 1)
	assert.Equal(t, "user@x.com", stored[0].UserEmail)
	assert.Equal(t, "2+2?", stored[0].Question)
	assert.Equal(t, "4", stored[0].Answer)
}

func TestChatbotHandler_Ask_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		request map[string]string
	}{
		{name: "missing question", request: map[string]string{"email": "user@x.com"}},
		{name: "missing email", request: map[string]string{"question": "2+2?"}},
		{name: "empty body", request: map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, &stubGateway{result: &completion.Result{Answer: "4"}})

			resp := ts.postJSON(t, "/api/chatbot", tt.request)

			testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Missing fields")
			assert.Empty(t, chatRecords(t, ts).Records())
		})
	}
}

func TestChatbotHandler_Ask_UpstreamFailure(t *testing.T) {
	ts := newTestServer(t, &stubGateway{err: fmt.Errorf("%w: quota exceeded", domain.ErrCompletionFailed)})

	resp := ts.postJSON(t, "/api/chatbot", map[string]string{
		"email":    "user@x.com",
		"question": "2+2?",
	})

	testutil.AssertErrorResponse(t, resp, http.StatusInternalServerError, "AI service error")
	assert.Empty(t, chatRecords(t, ts).Records())
}

func TestChatbotHandler_Ask_BearerTokenEmailWins(t *testing.T) {
	ts := newTestServer(t, &stubGateway{result: &completion.Result{Answer: "4"}})

	resp := ts.postJSON(t, "/api/register", map[string]string{
		"name":     "Token User",
		"email":    "token@x.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	user, err := ts.services.Account.Login(t.Context(), service.LoginInput{Email: "token@x.com", Password: "secret"})
	require.NoError(t, err)
	token, err := ts.services.Account.SessionToken(user)
	require.NoError(t, err)

	payload, err := json.Marshal(map[string]string{
		"email":    "someone-else@x.com",
		"question": "2+2?",
	})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/chatbot", bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	httpResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer httpResp.Body.Close()

	assert.Equal(t, http.StatusOK, httpResp.StatusCode)

	stored := chatRecords(t, ts).Records()
	require.Len(t, stored, 1)
	assert.Equal(t, "token@x.com", stored[0].UserEmail, "the token's email claim overrides the body email")
}
