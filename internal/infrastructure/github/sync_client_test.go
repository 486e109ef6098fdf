package github_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daftar-app/daftar/internal/application/ports"
	"github.com/daftar-app/daftar/internal/infrastructure/github"
)

var testTarget = ports.SyncTarget{Token: "ghp_test", Repo: "someone/ledger-backup", File: "accounting-data.json"}

// stubGitHub fakes the two contents-API endpoints with an in-memory file.
type stubGitHub struct {
	content []byte
	sha     string
	lastPut map[string]any
}

func (s *stubGitHub) handler(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/someone/ledger-backup/contents/accounting-data.json", r.URL.Path)
		assert.Equal(t, "token ghp_test", r.Header.Get("Authorization"))

		switch r.Method {
		case http.MethodGet:
			if s.content == nil {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			json.NewEncoder(w).Encode(map[string]string{
				"sha":     s.sha,
				"content": base64.StdEncoding.EncodeToString(s.content) + "\n",
			})
		case http.MethodPut:
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			s.lastPut = body
			decoded, err := base64.StdEncoding.DecodeString(body["content"].(string))
			require.NoError(t, err)
			s.content = decoded
			s.sha = "sha-after-put"
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{"content": map[string]string{"sha": s.sha}})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
}

func TestPush_CreatesNewFile(t *testing.T) {
	stub := &stubGitHub{}
	srv := httptest.NewServer(stub.handler(t))
	defer srv.Close()

	client := github.NewWithBaseURL(srv.URL)
	err := client.Push(context.Background(), testTarget, []byte(`{"products":[]}`), "backup 1403/01/01")
	require.NoError(t, err)

	assert.Equal(t, `{"products":[]}`, string(stub.content))
	assert.Equal(t, "backup 1403/01/01", stub.lastPut["message"])
	_, hasSHA := stub.lastPut["sha"]
	assert.False(t, hasSHA, "creating a new file sends no blob sha")
}

func TestPush_UpdatesExistingFileWithSHA(t *testing.T) {
	stub := &stubGitHub{content: []byte(`old`), sha: "abc123"}
	srv := httptest.NewServer(stub.handler(t))
	defer srv.Close()

	client := github.NewWithBaseURL(srv.URL)
	err := client.Push(context.Background(), testTarget, []byte(`new`), "backup")
	require.NoError(t, err)

	assert.Equal(t, "abc123", stub.lastPut["sha"], "updating requires the current blob sha")
	assert.Equal(t, "new", string(stub.content))
}

func TestPull_DecodesWrappedBase64(t *testing.T) {
	stub := &stubGitHub{content: []byte(`{"products":[],"inputInvoices":[],"salesInvoices":[]}`), sha: "abc"}
	srv := httptest.NewServer(stub.handler(t))
	defer srv.Close()

	client := github.NewWithBaseURL(srv.URL)
	data, err := client.Pull(context.Background(), testTarget)
	require.NoError(t, err)
	assert.JSONEq(t, string(stub.content), string(data))
}

func TestPull_RemoteMissingIsError(t *testing.T) {
	stub := &stubGitHub{}
	srv := httptest.NewServer(stub.handler(t))
	defer srv.Close()

	client := github.NewWithBaseURL(srv.URL)
	_, err := client.Pull(context.Background(), testTarget)
	assert.Error(t, err)
}

func TestValidateTarget(t *testing.T) {
	client := github.New()
	err := client.Push(context.Background(), ports.SyncTarget{Repo: "a/b"}, nil, "m")
	assert.Error(t, err, "missing token must fail before any network call")

	_, err = client.Pull(context.Background(), ports.SyncTarget{Token: "t", Repo: "a/b"})
	assert.Error(t, err, "missing file name must fail before any network call")
}
