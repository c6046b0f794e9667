package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, h *SpeechCtrl) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/ai/speech-token", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Token(e.NewContext(req, rec)))

	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec, out
}

func TestTokenIssued(t *testing.T) {
	sts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "secret", r.Header.Get("Ocp-Apim-Subscription-Key"))
		_, _ = w.Write([]byte("tok-123"))
	}))
	defer sts.Close()

	h := New("secret", "centralindia")
	h.TokenURL = sts.URL

	rec, out := call(t, h)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "tok-123", out["token"])
	require.Equal(t, "centralindia", out["region"])
}

func TestTokenUpstreamStatusPassesThrough(t *testing.T) {
	sts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer sts.Close()

	h := New("secret", "centralindia")
	h.TokenURL = sts.URL

	rec, out := call(t, h)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "Failed to get token", out["error"])
}

func TestTokenUnconfigured(t *testing.T) {
	rec, out := call(t, New("", ""))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "Speech key or region not configured", out["error"])
}
