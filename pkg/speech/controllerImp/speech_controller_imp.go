package controllerImp

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// SpeechCtrl issues short-lived speech service tokens from the regional STS
// endpoint so the browser never sees the subscription key.
type SpeechCtrl struct {
	key    string
	region string

	// TokenURL is resolved from the region in New; tests point it elsewhere.
	TokenURL string
}

func New(key, region string) *SpeechCtrl {
	return &SpeechCtrl{
		key:      key,
		region:   region,
		TokenURL: fmt.Sprintf("https://%s.api.cognitive.microsoft.com/sts/v1.0/issueToken", region),
	}
}

func (h *SpeechCtrl) Token(c echo.Context) error {
	if h.key == "" || h.region == "" {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Speech key or region not configured"})
	}

	httpc := &http.Client{Timeout: 10 * time.Second}
	req, err := http.NewRequest("POST", h.TokenURL, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", h.key)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpc.Do(req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.JSON(resp.StatusCode, map[string]string{"error": "Failed to get token"})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"token": string(body), "region": h.region})
}
