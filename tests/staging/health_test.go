//go:build staging

package staging

import (
	"net/http"
	"testing"
)

func TestHealthCheck(t *testing.T) {
	resp, _ := get(t, "/healthz")

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}

func TestReadiness(t *testing.T) {
	var status struct {
		Status string `json:"status"`
	}
	getJSON(t, "/readyz", http.StatusOK, &status)
}

func TestVersion(t *testing.T) {
	var info struct {
		Version   string `json:"version"`
		GoVersion string `json:"go_version"`
	}
	getJSON(t, "/version", http.StatusOK, &info)

	if info.GoVersion == "" {
		t.Error("Expected go_version to be reported")
	}
}
