//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"
)

// baseURL points the suite at a running API instance with migrated seed data.
var baseURL string

func TestMain(m *testing.M) {
	baseURL = envOrDefault("TRIVIA_API_BASE_URL", "http://localhost:8080")

	if err := waitForAPI(baseURL, 15*time.Second); err != nil {
		fmt.Fprintf(os.Stderr, "api not reachable at %s: %v\n", baseURL, err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

func waitForAPI(base string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		resp, err := http.Get(base + "/healthz")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		if time.Now().After(deadline) {
			if err != nil {
				return err
			}
			return fmt.Errorf("healthz returned %d", resp.StatusCode)
		}
		time.Sleep(500 * time.Millisecond)
	}
}
