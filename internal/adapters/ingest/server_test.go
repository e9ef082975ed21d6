package ingest_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alertcord/alertcord/internal/adapters/ingest"
	"github.com/alertcord/alertcord/internal/core/domain"
	"github.com/alertcord/alertcord/internal/core/ports/mocks"
)

const firingPayload = `{
	"version": "4",
	"status": "firing",
	"alerts": [
		{"status": "firing", "labels": {"alertname": "HighLoad", "instance": "db-1"}, "fingerprint": "f1"}
	],
	"groupLabels": {"alertname": "HighLoad"},
	"commonLabels": {"alertname": "HighLoad"},
	"commonAnnotations": {"summary": "load is high"},
	"truncatedAlerts": 0
}`

// startServer runs the ingest server on an ephemeral port and returns its base URL.
func startServer(t *testing.T, forward ingest.ForwardFunc) string {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	srv := ingest.NewServer("127.0.0.1:0", log, forward)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// Wait for the listener to come up.
	require.Eventually(t, func() bool { return srv.Addr() != nil }, 2*time.Second, 10*time.Millisecond)

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not shut down")
		}
	})

	return "http://" + srv.Addr().String()
}

func TestServer_Webhook_OK(t *testing.T) {
	var got *domain.Group
	base := startServer(t, func(_ context.Context, group *domain.Group) error {
		got = group
		return nil
	})

	resp, err := http.Post(base+"/", "application/json", strings.NewReader(firingPayload))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))

	require.NotNil(t, got)
	assert.Equal(t, domain.StatusFiring, got.Status)
	require.Len(t, got.Alerts, 1)
	assert.Equal(t, "HighLoad", got.Alerts[0].Name())
}

func TestServer_Webhook_MalformedJSON(t *testing.T) {
	base := startServer(t, func(context.Context, *domain.Group) error {
		t.Error("forward must not be called for malformed payloads")
		return nil
	})

	resp, err := http.Post(base+"/", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_Webhook_UnknownStatus(t *testing.T) {
	base := startServer(t, func(context.Context, *domain.Group) error { return nil })

	payload := strings.Replace(firingPayload, `"status": "firing"`, `"status": "snoozed"`, 1)
	resp, err := http.Post(base+"/", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_Webhook_ForwardError(t *testing.T) {
	base := startServer(t, func(context.Context, *domain.Group) error {
		return errors.New("delivery exploded")
	})

	resp, err := http.Post(base+"/", "application/json", strings.NewReader(firingPayload))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_Health(t *testing.T) {
	base := startServer(t, func(context.Context, *domain.Group) error { return nil })

	resp, err := http.Get(base + "/healthz")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_Run_BadListenAddr(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	srv := ingest.NewServer("256.256.256.256:99999", log, func(context.Context, *domain.Group) error { return nil })
	err := srv.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrServerFailed.Error())
}
