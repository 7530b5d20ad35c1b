//go:build integration

package bus

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"
)

func skipWithoutNATS(t *testing.T) string {
	t.Helper()
	url := os.Getenv("NATS_URL")
	if url == "" {
		t.Skip("NATS_URL not set, skipping integration test")
	}
	return url
}

func TestIntegration_PubSub(t *testing.T) {
	natsURL := skipWithoutNATS(t)
	ctx := context.Background()
	logger := slog.Default()

	client, err := NewClient(ctx, natsURL, os.Getenv("NATS_TOKEN"), logger)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer client.Close()

	received := make(chan LifelogAnalyzedEvent, 1)

	err = client.Subscribe("wrath.test.>", func(subject string, data []byte) {
		var event LifelogAnalyzedEvent
		json.Unmarshal(data, &event)
		received <- event
	})
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	// Give subscription time to propagate
	time.Sleep(100 * time.Millisecond)

	err = client.Publish("wrath.test.analyzed", LifelogAnalyzedEvent{
		LifelogRef:        "lifelog-test",
		ManipulationCount: 2,
		WrathDeployed:     true,
		FlagCount:         2,
	})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case event := <-received:
		if event.LifelogRef != "lifelog-test" || !event.WrathDeployed {
			t.Errorf("unexpected event %+v", event)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}
