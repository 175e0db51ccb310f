// internal/adapters/events/nats_test.go
package events

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestBus_PublishSubscribe(t *testing.T) {
	url := os.Getenv("NATS_URL")
	if url == "" {
		t.Skip("NATS_URL not set")
	}
	bus, err := Connect(url, "helpway-test")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer bus.Close()

	got := make(chan string, 1)
	sub, err := bus.Subscribe(func(subject string, data []byte) {
		got <- subject + " " + string(data)
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer sub.Unsubscribe()

	if err := bus.Publish(context.Background(), "campaign.changed", map[string]string{"campaign_id": "1"}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case msg := <-got:
		want := `helpway-test.campaign.changed {"campaign_id":"1"}`
		if msg != want {
			t.Errorf("received %q, want %q", msg, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("event not delivered")
	}
}

func TestBus_Subject(t *testing.T) {
	if got := (&Bus{prefix: "helpway"}).subject("donation.registered"); got != "helpway.donation.registered" {
		t.Errorf("subject() = %q", got)
	}
	if got := (&Bus{}).subject("donation.registered"); got != "donation.registered" {
		t.Errorf("subject() without prefix = %q", got)
	}
}
