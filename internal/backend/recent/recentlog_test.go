package recent

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func newTestLog(t *testing.T, size int) *RecentLog {
	t.Helper()

	server := miniredis.RunT(t)
	recentLog := NewRecentLog(server.Addr(), size)
	t.Cleanup(func() { _ = recentLog.Close() })
	return recentLog
}

type testRecord struct {
	StoreName string `json:"storeName"`
}

func TestRecentLog_PushAndList(t *testing.T) {
	recentLog := newTestLog(t, 10)
	ctx := context.Background()

	if err := recentLog.Push(ctx, testRecord{StoreName: "Corner Store"}); err != nil {
		t.Fatalf("Push error: %v", err)
	}

	entries, err := recentLog.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	var record testRecord
	if err := json.Unmarshal(entries[0], &record); err != nil {
		t.Fatalf("failed to unmarshal entry: %v", err)
	}
	if record.StoreName != "Corner Store" {
		t.Errorf("StoreName = %q; want %q", record.StoreName, "Corner Store")
	}
}

func TestRecentLog_BoundedAtConfiguredSize(t *testing.T) {
	recentLog := newTestLog(t, 3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		record := testRecord{StoreName: fmt.Sprintf("store-%d", i)}
		if err := recentLog.Push(ctx, record); err != nil {
			t.Fatalf("Push #%d error: %v", i, err)
		}
	}

	entries, err := recentLog.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected log trimmed to 3 entries, got %d", len(entries))
	}

	// Newest first
	var newest testRecord
	if err := json.Unmarshal(entries[0], &newest); err != nil {
		t.Fatalf("failed to unmarshal entry: %v", err)
	}
	if newest.StoreName != "store-4" {
		t.Errorf("newest entry = %q; want %q", newest.StoreName, "store-4")
	}
}
