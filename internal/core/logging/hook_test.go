package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestContextHook_Run(t *testing.T) {
	tests := []struct {
		name      string
		setupCtx  func() context.Context
		wantKeys  []string
		wantEmpty []string
	}{
		{
			name: "both request_id and listing",
			setupCtx: func() context.Context {
				ctx := context.Background()
				ctx = WithRequestID(ctx, "req-123")
				ctx = WithListing(ctx, "Zillow")
				return ctx
			},
			wantKeys: []string{"request_id", "listing"},
		},
		{
			name: "only request_id",
			setupCtx: func() context.Context {
				return WithRequestID(context.Background(), "req-123")
			},
			wantKeys:  []string{"request_id"},
			wantEmpty: []string{"listing"},
		},
		{
			name: "only listing",
			setupCtx: func() context.Context {
				return WithListing(context.Background(), "Zillow")
			},
			wantKeys:  []string{"listing"},
			wantEmpty: []string{"request_id"},
		},
		{
			name:      "no context values",
			setupCtx:  context.Background,
			wantEmpty: []string{"request_id", "listing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := tt.setupCtx()

			logger := zerolog.New(&buf).Hook(ContextHook{})
			logger.Info().Ctx(ctx).Msg("test")

			var logEntry map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
				t.Fatalf("failed to parse log: %v", err)
			}

			for _, key := range tt.wantKeys {
				if _, ok := logEntry[key]; !ok {
					t.Errorf("expected %s to be present in log", key)
				}
			}

			for _, key := range tt.wantEmpty {
				if _, ok := logEntry[key]; ok {
					t.Errorf("expected %s to be absent from log", key)
				}
			}
		})
	}
}
