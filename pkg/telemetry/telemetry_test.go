package telemetry

import (
	"context"
	"testing"

	"hexcrawl/pkg/engine/hex"
)

func TestCoordAttrs(t *testing.T) {
	attrs := CoordAttrs(hex.At(3, 4))
	if len(attrs) != 2 {
		t.Fatalf("len(attrs) = %d, want 2", len(attrs))
	}
	if attrs[0].Key != "hex.col" || attrs[0].Value.AsInt64() != 3 {
		t.Errorf("attrs[0] = %v, want hex.col=3", attrs[0])
	}
	if attrs[1].Key != "hex.row" || attrs[1].Value.AsInt64() != 4 {
		t.Errorf("attrs[1] = %v, want hex.row=4", attrs[1])
	}
}

func TestNoopTracer_DoesNotRecord(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "test")
	defer span.End()
	if span.IsRecording() {
		t.Error("noop span is recording")
	}
}
