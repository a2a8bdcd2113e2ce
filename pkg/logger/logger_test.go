package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInit_LevelAndFormat(t *testing.T) {
	defer Init("info", "text")

	Init("debug", "JSON")
	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", Log.GetLevel())
	}
	var buf bytes.Buffer
	SetOutput(&buf)
	Log.WithField("col", 2).Info("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "hello" || entry["col"] != float64(2) {
		t.Errorf("entry = %v, want msg=hello col=2", entry)
	}
}

func TestInit_UnknownLevelFallsBackToInfo(t *testing.T) {
	defer Init("info", "text")

	Init("chatty", "text")
	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info", Log.GetLevel())
	}
}
