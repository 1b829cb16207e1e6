package cliout

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
)

// captureOutput captures stdout during function execution
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	defer func() { os.Stdout = oldStdout }()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	fn()

	_ = w.Close()
	return <-done
}

func TestSetFormat(t *testing.T) {
	defer func() { _ = SetFormat("default") }()

	tests := []struct {
		format  string
		want    Format
		wantErr bool
	}{
		{format: "default", want: FormatDefault},
		{format: "", want: FormatDefault},
		{format: "json", want: FormatJSON},
		{format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		err := SetFormat(tt.format)
		if tt.wantErr {
			if err == nil {
				t.Errorf("SetFormat(%q) = nil, want error", tt.format)
			}
			continue
		}
		if err != nil {
			t.Errorf("SetFormat(%q) = %v", tt.format, err)
			continue
		}
		if got := GetFormat(); got != tt.want {
			t.Errorf("GetFormat() after SetFormat(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestIsJSON(t *testing.T) {
	defer func() { _ = SetFormat("default") }()

	if err := SetFormat("json"); err != nil {
		t.Fatal(err)
	}
	if !IsJSON() {
		t.Error("IsJSON() = false in json mode")
	}
	if err := SetFormat("default"); err != nil {
		t.Fatal(err)
	}
	if IsJSON() {
		t.Error("IsJSON() = true in default mode")
	}
}

func TestPrintHybrid(t *testing.T) {
	defer func() { _ = SetFormat("default") }()

	data := map[string]interface{}{"valid": true, "url": "https://example.com/"}

	t.Run("json mode marshals data", func(t *testing.T) {
		if err := SetFormat("json"); err != nil {
			t.Fatal(err)
		}
		out := captureOutput(t, func() {
			if err := Print(data, func() { Plain("should not run") }); err != nil {
				t.Errorf("Print() = %v", err)
			}
		})
		var decoded map[string]interface{}
		if err := json.Unmarshal([]byte(out), &decoded); err != nil {
			t.Fatalf("output is not JSON: %q", out)
		}
		if decoded["valid"] != true {
			t.Errorf("decoded[valid] = %v, want true", decoded["valid"])
		}
		if strings.Contains(out, "should not run") {
			t.Error("formatter ran in JSON mode")
		}
	})

	t.Run("default mode runs formatter", func(t *testing.T) {
		if err := SetFormat("default"); err != nil {
			t.Fatal(err)
		}
		out := captureOutput(t, func() {
			_ = Print(data, func() { Plain("formatted output") })
		})
		if !strings.Contains(out, "formatted output") {
			t.Errorf("formatter output missing: %q", out)
		}
	})
}

func TestMessageHelpers(t *testing.T) {
	out := captureOutput(t, func() {
		Success("ok %d", 1)
		Error("bad %s", "thing")
		Warning("careful")
		Info("fyi")
		Label("Scheme", "https")
		Item("item text")
		Bullet("bullet text")
	})

	for _, want := range []string{"ok 1", "bad thing", "careful", "fyi", "https", "item text", "bullet text"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestNoColor(t *testing.T) {
	NoColor()
	defer ForceColor()

	out := captureOutput(t, func() {
		Success("plain")
	})
	if strings.Contains(out, "\033[") {
		t.Errorf("color codes present with NoColor: %q", out)
	}
}

func TestHeader(t *testing.T) {
	NoColor()
	defer ForceColor()

	out := captureOutput(t, func() {
		Header("Results")
	})
	if !strings.Contains(out, "Results") || !strings.Contains(out, "=======") {
		t.Errorf("unexpected header output: %q", out)
	}
}
