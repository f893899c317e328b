package shader

import (
	"strings"
	"testing"
)

func TestPreProcessorExpandsIncludes(t *testing.T) {
	src := "//@oxy:include camera\n  // @oxy:include instance\nfn main() {}\n"
	out, err := NewPreProcessor().Process(src)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !strings.Contains(out, "struct CameraUniform") {
		t.Error("camera include was not expanded")
	}
	if !strings.Contains(out, "struct InstanceInput") {
		t.Error("instance include was not expanded")
	}
	if strings.Contains(out, "@oxy:") {
		t.Error("annotation lines should be replaced")
	}
	if !strings.HasSuffix(out, "fn main() {}\n") {
		t.Errorf("trailing source changed: %q", out)
	}
}

func TestPreProcessorPassThrough(t *testing.T) {
	src := "// plain comment\nlet x = 1; // trailing\n"
	out, err := NewPreProcessor().Process(src)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if out != src {
		t.Errorf("Process changed source without annotations:\n%q", out)
	}
}

func TestPreProcessorRegister(t *testing.T) {
	pp := NewPreProcessor()
	pp.Register("fog", "const FOG: f32 = 0.5;\n")
	out, err := pp.Process("//@oxy:include fog")
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if out != "const FOG: f32 = 0.5;" {
		t.Errorf("out = %q", out)
	}
}

func TestPreProcessorErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{"unknown include", "fn a() {}\n//@oxy:include lights", "line 2: unknown @oxy:include argument \"lights\""},
		{"missing argument", "//@oxy:include", "line 1: @oxy include annotation requires exactly one argument"},
		{"extra argument", "//@oxy:include camera instance", "requires exactly one argument"},
		{"unknown type", "//@oxy:workgroup 64", "unknown @oxy annotation type \"workgroup\""},
		{"empty", "//@oxy:", "line 1: empty @oxy annotation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPreProcessor().Process(tt.src)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("err = %q, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestPreProcessorUnknownListsKnown(t *testing.T) {
	_, err := NewPreProcessor().Process("//@oxy:include nope")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "[camera instance]") {
		t.Errorf("err = %q, want the sorted known includes", err)
	}
}
