package window

import "testing"

func TestBuilderOptions(t *testing.T) {
	w := &engineWindow{closeOnEscape: true}
	for _, opt := range []WindowBuilderOption{
		WithTitle("flight"),
		WithWidth(1024),
		WithHeight(768),
		WithMinSize(100, 80),
		WithMaxSize(2000, 1500),
		WithCloseOnEscape(false),
		WithCursorCaptured(true),
	} {
		opt(w)
	}

	if w.title != "flight" || w.width != 1024 || w.height != 768 {
		t.Errorf("title/size = %q %dx%d", w.title, w.width, w.height)
	}
	if w.minWidth != 100 || w.minHeight != 80 || w.maxWidth != 2000 || w.maxHeight != 1500 {
		t.Errorf("limits = %d %d %d %d", w.minWidth, w.minHeight, w.maxWidth, w.maxHeight)
	}
	if w.closeOnEscape || !w.cursorCaptured {
		t.Errorf("closeOnEscape=%v cursorCaptured=%v", w.closeOnEscape, w.cursorCaptured)
	}
}

func TestUninitializedWindow(t *testing.T) {
	w := &engineWindow{width: 640, height: 480}

	w.SetTitle("")
	if w.title != DefaultTitle {
		t.Errorf("empty title = %q, want %q", w.title, DefaultTitle)
	}
	w.SetCursorCaptured(true)
	if !w.cursorCaptured {
		t.Error("SetCursorCaptured did not record state")
	}
	if w.IsRunning() {
		t.Error("uninitialized window reports running")
	}
	if w.SurfaceDescriptor() != nil {
		t.Error("uninitialized window returned a surface descriptor")
	}
	if err := w.Close(); err == nil {
		t.Error("Close on an uninitialized window should fail")
	}
	if w.Width() != 640 || w.Height() != 480 {
		t.Errorf("size = %dx%d", w.Width(), w.Height())
	}

	calls := 0
	w.SetUpdateCallback(func() { calls++ })
	w.ProcessMessages()
	if calls != 0 {
		t.Errorf("update ran %d times on a closed window", calls)
	}
}
