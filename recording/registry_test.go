package recording

import (
	"errors"
	"testing"

	"github.com/gogpu/pie3d"
)

// mockBackend records the calls it receives.
type mockBackend struct {
	name       string
	beginCalls int
	endCalls   int
	width      int
	height     int
	ops        []string
	paints     []pie3d.Paint
}

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) Begin(width, height int) error {
	b.beginCalls++
	b.width = width
	b.height = height
	return nil
}

func (b *mockBackend) End() error {
	b.endCalls++
	return nil
}

func (b *mockBackend) FillPath(_ *pie3d.Path, paint pie3d.Paint) {
	b.ops = append(b.ops, "fill")
	b.paints = append(b.paints, paint)
}

func (b *mockBackend) StrokePath(_ *pie3d.Path, _ pie3d.RGBA, _ float64) {
	b.ops = append(b.ops, "stroke")
}

func (b *mockBackend) DrawText(s string, _, _, _ float64, _ pie3d.RGBA) {
	b.ops = append(b.ops, "text:"+s)
}

// withRegistry swaps in an empty registry for the duration of a test.
func withRegistry(t *testing.T) {
	t.Helper()
	registryMu.Lock()
	saved := backends
	backends = make(map[string]BackendFactory)
	registryMu.Unlock()

	t.Cleanup(func() {
		registryMu.Lock()
		backends = saved
		registryMu.Unlock()
	})
}

func TestRegisterAndNewBackend(t *testing.T) {
	withRegistry(t)

	Register("test", func() Backend { return newMockBackend("test") })

	backend, err := NewBackend("test")
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}
	mock, ok := backend.(*mockBackend)
	if !ok {
		t.Fatal("backend is not a mockBackend")
	}
	if mock.name != "test" {
		t.Errorf("got name %q, want %q", mock.name, "test")
	}
	if MustBackend("test") == backend {
		t.Error("each NewBackend call should return a fresh instance")
	}
}

func TestNewBackendUnknown(t *testing.T) {
	withRegistry(t)

	if _, err := NewBackend("unknown"); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("NewBackend(unknown) error = %v, want ErrUnknownBackend", err)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustBackend(unknown) should panic")
		}
	}()
	MustBackend("unknown")
}

func TestRegisterNilFactory(t *testing.T) {
	withRegistry(t)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil factory")
		}
	}()
	Register("nil", nil)
}

func TestRegisterDuplicate(t *testing.T) {
	withRegistry(t)

	factory := func() Backend { return newMockBackend("dup") }
	Register("dup", factory)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for duplicate registration")
		}
	}()
	Register("dup", factory)
}

func TestUnregister(t *testing.T) {
	withRegistry(t)

	Register("temp", func() Backend { return newMockBackend("temp") })
	if !IsRegistered("temp") {
		t.Error("backend should be registered")
	}

	Unregister("temp")
	if IsRegistered("temp") {
		t.Error("backend should not be registered after Unregister")
	}

	// Unregister non-existent should not panic
	Unregister("nonexistent")
}

func TestBackends(t *testing.T) {
	withRegistry(t)

	Register("svg", func() Backend { return newMockBackend("svg") })
	Register("eps", func() Backend { return newMockBackend("eps") })
	Register("png", func() Backend { return newMockBackend("png") })

	names := Backends()
	expected := []string{"eps", "png", "svg"}
	if len(names) != len(expected) {
		t.Fatalf("Backends() = %v, want %v", names, expected)
	}
	for i, name := range names {
		if name != expected[i] {
			t.Errorf("names[%d] = %q, want %q", i, name, expected[i])
		}
	}
}

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		c    CommandType
		want string
	}{
		{CmdFillPath, "FillPath"},
		{CmdStrokePath, "StrokePath"},
		{CmdDrawText, "DrawText"},
		{CommandType(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("CommandType(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}
