package nativehost

import (
	"fmt"
	"strings"
	"sync"
)

const scratchBuffer = "*scratch*"

// Buffer is a named in-memory text.
type Buffer struct {
	name string
	text strings.Builder
	live bool
}

func (b *Buffer) String() string {
	return fmt.Sprintf("#<buffer %s>", b.name)
}

type bufferSet struct {
	mu      sync.Mutex
	list    []*Buffer
	current *Buffer
}

func newBufferSet() *bufferSet {
	s := &bufferSet{}
	s.current = s.create(scratchBuffer)
	return s
}

// create appends a fresh buffer; callers hold mu or own s exclusively.
func (s *bufferSet) create(name string) *Buffer {
	b := &Buffer{name: name, live: true}
	s.list = append(s.list, b)
	return b
}

func (s *bufferSet) find(name string) *Buffer {
	for _, b := range s.list {
		if b.name == name {
			return b
		}
	}
	return nil
}

// resolve accepts a live *Buffer or a buffer name.
func (s *bufferSet) resolve(op string, v any) (*Buffer, error) {
	switch b := v.(type) {
	case *Buffer:
		if !b.live {
			return nil, fmt.Errorf("%s: selecting deleted buffer", op)
		}
		return b, nil
	case string:
		if found := s.find(b); found != nil {
			return found, nil
		}
		return nil, fmt.Errorf("%s: no such buffer %s", op, b)
	default:
		return nil, fmt.Errorf("%s: %w: bufferp %v", op, ErrWrongTypeArgument, v)
	}
}

func (h *Host) installBuffers() {
	s := h.buffers
	h.DefineOperation("get-buffer-create", s.getBufferCreate)
	h.DefineOperation("kill-buffer", s.killBuffer)
	h.DefineOperation("rename-buffer", s.renameBuffer)
	h.DefineOperation("erase-buffer", s.eraseBuffer)
	h.DefineOperation("current-buffer", s.currentBuffer)
	h.DefineOperation("set-buffer", s.setBuffer)
	h.DefineOperation("insert", s.insert)
	h.DefineOperation("buffer-list", s.bufferList)
	h.DefineOperation("buffer-name", s.bufferName)
	h.DefineOperation("buffer-string", s.bufferString)
}

func (s *bufferSet) getBufferCreate(args ...any) (any, error) {
	if err := arity("get-buffer-create", args, 1, 1); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := args[0].(*Buffer); ok {
		return b, nil
	}
	name, err := stringArg("get-buffer-create", args, 0)
	if err != nil {
		return nil, err
	}
	if b := s.find(name); b != nil {
		return b, nil
	}
	return s.create(name), nil
}

// killBuffer takes ([buffer-or-name]) and returns whether a buffer was killed.
// Killing the current buffer selects the next one, recreating *scratch* if none remain.
func (s *bufferSet) killBuffer(args ...any) (any, error) {
	if err := arity("kill-buffer", args, 0, 1); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.current
	if v := optional(args, 0); v != nil {
		if name, ok := v.(string); ok && s.find(name) == nil {
			return false, nil
		}
		if b, ok := v.(*Buffer); ok && !b.live {
			return false, nil
		}
		b, err := s.resolve("kill-buffer", v)
		if err != nil {
			return nil, err
		}
		target = b
	}

	for i, b := range s.list {
		if b == target {
			s.list = append(s.list[:i:i], s.list[i+1:]...)
			break
		}
	}
	target.live = false
	if target == s.current {
		if len(s.list) == 0 {
			s.create(scratchBuffer)
		}
		s.current = s.list[0]
	}
	return true, nil
}

// renameBuffer takes (newname [unique]) and renames the current buffer.
func (s *bufferSet) renameBuffer(args ...any) (any, error) {
	if err := arity("rename-buffer", args, 1, 2); err != nil {
		return nil, err
	}
	name, err := stringArg("rename-buffer", args, 0)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("rename-buffer: empty string is invalid as a buffer name")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.find(name); existing != nil && existing != s.current {
		if !truthy(optional(args, 1)) {
			return nil, fmt.Errorf("rename-buffer: buffer name %q is in use", name)
		}
		base := name
		for n := 2; s.find(name) != nil; n++ {
			name = fmt.Sprintf("%s<%d>", base, n)
		}
	}
	s.current.name = name
	return name, nil
}

func (s *bufferSet) eraseBuffer(args ...any) (any, error) {
	if err := arity("erase-buffer", args, 0, 0); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.text.Reset()
	return nil, nil
}

func (s *bufferSet) currentBuffer(args ...any) (any, error) {
	if err := arity("current-buffer", args, 0, 0); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, nil
}

func (s *bufferSet) setBuffer(args ...any) (any, error) {
	if err := arity("set-buffer", args, 1, 1); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := s.resolve("set-buffer", args[0])
	if err != nil {
		return nil, err
	}
	s.current = b
	return b, nil
}

func (s *bufferSet) insert(args ...any) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range args {
		text, err := stringArg("insert", args, i)
		if err != nil {
			return nil, err
		}
		s.current.text.WriteString(text)
	}
	return nil, nil
}

func (s *bufferSet) bufferList(args ...any) (any, error) {
	if err := arity("buffer-list", args, 0, 1); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]any, len(s.list))
	for i, b := range s.list {
		out[i] = b
	}
	return out, nil
}

func (s *bufferSet) bufferName(args ...any) (any, error) {
	if err := arity("buffer-name", args, 0, 1); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.current
	if v := optional(args, 0); v != nil {
		var ok bool
		if b, ok = v.(*Buffer); !ok {
			return nil, fmt.Errorf("buffer-name: %w: bufferp %v", ErrWrongTypeArgument, v)
		}
	}
	if !b.live {
		return nil, nil
	}
	return b.name, nil
}

func (s *bufferSet) bufferString(args ...any) (any, error) {
	if err := arity("buffer-string", args, 0, 0); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.text.String(), nil
}
