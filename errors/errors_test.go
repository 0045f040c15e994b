package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Op:     Op("list.insert_at"),
				Kind:   KindInvalidArgument,
				Detail: "index 10 out of range (count 5)",
				Value:  int64(10),
			},
			contains: []string{"[list.insert_at]", "invalid_argument", "index 10 out of range (count 5)"},
		},
		{
			name: "minimal error",
			err: &Error{
				Op:   Op("buffer.read_line"),
				Kind: KindEndOfFile,
			},
			contains: []string{"[buffer.read_line]", "end_of_file"},
		},
		{
			name: "error with cause",
			err: &Error{
				Op:     Op("list.add"),
				Kind:   KindOutOfMemory,
				Detail: "failed to allocate 1024 bytes",
				Cause:  errors.New("budget exhausted"),
			},
			contains: []string{"[list.add]", "out_of_memory", "1024", "caused by", "budget exhausted"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Op:    Op("alloc.realloc"),
		Kind:  KindOutOfMemory,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	// Test with errors.Unwrap
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Op:   Op("list.add"),
		Kind: KindOutOfMemory,
	}

	// Same op and kind
	if !err.Is(&Error{Op: Op("list.add"), Kind: KindOutOfMemory}) {
		t.Error("Is should match same op and kind")
	}

	// Kind-only target matches any op
	if !err.Is(&Error{Kind: KindOutOfMemory}) {
		t.Error("Is should match kind-only target")
	}

	// Different op
	if err.Is(&Error{Op: Op("list.insert_at"), Kind: KindOutOfMemory}) {
		t.Error("Is should not match different op")
	}

	// Different kind
	if err.Is(&Error{Op: Op("list.add"), Kind: KindInvalidArgument}) {
		t.Error("Is should not match different kind")
	}

	// Test with errors.Is
	if !errors.Is(err, &Error{Kind: KindOutOfMemory}) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(Op("list.ensure_capacity"), KindInvalidArgument).
		Value(int64(-1)).
		Cause(cause).
		Detail("capacity %d is negative", -1).
		Build()

	if err.Op != Op("list.ensure_capacity") {
		t.Errorf("Op = %v, want list.ensure_capacity", err.Op)
	}
	if err.Kind != KindInvalidArgument {
		t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidArgument)
	}
	if err.Value != int64(-1) {
		t.Errorf("Value = %v, want -1", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "capacity -1 is negative" {
		t.Errorf("Detail = %v, want 'capacity -1 is negative'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	op := Op("test.op")

	t.Run("InvalidArgument", func(t *testing.T) {
		err := InvalidArgument(op, int64(3), "item size mismatch")
		if err.Kind != KindInvalidArgument {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidArgument)
		}
		if err.Value != int64(3) {
			t.Errorf("Value = %v, want 3", err.Value)
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		err := OutOfRange(op, 10, 5)
		if err.Kind != KindInvalidArgument {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidArgument)
		}
		if !strings.Contains(err.Detail, "10") || !strings.Contains(err.Detail, "5") {
			t.Errorf("Detail = %v, should contain index and count", err.Detail)
		}
		if err.Value != int64(10) {
			t.Errorf("Value = %v, want 10", err.Value)
		}
	})

	t.Run("NegativeValue", func(t *testing.T) {
		err := NegativeValue(op, "capacity", -7)
		if err.Kind != KindInvalidArgument {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidArgument)
		}
		if !strings.Contains(err.Detail, "capacity -7") {
			t.Errorf("Detail = %v, should name the argument", err.Detail)
		}
	})

	t.Run("AllocationFailed", func(t *testing.T) {
		cause := errors.New("mmap failed")
		err := AllocationFailed(op, 1024, cause)
		if err.Kind != KindOutOfMemory {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfMemory)
		}
		if !strings.Contains(err.Detail, "1024") {
			t.Errorf("Detail = %v, should contain size", err.Detail)
		}
		if !errors.Is(err, cause) {
			t.Error("cause should be in the chain")
		}
	})

	t.Run("SizeOverflow", func(t *testing.T) {
		err := SizeOverflow(op, 1<<40, 1<<30)
		if err.Kind != KindOutOfMemory {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfMemory)
		}
	})

	t.Run("EndOfFile", func(t *testing.T) {
		err := EndOfFile(op)
		if err.Kind != KindEndOfFile {
			t.Errorf("Kind = %v, want %v", err.Kind, KindEndOfFile)
		}
	})

	t.Run("ReadFailed", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := ReadFailed(op, cause)
		if err.Kind != KindReadFailed {
			t.Errorf("Kind = %v, want %v", err.Kind, KindReadFailed)
		}
		if !errors.Is(err, cause) {
			t.Error("cause should be in the chain")
		}
	})

	t.Run("WriteFailed", func(t *testing.T) {
		err := WriteFailed(op, errors.New("pipe closed"))
		if err.Kind != KindWriteFailed {
			t.Errorf("Kind = %v, want %v", err.Kind, KindWriteFailed)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(op, "element type *int contains pointers")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("inner")
		err := Wrap(op, KindReadFailed, cause, "reading scenario file")
		if err.Kind != KindReadFailed {
			t.Errorf("Kind = %v, want %v", err.Kind, KindReadFailed)
		}
		if !errors.Is(err, cause) {
			t.Error("cause should be in the chain")
		}
	})
}

func TestKindPredicates(t *testing.T) {
	op := Op("test.op")

	tests := []struct {
		name string
		err  error
		pred func(error) bool
		want bool
	}{
		{"invalid argument direct", OutOfRange(op, 1, 0), IsInvalidArgument, true},
		{"out of memory direct", AllocationFailed(op, 8, nil), IsOutOfMemory, true},
		{"end of file direct", EndOfFile(op), IsEndOfFile, true},
		{"read failed direct", ReadFailed(op, errors.New("x")), IsReadFailed, true},
		{"write failed direct", WriteFailed(op, errors.New("x")), IsWriteFailed, true},
		{"unsupported direct", Unsupported(op, "x"), IsUnsupported, true},
		{"wrong kind", EndOfFile(op), IsOutOfMemory, false},
		{"plain error", errors.New("plain"), IsOutOfMemory, false},
		{"nil error", nil, IsOutOfMemory, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred(tt.err); got != tt.want {
				t.Errorf("predicate = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("wrapped with fmt.Errorf", func(t *testing.T) {
		inner := AllocationFailed(op, 64, nil)
		wrapped := fmt.Errorf("running scenario: %w", inner)
		if !IsOutOfMemory(wrapped) {
			t.Error("IsOutOfMemory should see through fmt.Errorf wrapping")
		}
	})

	t.Run("nested structured errors", func(t *testing.T) {
		inner := AllocationFailed(Op("alloc.alloc"), 64, nil)
		outer := Wrap(Op("list.add"), KindOutOfMemory, inner, "growing list")
		if !IsOutOfMemory(outer) {
			t.Error("IsOutOfMemory should match the outer error")
		}
		if IsInvalidArgument(outer) {
			t.Error("IsInvalidArgument should not match")
		}
	})
}
