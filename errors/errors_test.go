package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
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
				Phase:    PhaseEncode,
				Kind:     KindOverflow,
				Path:     []string{"headers", "x-death", "[2]", "reason"},
				GoType:   "string",
				WireType: "shortstr",
				Detail:   "too long",
			},
			contains: []string{"[encode]", "overflow", "headers.x-death[2].reason", "string", "shortstr", "too long"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindEndOfStream,
			},
			contains: []string{"[decode]", "end_of_stream"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseFlush,
				Kind:   KindIO,
				Detail: "stream error",
				Cause:  errors.New("broken pipe"),
			},
			contains: []string{"[flush]", "io", "stream error", "caused by", "broken pipe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				require.Contains(t, msg, s)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	err := EndOfStream(PhaseDecode, 4, io.ErrUnexpectedEOF)

	require.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	require.Equal(t, io.ErrUnexpectedEOF, errors.Unwrap(err))
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindFraming,
		Path:  []string{"foo"},
	}

	require.True(t, err.Is(&Error{Phase: PhaseDecode, Kind: KindFraming}), "same phase and kind")
	require.False(t, err.Is(&Error{Phase: PhaseEncode, Kind: KindFraming}), "different phase")
	require.False(t, err.Is(&Error{Phase: PhaseDecode, Kind: KindOverflow}), "different kind")

	wrapped := fmt.Errorf("method basic.publish: %w", err)
	require.ErrorIs(t, wrapped, &Error{Phase: PhaseDecode, Kind: KindFraming})
}

func TestHasKind(t *testing.T) {
	inner := EndOfStream(PhaseDecode, 8, io.EOF)
	outer := Wrap(PhaseDecode, KindIO, inner, "reading header")

	require.True(t, HasKind(outer, KindIO))
	require.True(t, HasKind(outer, KindEndOfStream))
	require.True(t, HasKind(fmt.Errorf("frame: %w", outer), KindEndOfStream))
	require.False(t, HasKind(outer, KindFraming))
	require.False(t, HasKind(io.EOF, KindEndOfStream))
	require.False(t, HasKind(nil, KindEndOfStream))
}

func TestPrefix(t *testing.T) {
	err := UnknownTag(nil, 'x')
	Prefix(err, "[3]")
	Prefix(err, "args")

	require.Equal(t, []string{"args", "[3]"}, err.Path)
	require.Contains(t, err.Error(), "at args[3]")

	plain := errors.New("plain")
	require.Equal(t, plain, Prefix(plain, "key"))
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseEncode, KindOverflow).
		Path("headers", "name").
		GoType("string").
		WireType("shortstr").
		Value(300).
		Cause(cause).
		Detail("length %d exceeds %d", 300, 255).
		Build()

	require.Equal(t, PhaseEncode, err.Phase)
	require.Equal(t, KindOverflow, err.Kind)
	require.Equal(t, []string{"headers", "name"}, err.Path)
	require.Equal(t, "string", err.GoType)
	require.Equal(t, "shortstr", err.WireType)
	require.Equal(t, 300, err.Value)
	require.ErrorIs(t, err, cause)
	require.Equal(t, "length 300 exceeds 255", err.Detail)
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("EndOfStream", func(t *testing.T) {
		err := EndOfStream(PhaseDecode, 2, io.EOF)
		require.Equal(t, KindEndOfStream, err.Kind)
		require.Equal(t, 2, err.Value)
		require.Contains(t, err.Detail, "2 bytes")
	})

	t.Run("UnknownTag", func(t *testing.T) {
		err := UnknownTag([]string{"args"}, 'Z')
		require.Equal(t, KindUnknownTag, err.Kind)
		require.Equal(t, PhaseDecode, err.Phase)
		require.Equal(t, byte('Z'), err.Value)
		require.Contains(t, err.Detail, "0x5a")
	})

	t.Run("FramingMismatch", func(t *testing.T) {
		err := FramingMismatch(nil, "field array", 10, 12)
		require.Equal(t, KindFraming, err.Kind)
		require.Equal(t, "field array", err.WireType)
		require.Contains(t, err.Detail, "declared size 10, consumed 12")
	})

	t.Run("InvalidArgument", func(t *testing.T) {
		err := InvalidArgument(PhaseEncode, nil, "float64", "decimal")
		require.Equal(t, KindInvalidArgument, err.Kind)
		require.Equal(t, "float64", err.GoType)
		require.Equal(t, "decimal", err.WireType)
	})

	t.Run("Overflow", func(t *testing.T) {
		err := Overflow(PhaseEncode, []string{"val"}, 300, "octet")
		require.Equal(t, KindOverflow, err.Kind)
		require.Equal(t, 300, err.Value)
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseEncode, "chan int")
		require.Equal(t, KindUnsupported, err.Kind)
	})

	t.Run("IO", func(t *testing.T) {
		cause := errors.New("reset by peer")
		err := IO(PhaseEncode, cause)
		require.Equal(t, KindIO, err.Kind)
		require.ErrorIs(t, err, cause)
	})

	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseConfig, "format must be tree or yaml")
		require.Equal(t, KindInvalidInput, err.Kind)
		require.Equal(t, PhaseConfig, err.Phase)
	})
}
