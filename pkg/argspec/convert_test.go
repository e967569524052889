package argspec

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		garbage bool
	}{
		{"12", 12, false},
		{"-7", -7, false},
		{"+3", 3, false},
		{"0x1f", 31, false},
		{"010", 8, false},
		{"12abc", 0, true},
		{"1.5", 0, true},
		{"", 0, true},
		{" 1", 0, true},
		{"1_000", 0, true},
		{"0x_1f", 0, true},
		{"99999999999999999999999", math.MaxInt, false},
		{"-99999999999999999999999", math.MinInt, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseInt(tt.in)
			if tt.garbage {
				require.NotNil(t, err)
				require.Equal(t, ErrGarbage, err.Kind)
				require.Equal(t, fmt.Sprintf("Garbage at end of number: '%s'", tt.in), err.Message)
				return
			}
			require.Nil(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseFloat(t *testing.T) {
	f, err := parseFloat("2.5", 32)
	require.Nil(t, err)
	require.Equal(t, 2.5, f)

	f, err = parseFloat("1e400", 64)
	require.Nil(t, err)
	require.True(t, math.IsInf(f, 1))

	_, err = parseFloat("2.5f", 32)
	require.NotNil(t, err)
	require.Equal(t, ErrGarbage, err.Kind)

	_, err = parseFloat("1_000.5", 64)
	require.NotNil(t, err)
	require.Equal(t, ErrGarbage, err.Kind)
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{"on", true},
		{"Off", false},
		{"false", false},
		{"0", false},
		{"2", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseBool(tt.in)
			require.Nil(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := parseBool("yes")
	require.NotNil(t, err)
	require.Equal(t, ErrGarbage, err.Kind)
}

func TestErrorKinds(t *testing.T) {
	err := error(newError(ErrBadEnum, "Unknown enum 'x' of type y"))

	require.Equal(t, ErrBadEnum, KindOf(err))
	require.True(t, errors.Is(fmt.Errorf("wrapped: %w", err), &Error{Kind: ErrBadEnum}))
	require.False(t, errors.Is(err, &Error{Kind: ErrGarbage}))
	require.Equal(t, ErrNone, KindOf(nil))
	require.Equal(t, ErrBadSpec, KindOf(errors.New("other")))
	require.False(t, IsHelp(nil))

	require.Equal(t, "not enough arguments", (&Error{Kind: ErrNotEnoughArgs}).Error())
	require.Equal(t, "ErrorKind(99)", ErrorKind(99).String())
	require.False(t, ErrGarbage.Construction())
	require.True(t, ErrBinding.Construction())
}
