package config

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomAsBool(t *testing.T) {
	tests := []struct {
		name        string
		atom        *Atom
		expected    bool
		expectError bool
	}{
		{name: "bool passthrough", atom: BoolAtom(true), expected: true},
		{name: "int one", atom: IntAtom(1), expected: true},
		{name: "int zero", atom: IntAtom(0), expected: false},
		{name: "int out of range", atom: IntAtom(2), expectError: true},
		{name: "float one", atom: FloatAtom(1), expected: true},
		{name: "float fraction", atom: FloatAtom(0.5), expectError: true},
		{name: "string true", atom: StringAtom("true"), expected: true},
		{name: "string numeric", atom: StringAtom("0"), expected: false},
		{name: "string garbage", atom: StringAtom("yes please"), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.atom.AsBool()
			if tt.expectError {
				require.Error(t, err)
				var ce *CoercionError
				assert.ErrorAs(t, err, &ce)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestAtomAsInt(t *testing.T) {
	tests := []struct {
		name        string
		atom        *Atom
		expected    int64
		expectError bool
	}{
		{name: "int passthrough", atom: IntAtom(-42), expected: -42},
		{name: "bool true", atom: BoolAtom(true), expected: 1},
		{name: "bool false", atom: BoolAtom(false), expected: 0},
		{name: "float truncates", atom: FloatAtom(3.9), expected: 3},
		{name: "negative float truncates", atom: FloatAtom(-3.9), expected: -3},
		{name: "float too large", atom: FloatAtom(1e300), expectError: true},
		{name: "float at min int64", atom: FloatAtom(math.MinInt64), expected: math.MinInt64},
		{name: "float below min int64", atom: FloatAtom(-1e19), expectError: true},
		{name: "string decimal", atom: StringAtom("42"), expected: 42},
		{name: "string float", atom: StringAtom("4.2"), expectError: true},
		{name: "string garbage", atom: StringAtom("x"), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.atom.AsInt()
			if tt.expectError {
				require.Error(t, err)
				var ce *CoercionError
				assert.ErrorAs(t, err, &ce)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestAtomAsFloat(t *testing.T) {
	tests := []struct {
		name        string
		atom        *Atom
		expected    float64
		expectError bool
	}{
		{name: "float passthrough", atom: FloatAtom(1.5), expected: 1.5},
		{name: "int widens", atom: IntAtom(7), expected: 7},
		{name: "bool true", atom: BoolAtom(true), expected: 1},
		{name: "string decimal", atom: StringAtom("2.25"), expected: 2.25},
		{name: "string exponent", atom: StringAtom("1e3"), expected: 1000},
		{name: "string garbage", atom: StringAtom("fast"), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.atom.AsFloat()
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestAtomAsString(t *testing.T) {
	tests := []struct {
		name     string
		atom     *Atom
		expected string
	}{
		{name: "string passthrough", atom: StringAtom("web"), expected: "web"},
		{name: "int", atom: IntAtom(8080), expected: "8080"},
		{name: "bool", atom: BoolAtom(false), expected: "false"},
		{name: "float", atom: FloatAtom(0.5), expected: "0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.atom.AsString()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestAtomGenericAs(t *testing.T) {
	i, err := As[int64](StringAtom("42"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), i)

	s, err := As[string](FloatAtom(1.5))
	require.NoError(t, err)
	assert.Equal(t, "1.5", s)

	b, err := As[bool](IntAtom(1))
	require.NoError(t, err)
	assert.True(t, b)

	_, err = As[bool](IntAtom(7))
	require.Error(t, err)
	var ce *CoercionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, IntKind, ce.From)
	assert.Equal(t, BoolKind, ce.To)
}

func TestValueKindString(t *testing.T) {
	assert.Equal(t, "bool", BoolKind.String())
	assert.Equal(t, "integer", IntKind.String())
	assert.Equal(t, "float", FloatKind.String())
	assert.Equal(t, "string", StringKind.String())
}
