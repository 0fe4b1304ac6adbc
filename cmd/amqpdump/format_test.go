package main

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/amqp-codec/codec"
)

func TestRenderTree(t *testing.T) {
	values := []any{
		codec.Table{
			{Key: "one", Value: int32(1)},
			{Key: "name", Value: "x"},
			{Key: "tags", Value: codec.Array{codec.ShortString("a"), nil}},
			{Key: "price", Value: decimal.New(314, -2)},
			{Key: "at", Value: codec.Timestamp(1700000000)},
		},
		[]bool{true, false},
	}

	want := "field-table (5 entries)\n" +
		"  one: long-int 1\n" +
		"  name: long-string \"x\"\n" +
		"  tags: field-array (2 items)\n" +
		"    [0] short-string \"a\"\n" +
		"    [1] void\n" +
		"  price: decimal-value 3.14\n" +
		"  at: timestamp 1700000000 (2023-11-14T22:13:20Z)\n" +
		"bits 10\n"

	require.Equal(t, want, renderTree(values, plainPalette))
}

func TestRenderTreeEmptyContainers(t *testing.T) {
	got := renderTree([]any{codec.Table{}, codec.Array{uint8(1)}}, plainPalette)
	require.Equal(t, "field-table (0 entries)\nfield-array (1 item)\n  [0] short-short-uint 1\n", got)
}

func TestRenderYAML(t *testing.T) {
	values := []any{codec.Table{
		{Key: "one", Value: int32(1)},
		{Key: "name", Value: codec.ShortString("x")},
		{Key: "price", Value: decimal.New(15, -1)},
		{Key: "list", Value: codec.Array{true, nil}},
		{Key: "nested", Value: codec.Table{{Key: "k", Value: uint64(9)}}},
	}}

	var buf bytes.Buffer
	require.NoError(t, renderYAML(&buf, values))
	require.Contains(t, buf.String(), "one: 1\nname: x\nprice: 1.5\n")

	var back map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	require.Equal(t, map[string]any{
		"one":    1,
		"name":   "x",
		"price":  1.5,
		"list":   []any{true, nil},
		"nested": map[string]any{"k": 9},
	}, back)
}

func TestRenderYAMLMultipleDocuments(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderYAML(&buf, []any{"a", int8(-1)}))
	require.Equal(t, "a\n---\n-1\n", buf.String())
}

func TestSummary(t *testing.T) {
	require.Equal(t, "1 value, 13 B decoded", summary(1, 13, 13))
	require.Equal(t, "0 values, 0 B of 5 B decoded", summary(0, 0, 5))
	require.Equal(t, "3 values, 2.0 kB decoded", summary(3, 2000, 2000))
}
