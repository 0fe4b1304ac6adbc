package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/amqp-codec/codec"
)

// palette styles the parts of a tree line.
type palette struct {
	key   func(...string) string
	kind  func(...string) string
	value func(...string) string
}

func plain(s ...string) string {
	return strings.Join(s, " ")
}

var plainPalette = palette{key: plain, kind: plain, value: plain}

// renderTree prints one line per value, nesting container members by two
// spaces.
func renderTree(values []any, p palette) string {
	var b strings.Builder
	for _, v := range values {
		writeNode(&b, p, "", 0, v)
	}
	return b.String()
}

func writeNode(b *strings.Builder, p palette, label string, depth int, v any) {
	b.WriteString(strings.Repeat("  ", depth))
	if label != "" {
		b.WriteString(p.key(label))
		b.WriteString(" ")
	}

	switch v := v.(type) {
	case codec.Table:
		b.WriteString(p.kind(kindName(v)))
		fmt.Fprintf(b, " (%s)\n", count(len(v), "entry", "entries"))
		for _, e := range v {
			writeNode(b, p, e.Key+":", depth+1, e.Value)
		}
	case codec.Array:
		b.WriteString(p.kind(kindName(v)))
		fmt.Fprintf(b, " (%s)\n", count(len(v), "item", "items"))
		for i, e := range v {
			writeNode(b, p, "["+strconv.Itoa(i)+"]", depth+1, e)
		}
	default:
		b.WriteString(p.kind(kindName(v)))
		if s := scalarText(v); s != "" {
			b.WriteString(" ")
			b.WriteString(p.value(s))
		}
		b.WriteString("\n")
	}
}

func count(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return strconv.Itoa(n) + " " + many
}

// kindName names the wire type a decoded value came from.
func kindName(v any) string {
	switch v.(type) {
	case bool:
		return codec.KindBoolean.String()
	case int8:
		return codec.KindShortShortInt.String()
	case uint8:
		return codec.KindShortShortUint.String()
	case int16:
		return codec.KindShortInt.String()
	case uint16:
		return codec.KindShortUint.String()
	case int32:
		return codec.KindLongInt.String()
	case uint32:
		return codec.KindLongUint.String()
	case int64:
		return codec.KindLongLongInt.String()
	case uint64:
		return codec.KindLongLongUint.String()
	case float32:
		return codec.KindFloat.String()
	case float64:
		return codec.KindDouble.String()
	case decimal.Decimal:
		return codec.KindDecimal.String()
	case codec.ShortString:
		return codec.KindShortString.String()
	case string:
		return codec.KindLongString.String()
	case codec.Array:
		return codec.KindFieldArray.String()
	case codec.Timestamp:
		return codec.KindTimestamp.String()
	case codec.Table:
		return codec.KindFieldTable.String()
	case []bool:
		return codec.KindBit.String() + "s"
	case nil:
		return codec.KindVoid.String()
	}
	return fmt.Sprintf("%T", v)
}

func scalarText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return strconv.Quote(v)
	case codec.ShortString:
		return strconv.Quote(string(v))
	case decimal.Decimal:
		return v.String()
	case codec.Timestamp:
		return fmt.Sprintf("%d (%s)", uint64(v), v.Time().Format(time.RFC3339))
	case []bool:
		var b strings.Builder
		for _, bit := range v {
			if bit {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		return b.String()
	}
	return fmt.Sprint(v)
}

// renderYAML writes each value as its own YAML document. Table entry order
// is preserved.
func renderYAML(w io.Writer, values []any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, v := range values {
		n, err := yamlNode(v)
		if err != nil {
			return err
		}
		if err := enc.Encode(n); err != nil {
			return err
		}
	}
	return enc.Close()
}

func yamlNode(v any) (*yaml.Node, error) {
	switch v := v.(type) {
	case codec.Table:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, e := range v {
			val, err := yamlNode(e.Value)
			if err != nil {
				return nil, err
			}
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key}
			n.Content = append(n.Content, key, val)
		}
		return n, nil
	case codec.Array:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range v {
			val, err := yamlNode(e)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, val)
		}
		return n, nil
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case decimal.Decimal:
		return &yaml.Node{Kind: yaml.ScalarNode, Value: v.String()}, nil
	case codec.ShortString:
		return yamlNode(string(v))
	case codec.Timestamp:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!timestamp", Value: v.Time().Format(time.RFC3339)}, nil
	}

	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return n, nil
}

// summary reports how many values were decoded from how much input.
func summary(values int, read, total int64) string {
	s := fmt.Sprintf("%s, %s", count(values, "value", "values"), humanize.Bytes(uint64(read)))
	if read < total {
		s += fmt.Sprintf(" of %s", humanize.Bytes(uint64(total)))
	}
	return s + " decoded"
}
