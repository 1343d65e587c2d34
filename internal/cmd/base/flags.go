package base

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"strings"
)

// FlagSet wraps a flag.FlagSet with help text rendering.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet returns a FlagSet that reports parse errors to the caller
// instead of printing usage.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.SetOutput(io.Discard)
	f.Usage = func() {}
	return &FlagSet{FlagSet: f}
}

// Help returns the options section of a command's help text.
func (f *FlagSet) Help() string {
	var buf bytes.Buffer
	f.VisitAll(func(fl *flag.Flag) {
		if buf.Len() == 0 {
			buf.WriteString("\n\nOptions:\n")
		}
		name, usage := flag.UnquoteUsage(fl)
		fmt.Fprintf(&buf, "\n  -%s", fl.Name)
		if name != "" {
			fmt.Fprintf(&buf, "=<%s>", name)
		}
		if fl.DefValue != "" && fl.DefValue != "false" {
			fmt.Fprintf(&buf, " (default: %s)", fl.DefValue)
		}
		fmt.Fprintf(&buf, "\n    %s\n", usage)
	})
	return strings.TrimRight(buf.String(), "\n")
}

// KeyValueFlag collects repeated key=value arguments in order.
type KeyValueFlag struct {
	Keys   []string
	Values []string
}

func (f *KeyValueFlag) String() string {
	pairs := make([]string, len(f.Keys))
	for i := range f.Keys {
		pairs[i] = f.Keys[i] + "=" + f.Values[i]
	}
	return strings.Join(pairs, ",")
}

func (f *KeyValueFlag) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok || k == "" {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	f.Keys = append(f.Keys, k)
	f.Values = append(f.Values, v)
	return nil
}
