package benchtable

import (
	"fmt"
	"strings"
)

// Param pins a column to a value when selecting rows.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered set of column filters. Later values for the same key
// replace earlier ones.
type Params []Param

// ParseParameter parses "key: value". Spaces are removed and the string is
// split at the last colon, so keys may themselves contain colons.
func ParseParameter(s string) (Param, error) {
	s = strings.ReplaceAll(s, " ", "")
	i := strings.LastIndex(s, ":")
	if i <= 0 || i == len(s)-1 {
		return Param{}, fmt.Errorf("parameter %q must have the form key:value", s)
	}
	return Param{Key: s[:i], Value: s[i+1:]}, nil
}

// Set adds or replaces the value for key.
func (ps Params) Set(key, value string) Params {
	for i := range ps {
		if ps[i].Key == key {
			ps[i].Value = value
			return ps
		}
	}
	return append(ps, Param{Key: key, Value: value})
}

// String renders the filters like a mapping, in insertion order.
func (ps Params) String() string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = fmt.Sprintf("%s: %s", p.Key, p.Value)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ParamFlag collects repeated -p flags.
type ParamFlag struct {
	Params Params
}

func (f *ParamFlag) String() string {
	return f.Params.String()
}

// Set implements flag.Value.
func (f *ParamFlag) Set(s string) error {
	p, err := ParseParameter(s)
	if err != nil {
		return err
	}
	f.Params = f.Params.Set(p.Key, p.Value)
	return nil
}
