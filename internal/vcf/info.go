package vcf

import "strings"

// infoField is a single INFO entry. Flag entries carry no value.
type infoField struct {
	key   string
	value string
	flag  bool
}

// Info is the INFO column of a record: a key-value mapping that
// preserves insertion order so records serialize deterministically.
type Info struct {
	fields []infoField
	index  map[string]int
}

// NewInfo returns an empty INFO mapping.
func NewInfo() *Info {
	return &Info{index: make(map[string]int)}
}

// ParseInfo parses the raw INFO column. "." yields an empty mapping.
// Entries without "=" are flags.
func ParseInfo(raw string) *Info {
	info := NewInfo()
	if raw == "." || raw == "" {
		return info
	}

	for _, kv := range strings.Split(raw, ";") {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) == 2 {
			info.Set(parts[0], parts[1])
		} else {
			info.SetFlag(parts[0])
		}
	}

	return info
}

// Has reports whether a key is declared.
func (i *Info) Has(key string) bool {
	_, ok := i.index[key]
	return ok
}

// Get returns the value for a key. Flags return "" with ok true.
func (i *Info) Get(key string) (string, bool) {
	idx, ok := i.index[key]
	if !ok {
		return "", false
	}
	return i.fields[idx].value, true
}

// Set declares a key with a value, or overwrites the value of an
// existing key in place. A key is declared at most once.
func (i *Info) Set(key, value string) {
	if idx, ok := i.index[key]; ok {
		i.fields[idx].value = value
		i.fields[idx].flag = false
		return
	}
	i.index[key] = len(i.fields)
	i.fields = append(i.fields, infoField{key: key, value: value})
}

// SetFlag declares a flag key if absent and marks it set. Calling it
// again for the same key is a no-op, so a key is never declared twice
// regardless of call order.
func (i *Info) SetFlag(key string) {
	if idx, ok := i.index[key]; ok {
		i.fields[idx].flag = true
		return
	}
	i.index[key] = len(i.fields)
	i.fields = append(i.fields, infoField{key: key, flag: true})
}

// Len returns the number of declared keys.
func (i *Info) Len() int {
	return len(i.fields)
}

// String renders the INFO column in insertion order. Empty renders ".".
func (i *Info) String() string {
	if len(i.fields) == 0 {
		return "."
	}

	var b strings.Builder
	for n, f := range i.fields {
		if n > 0 {
			b.WriteByte(';')
		}
		b.WriteString(f.key)
		if !f.flag {
			b.WriteByte('=')
			b.WriteString(f.value)
		}
	}
	return b.String()
}
