package avatar

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// FlagCatalog maps user-typed flag names (and their aliases) to canonical
// flag asset keys. Loaded once at startup from a JSON resource; lookups are
// read-only afterwards.
type FlagCatalog struct {
	options map[string]string
}

// LoadFlagCatalog reads a JSON object of {"alias": "FlagName", ...}.
func LoadFlagCatalog(path string) (*FlagCatalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read flag options: %w", err)
	}
	var options map[string]string
	if err := json.Unmarshal(raw, &options); err != nil {
		return nil, fmt.Errorf("parse flag options: %w", err)
	}
	return NewFlagCatalog(options), nil
}

func NewFlagCatalog(options map[string]string) *FlagCatalog {
	lowered := make(map[string]string, len(options))
	for alias, flag := range options {
		lowered[strings.ToLower(alias)] = flag
	}
	return &FlagCatalog{options: lowered}
}

// Lookup resolves a user-typed option to a flag asset key.
func (c *FlagCatalog) Lookup(option string) (string, bool) {
	flag, ok := c.options[strings.ToLower(option)]
	return flag, ok
}

// Names returns the sorted, de-duplicated canonical flag names.
func (c *FlagCatalog) Names() []string {
	seen := map[string]struct{}{}
	var names []string
	for _, flag := range c.options {
		if _, dup := seen[flag]; dup {
			continue
		}
		seen[flag] = struct{}{}
		names = append(names, flag)
	}
	sort.Strings(names)
	return names
}
