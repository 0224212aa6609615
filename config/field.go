package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/nextep-cli/nextep/constant"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Field describes one configuration key.
type Field struct {
	Key         string
	Value       any
	Description string

	// Allowed, when set, lists the only accepted string values.
	Allowed []string

	// Min is the lowest accepted value of an int field.
	Min mo.Option[int]
}

// Env returns the environment variable that overrides the field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.Nextep + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Type names the type of the default value.
func (f *Field) Type() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	default:
		return fmt.Sprintf("%T", f.Value)
	}
}

// Parse converts raw into a value of the field type and checks it against
// the field constraints. String values of a field with Allowed are lowercased.
func (f *Field) Parse(raw string) (any, error) {
	raw = strings.TrimSpace(raw)

	switch f.Value.(type) {
	case int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s expects an integer, got %q", f.Key, raw)
		}
		if lowest, ok := f.Min.Get(); ok && n < lowest {
			return nil, fmt.Errorf("%s must be at least %d, got %d", f.Key, lowest, n)
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%s expects true or false, got %q", f.Key, raw)
		}
		return b, nil
	}

	if len(f.Allowed) > 0 {
		value := strings.ToLower(raw)
		if !lo.Contains(f.Allowed, value) {
			return nil, fmt.Errorf("%s expects one of %s, got %q", f.Key, strings.Join(f.Allowed, ", "), raw)
		}
		return value, nil
	}

	return raw, nil
}

// Pretty renders the field for `config info`.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string   `json:"key"`
		Value       any      `json:"value"`
		Default     any      `json:"default"`
		Description string   `json:"description"`
		Type        string   `json:"type"`
		Env         string   `json:"env"`
		Allowed     []string `json:"allowed,omitempty"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.Type(),
		Env:         f.Env(),
		Allowed:     f.Allowed,
	})
}
