package types

import (
	"encoding/json"
	"fmt"

	"github.com/Oliyy/karabiner-cli/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// DocumentIndent is the indentation used when writing karabiner.json.
// It matches what Karabiner-Elements itself writes.
const DocumentIndent = "    "

// Configuration is the root karabiner.json document.
type Configuration struct {
	Profiles []Profile `json:"profiles"`

	// Extra holds top-level sections such as "global".
	Extra Payload `json:"-"`

	// raw is the document as last read from or written to disk. Saving
	// patches it instead of re-encoding the whole tree.
	raw []byte
}

// Profile is a named, independently selectable bundle of remap rules.
type Profile struct {
	Name                 string                `json:"name"`
	Selected             bool                  `json:"selected"`
	ComplexModifications *ComplexModifications `json:"complex_modifications,omitempty"`

	// Extra holds devices, simple_modifications, virtual_hid_keyboard and
	// any other profile section.
	Extra Payload `json:"-"`

	// baseRules is the number of rules present in raw for this profile.
	baseRules int
	dirty     bool
}

// ComplexModifications wraps the ordered rule list of a profile.
type ComplexModifications struct {
	Rules []Rule `json:"rules"`

	// Extra holds "parameters" and unknown fields.
	Extra Payload `json:"-"`
}

// Decode validates and decodes a karabiner.json document.
func Decode(raw []byte) (*Configuration, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}

	var cfg Configuration
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidSchema, "malformed karabiner configuration")
	}
	cfg.raw = append([]byte(nil), raw...)
	return &cfg, nil
}

// Validate checks the structural minimum karabiner-cli relies on: the
// document is a JSON object with a "profiles" array. Nothing else is
// inspected.
func Validate(raw []byte) error {
	if !gjson.ValidBytes(raw) {
		return errors.New(errors.ErrInvalidSchema, "karabiner configuration is not valid JSON")
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return errors.New(errors.ErrInvalidSchema, "karabiner configuration root is not an object")
	}
	profiles := root.Get("profiles")
	if !profiles.Exists() || !profiles.IsArray() {
		return errors.New(errors.ErrInvalidSchema, `invalid Karabiner configuration: "profiles" array is missing or not an array`)
	}
	return nil
}

// Validate checks an in-memory configuration the same way Validate checks
// a raw document.
func (c *Configuration) Validate() error {
	if c == nil || c.Profiles == nil {
		return errors.New(errors.ErrInvalidSchema, `invalid Karabiner configuration: "profiles" array is missing or not an array`)
	}
	return nil
}

// Document returns the bytes to write for the current state of c.
//
// When c was decoded from a document, only the rule lists of profiles that
// gained rules are touched: new rules are appended to the original array
// and every other byte region keeps its content. The result is re-indented
// with DocumentIndent, preserving key order.
func (c *Configuration) Document() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.raw == nil {
		doc, err := json.Marshal(c)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
		}
		return prettyDocument(doc), nil
	}

	doc := append([]byte(nil), c.raw...)
	for i := range c.Profiles {
		p := &c.Profiles[i]
		if !p.dirty {
			continue
		}
		var err error
		doc, err = p.patch(doc, i)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "failed to update profile %q", p.Name)
		}
	}
	return prettyDocument(doc), nil
}

// Commit records doc as the persisted state of c. It is called after doc
// has been written successfully.
func (c *Configuration) Commit(doc []byte) {
	c.raw = append([]byte(nil), doc...)
	for i := range c.Profiles {
		c.Profiles[i].baseRules = len(c.Profiles[i].Rules())
		c.Profiles[i].dirty = false
	}
}

// Raw returns the document as last loaded or saved, or nil.
func (c *Configuration) Raw() []byte {
	return c.raw
}

func prettyDocument(doc []byte) []byte {
	return pretty.PrettyOptions(doc, &pretty.Options{
		Width:    0,
		Prefix:   "",
		Indent:   DocumentIndent,
		SortKeys: false,
	})
}

// UnmarshalJSON implements json.Unmarshaler
func (c *Configuration) UnmarshalJSON(data []byte) error {
	type plain Configuration
	extra, err := decodeObject(data, (*plain)(c), "profiles")
	if err != nil {
		return err
	}
	c.Extra = extra
	return nil
}

// MarshalJSON implements json.Marshaler
func (c Configuration) MarshalJSON() ([]byte, error) {
	type plain Configuration
	return encodeObject(plain(c), c.Extra)
}

// Rules returns the profile's rules without creating the container.
func (p *Profile) Rules() []Rule {
	if p.ComplexModifications == nil {
		return nil
	}
	return p.ComplexModifications.Rules
}

// EnsureComplexModifications returns the profile's rule container, creating
// an empty one first if the profile has none.
func (p *Profile) EnsureComplexModifications() *ComplexModifications {
	if p.ComplexModifications == nil {
		p.ComplexModifications = &ComplexModifications{}
	}
	if p.ComplexModifications.Rules == nil {
		p.ComplexModifications.Rules = []Rule{}
	}
	return p.ComplexModifications
}

// MarkDirty flags the profile's rule list as changed since the last save.
func (p *Profile) MarkDirty() {
	p.dirty = true
}

// Dirty reports whether the profile has unsaved rule changes.
func (p *Profile) Dirty() bool {
	return p.dirty
}

// patch applies the profile's new rules to doc, where the profile lives at
// profiles[index].
func (p *Profile) patch(doc []byte, index int) ([]byte, error) {
	base := fmt.Sprintf("profiles.%d.complex_modifications", index)
	existing := gjson.GetBytes(doc, base)

	if !existing.Exists() || !existing.IsObject() {
		block, err := json.Marshal(p.ComplexModifications)
		if err != nil {
			return nil, err
		}
		return sjson.SetRawBytes(doc, base, block)
	}

	rules := gjson.GetBytes(doc, base+".rules")
	if !rules.Exists() || !rules.IsArray() || int(rules.Get("#").Int()) != p.baseRules {
		block, err := json.Marshal(p.Rules())
		if err != nil {
			return nil, err
		}
		return sjson.SetRawBytes(doc, base+".rules", block)
	}

	for _, rule := range p.Rules()[p.baseRules:] {
		encoded, err := json.Marshal(rule)
		if err != nil {
			return nil, err
		}
		doc, err = sjson.SetRawBytes(doc, base+".rules.-1", encoded)
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// UnmarshalJSON implements json.Unmarshaler
func (p *Profile) UnmarshalJSON(data []byte) error {
	type plain Profile
	extra, err := decodeObject(data, (*plain)(p), "name", "selected", "complex_modifications")
	if err != nil {
		return err
	}
	p.Extra = extra
	p.baseRules = len(p.Rules())
	return nil
}

// MarshalJSON implements json.Marshaler
func (p Profile) MarshalJSON() ([]byte, error) {
	type plain Profile
	return encodeObject(plain(p), p.Extra)
}

// UnmarshalJSON implements json.Unmarshaler
func (m *ComplexModifications) UnmarshalJSON(data []byte) error {
	type plain ComplexModifications
	extra, err := decodeObject(data, (*plain)(m), "rules")
	if err != nil {
		return err
	}
	m.Extra = extra
	return nil
}

// MarshalJSON implements json.Marshaler
func (m ComplexModifications) MarshalJSON() ([]byte, error) {
	type plain ComplexModifications
	if m.Rules == nil {
		m.Rules = []Rule{}
	}
	return encodeObject(plain(m), m.Extra)
}
