package types

import (
	"encoding/json"
	"strings"
)

const (
	// ManipulatorBasic is the only manipulator type karabiner-cli creates.
	ManipulatorBasic = "basic"

	// ConditionDeviceIf scopes a manipulator to matching devices.
	ConditionDeviceIf = "device_if"

	// ModifierAny as an optional modifier lets the rule fire regardless
	// of which other modifiers are held.
	ModifierAny = "any"
)

// Rule is a described group of manipulators. Rules are evaluated in order.
type Rule struct {
	Description  string        `json:"description"`
	Manipulators []Manipulator `json:"manipulators"`

	Extra Payload `json:"-"`
}

// Manipulator is a single from/to transform plus its scoping conditions.
type Manipulator struct {
	Type       string      `json:"type"`
	From       *From       `json:"from,omitempty"`
	To         []ToEvent   `json:"to,omitempty"`
	Conditions []Condition `json:"conditions,omitempty"`

	// Extra holds to_if_alone, to_if_held_down, to_after_key_up,
	// parameters and anything else.
	Extra Payload `json:"-"`
}

// From describes the input event a manipulator reacts to.
type From struct {
	KeyCode         string     `json:"key_code,omitempty"`
	ConsumerKeyCode string     `json:"consumer_key_code,omitempty"`
	PointingButton  string     `json:"pointing_button,omitempty"`
	Any             string     `json:"any,omitempty"`
	Modifiers       *Modifiers `json:"modifiers,omitempty"`

	// Extra holds simultaneous, simultaneous_options and unknown fields.
	Extra Payload `json:"-"`
}

// Modifiers constrains which modifiers must or may be held for a From event.
type Modifiers struct {
	Mandatory ModifierList `json:"mandatory,omitempty"`
	Optional  ModifierList `json:"optional,omitempty"`
}

// ModifierList is a list of modifier names. Karabiner also accepts a single
// modifier written as a plain string.
type ModifierList []string

// UnmarshalJSON implements json.Unmarshaler
func (l *ModifierList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = ModifierList{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*l = list
	return nil
}

// ToEvent is an output action with an optional modifier set.
type ToEvent struct {
	KeyCode         string       `json:"key_code,omitempty"`
	ConsumerKeyCode string       `json:"consumer_key_code,omitempty"`
	PointingButton  string       `json:"pointing_button,omitempty"`
	ShellCommand    string       `json:"shell_command,omitempty"`
	Modifiers       ModifierList `json:"modifiers,omitempty"`

	// Extra holds set_variable, mouse_key, lazy, repeat and the other
	// side-effect fields.
	Extra Payload `json:"-"`
}

// Condition scopes a manipulator. Only device conditions are interpreted.
type Condition struct {
	Type        string             `json:"type"`
	Identifiers []DeviceIdentifier `json:"identifiers,omitempty"`

	Extra Payload `json:"-"`
}

// DeviceIdentifier matches a physical device by vendor and product ID.
type DeviceIdentifier struct {
	VendorID    int    `json:"vendor_id,omitempty"`
	ProductID   int    `json:"product_id,omitempty"`
	Description string `json:"description,omitempty"`

	// Extra holds is_keyboard, location_id and similar flags.
	Extra Payload `json:"-"`
}

// KeyName returns the name of the input key or button, or "" if the event
// is not a key event.
func (f *From) KeyName() string {
	if f == nil {
		return ""
	}
	switch {
	case f.KeyCode != "":
		return f.KeyCode
	case f.ConsumerKeyCode != "":
		return f.ConsumerKeyCode
	case f.PointingButton != "":
		return f.PointingButton
	}
	return ""
}

// AcceptsAnyModifier reports whether the optional modifiers include "any".
func (f *From) AcceptsAnyModifier() bool {
	if f == nil || f.Modifiers == nil {
		return false
	}
	for _, m := range f.Modifiers.Optional {
		if m == ModifierAny {
			return true
		}
	}
	return false
}

// Action returns a short name for the primary action of the event.
func (e ToEvent) Action() string {
	switch {
	case e.KeyCode != "":
		return e.KeyCode
	case e.ConsumerKeyCode != "":
		return e.ConsumerKeyCode
	case e.PointingButton != "":
		return e.PointingButton
	case e.ShellCommand != "":
		return "shell: " + strings.TrimSpace(e.ShellCommand)
	}
	return ""
}

// DeviceIdentifiers returns the identifiers of every device_if condition on
// the manipulator.
func (m *Manipulator) DeviceIdentifiers() []DeviceIdentifier {
	var ids []DeviceIdentifier
	for _, c := range m.Conditions {
		if c.Type == ConditionDeviceIf {
			ids = append(ids, c.Identifiers...)
		}
	}
	return ids
}

// UnmarshalJSON implements json.Unmarshaler
func (r *Rule) UnmarshalJSON(data []byte) error {
	type plain Rule
	extra, err := decodeObject(data, (*plain)(r), "description", "manipulators")
	if err != nil {
		return err
	}
	r.Extra = extra
	return nil
}

// MarshalJSON implements json.Marshaler
func (r Rule) MarshalJSON() ([]byte, error) {
	type plain Rule
	if r.Manipulators == nil {
		r.Manipulators = []Manipulator{}
	}
	return encodeObject(plain(r), r.Extra)
}

// UnmarshalJSON implements json.Unmarshaler
func (m *Manipulator) UnmarshalJSON(data []byte) error {
	type plain Manipulator
	extra, err := decodeObject(data, (*plain)(m), "type", "from", "to", "conditions")
	if err != nil {
		return err
	}
	m.Extra = extra
	return nil
}

// MarshalJSON implements json.Marshaler
func (m Manipulator) MarshalJSON() ([]byte, error) {
	type plain Manipulator
	return encodeObject(plain(m), m.Extra)
}

// UnmarshalJSON implements json.Unmarshaler
func (f *From) UnmarshalJSON(data []byte) error {
	type plain From
	extra, err := decodeObject(data, (*plain)(f), "key_code", "consumer_key_code", "pointing_button", "any", "modifiers")
	if err != nil {
		return err
	}
	f.Extra = extra
	return nil
}

// MarshalJSON implements json.Marshaler
func (f From) MarshalJSON() ([]byte, error) {
	type plain From
	return encodeObject(plain(f), f.Extra)
}

// UnmarshalJSON implements json.Unmarshaler
func (e *ToEvent) UnmarshalJSON(data []byte) error {
	type plain ToEvent
	extra, err := decodeObject(data, (*plain)(e), "key_code", "consumer_key_code", "pointing_button", "shell_command", "modifiers")
	if err != nil {
		return err
	}
	e.Extra = extra
	return nil
}

// MarshalJSON implements json.Marshaler
func (e ToEvent) MarshalJSON() ([]byte, error) {
	type plain ToEvent
	return encodeObject(plain(e), e.Extra)
}

// UnmarshalJSON implements json.Unmarshaler
func (c *Condition) UnmarshalJSON(data []byte) error {
	type plain Condition
	extra, err := decodeObject(data, (*plain)(c), "type", "identifiers")
	if err != nil {
		return err
	}
	c.Extra = extra
	return nil
}

// MarshalJSON implements json.Marshaler
func (c Condition) MarshalJSON() ([]byte, error) {
	type plain Condition
	return encodeObject(plain(c), c.Extra)
}

// UnmarshalJSON implements json.Unmarshaler
func (d *DeviceIdentifier) UnmarshalJSON(data []byte) error {
	type plain DeviceIdentifier
	extra, err := decodeObject(data, (*plain)(d), "vendor_id", "product_id", "description")
	if err != nil {
		return err
	}
	d.Extra = extra
	return nil
}

// MarshalJSON implements json.Marshaler
func (d DeviceIdentifier) MarshalJSON() ([]byte, error) {
	type plain DeviceIdentifier
	return encodeObject(plain(d), d.Extra)
}
