package types

import (
	"encoding/json"
)

// Payload holds the fields of a JSON object that are not interpreted by
// karabiner-cli. They are captured on decode and re-emitted verbatim.
type Payload map[string]json.RawMessage

// decodeObject unmarshals data into v and returns every field of the object
// whose name is not listed in known.
func decodeObject(data []byte, v interface{}, known ...string) (Payload, error) {
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for _, name := range known {
		delete(fields, name)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	return Payload(fields), nil
}

// encodeObject marshals v and merges the extra fields back in. Keys come
// out sorted, which keeps the output stable across runs.
func encodeObject(v interface{}, extra Payload) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for name, raw := range extra {
		if _, typed := fields[name]; !typed {
			fields[name] = raw
		}
	}
	return json.Marshal(fields)
}
