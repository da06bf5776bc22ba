package types

import "fmt"

// DevicePreset is a known device that can prefill a device_if condition.
type DevicePreset struct {
	Name        string `koanf:"name" json:"name" yaml:"name" toml:"name"`
	Description string `koanf:"description" json:"description" yaml:"description" toml:"description"`
	VendorID    int    `koanf:"vendor_id" json:"vendor_id" yaml:"vendor_id" toml:"vendor_id"`
	ProductID   int    `koanf:"product_id" json:"product_id" yaml:"product_id" toml:"product_id"`
}

// DisplayName returns the description, falling back to the name.
func (d DevicePreset) DisplayName() string {
	if d.Description != "" {
		return d.Description
	}
	return d.Name
}

// Identifier returns the device_if identifier for the preset.
func (d DevicePreset) Identifier() DeviceIdentifier {
	return DeviceIdentifier{
		VendorID:    d.VendorID,
		ProductID:   d.ProductID,
		Description: d.DisplayName(),
	}
}

// Label is the one-line form used in preset pickers and listings.
func (d DevicePreset) Label() string {
	return fmt.Sprintf("%s (Vendor: %d, Product: %d)", d.Name, d.VendorID, d.ProductID)
}
