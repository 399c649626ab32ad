package plugin

import (
	"fmt"

	"github.com/justyntemme/ofxgo/pkg/framework/property"
	"github.com/justyntemme/ofxgo/pkg/ofx"
)

// Info contains plugin metadata
type Info struct {
	ID           string // Unique reverse-domain identifier (e.g., "com.example.invert")
	Label        string // Display name
	Grouping     string // Menu grouping (e.g., "Color", "Filter/Blur")
	Description  string
	VersionMajor int
	VersionMinor int
}

// APIVersion returns the image-effect API version the plugin implements.
func (i Info) APIVersion() int { return ofx.ImageEffectPluginAPIVersion }

// Version formats the version as "major.minor".
func (i Info) Version() string {
	return fmt.Sprintf("%d.%d", i.VersionMajor, i.VersionMinor)
}

// Validate checks that the identifier can be handed to the host.
func (i Info) Validate() error {
	if i.ID == "" {
		return ofx.NewError(ofx.KindStringConversion, "plugin identifier is empty")
	}
	return property.CheckString(i.ID)
}

// Describe writes the identity onto an effect descriptor. An empty label
// falls back to the identifier.
func (i Info) Describe(desc property.EffectDescriptor) error {
	label := i.Label
	if label == "" {
		label = i.ID
	}
	if err := property.Label.Set(desc, label); err != nil {
		return err
	}
	if i.Grouping != "" {
		if err := property.Grouping.Set(desc, i.Grouping); err != nil {
			return err
		}
	}
	if i.Description != "" {
		if err := property.PluginDescription.Set(desc, i.Description); err != nil {
			return err
		}
	}
	if err := property.Version.Set(desc, []int{i.VersionMajor, i.VersionMinor}); err != nil {
		return err
	}
	return property.VersionLabel.Set(desc, i.Version())
}
