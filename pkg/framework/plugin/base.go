package plugin

import (
	"slices"

	"github.com/samber/oops"

	"github.com/justyntemme/ofxgo/pkg/framework/handle"
	"github.com/justyntemme/ofxgo/pkg/framework/param"
	"github.com/justyntemme/ofxgo/pkg/framework/property"
	"github.com/justyntemme/ofxgo/pkg/ofx"
)

// Base provides the describe logic shared by most image effects: identity,
// supported contexts and pixel formats, the standard clips and the
// parameter registry.
type Base struct {
	Info   Info
	params *param.Registry

	contexts     []ofx.Context
	depths       []ofx.BitDepth
	components   []ofx.PixelComponent
	threadSafety ofx.RenderThreadSafety
	tiles        bool
}

// NewBase creates a new plugin base for a filter on RGBA images.
func NewBase(info Info) *Base {
	return &Base{
		Info:         info,
		params:       param.NewRegistry(),
		contexts:     []ofx.Context{ofx.ContextFilter},
		depths:       []ofx.BitDepth{ofx.BitDepthByte, ofx.BitDepthShort, ofx.BitDepthFloat},
		components:   []ofx.PixelComponent{ofx.ComponentRGBA},
		threadSafety: ofx.RenderFullySafe,
		tiles:        true,
	}
}

// Parameters returns the parameter registry for configuration
func (b *Base) Parameters() *param.Registry {
	return b.params
}

// Contexts replaces the supported contexts.
func (b *Base) Contexts(contexts ...ofx.Context) *Base {
	b.contexts = contexts
	return b
}

// PixelDepths replaces the supported bit depths.
func (b *Base) PixelDepths(depths ...ofx.BitDepth) *Base {
	b.depths = depths
	return b
}

// Components replaces the supported pixel components.
func (b *Base) Components(components ...ofx.PixelComponent) *Base {
	b.components = components
	return b
}

// ThreadSafety sets the render thread safety advertised to the host.
func (b *Base) ThreadSafety(s ofx.RenderThreadSafety) *Base {
	b.threadSafety = s
	return b
}

// Tiles sets whether the effect can render sub-regions of a frame.
func (b *Base) Tiles(supported bool) *Base {
	b.tiles = supported
	return b
}

// Supports reports whether ctx is one of the supported contexts.
func (b *Base) Supports(ctx ofx.Context) bool {
	return slices.Contains(b.contexts, ctx)
}

// Describe handles the Describe action.
func (b *Base) Describe(effect handle.ImageEffect) error {
	desc, err := effect.Descriptor()
	if err != nil {
		return err
	}
	if err := b.Info.Describe(desc); err != nil {
		return err
	}
	if err := property.SupportedContexts.Set(desc, b.contexts); err != nil {
		return err
	}
	if err := property.SupportedPixelDepths.Set(desc, b.depths); err != nil {
		return err
	}
	if err := property.RenderThreadSafety.Set(desc, b.threadSafety); err != nil {
		return err
	}
	return property.SupportsTiles.Set(desc, b.tiles)
}

// DescribeInContext handles the DescribeInContext action: it defines the
// output clip, a source clip for every context that has one, and every
// registered parameter.
func (b *Base) DescribeInContext(effect handle.ImageEffect, ctx ofx.Context) error {
	if !b.Supports(ctx) {
		return oops.In("plugin").
			Code(string(ofx.KindUnimplemented)).
			With("plugin", b.Info.ID).
			Errorf("context %s is not supported", ctx)
	}

	out, err := effect.DefineOutputClip()
	if err != nil {
		return err
	}
	if err := property.SupportedComponents.Set(out, b.components); err != nil {
		return err
	}
	if ctx != ofx.ContextGenerator {
		src, err := effect.DefineSourceClip()
		if err != nil {
			return err
		}
		if err := property.SupportedComponents.Set(src, b.components); err != nil {
			return err
		}
	}

	set, err := effect.ParamSet()
	if err != nil {
		return err
	}
	return b.params.Define(set)
}
