// Package plugin provides the OpenFX plugin framework: the dispatch pipeline
// a host drives through setHost and mainEntry, and the Effect interface
// plugin authors implement.
package plugin

import (
	"github.com/justyntemme/ofxgo/pkg/framework/action"
	"github.com/justyntemme/ofxgo/pkg/ofx"
)

// Effect is the main interface that users implement. There is one method per
// supported action. Returning ofx.ReplyDefault tells the host the action was
// not trapped and its default behaviour applies.
type Effect interface {
	Describe(ctx *Context, a action.Describe) error
	DescribeInContext(ctx *Context, a action.DescribeInContext) error

	// CreateInstance is the place to attach instance data; it is dropped
	// automatically after DestroyInstance.
	CreateInstance(ctx *Context, a action.CreateInstance) error
	DestroyInstance(ctx *Context, a action.DestroyInstance) error

	BeginInstanceChanged(ctx *Context, a action.BeginInstanceChanged) error
	InstanceChanged(ctx *Context, a action.InstanceChanged) error
	EndInstanceChanged(ctx *Context, a action.EndInstanceChanged) error
	BeginInstanceEdit(ctx *Context, a action.BeginInstanceEdit) error
	EndInstanceEdit(ctx *Context, a action.EndInstanceEdit) error
	PurgeCaches(ctx *Context, a action.PurgeCaches) error
	SyncPrivateData(ctx *Context, a action.SyncPrivateData) error

	GetRegionOfDefinition(ctx *Context, a action.GetRegionOfDefinition) error
	GetRegionsOfInterest(ctx *Context, a action.GetRegionsOfInterest) error
	GetTimeDomain(ctx *Context, a action.GetTimeDomain) error
	GetFramesNeeded(ctx *Context, a action.GetFramesNeeded) error
	GetClipPreferences(ctx *Context, a action.GetClipPreferences) error

	// IsIdentity reports identity by returning nil after writing the
	// identity clip and time to a.Out.
	IsIdentity(ctx *Context, a action.IsIdentity) error

	BeginSequenceRender(ctx *Context, a action.BeginSequenceRender) error
	Render(ctx *Context, a action.Render) error
	EndSequenceRender(ctx *Context, a action.EndSequenceRender) error

	OpenGLContextAttached(ctx *Context, a action.OpenGLContextAttached) error
	OpenGLContextDetached(ctx *Context, a action.OpenGLContextDetached) error
}

// BaseEffect replies default to every action. Embed it and override what
// the effect traps.
type BaseEffect struct{}

var _ Effect = BaseEffect{}

func (BaseEffect) Describe(*Context, action.Describe) error { return ofx.ReplyDefault }
func (BaseEffect) DescribeInContext(*Context, action.DescribeInContext) error { return ofx.ReplyDefault }
func (BaseEffect) CreateInstance(*Context, action.CreateInstance) error { return ofx.ReplyDefault }
func (BaseEffect) DestroyInstance(*Context, action.DestroyInstance) error { return ofx.ReplyDefault }
func (BaseEffect) BeginInstanceChanged(*Context, action.BeginInstanceChanged) error { return ofx.ReplyDefault }
func (BaseEffect) InstanceChanged(*Context, action.InstanceChanged) error { return ofx.ReplyDefault }
func (BaseEffect) EndInstanceChanged(*Context, action.EndInstanceChanged) error { return ofx.ReplyDefault }
func (BaseEffect) BeginInstanceEdit(*Context, action.BeginInstanceEdit) error { return ofx.ReplyDefault }
func (BaseEffect) EndInstanceEdit(*Context, action.EndInstanceEdit) error { return ofx.ReplyDefault }
func (BaseEffect) PurgeCaches(*Context, action.PurgeCaches) error { return ofx.ReplyDefault }
func (BaseEffect) SyncPrivateData(*Context, action.SyncPrivateData) error { return ofx.ReplyDefault }
func (BaseEffect) GetRegionOfDefinition(*Context, action.GetRegionOfDefinition) error { return ofx.ReplyDefault }
func (BaseEffect) GetRegionsOfInterest(*Context, action.GetRegionsOfInterest) error { return ofx.ReplyDefault }
func (BaseEffect) GetTimeDomain(*Context, action.GetTimeDomain) error { return ofx.ReplyDefault }
func (BaseEffect) GetFramesNeeded(*Context, action.GetFramesNeeded) error { return ofx.ReplyDefault }
func (BaseEffect) GetClipPreferences(*Context, action.GetClipPreferences) error { return ofx.ReplyDefault }
func (BaseEffect) IsIdentity(*Context, action.IsIdentity) error { return ofx.ReplyDefault }
func (BaseEffect) BeginSequenceRender(*Context, action.BeginSequenceRender) error { return ofx.ReplyDefault }
func (BaseEffect) Render(*Context, action.Render) error { return ofx.ReplyDefault }
func (BaseEffect) EndSequenceRender(*Context, action.EndSequenceRender) error { return ofx.ReplyDefault }
func (BaseEffect) OpenGLContextAttached(*Context, action.OpenGLContextAttached) error { return ofx.ReplyDefault }
func (BaseEffect) OpenGLContextDetached(*Context, action.OpenGLContextDetached) error { return ofx.ReplyDefault }

// execute routes a to the matching Effect method. Load and Unload belong to
// the library and never reach the effect.
func execute(e Effect, ctx *Context, a action.Action) error {
	switch a := a.(type) {
	case action.Load, action.Unload:
		return nil
	case action.Describe:
		return e.Describe(ctx, a)
	case action.DescribeInContext:
		return e.DescribeInContext(ctx, a)
	case action.CreateInstance:
		return e.CreateInstance(ctx, a)
	case action.DestroyInstance:
		return e.DestroyInstance(ctx, a)
	case action.BeginInstanceChanged:
		return e.BeginInstanceChanged(ctx, a)
	case action.InstanceChanged:
		return e.InstanceChanged(ctx, a)
	case action.EndInstanceChanged:
		return e.EndInstanceChanged(ctx, a)
	case action.BeginInstanceEdit:
		return e.BeginInstanceEdit(ctx, a)
	case action.EndInstanceEdit:
		return e.EndInstanceEdit(ctx, a)
	case action.PurgeCaches:
		return e.PurgeCaches(ctx, a)
	case action.SyncPrivateData:
		return e.SyncPrivateData(ctx, a)
	case action.GetRegionOfDefinition:
		return e.GetRegionOfDefinition(ctx, a)
	case action.GetRegionsOfInterest:
		return e.GetRegionsOfInterest(ctx, a)
	case action.GetTimeDomain:
		return e.GetTimeDomain(ctx, a)
	case action.GetFramesNeeded:
		return e.GetFramesNeeded(ctx, a)
	case action.GetClipPreferences:
		return e.GetClipPreferences(ctx, a)
	case action.IsIdentity:
		return e.IsIdentity(ctx, a)
	case action.BeginSequenceRender:
		return e.BeginSequenceRender(ctx, a)
	case action.Render:
		return e.Render(ctx, a)
	case action.EndSequenceRender:
		return e.EndSequenceRender(ctx, a)
	case action.OpenGLContextAttached:
		return e.OpenGLContextAttached(ctx, a)
	case action.OpenGLContextDetached:
		return e.OpenGLContextDetached(ctx, a)
	default:
		return ofx.NewError(ofx.KindInvalidAction, "no effect method for %s", a.Name())
	}
}
