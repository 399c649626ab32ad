// Package action turns the host's stringly-typed action calls into typed Go
// values.
//
// Every supported action is a struct implementing Action. Its fields are the
// wrapped effect handle and the typed property views the protocol defines for
// that action's in and out arguments, so a Render handler can read the render
// window from its RenderIn view but cannot accidentally ask it for a clip's
// row bytes.
//
// Which actions exist, their scope and their argument shape live in one
// table (see Table). Adding an action is a new row and a new struct.
package action

import (
	"github.com/justyntemme/ofxgo/pkg/framework/handle"
	"github.com/justyntemme/ofxgo/pkg/framework/property"
	"github.com/justyntemme/ofxgo/pkg/ofx"
)

// Action is one mapped host action. The set of implementations is closed.
type Action interface {
	// Name returns the protocol name of the action.
	Name() string
	action()
}

type sealed struct{}

func (sealed) action() {}

// target is embedded by every action addressed to an effect handle.
type target struct {
	sealed
	Effect handle.ImageEffect
}

func (t target) effect() handle.ImageEffect { return t.Effect }

// Load is sent once after the host has called setHost. The dispatch pipeline
// handles it entirely.
type Load struct{ sealed }

// Unload is the last action a plugin sees. The dispatch pipeline handles it
// entirely.
type Unload struct{ sealed }

// Describe asks the plugin to describe itself on the top-level effect
// descriptor.
type Describe struct{ target }

// DescribeInContext asks the plugin to define clips and parameters for one
// context.
type DescribeInContext struct {
	target
	In property.DescribeInContextIn
}

// CreateInstance announces a new effect instance.
type CreateInstance struct{ target }

// DestroyInstance announces that an instance is going away. Its instance
// data is dropped after the effect has seen the action.
type DestroyInstance struct{ target }

// PurgeCaches asks the instance to free whatever memory it can.
type PurgeCaches struct{ target }

// SyncPrivateData asks the instance to flush private state into parameters.
type SyncPrivateData struct{ target }

// BeginInstanceChanged opens a block of InstanceChanged actions.
type BeginInstanceChanged struct {
	target
	In property.InstanceChangeBracketIn
}

// InstanceChanged reports that a parameter or clip changed.
type InstanceChanged struct {
	target
	In property.InstanceChangedIn
}

// EndInstanceChanged closes a block of InstanceChanged actions.
type EndInstanceChanged struct {
	target
	In property.InstanceChangeBracketIn
}

// BeginInstanceEdit is sent when the user opens the instance's editor.
type BeginInstanceEdit struct{ target }

// EndInstanceEdit is sent when the last editor for the instance closes.
type EndInstanceEdit struct{ target }

// OpenGLContextAttached is sent when the host binds a new GL context.
type OpenGLContextAttached struct{ target }

// OpenGLContextDetached is sent before the host releases a GL context.
type OpenGLContextDetached struct{ target }

// GetRegionOfDefinition asks where the output has pixels.
type GetRegionOfDefinition struct {
	target
	In  property.RegionOfDefinitionIn
	Out property.RegionOfDefinitionOut
}

// GetRegionsOfInterest asks which input regions a render window needs.
type GetRegionsOfInterest struct {
	target
	In  property.RegionsOfInterestIn
	Out property.RegionsOfInterestOut
}

// GetTimeDomain asks for the frame range the effect can produce.
type GetTimeDomain struct {
	target
	Out property.TimeDomainOut
}

// GetFramesNeeded asks which input frames a render at a time needs.
type GetFramesNeeded struct {
	target
	In  property.FramesNeededIn
	Out property.FramesNeededOut
}

// GetClipPreferences lets the effect set pixel depths, components and
// premultiplication on its clips.
type GetClipPreferences struct {
	target
	Out property.ClipPreferencesOut
}

// IsIdentity asks whether a render would just copy an input clip.
type IsIdentity struct {
	target
	In  property.IsIdentityIn
	Out property.IsIdentityOut
}

// Render asks for one frame.
type Render struct {
	target
	In property.RenderIn
}

// BeginSequenceRender opens a run of Render actions.
type BeginSequenceRender struct {
	target
	In property.SequenceRenderIn
}

// EndSequenceRender closes a run of Render actions.
type EndSequenceRender struct {
	target
	In property.SequenceRenderIn
}

func (Load) Name() string { return ofx.ActionLoad }
func (Unload) Name() string { return ofx.ActionUnload }
func (Describe) Name() string { return ofx.ActionDescribe }
func (DescribeInContext) Name() string { return ofx.ImageEffectActionDescribeInContext }
func (CreateInstance) Name() string { return ofx.ActionCreateInstance }
func (DestroyInstance) Name() string { return ofx.ActionDestroyInstance }
func (PurgeCaches) Name() string { return ofx.ActionPurgeCaches }
func (SyncPrivateData) Name() string { return ofx.ActionSyncPrivateData }
func (BeginInstanceChanged) Name() string { return ofx.ActionBeginInstanceChanged }
func (InstanceChanged) Name() string { return ofx.ActionInstanceChanged }
func (EndInstanceChanged) Name() string { return ofx.ActionEndInstanceChanged }
func (BeginInstanceEdit) Name() string { return ofx.ActionBeginInstanceEdit }
func (EndInstanceEdit) Name() string { return ofx.ActionEndInstanceEdit }
func (OpenGLContextAttached) Name() string { return ofx.ActionOpenGLContextAttached }
func (OpenGLContextDetached) Name() string { return ofx.ActionOpenGLContextDetached }
func (GetRegionOfDefinition) Name() string { return ofx.ImageEffectActionGetRegionOfDefinition }
func (GetRegionsOfInterest) Name() string { return ofx.ImageEffectActionGetRegionsOfInterest }
func (GetTimeDomain) Name() string { return ofx.ImageEffectActionGetTimeDomain }
func (GetFramesNeeded) Name() string { return ofx.ImageEffectActionGetFramesNeeded }
func (GetClipPreferences) Name() string { return ofx.ImageEffectActionGetClipPreferences }
func (IsIdentity) Name() string { return ofx.ImageEffectActionIsIdentity }
func (Render) Name() string { return ofx.ImageEffectActionRender }
func (BeginSequenceRender) Name() string { return ofx.ImageEffectActionBeginSequenceRender }
func (EndSequenceRender) Name() string { return ofx.ImageEffectActionEndSequenceRender }

// EffectOf returns the effect handle an action carries. Load and Unload
// carry none.
func EffectOf(a Action) (handle.ImageEffect, bool) {
	t, ok := a.(interface{ effect() handle.ImageEffect })
	if !ok {
		return handle.ImageEffect{}, false
	}
	return t.effect(), true
}
