package action

import (
	"slices"

	"github.com/justyntemme/ofxgo/pkg/framework/property"
	"github.com/justyntemme/ofxgo/pkg/ofx"
)

// Scope says which name family an action belongs to.
type Scope int

const (
	// Global actions are the kOfxAction* family shared by every OFX API.
	Global Scope = iota
	// Instance actions are the kOfxImageEffectAction* family.
	Instance
)

func (s Scope) String() string {
	if s == Instance {
		return "instance"
	}
	return "global"
}

// Args is the argument shape of an action.
type Args int

const (
	NoArgs    Args = 0
	InArgs    Args = 1
	OutArgs   Args = 2
	InOutArgs Args = InArgs | OutArgs
)

func (a Args) String() string {
	switch a {
	case InArgs:
		return "in"
	case OutArgs:
		return "out"
	case InOutArgs:
		return "in+out"
	}
	return "none"
}

// Row describes one supported action.
type Row struct {
	Name  string
	Scope Scope
	Args  Args
	// Library rows are consumed by the dispatch pipeline and never reach an
	// effect implementation.
	Library bool

	build func(t target, in, out property.Set) Action
}

var rows = []Row{
	{Name: ofx.ActionLoad, Scope: Global, Library: true,
		build: func(target, property.Set, property.Set) Action { return Load{} }},
	{Name: ofx.ActionUnload, Scope: Global, Library: true,
		build: func(target, property.Set, property.Set) Action { return Unload{} }},
	{Name: ofx.ActionDescribe, Scope: Global,
		build: func(t target, _, _ property.Set) Action { return Describe{t} }},
	{Name: ofx.ActionCreateInstance, Scope: Global,
		build: func(t target, _, _ property.Set) Action { return CreateInstance{t} }},
	{Name: ofx.ActionDestroyInstance, Scope: Global,
		build: func(t target, _, _ property.Set) Action { return DestroyInstance{t} }},
	{Name: ofx.ActionPurgeCaches, Scope: Global,
		build: func(t target, _, _ property.Set) Action { return PurgeCaches{t} }},
	{Name: ofx.ActionSyncPrivateData, Scope: Global,
		build: func(t target, _, _ property.Set) Action { return SyncPrivateData{t} }},
	{Name: ofx.ActionBeginInstanceChanged, Scope: Global, Args: InArgs,
		build: func(t target, in, _ property.Set) Action {
			return BeginInstanceChanged{t, property.InstanceChangeBracketIn{Set: in}}
		}},
	{Name: ofx.ActionInstanceChanged, Scope: Global, Args: InArgs,
		build: func(t target, in, _ property.Set) Action {
			return InstanceChanged{t, property.InstanceChangedIn{Set: in}}
		}},
	{Name: ofx.ActionEndInstanceChanged, Scope: Global, Args: InArgs,
		build: func(t target, in, _ property.Set) Action {
			return EndInstanceChanged{t, property.InstanceChangeBracketIn{Set: in}}
		}},
	{Name: ofx.ActionBeginInstanceEdit, Scope: Global,
		build: func(t target, _, _ property.Set) Action { return BeginInstanceEdit{t} }},
	{Name: ofx.ActionEndInstanceEdit, Scope: Global,
		build: func(t target, _, _ property.Set) Action { return EndInstanceEdit{t} }},
	{Name: ofx.ActionOpenGLContextAttached, Scope: Global,
		build: func(t target, _, _ property.Set) Action { return OpenGLContextAttached{t} }},
	{Name: ofx.ActionOpenGLContextDetached, Scope: Global,
		build: func(t target, _, _ property.Set) Action { return OpenGLContextDetached{t} }},

	{Name: ofx.ImageEffectActionDescribeInContext, Scope: Instance, Args: InArgs,
		build: func(t target, in, _ property.Set) Action {
			return DescribeInContext{t, property.DescribeInContextIn{Set: in}}
		}},
	{Name: ofx.ImageEffectActionGetRegionOfDefinition, Scope: Instance, Args: InOutArgs,
		build: func(t target, in, out property.Set) Action {
			return GetRegionOfDefinition{t, property.RegionOfDefinitionIn{Set: in}, property.RegionOfDefinitionOut{Set: out}}
		}},
	{Name: ofx.ImageEffectActionGetRegionsOfInterest, Scope: Instance, Args: InOutArgs,
		build: func(t target, in, out property.Set) Action {
			return GetRegionsOfInterest{t, property.RegionsOfInterestIn{Set: in}, property.RegionsOfInterestOut{Set: out}}
		}},
	{Name: ofx.ImageEffectActionGetTimeDomain, Scope: Instance, Args: OutArgs,
		build: func(t target, _, out property.Set) Action {
			return GetTimeDomain{t, property.TimeDomainOut{Set: out}}
		}},
	{Name: ofx.ImageEffectActionGetFramesNeeded, Scope: Instance, Args: InOutArgs,
		build: func(t target, in, out property.Set) Action {
			return GetFramesNeeded{t, property.FramesNeededIn{Set: in}, property.FramesNeededOut{Set: out}}
		}},
	{Name: ofx.ImageEffectActionGetClipPreferences, Scope: Instance, Args: OutArgs,
		build: func(t target, _, out property.Set) Action {
			return GetClipPreferences{t, property.ClipPreferencesOut{Set: out}}
		}},
	{Name: ofx.ImageEffectActionIsIdentity, Scope: Instance, Args: InOutArgs,
		build: func(t target, in, out property.Set) Action {
			return IsIdentity{t, property.IsIdentityIn{Set: in}, property.IsIdentityOut{Set: out}}
		}},
	{Name: ofx.ImageEffectActionRender, Scope: Instance, Args: InArgs,
		build: func(t target, in, _ property.Set) Action {
			return Render{t, property.RenderIn{Set: in}}
		}},
	{Name: ofx.ImageEffectActionBeginSequenceRender, Scope: Instance, Args: InArgs,
		build: func(t target, in, _ property.Set) Action {
			return BeginSequenceRender{t, property.SequenceRenderIn{Set: in}}
		}},
	{Name: ofx.ImageEffectActionEndSequenceRender, Scope: Instance, Args: InArgs,
		build: func(t target, in, _ property.Set) Action {
			return EndSequenceRender{t, property.SequenceRenderIn{Set: in}}
		}},
}

// unsupported are protocol actions this framework knows about and declines.
var unsupported = []string{
	ofx.ActionDialog,
	ofx.ImageEffectActionGetInverseDistortion,
	ofx.ImageEffectActionInvokeHelp,
	ofx.ImageEffectActionInvokeAbout,
	ofx.ImageEffectActionVegasKeyframeUplift,
}

// Table returns every supported action in protocol order.
func Table() []Row {
	return slices.Clone(rows)
}

// Unsupported returns the protocol actions that are recognized but declined.
func Unsupported() []string {
	return slices.Clone(unsupported)
}

// carriesEffect reports whether the row's action is addressed to a handle.
func (r Row) carriesEffect() bool {
	return r.Name != ofx.ActionLoad && r.Name != ofx.ActionUnload
}
