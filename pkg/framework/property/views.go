package property

// Views. Each embeds the Set it reads and implements the markers of the
// properties the protocol defines on it.

// Host views the host descriptor's own properties.
type Host struct{ Set }

func (Host) typed() {}
func (Host) named() {}
func (Host) labelled() {}
func (Host) versioned() {}
func (Host) hostDescribing() {}
func (Host) featureFlags() {}
func (Host) contextSupporting() {}
func (Host) componentSupporting() {}

// EffectDescriptor views an effect descriptor, during Describe and DescribeInContext.
type EffectDescriptor struct{ Set }

func (EffectDescriptor) typed() {}
func (EffectDescriptor) labelled() {}
func (EffectDescriptor) versioned() {}
func (EffectDescriptor) effectDescribing() {}
func (EffectDescriptor) featureFlags() {}
func (EffectDescriptor) contextSupporting() {}

// EffectInstance views a live effect instance.
type EffectInstance struct{ Set }

func (EffectInstance) typed() {}
func (EffectInstance) contextual() {}
func (EffectInstance) effectInstanceProps() {}
func (EffectInstance) frameRated() {}

// ClipDescriptor views a clip being defined.
type ClipDescriptor struct{ Set }

func (ClipDescriptor) typed() {}
func (ClipDescriptor) named() {}
func (ClipDescriptor) labelled() {}
func (ClipDescriptor) clipDescribing() {}
func (ClipDescriptor) componentSupporting() {}

// ClipInstance views a clip of a live instance.
type ClipInstance struct{ Set }

func (ClipInstance) typed() {}
func (ClipInstance) named() {}
func (ClipInstance) labelled() {}
func (ClipInstance) clipInstanceProps() {}
func (ClipInstance) pixelTyped() {}
func (ClipInstance) aspected() {}
func (ClipInstance) frameRated() {}

// Image views a fetched image or texture.
type Image struct{ Set }

func (Image) typed() {}
func (Image) imageProps() {}
func (Image) pixelTyped() {}
func (Image) aspected() {}
func (Image) scaled() {}
func (Image) textured() {}

// ParamDescriptor views the properties common to every parameter descriptor.
type ParamDescriptor struct{ Set }

func (ParamDescriptor) typed() {}
func (ParamDescriptor) named() {}
func (ParamDescriptor) labelled() {}
func (ParamDescriptor) paramDescribing() {}

// DoubleParamDescriptor views a double parameter descriptor.
type DoubleParamDescriptor struct{ Set }

func (DoubleParamDescriptor) typed() {}
func (DoubleParamDescriptor) named() {}
func (DoubleParamDescriptor) labelled() {}
func (DoubleParamDescriptor) paramDescribing() {}
func (DoubleParamDescriptor) doubleDescribing() {}

// IntParamDescriptor views an integer parameter descriptor.
type IntParamDescriptor struct{ Set }

func (IntParamDescriptor) typed() {}
func (IntParamDescriptor) named() {}
func (IntParamDescriptor) labelled() {}
func (IntParamDescriptor) paramDescribing() {}
func (IntParamDescriptor) intDescribing() {}

// BoolParamDescriptor views a boolean parameter descriptor.
type BoolParamDescriptor struct{ Set }

func (BoolParamDescriptor) typed() {}
func (BoolParamDescriptor) named() {}
func (BoolParamDescriptor) labelled() {}
func (BoolParamDescriptor) paramDescribing() {}
func (BoolParamDescriptor) boolDescribing() {}

// ChoiceParamDescriptor views a choice parameter descriptor.
type ChoiceParamDescriptor struct{ Set }

func (ChoiceParamDescriptor) typed() {}
func (ChoiceParamDescriptor) named() {}
func (ChoiceParamDescriptor) labelled() {}
func (ChoiceParamDescriptor) paramDescribing() {}
func (ChoiceParamDescriptor) choiceDescribing() {}

// StringParamDescriptor views a string parameter descriptor.
type StringParamDescriptor struct{ Set }

func (StringParamDescriptor) typed() {}
func (StringParamDescriptor) named() {}
func (StringParamDescriptor) labelled() {}
func (StringParamDescriptor) paramDescribing() {}
func (StringParamDescriptor) stringDescribing() {}

// GroupParamDescriptor views a group parameter descriptor.
type GroupParamDescriptor struct{ Set }

func (GroupParamDescriptor) typed() {}
func (GroupParamDescriptor) named() {}
func (GroupParamDescriptor) labelled() {}
func (GroupParamDescriptor) paramDescribing() {}
func (GroupParamDescriptor) groupDescribing() {}

// PageParamDescriptor views a page parameter descriptor.
type PageParamDescriptor struct{ Set }

func (PageParamDescriptor) typed() {}
func (PageParamDescriptor) named() {}
func (PageParamDescriptor) labelled() {}
func (PageParamDescriptor) paramDescribing() {}
func (PageParamDescriptor) pageDescribing() {}

// ParametricParamDescriptor views a parametric parameter descriptor.
type ParametricParamDescriptor struct{ Set }

func (ParametricParamDescriptor) typed() {}
func (ParametricParamDescriptor) named() {}
func (ParametricParamDescriptor) labelled() {}
func (ParametricParamDescriptor) paramDescribing() {}
func (ParametricParamDescriptor) parametricDescribing() {}

// ParamInstance views a parameter of a live instance.
type ParamInstance struct{ Set }

func (ParamInstance) typed() {}
func (ParamInstance) named() {}
func (ParamInstance) labelled() {}
func (ParamInstance) paramDescribing() {}

// ParamSet views a parameter set.
type ParamSet struct{ Set }

func (ParamSet) paramSetProps() {}

// DescribeInContextIn views the in arguments of DescribeInContext.
type DescribeInContextIn struct{ Set }

func (DescribeInContextIn) contextual() {}

// InstanceChangedIn views the in arguments of InstanceChanged.
type InstanceChangedIn struct{ Set }

func (InstanceChangedIn) typed() {}
func (InstanceChangedIn) named() {}
func (InstanceChangedIn) changeReasoned() {}
func (InstanceChangedIn) timed() {}
func (InstanceChangedIn) scaled() {}

// InstanceChangeBracketIn views the in arguments of BeginInstanceChanged and EndInstanceChanged.
type InstanceChangeBracketIn struct{ Set }

func (InstanceChangeBracketIn) changeReasoned() {}

// RegionOfDefinitionIn views the in arguments of GetRegionOfDefinition.
type RegionOfDefinitionIn struct{ Set }

func (RegionOfDefinitionIn) timed() {}
func (RegionOfDefinitionIn) scaled() {}

// RegionOfDefinitionOut views the out arguments of GetRegionOfDefinition.
type RegionOfDefinitionOut struct{ Set }

func (RegionOfDefinitionOut) definesRegion() {}

// RegionsOfInterestIn views the in arguments of GetRegionsOfInterest.
type RegionsOfInterestIn struct{ Set }

func (RegionsOfInterestIn) timed() {}
func (RegionsOfInterestIn) scaled() {}
func (RegionsOfInterestIn) interestRegion() {}

// RegionsOfInterestOut views the out arguments of GetRegionsOfInterest.
type RegionsOfInterestOut struct{ Set }

func (RegionsOfInterestOut) requestsRegions() {}

// FramesNeededIn views the in arguments of GetFramesNeeded.
type FramesNeededIn struct{ Set }

func (FramesNeededIn) timed() {}

// FramesNeededOut views the out arguments of GetFramesNeeded.
type FramesNeededOut struct{ Set }

func (FramesNeededOut) needsFrames() {}

// TimeDomainOut views the out arguments of GetTimeDomain.
type TimeDomainOut struct{ Set }

func (TimeDomainOut) definesTimeDomain() {}

// ClipPreferencesOut views the out arguments of GetClipPreferences.
type ClipPreferencesOut struct{ Set }

func (ClipPreferencesOut) setsClipPreferences() {}

// IsIdentityIn views the in arguments of IsIdentity.
type IsIdentityIn struct{ Set }

func (IsIdentityIn) timed() {}
func (IsIdentityIn) fielded() {}
func (IsIdentityIn) windowed() {}
func (IsIdentityIn) scaled() {}

// IsIdentityOut views the out arguments of IsIdentity.
type IsIdentityOut struct{ Set }

func (IsIdentityOut) reportsIdentity() {}

// RenderIn views the in arguments of Render.
type RenderIn struct{ Set }

func (RenderIn) timed() {}
func (RenderIn) fielded() {}
func (RenderIn) windowed() {}
func (RenderIn) scaled() {}
func (RenderIn) sequenced() {}
func (RenderIn) gpuAware() {}

// SequenceRenderIn views the in arguments of BeginSequenceRender and EndSequenceRender.
type SequenceRenderIn struct{ Set }

func (SequenceRenderIn) sequenceRanged() {}
func (SequenceRenderIn) scaled() {}
func (SequenceRenderIn) sequenced() {}
func (SequenceRenderIn) gpuAware() {}
