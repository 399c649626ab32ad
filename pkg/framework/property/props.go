package property

import "github.com/justyntemme/ofxgo/pkg/ofx"

// Generic object properties.
var (
	Type         = define[Typed, string](ofx.PropType, stringCodec{})
	Name         = define[Named, string](ofx.PropName, stringCodec{})
	Label        = define[Labelled, string](ofx.PropLabel, stringCodec{})
	ShortLabel   = define[Labelled, string](ofx.PropShortLabel, stringCodec{})
	LongLabel    = define[Labelled, string](ofx.PropLongLabel, stringCodec{})
	VersionLabel = define[Versioned, string](ofx.PropVersionLabel, stringCodec{})
	Version      = define[Versioned, []int](ofx.PropVersion, intsCodec{})
	APIVersion   = define[Versioned, []int](ofx.PropAPIVersion, intsCodec{})
)

// Host properties.
var (
	IsBackground  = define[HostDescribing, bool](ofx.ImageEffectHostPropIsBackground, boolCodec{})
	MaxParameters = define[HostDescribing, int](ofx.ParamHostPropMaxParameters, intCodec{})
)

// Properties declared by the effect descriptor and advertised by the host.
var (
	SupportedContexts          = define[ContextSupporting, []ofx.Context](ofx.ImageEffectPropSupportedContexts, tokensCodec[ofx.Context]{})
	SupportedPixelDepths       = define[ContextSupporting, []ofx.BitDepth](ofx.ImageEffectPropSupportedPixelDepths, tokensCodec[ofx.BitDepth]{})
	SupportedComponents        = define[ComponentSupporting, []ofx.PixelComponent](ofx.ImageEffectPropSupportedComponents, tokensCodec[ofx.PixelComponent]{})
	SupportsMultipleClipDepths = define[FeatureFlags, bool](ofx.ImageEffectPropSupportsMultipleClipDepths, boolCodec{})
	SupportsTiles              = define[FeatureFlags, bool](ofx.ImageEffectPropSupportsTiles, boolCodec{})
	TemporalClipAccess         = define[FeatureFlags, bool](ofx.ImageEffectPropTemporalClipAccess, boolCodec{})
	SupportsMultiResolution    = define[FeatureFlags, bool](ofx.ImageEffectPropSupportsMultiResolution, boolCodec{})
	SupportsOverlays           = define[FeatureFlags, bool](ofx.ImageEffectPropSupportsOverlays, boolCodec{})
)

// Effect descriptor properties.
var (
	PluginDescription     = define[EffectDescribing, string](ofx.PropPluginDescription, stringCodec{})
	Grouping              = define[EffectDescribing, string](ofx.ImageEffectPluginPropGrouping, stringCodec{})
	RenderThreadSafety    = define[EffectDescribing, ofx.RenderThreadSafety](ofx.ImageEffectPluginRenderThreadSafety, tokenCodec[ofx.RenderThreadSafety]{})
	HostFrameThreading    = define[EffectDescribing, bool](ofx.ImageEffectPluginPropHostFrameThreading, boolCodec{})
	SingleInstance        = define[EffectDescribing, bool](ofx.ImageEffectPluginPropSingleInstance, boolCodec{})
	OpenGLRenderSupported = define[EffectDescribing, string](ofx.ImageEffectPropOpenGLRenderSupported, stringCodec{})
)

// Effect instance properties.
var (
	Context                 = define[Contextual, ofx.Context](ofx.ImageEffectPropContext, tokenCodec[ofx.Context]{})
	InstanceData            = define[EffectInstanceProps, uintptr](ofx.PropInstanceData, pointerCodec{})
	IsInteractive           = define[EffectInstanceProps, bool](ofx.PropIsInteractive, boolCodec{})
	ProjectSize             = define[EffectInstanceProps, ofx.PointD](ofx.ImageEffectPropProjectSize, pointDCodec{})
	ProjectOffset           = define[EffectInstanceProps, ofx.PointD](ofx.ImageEffectPropProjectOffset, pointDCodec{})
	ProjectExtent           = define[EffectInstanceProps, ofx.PointD](ofx.ImageEffectPropProjectExtent, pointDCodec{})
	ProjectPixelAspectRatio = define[EffectInstanceProps, float64](ofx.ImageEffectPropProjectPixelAspectRatio, doubleCodec{})
	EffectDuration          = define[EffectInstanceProps, float64](ofx.ImageEffectInstancePropEffectDuration, doubleCodec{})
	FrameRate               = define[FrameRated, float64](ofx.ImageEffectPropFrameRate, doubleCodec{})
)

// Clip properties.
var (
	Optional               = define[ClipDescribing, bool](ofx.ImageClipPropOptional, boolCodec{})
	IsMask                 = define[ClipDescribing, bool](ofx.ImageClipPropIsMask, boolCodec{})
	ClipSupportsTiles      = define[ClipDescribing, bool](ofx.ImageEffectPropSupportsTiles, boolCodec{})
	ClipTemporalClipAccess = define[ClipDescribing, bool](ofx.ImageEffectPropTemporalClipAccess, boolCodec{})

	Connected          = define[ClipInstanceProps, bool](ofx.ImageClipPropConnected, boolCodec{})
	UnmappedPixelDepth = define[ClipInstanceProps, ofx.BitDepth](ofx.ImageClipPropUnmappedPixelDepth, tokenCodec[ofx.BitDepth]{})
	UnmappedComponents = define[ClipInstanceProps, ofx.PixelComponent](ofx.ImageClipPropUnmappedComponents, tokenCodec[ofx.PixelComponent]{})
	ClipFrameRange     = define[ClipInstanceProps, ofx.RangeD](ofx.ImageEffectPropFrameRange, rangeDCodec{})
	UnmappedFrameRange = define[ClipInstanceProps, ofx.RangeD](ofx.ImageEffectPropUnmappedFrameRange, rangeDCodec{})
	ContinuousSamples  = define[ClipInstanceProps, bool](ofx.ImageClipPropContinuousSamples, boolCodec{})
	FieldOrder         = define[ClipInstanceProps, ofx.Field](ofx.ImageClipPropFieldOrder, tokenCodec[ofx.Field]{})
)

// Pixel layout, shared by clips and images.
var (
	PixelDepth        = define[PixelTyped, ofx.BitDepth](ofx.ImageEffectPropPixelDepth, tokenCodec[ofx.BitDepth]{})
	Components        = define[PixelTyped, ofx.PixelComponent](ofx.ImageEffectPropComponents, tokenCodec[ofx.PixelComponent]{})
	PreMultiplication = define[PixelTyped, ofx.PreMultiplication](ofx.ImageEffectPropPreMultiplication, tokenCodec[ofx.PreMultiplication]{})
	PixelAspectRatio  = define[Aspected, float64](ofx.ImagePropPixelAspectRatio, doubleCodec{})
)

// Image properties.
var (
	Bounds                  = define[ImageProps, ofx.RectI](ofx.ImagePropBounds, rectICodec{})
	ImageRegionOfDefinition = define[ImageProps, ofx.RectI](ofx.ImagePropRegionOfDefinition, rectICodec{})
	RowBytes                = define[ImageProps, int](ofx.ImagePropRowBytes, intCodec{})
	Data                    = define[ImageProps, uintptr](ofx.ImagePropData, pointerCodec{})
	UniqueIdentifier        = define[ImageProps, string](ofx.ImagePropUniqueIdentifier, stringCodec{})
	ImageField              = define[ImageProps, ofx.Field](ofx.ImagePropField, tokenCodec[ofx.Field]{})
	TextureIndex            = define[Textured, int](ofx.ImageEffectPropOpenGLTextureIndex, intCodec{})
	TextureTarget           = define[Textured, int](ofx.ImageEffectPropOpenGLTextureTarget, intCodec{})
)

// Action argument properties.
var (
	Time                    = define[Timed, ofx.Time](ofx.PropTime, timeCodec{})
	RenderScale             = define[Scaled, ofx.PointD](ofx.ImageEffectPropRenderScale, pointDCodec{})
	FieldToRender           = define[Fielded, ofx.Field](ofx.ImageEffectPropFieldToRender, tokenCodec[ofx.Field]{})
	RenderWindow            = define[Windowed, ofx.RectI](ofx.ImageEffectPropRenderWindow, rectICodec{})
	SequentialRenderStatus  = define[Sequenced, bool](ofx.ImageEffectPropSequentialRenderStatus, boolCodec{})
	InteractiveRenderStatus = define[Sequenced, bool](ofx.ImageEffectPropInteractiveRenderStatus, boolCodec{})
	RenderQualityDraft      = define[Sequenced, bool](ofx.ImageEffectPropRenderQualityDraft, boolCodec{})
	OpenGLEnabled           = define[GPUAware, bool](ofx.ImageEffectPropOpenGLEnabled, boolCodec{})
	ChangeReason            = define[ChangeReasoned, ofx.ChangeReason](ofx.PropChangeReason, tokenCodec[ofx.ChangeReason]{})
	SequenceFrameRange      = define[SequenceRanged, ofx.RangeD](ofx.ImageEffectPropFrameRange, rangeDCodec{})
	SequenceFrameStep       = define[SequenceRanged, float64](ofx.ImageEffectPropFrameStep, doubleCodec{})
	SequenceInteractive     = define[SequenceRanged, bool](ofx.PropIsInteractive, boolCodec{})
	RegionOfInterest        = define[InterestRegion, ofx.RectD](ofx.ImageEffectPropRegionOfInterest, rectDCodec{})
)

// Action out-argument properties.
var (
	RegionOfDefinition = define[DefinesRegion, ofx.RectD](ofx.ImageEffectPropRegionOfDefinition, rectDCodec{})
	TimeDomain         = define[DefinesTimeDomain, ofx.RangeD](ofx.ImageEffectPropFrameRange, rangeDCodec{})
	IdentityClip       = define[ReportsIdentity, string](ofx.PropName, stringCodec{})
	IdentityTime       = define[ReportsIdentity, ofx.Time](ofx.PropTime, timeCodec{})

	PreferredFrameRate         = define[SetsClipPreferences, float64](ofx.ImageEffectPropFrameRate, doubleCodec{})
	PreferredPreMultiplication = define[SetsClipPreferences, ofx.PreMultiplication](ofx.ImageEffectPropPreMultiplication, tokenCodec[ofx.PreMultiplication]{})
	PreferredContinuousSamples = define[SetsClipPreferences, bool](ofx.ImageClipPropContinuousSamples, boolCodec{})
	PreferredFieldOrder        = define[SetsClipPreferences, ofx.Field](ofx.ImageClipPropFieldOrder, tokenCodec[ofx.Field]{})
	FrameVarying               = define[SetsClipPreferences, bool](ofx.ImageEffectFrameVarying, boolCodec{})
)

// Per-clip out-argument properties.
var (
	ClipRegionOfInterest = defineDynamic[RequestsRegions, ofx.RectD](ofx.ImageClipPropRoIPrefix, rectDCodec{})
	ClipFramesNeeded     = defineDynamic[NeedsFrames, []ofx.RangeD](ofx.ImageClipPropFrameRangePrefix, rangesCodec{})
	ClipComponents       = defineDynamic[SetsClipPreferences, ofx.PixelComponent](ofx.ImageClipPropComponentsPrefix, tokenCodec[ofx.PixelComponent]{})
	ClipDepth            = defineDynamic[SetsClipPreferences, ofx.BitDepth](ofx.ImageClipPropDepthPrefix, tokenCodec[ofx.BitDepth]{})
	ClipPixelAspectRatio = defineDynamic[SetsClipPreferences, float64](ofx.ImageClipPropPARPrefix, doubleCodec{})
)

// Properties common to every parameter.
var (
	ParamKind        = define[ParamDescribing, ofx.ParamType](ofx.ParamPropType, tokenCodec[ofx.ParamType]{})
	Hint             = define[ParamDescribing, string](ofx.ParamPropHint, stringCodec{})
	ScriptName       = define[ParamDescribing, string](ofx.ParamPropScriptName, stringCodec{})
	Parent           = define[ParamDescribing, string](ofx.ParamPropParent, stringCodec{})
	Animates         = define[ParamDescribing, bool](ofx.ParamPropAnimates, boolCodec{})
	Enabled          = define[ParamDescribing, bool](ofx.ParamPropEnabled, boolCodec{})
	Secret           = define[ParamDescribing, bool](ofx.ParamPropSecret, boolCodec{})
	EvaluateOnChange = define[ParamDescribing, bool](ofx.ParamPropEvaluateOnChange, boolCodec{})
	CanUndo          = define[ParamDescribing, bool](ofx.ParamPropCanUndo, boolCodec{})
)

// Typed parameter properties. The protocol reuses the default, min and max
// names across parameter kinds with different value types, so each kind gets
// its own declaration.
var (
	DoubleDefault    = define[DoubleDescribing, float64](ofx.ParamPropDefault, doubleCodec{})
	DoubleMin        = define[DoubleDescribing, float64](ofx.ParamPropMin, doubleCodec{})
	DoubleMax        = define[DoubleDescribing, float64](ofx.ParamPropMax, doubleCodec{})
	DoubleDisplayMin = define[DoubleDescribing, float64](ofx.ParamPropDisplayMin, doubleCodec{})
	DoubleDisplayMax = define[DoubleDescribing, float64](ofx.ParamPropDisplayMax, doubleCodec{})
	Increment        = define[DoubleDescribing, float64](ofx.ParamPropIncrement, doubleCodec{})
	Digits           = define[DoubleDescribing, int](ofx.ParamPropDigits, intCodec{})
	DoubleType       = define[DoubleDescribing, ofx.DoubleType](ofx.ParamPropDoubleType, tokenCodec[ofx.DoubleType]{})

	IntDefault    = define[IntDescribing, int](ofx.ParamPropDefault, intCodec{})
	IntMin        = define[IntDescribing, int](ofx.ParamPropMin, intCodec{})
	IntMax        = define[IntDescribing, int](ofx.ParamPropMax, intCodec{})
	IntDisplayMin = define[IntDescribing, int](ofx.ParamPropDisplayMin, intCodec{})
	IntDisplayMax = define[IntDescribing, int](ofx.ParamPropDisplayMax, intCodec{})

	BoolDefault = define[BoolDescribing, bool](ofx.ParamPropDefault, boolCodec{})

	ChoiceDefault = define[ChoiceDescribing, int](ofx.ParamPropDefault, intCodec{})
	ChoiceOptions = define[ChoiceDescribing, []string](ofx.ParamPropChoiceOption, tokensCodec[string]{})

	StringDefault = define[StringDescribing, string](ofx.ParamPropDefault, stringCodec{})
	StringMode    = define[StringDescribing, ofx.StringMode](ofx.ParamPropStringMode, tokenCodec[ofx.StringMode]{})

	GroupOpen = define[GroupDescribing, bool](ofx.ParamPropGroupOpen, boolCodec{})

	PageChildren = define[PageDescribing, []string](ofx.ParamPropPageChild, tokensCodec[string]{})

	ParametricDimension = define[ParametricDescribing, int](ofx.ParamPropParametricDimension, intCodec{})
	ParametricRange     = define[ParametricDescribing, ofx.RangeD](ofx.ParamPropParametricRange, rangeDCodec{})
)

// ParamSetNeedsSyncing asks the host to call SyncPrivateData.
var ParamSetNeedsSyncing = define[ParamSetProps, bool](ofx.PropParamSetNeedsSyncing, boolCodec{})
