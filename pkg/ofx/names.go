package ofx

// Plugin API identification.
const (
	ImageEffectPluginAPI        = "OfxImageEffectPluginAPI"
	ImageEffectPluginAPIVersion = 1
)

// Global action names.
const (
	ActionLoad                  = "OfxActionLoad"
	ActionDescribe              = "OfxActionDescribe"
	ActionUnload                = "OfxActionUnload"
	ActionPurgeCaches           = "OfxActionPurgeCaches"
	ActionSyncPrivateData       = "OfxActionSyncPrivateData"
	ActionCreateInstance        = "OfxActionCreateInstance"
	ActionDestroyInstance       = "OfxActionDestroyInstance"
	ActionInstanceChanged       = "OfxActionInstanceChanged"
	ActionBeginInstanceChanged  = "OfxActionBeginInstanceChanged"
	ActionEndInstanceChanged    = "OfxActionEndInstanceChanged"
	ActionBeginInstanceEdit     = "OfxActionBeginInstanceEdit"
	ActionEndInstanceEdit       = "OfxActionEndInstanceEdit"
	ActionOpenGLContextAttached = "OfxActionOpenGLContextAttached"
	ActionOpenGLContextDetached = "OfxActionOpenGLContextDetached"
	ActionDialog                = "OfxActionDialog"
)

// Image-effect action names.
const (
	ImageEffectActionGetRegionOfDefinition = "OfxImageEffectActionGetRegionOfDefinition"
	ImageEffectActionGetRegionsOfInterest  = "OfxImageEffectActionGetRegionsOfInterest"
	ImageEffectActionGetTimeDomain         = "OfxImageEffectActionGetTimeDomain"
	ImageEffectActionGetFramesNeeded       = "OfxImageEffectActionGetFramesNeeded"
	ImageEffectActionGetClipPreferences    = "OfxImageEffectActionGetClipPreferences"
	ImageEffectActionIsIdentity            = "OfxImageEffectActionIsIdentity"
	ImageEffectActionRender                = "OfxImageEffectActionRender"
	ImageEffectActionBeginSequenceRender   = "OfxImageEffectActionBeginSequenceRender"
	ImageEffectActionEndSequenceRender     = "OfxImageEffectActionEndSequenceRender"
	ImageEffectActionDescribeInContext     = "OfxImageEffectActionDescribeInContext"
	ImageEffectActionGetInverseDistortion  = "OfxImageEffectActionGetInverseDistortion"
	ImageEffectActionInvokeHelp            = "OfxImageEffectActionInvokeHelp"
	ImageEffectActionInvokeAbout           = "OfxImageEffectActionInvokeAbout"
	ImageEffectActionVegasKeyframeUplift   = "OfxImageEffectActionVegasKeyframeUplift"
)

// Suite names passed to fetchSuite.
const (
	SuiteImageEffect             = "OfxImageEffectSuite"
	SuiteProperty                = "OfxPropertySuite"
	SuiteParameter               = "OfxParameterSuite"
	SuiteMemory                  = "OfxMemorySuite"
	SuiteMultiThread             = "OfxMultiThreadSuite"
	SuiteMessage                 = "OfxMessageSuite"
	SuiteProgress                = "OfxProgressSuite"
	SuiteTimeLine                = "OfxTimeLineSuite"
	SuiteParametricParameter     = "OfxParametricParameterSuite"
	SuiteImageEffectOpenGLRender = "OfxImageEffectOpenGLRenderSuite"
)

// Object type tokens stored under PropType.
const (
	TypeImageEffectHost     = "OfxTypeImageEffectHost"
	TypeImageEffect         = "OfxTypeImageEffect"
	TypeImageEffectInstance = "OfxTypeImageEffectInstance"
	TypeParameter           = "OfxTypeParameter"
	TypeParameterInstance   = "OfxTypeParameterInstance"
	TypeClip                = "OfxTypeClip"
	TypeImage               = "OfxTypeImage"
)

// Well-known clip names.
const (
	OutputClipName       = "Output"
	SimpleSourceClipName = "Source"
)

// Generic property names.
const (
	PropType              = "OfxPropType"
	PropName              = "OfxPropName"
	PropLabel             = "OfxPropLabel"
	PropShortLabel        = "OfxPropShortLabel"
	PropLongLabel         = "OfxPropLongLabel"
	PropVersion           = "OfxPropVersion"
	PropVersionLabel      = "OfxPropVersionLabel"
	PropAPIVersion        = "OfxPropAPIVersion"
	PropPluginDescription = "OfxPropPluginDescription"
	PropTime              = "OfxPropTime"
	PropInstanceData      = "OfxPropInstanceData"
	PropChangeReason      = "OfxPropChangeReason"
	PropIsInteractive     = "OfxPropIsInteractive"
)

// Image-effect property names.
const (
	ImageEffectPropContext                    = "OfxImageEffectPropContext"
	ImageEffectPropSupportedContexts          = "OfxImageEffectPropSupportedContexts"
	ImageEffectPluginPropGrouping             = "OfxImageEffectPluginPropGrouping"
	ImageEffectPropSupportedPixelDepths       = "OfxImageEffectPropSupportedPixelDepths"
	ImageEffectPropSupportedComponents        = "OfxImageEffectPropSupportedComponents"
	ImageEffectPropSupportsMultipleClipDepths = "OfxImageEffectPropSupportsMultipleClipDepths"
	ImageEffectPropSupportsTiles              = "OfxImageEffectPropSupportsTiles"
	ImageEffectPropTemporalClipAccess         = "OfxImageEffectPropTemporalClipAccess"
	ImageEffectPropSupportsMultiResolution    = "OfxImageEffectPropSupportsMultiResolution"
	ImageEffectPropSupportsOverlays           = "OfxImageEffectPropSupportsOverlays"
	ImageEffectPluginRenderThreadSafety       = "OfxImageEffectPluginRenderThreadSafety"
	ImageEffectPluginPropHostFrameThreading   = "OfxImageEffectPluginPropHostFrameThreading"
	ImageEffectPluginPropSingleInstance       = "OfxImageEffectPluginPropSingleInstance"
	ImageEffectPropOpenGLRenderSupported      = "OfxImageEffectPropOpenGLRenderSupported"
	ImageEffectPropOpenGLEnabled              = "OfxImageEffectPropOpenGLEnabled"
	ImageEffectPropOpenGLTextureIndex         = "OfxImageEffectPropOpenGLTextureIndex"
	ImageEffectPropOpenGLTextureTarget        = "OfxImageEffectPropOpenGLTextureTarget"
	ImageEffectPropProjectSize                = "OfxImageEffectPropProjectSize"
	ImageEffectPropProjectOffset              = "OfxImageEffectPropProjectOffset"
	ImageEffectPropProjectExtent              = "OfxImageEffectPropProjectExtent"
	ImageEffectPropProjectPixelAspectRatio    = "OfxImageEffectPropProjectPixelAspectRatio"
	ImageEffectInstancePropEffectDuration     = "OfxImageEffectInstancePropEffectDuration"
	ImageEffectPropFrameRate                  = "OfxImageEffectPropFrameRate"
	ImageEffectPropFrameRange                 = "OfxImageEffectPropFrameRange"
	ImageEffectPropFrameStep                  = "OfxImageEffectPropFrameStep"
	ImageEffectPropUnmappedFrameRange         = "OfxImageEffectPropUnmappedFrameRange"
	ImageEffectPropRenderScale                = "OfxImageEffectPropRenderScale"
	ImageEffectPropRenderWindow               = "OfxImageEffectPropRenderWindow"
	ImageEffectPropFieldToRender              = "OfxImageEffectPropFieldToRender"
	ImageEffectPropSequentialRenderStatus     = "OfxImageEffectPropSequentialRenderStatus"
	ImageEffectPropInteractiveRenderStatus    = "OfxImageEffectPropInteractiveRenderStatus"
	ImageEffectPropRenderQualityDraft         = "OfxImageEffectPropRenderQualityDraft"
	ImageEffectPropRegionOfDefinition         = "OfxImageEffectPropRegionOfDefinition"
	ImageEffectPropRegionOfInterest           = "OfxImageEffectPropRegionOfInterest"
	ImageEffectPropPixelDepth                 = "OfxImageEffectPropPixelDepth"
	ImageEffectPropComponents                 = "OfxImageEffectPropComponents"
	ImageEffectPropPreMultiplication          = "OfxImageEffectPropPreMultiplication"
	ImageEffectFrameVarying                   = "OfxImageEffectFrameVarying"
	ImageEffectHostPropIsBackground           = "OfxImageEffectHostPropIsBackground"
)

// Clip and image property names.
const (
	ImageClipPropOptional           = "OfxImageClipPropOptional"
	ImageClipPropIsMask             = "OfxImageClipPropIsMask"
	ImageClipPropConnected          = "OfxImageClipPropConnected"
	ImageClipPropUnmappedPixelDepth = "OfxImageClipPropUnmappedPixelDepth"
	ImageClipPropUnmappedComponents = "OfxImageClipPropUnmappedComponents"
	ImageClipPropContinuousSamples  = "OfxImageClipPropContinuousSamples"
	ImageClipPropFieldOrder         = "OfxImageClipPropFieldOrder"
	ImagePropPixelAspectRatio       = "OfxImagePropPixelAspectRatio"
	ImagePropBounds                 = "OfxImagePropBounds"
	ImagePropRowBytes               = "OfxImagePropRowBytes"
	ImagePropData                   = "OfxImagePropData"
	ImagePropRegionOfDefinition     = "OfxImagePropRegionOfDefinition"
	ImagePropUniqueIdentifier       = "OfxImagePropUniqueIdentifier"
	ImagePropField                  = "OfxImagePropField"
)

// Per-clip out-argument prefixes; the clip name is appended.
const (
	ImageClipPropComponentsPrefix = "OfxImageClipPropComponents_"
	ImageClipPropDepthPrefix      = "OfxImageClipPropDepth_"
	ImageClipPropPARPrefix        = "OfxImageClipPropPAR_"
	ImageClipPropRoIPrefix        = "OfxImageClipPropRoI_"
	ImageClipPropFrameRangePrefix = "OfxImageClipPropFrameRange_"
)

// Parameter property names.
const (
	ParamPropType             = "OfxParamPropType"
	ParamPropHint             = "OfxParamPropHint"
	ParamPropScriptName       = "OfxParamPropScriptName"
	ParamPropParent           = "OfxParamPropParent"
	ParamPropAnimates         = "OfxParamPropAnimates"
	ParamPropEnabled          = "OfxParamPropEnabled"
	ParamPropSecret           = "OfxParamPropSecret"
	ParamPropEvaluateOnChange = "OfxParamPropEvaluateOnChange"
	ParamPropCanUndo          = "OfxParamPropCanUndo"
	ParamPropDefault          = "OfxParamPropDefault"
	ParamPropMin              = "OfxParamPropMin"
	ParamPropMax              = "OfxParamPropMax"
	ParamPropDisplayMin       = "OfxParamPropDisplayMin"
	ParamPropDisplayMax       = "OfxParamPropDisplayMax"
	ParamPropDoubleType       = "OfxParamPropDoubleType"
	ParamPropIncrement        = "OfxParamPropIncrement"
	ParamPropDigits           = "OfxParamPropDigits"
	ParamPropStringMode       = "OfxParamPropStringMode"
	ParamPropChoiceOption     = "OfxParamPropChoiceOption"
	ParamPropPageChild        = "OfxParamPropPageChild"
	ParamPropGroupOpen        = "OfxParamPropGroupOpen"

	ParamPropParametricDimension = "OfxParamPropParametricDimension"
	ParamPropParametricRange     = "OfxParamPropParametricRange"
	PropParamSetNeedsSyncing     = "OfxPropParamSetNeedsSyncing"
)

// ParamHostPropMaxParameters is the host's parameter limit, -1 when unbounded.
const ParamHostPropMaxParameters = "OfxParamHostPropMaxParameters"
