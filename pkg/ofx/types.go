package ofx

import "unsafe"

// Opaque handles owned by the host. The plugin never dereferences them; it only
// passes them back through suite calls.
type (
	PropertySetHandle unsafe.Pointer
	ImageEffectHandle unsafe.Pointer
	ImageClipHandle   unsafe.Pointer
	ParamSetHandle    unsafe.Pointer
	ParamHandle       unsafe.Pointer
	MutexHandle       unsafe.Pointer
)

// Time is a frame time in the host's timeline units.
type Time float64

// RectI is an integer rectangle, x1/y1 inclusive and x2/y2 exclusive.
type RectI struct {
	X1, Y1, X2, Y2 int
}

// Width returns x2-x1.
func (r RectI) Width() int { return r.X2 - r.X1 }

// Height returns y2-y1.
func (r RectI) Height() int { return r.Y2 - r.Y1 }

// Empty reports whether the rectangle covers no pixels.
func (r RectI) Empty() bool { return r.X1 >= r.X2 || r.Y1 >= r.Y2 }

// RectD is a canonical-coordinate rectangle.
type RectD struct {
	X1, Y1, X2, Y2 float64
}

// Width returns x2-x1.
func (r RectD) Width() float64 { return r.X2 - r.X1 }

// Height returns y2-y1.
func (r RectD) Height() float64 { return r.Y2 - r.Y1 }

// PointD is a 2D double point, also used for render scales.
type PointD struct {
	X, Y float64
}

// RangeD is a closed double range, used for frame ranges.
type RangeD struct {
	Min, Max float64
}

// Context names the context an effect is described or instantiated in.
type Context string

const (
	ContextFilter     Context = "OfxImageEffectContextFilter"
	ContextGeneral    Context = "OfxImageEffectContextGeneral"
	ContextTransition Context = "OfxImageEffectContextTransition"
	ContextPaint      Context = "OfxImageEffectContextPaint"
	ContextGenerator  Context = "OfxImageEffectContextGenerator"
	ContextRetimer    Context = "OfxImageEffectContextRetimer"
)

// BitDepth is a pixel channel depth token.
type BitDepth string

const (
	BitDepthNone  BitDepth = "OfxBitDepthNone"
	BitDepthByte  BitDepth = "OfxBitDepthByte"
	BitDepthShort BitDepth = "OfxBitDepthShort"
	BitDepthHalf  BitDepth = "OfxBitDepthHalf"
	BitDepthFloat BitDepth = "OfxBitDepthFloat"
)

// PixelComponent is a pixel layout token.
type PixelComponent string

const (
	ComponentNone  PixelComponent = "OfxImageComponentNone"
	ComponentRGBA  PixelComponent = "OfxImageComponentRGBA"
	ComponentRGB   PixelComponent = "OfxImageComponentRGB"
	ComponentAlpha PixelComponent = "OfxImageComponentAlpha"
)

// PreMultiplication describes how alpha relates to colour in an image.
type PreMultiplication string

const (
	ImageOpaque          PreMultiplication = "OfxImageOpaque"
	ImagePreMultiplied   PreMultiplication = "OfxImagePreMultiplied"
	ImageUnPreMultiplied PreMultiplication = "OfxImageUnPreMultiplied"
)

// Field identifies video fields.
type Field string

const (
	FieldNone    Field = "OfxImageFieldNone"
	FieldBoth    Field = "OfxImageFieldBoth"
	FieldLower   Field = "OfxImageFieldLower"
	FieldUpper   Field = "OfxImageFieldUpper"
	FieldSingle  Field = "OfxImageFieldSingle"
	FieldDoubled Field = "OfxImageFieldDoubled"
)

// ChangeReason says why an instance-changed action fired.
type ChangeReason string

const (
	ChangeUserEdited   ChangeReason = "OfxChangeUserEdited"
	ChangePluginEdited ChangeReason = "OfxChangePluginEdited"
	ChangeTime         ChangeReason = "OfxChangeTime"
)

// RenderThreadSafety declares how many renders may run concurrently.
type RenderThreadSafety string

const (
	RenderUnsafe       RenderThreadSafety = "OfxImageEffectRenderUnsafe"
	RenderInstanceSafe RenderThreadSafety = "OfxImageEffectRenderInstanceSafe"
	RenderFullySafe    RenderThreadSafety = "OfxImageEffectRenderFullySafe"
)

// ParamType names a parameter kind for paramDefine.
type ParamType string

const (
	ParamTypeInteger    ParamType = "OfxParamTypeInteger"
	ParamTypeDouble     ParamType = "OfxParamTypeDouble"
	ParamTypeBoolean    ParamType = "OfxParamTypeBoolean"
	ParamTypeChoice     ParamType = "OfxParamTypeChoice"
	ParamTypeString     ParamType = "OfxParamTypeString"
	ParamTypeGroup      ParamType = "OfxParamTypeGroup"
	ParamTypePage       ParamType = "OfxParamTypePage"
	ParamTypePushButton ParamType = "OfxParamTypePushButton"
	ParamTypeParametric ParamType = "OfxParamTypeParametric"
)

// DoubleType tells the host how to interpret a double parameter.
type DoubleType string

const (
	DoubleTypePlain        DoubleType = "OfxParamDoubleTypePlain"
	DoubleTypeAngle        DoubleType = "OfxParamDoubleTypeAngle"
	DoubleTypeScale        DoubleType = "OfxParamDoubleTypeScale"
	DoubleTypeTime         DoubleType = "OfxParamDoubleTypeTime"
	DoubleTypeAbsoluteTime DoubleType = "OfxParamDoubleTypeAbsoluteTime"
	DoubleTypeX            DoubleType = "OfxParamDoubleTypeX"
	DoubleTypeXAbsolute    DoubleType = "OfxParamDoubleTypeXAbsolute"
	DoubleTypeY            DoubleType = "OfxParamDoubleTypeY"
	DoubleTypeYAbsolute    DoubleType = "OfxParamDoubleTypeYAbsolute"
)

// StringMode tells the host how to edit a string parameter.
type StringMode string

const (
	StringSingleLine    StringMode = "OfxParamStringIsSingleLine"
	StringMultiLine     StringMode = "OfxParamStringIsMultiLine"
	StringFilePath      StringMode = "OfxParamStringIsFilePath"
	StringDirectoryPath StringMode = "OfxParamStringIsDirectoryPath"
	StringLabel         StringMode = "OfxParamStringIsLabel"
)

// MessageType classifies messages posted through the message suites.
type MessageType string

const (
	MessageFatal    MessageType = "OfxMessageFatal"
	MessageError    MessageType = "OfxMessageError"
	MessageWarning  MessageType = "OfxMessageWarning"
	MessageMessage  MessageType = "OfxMessageMessage"
	MessageLog      MessageType = "OfxMessageLog"
	MessageQuestion MessageType = "OfxMessageQuestion"
)

// KeySearch is the direction argument of paramGetKeyIndex.
type KeySearch int

const (
	KeySearchPrevious KeySearch = -1
	KeySearchExact    KeySearch = 0
	KeySearchNext     KeySearch = 1
)
