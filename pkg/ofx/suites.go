package ofx

// Host is the plugin's view of the host descriptor delivered through setHost.
type Host interface {
	// Properties returns the host's own property set.
	Properties() PropertySetHandle
	// FetchSuite returns the named suite at the given version, or nil when the
	// host does not provide it. The concrete type is one of the suite
	// interfaces below.
	FetchSuite(name string, version int) any
}

// PropertySuiteV1 reads and writes property sets. Pointer-valued properties are
// carried as uintptr; the plugin only ever stores ids or host addresses in them.
type PropertySuiteV1 interface {
	PropSetPointer(h PropertySetHandle, name string, index int, v uintptr) Status
	PropSetString(h PropertySetHandle, name string, index int, v string) Status
	PropSetDouble(h PropertySetHandle, name string, index int, v float64) Status
	PropSetInt(h PropertySetHandle, name string, index int, v int) Status
	PropGetPointer(h PropertySetHandle, name string, index int) (uintptr, Status)
	PropGetString(h PropertySetHandle, name string, index int) (string, Status)
	PropGetDouble(h PropertySetHandle, name string, index int) (float64, Status)
	PropGetInt(h PropertySetHandle, name string, index int) (int, Status)
	PropReset(h PropertySetHandle, name string) Status
	PropGetDimension(h PropertySetHandle, name string) (int, Status)
}

// ImageEffectSuiteV1 is the core image-effect suite.
type ImageEffectSuiteV1 interface {
	GetPropertySet(effect ImageEffectHandle) (PropertySetHandle, Status)
	GetParamSet(effect ImageEffectHandle) (ParamSetHandle, Status)
	ClipDefine(effect ImageEffectHandle, name string) (PropertySetHandle, Status)
	ClipGetHandle(effect ImageEffectHandle, name string) (ImageClipHandle, PropertySetHandle, Status)
	ClipGetPropertySet(clip ImageClipHandle) (PropertySetHandle, Status)
	// ClipGetImage fetches an image; a nil region asks for the full region of definition.
	ClipGetImage(clip ImageClipHandle, t Time, region *RectD) (PropertySetHandle, Status)
	ClipReleaseImage(image PropertySetHandle) Status
	ClipGetRegionOfDefinition(clip ImageClipHandle, t Time) (RectD, Status)
	Abort(effect ImageEffectHandle) bool
}

// ParameterSuiteV1 defines and evaluates parameters. The C suite's variadic
// value calls are split per value type.
type ParameterSuiteV1 interface {
	ParamDefine(set ParamSetHandle, paramType ParamType, name string) (PropertySetHandle, Status)
	ParamGetHandle(set ParamSetHandle, name string) (ParamHandle, PropertySetHandle, Status)
	ParamSetGetPropertySet(set ParamSetHandle) (PropertySetHandle, Status)
	ParamGetPropertySet(param ParamHandle) (PropertySetHandle, Status)

	ParamGetValueInt(param ParamHandle) (int, Status)
	ParamGetValueDouble(param ParamHandle) (float64, Status)
	// ParamGetValueString returns nil when the host hands back a NULL string.
	ParamGetValueString(param ParamHandle) (*string, Status)
	ParamGetValueAtTimeInt(param ParamHandle, t Time) (int, Status)
	ParamGetValueAtTimeDouble(param ParamHandle, t Time) (float64, Status)
	ParamGetValueAtTimeString(param ParamHandle, t Time) (*string, Status)

	ParamSetValueInt(param ParamHandle, v int) Status
	ParamSetValueDouble(param ParamHandle, v float64) Status
	ParamSetValueString(param ParamHandle, v string) Status
	ParamSetValueAtTimeInt(param ParamHandle, t Time, v int) Status
	ParamSetValueAtTimeDouble(param ParamHandle, t Time, v float64) Status
	ParamSetValueAtTimeString(param ParamHandle, t Time, v string) Status

	ParamGetNumKeys(param ParamHandle) (int, Status)
	ParamGetKeyTime(param ParamHandle, nth int) (Time, Status)
	ParamGetKeyIndex(param ParamHandle, t Time, direction KeySearch) (int, Status)
	ParamDeleteKey(param ParamHandle, t Time) Status
	ParamDeleteAllKeys(param ParamHandle) Status

	ParamEditBegin(set ParamSetHandle, name string) Status
	ParamEditEnd(set ParamSetHandle) Status
}

// MemorySuiteV1 allocates host memory.
type MemorySuiteV1 interface {
	MemoryAlloc(effect ImageEffectHandle, size int) (uintptr, Status)
	MemoryFree(ptr uintptr) Status
}

// MultiThreadSuiteV1 runs work on host threads. MultiThread blocks until the
// host has invoked the plugin's thread entry with arg on every thread.
type MultiThreadSuiteV1 interface {
	MultiThread(threads int, arg uintptr) Status
	MultiThreadNumCPUs() (int, Status)
	MultiThreadIndex() (int, Status)
	MultiThreadIsSpawnedThread() bool
	MutexCreate(lockCount int) (MutexHandle, Status)
	MutexDestroy(m MutexHandle) Status
	MutexLock(m MutexHandle) Status
	MutexUnLock(m MutexHandle) Status
	MutexTryLock(m MutexHandle) Status
}

// MessageSuiteV1 posts a message to the user.
type MessageSuiteV1 interface {
	Message(effect ImageEffectHandle, kind MessageType, id, text string) Status
}

// MessageSuiteV2 adds persistent messages.
type MessageSuiteV2 interface {
	MessageSuiteV1
	SetPersistentMessage(effect ImageEffectHandle, kind MessageType, id, text string) Status
	ClearPersistentMessage(effect ImageEffectHandle) Status
}

// ProgressSuiteV1 drives a host progress bar.
type ProgressSuiteV1 interface {
	ProgressStart(effect ImageEffectHandle, label string) Status
	ProgressUpdate(effect ImageEffectHandle, progress float64) Status
	ProgressEnd(effect ImageEffectHandle) Status
}

// ProgressSuiteV2 adds a message id to ProgressStart.
type ProgressSuiteV2 interface {
	ProgressStartWithID(effect ImageEffectHandle, label, messageID string) Status
	ProgressUpdate(effect ImageEffectHandle, progress float64) Status
	ProgressEnd(effect ImageEffectHandle) Status
}

// TimeLineSuiteV1 queries and moves the host timeline.
type TimeLineSuiteV1 interface {
	GetTime(effect ImageEffectHandle) (Time, Status)
	GotoTime(effect ImageEffectHandle, t Time) Status
	GetTimeBounds(effect ImageEffectHandle) (Time, Time, Status)
}

// ParametricParameterSuiteV1 evaluates and edits parametric curves.
type ParametricParameterSuiteV1 interface {
	ParametricParamGetValue(param ParamHandle, curve int, t Time, x float64) (float64, Status)
	ParametricParamGetNControlPoints(param ParamHandle, curve int, t Time) (int, Status)
	ParametricParamGetNthControlPoint(param ParamHandle, curve int, t Time, nth int) (float64, float64, Status)
	ParametricParamSetNthControlPoint(param ParamHandle, curve int, t Time, nth int, key, value float64, addKey bool) Status
	ParametricParamAddControlPoint(param ParamHandle, curve int, t Time, key, value float64, addKey bool) Status
	ParametricParamDeleteControlPoint(param ParamHandle, curve int, nth int) Status
	ParametricParamDeleteAllControlPoints(param ParamHandle, curve int) Status
}

// ImageEffectOpenGLRenderSuiteV1 loads clips as GPU textures.
type ImageEffectOpenGLRenderSuiteV1 interface {
	// ClipLoadTexture loads a texture; format may be empty for the clip's own depth.
	ClipLoadTexture(clip ImageClipHandle, t Time, format BitDepth, region *RectD) (PropertySetHandle, Status)
	ClipFreeTexture(texture PropertySetHandle) Status
	FlushResources() Status
}
