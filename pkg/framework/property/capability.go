package property

// Capability interfaces. Each one names a group of properties; the unexported
// marker method means only views declared in this package can satisfy it.
type (
	Typed interface {
		View
		typed()
	}
	Named interface {
		View
		named()
	}
	Labelled interface {
		View
		labelled()
	}
	Versioned interface {
		View
		versioned()
	}

	HostDescribing interface {
		View
		hostDescribing()
	}
	EffectDescribing interface {
		View
		effectDescribing()
	}
	// FeatureFlags covers support flags declared by both host and effect.
	FeatureFlags interface {
		View
		featureFlags()
	}
	ContextSupporting interface {
		View
		contextSupporting()
	}
	ComponentSupporting interface {
		View
		componentSupporting()
	}
	Contextual interface {
		View
		contextual()
	}
	EffectInstanceProps interface {
		View
		effectInstanceProps()
	}
	FrameRated interface {
		View
		frameRated()
	}

	ClipDescribing interface {
		View
		clipDescribing()
	}
	ClipInstanceProps interface {
		View
		clipInstanceProps()
	}
	PixelTyped interface {
		View
		pixelTyped()
	}
	Aspected interface {
		View
		aspected()
	}
	ImageProps interface {
		View
		imageProps()
	}
	Textured interface {
		View
		textured()
	}

	Timed interface {
		View
		timed()
	}
	Scaled interface {
		View
		scaled()
	}
	Fielded interface {
		View
		fielded()
	}
	Windowed interface {
		View
		windowed()
	}
	Sequenced interface {
		View
		sequenced()
	}
	GPUAware interface {
		View
		gpuAware()
	}
	ChangeReasoned interface {
		View
		changeReasoned()
	}
	SequenceRanged interface {
		View
		sequenceRanged()
	}
	InterestRegion interface {
		View
		interestRegion()
	}

	DefinesRegion interface {
		View
		definesRegion()
	}
	RequestsRegions interface {
		View
		requestsRegions()
	}
	NeedsFrames interface {
		View
		needsFrames()
	}
	DefinesTimeDomain interface {
		View
		definesTimeDomain()
	}
	SetsClipPreferences interface {
		View
		setsClipPreferences()
	}
	ReportsIdentity interface {
		View
		reportsIdentity()
	}

	ParamDescribing interface {
		View
		paramDescribing()
	}
	DoubleDescribing interface {
		View
		doubleDescribing()
	}
	IntDescribing interface {
		View
		intDescribing()
	}
	BoolDescribing interface {
		View
		boolDescribing()
	}
	ChoiceDescribing interface {
		View
		choiceDescribing()
	}
	StringDescribing interface {
		View
		stringDescribing()
	}
	GroupDescribing interface {
		View
		groupDescribing()
	}
	PageDescribing interface {
		View
		pageDescribing()
	}
	ParametricDescribing interface {
		View
		parametricDescribing()
	}
	ParamSetProps interface {
		View
		paramSetProps()
	}
)
