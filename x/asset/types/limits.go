package types

// Field bounds for registered asset metadata.
const (
	AssetIdMaxLen        = 128
	NameMaxLen           = 64
	ConditionGradeMaxLen = 32
	ImageUriMaxLen       = 200
)
