package game

const (
	ErrorInvalidCollider = "invalid capsule collider (radius=%v length=%v)"
	ErrorDuplicatePuppet = "puppet %d is already in the scene"

	ErrorSettingsExist   = "settings file %s already exists"
	ErrorSettingsMissing = "settings file %s doesn't exist"
	ErrorSettingsFormat  = "unsupported settings format %q"
)
