package credential

const (
	LogPrefixSave  = "internal.credential.Save"
	LogPrefixClear = "internal.credential.Clear"
	LogPrefixLoad  = "internal.credential.load"

	fileMode = 0o600
	dirMode  = 0o700
)
