package config

// Name length limits enforced before any remote call
const (
	MaxDriveNameLength  = 128
	MaxFolderNameLength = 128
)
