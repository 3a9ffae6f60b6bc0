package version

const (
	AppName    = "Avatar Forge"
	AppVersion = "0.3.0"
)
