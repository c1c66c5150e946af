package consts

const (
	ApplicationName    = "PawCare Admin API"
	ApplicationVersion = "1.0.0"
)
