package cli

const (
	FlagTypeBool        FlagType = "bool"
	FlagTypeDuration    FlagType = "duration"
	FlagTypeFloat       FlagType = "float"
	FlagTypeInteger     FlagType = "integer"
	FlagTypeString      FlagType = "string"
	FlagTypeStringSlice FlagType = "stringslice"
)

const Logo = `
 _                         _
| |_ ___ _ __   __ _ _ __ | |_ _ __ _   _
| __/ _ \ '_ \ / _` + "`" + ` | '_ \| __| '__| | | |
| ||  __/ | | | (_| | | | | |_| |  | |_| |
 \__\___|_| |_|\__,_|_| |_|\__|_|   \__, |
                                    |___/
`
