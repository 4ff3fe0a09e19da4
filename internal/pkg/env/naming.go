package env

import (
	"strings"
)

// NamingConvention maps a flag name to an ENV variable name.
type NamingConvention struct {
	prefix string
}

func NewNamingConvention(prefix string) *NamingConvention {
	return &NamingConvention{prefix: prefix}
}

// FlagToEnv converts flag name to ENV variable name
// for example "read-timeout" -> "REMOTE_FILES_READ_TIMEOUT".
func (n *NamingConvention) FlagToEnv(flagName string) string {
	if len(flagName) == 0 {
		panic("flag name cannot be empty")
	}

	name := strings.NewReplacer("-", "_", ".", "_").Replace(flagName)
	return n.prefix + strings.ToUpper(name)
}
