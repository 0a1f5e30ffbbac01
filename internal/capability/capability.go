// Package capability consolidates protocol version-skew checks so message
// handlers ask "does this connection support X?" instead of comparing raw
// version numbers inline.
package capability

// ClientVersion is the protocol version this client speaks.
const ClientVersion = 2000

// Protocol versions at which features appeared.
const (
	VersionForGameOptions     = 1107 // game-option negotiation
	VersionForServerFeatures  = 1190 // feature flags in the version report
	VersionForNewDevCardTypes = 2000 // renumbered development card codes
	VersionForLongOptionNames = 2000 // option keys >3 chars or with "_"
	VersionForI18N            = 2000 // localized game-type strings
)

// Caps answers capability questions for one connection. The practice
// connection always runs the client's own version.
type Caps struct {
	ServerVersion int
}

// ForPractice returns the capability set of the in-process practice server.
func ForPractice() Caps {
	return Caps{ServerVersion: ClientVersion}
}

// SupportsGameOptions reports whether the server understands the
// game-option negotiation messages at all.
func (c Caps) SupportsGameOptions() bool {
	return c.ServerVersion >= VersionForGameOptions
}

// SupportsServerFeatures reports whether the version report carries feature
// flags.
func (c Caps) SupportsServerFeatures() bool {
	return c.ServerVersion >= VersionForServerFeatures
}

// SupportsNewDevCardTypes reports whether the server uses the renumbered
// development card codes; older servers send the legacy knight and unknown
// codes.
func (c Caps) SupportsNewDevCardTypes() bool {
	return c.ServerVersion >= VersionForNewDevCardTypes
}

// SupportsLongOptionNames reports whether option keys longer than three
// characters, or containing an underscore, fit the server's wire format.
func (c Caps) SupportsLongOptionNames() bool {
	return c.ServerVersion >= VersionForLongOptionNames
}

// SupportsI18N reports whether the server can localize game-type strings.
func (c Caps) SupportsI18N() bool {
	return c.ServerVersion >= VersionForI18N
}

// IsLongOptionName reports whether an option key needs
// SupportsLongOptionNames to be sent at all.
func IsLongOptionName(key string) bool {
	if len(key) > 3 {
		return true
	}
	for i := 0; i < len(key); i++ {
		if key[i] == '_' {
			return true
		}
	}
	return false
}
