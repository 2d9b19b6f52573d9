package constants

const (
	// AppName is used for the keyring service and default config paths
	AppName = "lifetrack"

	// DefaultKeyringUser is the keyring account the connection string is stored under
	DefaultKeyringUser = "db-connection"

	// ConnectionEnvVar overrides the stored connection string when set
	ConnectionEnvVar = "LIFETRACK_DB_CONNECTION"

	// MaxActiveHabits caps the number of non-deleted habits
	MaxActiveHabits = 10

	// MaxHabitNameLen bounds a habit name after whitespace trimming
	MaxHabitNameLen = 20
)
