package commands

import "os"

const (
	databaseEnv     = "CONFIGDOC_DATABASE"
	defaultDatabase = "configdoc.db"
)

type RootArgs struct {
	logLevel  *string
	logFormat *string
	database  *string
}

func NewRootArgs() *RootArgs {
	return &RootArgs{
		logLevel:  new(string),
		logFormat: new(string),
		database:  new(string),
	}
}

func (a *RootArgs) GetLogLevel() string {
	return *a.logLevel
}

func (a *RootArgs) GetLogFormat() string {
	return *a.logFormat
}

func (a *RootArgs) GetDatabase() string {
	return *a.database
}

// DefaultDatabase returns the database path used when --database is not set.
func DefaultDatabase() string {
	if p := os.Getenv(databaseEnv); p != "" {
		return p
	}

	return defaultDatabase
}
