package config

import "os"

// Indirections over the process environment, swapped in tests.
var (
	lookupEnv = os.LookupEnv
	setEnv    = os.Setenv
)
