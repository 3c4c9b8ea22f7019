package cli

// LookupEnv matches os.LookupEnv.
type LookupEnv func(key string) (string, bool)

// blockSizeEnv lists the variables consulted, in order, when no scaling
// flag was given.
//
//nolint:gochecknoglobals // Config constant
var blockSizeEnv = []string{"DU_BLOCK_SIZE", "BLOCK_SIZE", "BLOCKSIZE"}

// envScale returns the block size or human mode requested by the environment.
func envScale(lookup LookupEnv) (string, humanMode) {
	for _, key := range blockSizeEnv {
		value, ok := lookup(key)
		if !ok || value == "" {
			continue
		}

		switch value {
		case "human-readable":
			return "", humanBinary
		case "si":
			return "", humanSI
		default:
			return value, humanNone
		}
	}

	return "", humanNone
}

// envTimeStyle returns TIME_STYLE if set.
func envTimeStyle(lookup LookupEnv) string {
	if value, ok := lookup("TIME_STYLE"); ok {
		return value
	}

	return ""
}
