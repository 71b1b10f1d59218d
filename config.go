package response

import (
	"fmt"

	"github.com/joho/godotenv"
)

// LoadEnv reads the provided dotenv files into the process environment,
// making their values available to the EnvVarOr* helpers.
//
// Values already present in the environment win over file values.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("%w: %s", ErrBadConfig, err)
	}

	return nil
}

// CurrentEnv reads the Environment out of the ENVIRONMENT variable,
// defaulting to Development.
func CurrentEnv() Environment {
	return EnvVarOrEnv("ENVIRONMENT", Development)
}
