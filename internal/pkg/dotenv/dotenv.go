package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load reads .env files when present and applies command line overrides.
// A missing file is not an error: the agent can run on plain environment.
func Load(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}

	var portFlag, storeFlag string
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.StringVar(&storeFlag, "store", "", "Local store file (overrides STORE_PATH environment variable)")
	flag.Parse()

	if portFlag != "" {
		if err := os.Setenv("PORT", portFlag); err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	if storeFlag != "" {
		if err := os.Setenv("STORE_PATH", storeFlag); err != nil {
			return fmt.Errorf("failed to set STORE_PATH environment variable: %w", err)
		}
	}
	return nil
}
