// Package env loads PIPECHECK_* style settings from a .env file into the
// process environment. Existing environment variables are never overwritten,
// so real environment always wins over the file.
package env

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// LoadFromDir loads a .env file from the given directory, if present.
func LoadFromDir(dir string) error {
	return Load(filepath.Join(dir, ".env"))
}

// Load reads KEY=VALUE lines from path and sets each key that is not already
// present in the environment. A missing file is not an error.
func Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, val, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		_ = os.Setenv(key, val)
	}
	return scanner.Err()
}

// parseLine extracts a key/value pair from one .env line. Blank lines,
// comments, and lines without "=" yield ok=false. A leading "export " and
// surrounding quotes on the value are stripped.
func parseLine(line string) (key, val string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))

	key, val, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	val = strings.Trim(strings.TrimSpace(val), `"'`)
	return key, val, true
}
