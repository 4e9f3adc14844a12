package hostfacts

import (
	"bufio"
	"os"
	"strings"
)

var osReleasePath = "/etc/os-release"

// parseOSRelease reads an os-release style file into a key/value map.
// Values may be double-quoted; lines without an equals sign are skipped.
func parseOSRelease(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	fields := make(map[string]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.Trim(strings.TrimSpace(value), `"`)
	}
	return fields, scanner.Err()
}
