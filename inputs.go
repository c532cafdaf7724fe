package main

import (
	"bufio"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// readInputs loads input strings from a file, one per line. Blank lines
// and #-comments are skipped.
func readInputs(file string) ([]string, error) {
	buf, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer buf.Close()

	var inputs []string

	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "#") || line == "" {
			continue
		}

		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	log.Debugf("read %d input strings from %s", len(inputs), file)
	return inputs, nil
}

// splitClassArg splits a "class=string" argument. Arguments without the
// separator stay unclassed.
func splitClassArg(arg string) (classID, input string) {
	if i := strings.Index(arg, "="); i >= 0 {
		return arg[:i], arg[i+1:]
	}
	return "", arg
}
