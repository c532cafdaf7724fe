package main

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

func initLogger() {
	level, err := log.ParseLevel(settings.Log.Level)
	if err != nil {
		level = log.InfoLevel
		log.Warnf("invalid log level %q, falling back to info", settings.Log.Level)
	}
	log.SetLevel(level)

	var outputs []io.Writer
	if settings.Log.Stdout {
		outputs = append(outputs, os.Stdout)
	}
	if settings.Log.File != "" {
		file, err := os.OpenFile(settings.Log.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Warnf("can't open log file %s: %s", settings.Log.File, err)
		} else {
			outputs = append(outputs, file)
		}
	}

	switch len(outputs) {
	case 0:
		log.SetOutput(io.Discard)
	case 1:
		log.SetOutput(outputs[0])
	default:
		log.SetOutput(io.MultiWriter(outputs...))
	}
}
