package main

import (
	"github.com/pomo-mondreganto/imgsim/internal/fingerprint"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

var (
	path = pflag.StringP("file", "f", "sample.jpg", "Path to image to fingerprint")
)

func main() {
	pflag.Parse()
	hash, err := fingerprint.FromFile(*path)
	if err != nil {
		logrus.Fatalf("Error calculating fingerprint: %v", err)
	}
	logrus.Printf("Fingerprint of %s is %s\n", *path, fingerprint.Hex(hash))
}
