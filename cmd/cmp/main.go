package main

import (
	"github.com/corona10/goimagehash"
	"github.com/pomo-mondreganto/imgsim/internal/fingerprint"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

var (
	paths     = pflag.StringArrayP("files", "f", []string{"sample.jpg", "sample.jpg"}, "Paths of images to compare")
	threshold = pflag.IntP("threshold", "t", 10, "Maximum (exclusive) distance for images to be similar")
)

func main() {
	pflag.Parse()
	if len(*paths) != 2 {
		logrus.Fatalf("Pass 2 images to compare")
	}
	hash1 := calcHash((*paths)[0])
	hash2 := calcHash((*paths)[1])
	logrus.Printf("Hash for first file is %s, second: %s\n", fingerprint.Hex(hash1), fingerprint.Hex(hash2))

	dist, err := fingerprint.Distance(hash1, hash2)
	if err != nil {
		logrus.Fatalf("Error calculating distance: %v", err)
	}
	logrus.Printf("Distance is %d, similar: %v", dist, dist < *threshold)
}

func calcHash(path string) *goimagehash.ImageHash {
	hash, err := fingerprint.FromFile(path)
	if err != nil {
		logrus.Fatalf("Error calculating fingerprint: %v", err)
	}
	return hash
}
