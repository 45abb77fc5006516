package cleaner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Outcome is the result of removing a single file.
type Outcome struct {
	Name string
	Err  error
}

func New(dir string) *Cleaner {
	return &Cleaner{
		dir:    dir,
		logger: logrus.WithField("dir", dir),
	}
}

type Cleaner struct {
	dir    string
	logger *logrus.Entry
}

// Delete removes every named file from the directory. A failure is logged and recorded
// in the matching outcome; the remaining files are still attempted.
func (c *Cleaner) Delete(names []string) []Outcome {
	outcomes := make([]Outcome, 0, len(names))
	for _, name := range names {
		err := c.remove(name)
		logger := c.logger.WithField("file", name)
		if err != nil {
			logger.Errorf("Could not delete %s: %v", name, err)
		} else {
			logger.Infof("Deleted %s", name)
		}
		outcomes = append(outcomes, Outcome{Name: name, Err: err})
	}
	return outcomes
}

func (c *Cleaner) remove(name string) error {
	if err := os.Remove(filepath.Join(c.dir, name)); err != nil {
		return fmt.Errorf("removing file: %w", err)
	}
	return nil
}

// Failed counts outcomes with an error.
func Failed(outcomes []Outcome) int {
	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
	}
	return failed
}
