package imgmatch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/corona10/goimagehash"
	"github.com/pomo-mondreganto/imgsim/internal/fingerprint"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

// Progress receives one Add call per fingerprinted file.
type Progress interface {
	Add(num int) error
}

// Match is a directory entry whose fingerprint is close enough to the reference.
type Match struct {
	Name     string
	Distance int
}

func NewMatcher(threshold, workers int) (*Matcher, error) {
	if workers < 1 {
		return nil, fmt.Errorf("invalid workers count %d", workers)
	}
	return &Matcher{
		threshold: threshold,
		workers:   workers,
	}, nil
}

type Matcher struct {
	threshold int
	workers   int

	newProgress func(total int) Progress
	hashed      atomic.Int64
}

// SetProgress installs a factory called once per scan with the number of files to hash.
func (m *Matcher) SetProgress(f func(total int) Progress) {
	m.newProgress = f
}

// Hashed returns the number of files fingerprinted by the last scan.
func (m *Matcher) Hashed() int64 {
	return m.hashed.Load()
}

// FindSimilar fingerprints every entry of dir except the one named like the reference
// and returns those with a distance strictly below the threshold, in lexical name order.
func (m *Matcher) FindSimilar(ctx context.Context, refPath, dir string) ([]Match, error) {
	ref, err := fingerprint.FromFile(refPath)
	if err != nil {
		return nil, fmt.Errorf("fingerprinting reference: %w", err)
	}
	logger := logrus.WithField("dir", dir).WithField("threshold", m.threshold)
	logger.Debugf("Reference %s has hash %s", refPath, fingerprint.Hex(ref))

	names, err := listCandidates(dir, filepath.Base(refPath))
	if err != nil {
		return nil, err
	}
	logger.Debugf("Comparing %d entries", len(names))

	dists, err := m.distances(ctx, ref, dir, names)
	if err != nil {
		return nil, err
	}

	var matches []Match
	for i, name := range names {
		if dists[i] < m.threshold {
			logger.Debugf("%s matches with distance %d", name, dists[i])
			matches = append(matches, Match{Name: name, Distance: dists[i]})
		}
	}
	logger.Debugf("Found %d similar images out of %d", len(matches), len(names))
	return matches, nil
}

// Names strips distances, keeping order.
func Names(matches []Match) []string {
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, match.Name)
	}
	return names
}

func listCandidates(dir, skip string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Name() == skip {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// distances returns the distance from ref to each named file; dists[i] belongs to names[i].
func (m *Matcher) distances(ctx context.Context, ref *goimagehash.ImageHash, dir string, names []string) ([]int, error) {
	m.hashed.Store(0)
	var progress Progress
	if m.newProgress != nil {
		progress = m.newProgress(len(names))
	}

	dists := make([]int, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)
	for i, name := range names {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			hash, err := fingerprint.FromFile(filepath.Join(dir, name))
			if err != nil {
				return fmt.Errorf("fingerprinting candidate: %w", err)
			}
			dist, err := fingerprint.Distance(ref, hash)
			if err != nil {
				return fmt.Errorf("comparing %s: %w", name, err)
			}
			dists[i] = dist
			m.hashed.Inc()
			if progress != nil {
				if err := progress.Add(1); err != nil {
					logrus.Debugf("Error updating progress: %v", err)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return dists, nil
}
