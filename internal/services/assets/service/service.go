// Package service builds the offline-cache manifest over the embedded assets
package service

import (
	"embed"
	"io/fs"
	"sort"

	"mathgate/internal/core/version"
	"mathgate/internal/services/assets/domain"
)

// StrategyNetworkFirst is the fixed cache strategy the served worker implements
const StrategyNetworkFirst = "network-first"

// StaticPrefix is where the embedded files are served under the versioned API
const StaticPrefix = "/api/v1/assets/static/"

// Service defines the contract for the asset surface
type Service interface {
	Manifest() domain.Manifest
	Static() fs.FS
}

// Svc implements the Service interface over an embedded filesystem
type Svc struct {
	files fs.FS
	paths []string
}

// New creates the asset service; root is the subdirectory inside the embed FS
func New(efs embed.FS, root string) *Svc {
	sub, err := fs.Sub(efs, root)
	if err != nil {
		panic("assets: bad embed root " + root)
	}

	var paths []string
	err = fs.WalkDir(sub, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			paths = append(paths, StaticPrefix+p)
		}
		return nil
	})
	if err != nil {
		panic("assets: walk embed fs: " + err.Error())
	}
	sort.Strings(paths)

	return &Svc{files: sub, paths: paths}
}

// Manifest returns the versioned cache name and the pre-fetch path list
func (s *Svc) Manifest() domain.Manifest {
	v := version.Info().Version
	return domain.Manifest{
		CacheName: "mathgate-" + v,
		Version:   v,
		Strategy:  StrategyNetworkFirst,
		Prefetch:  append([]string(nil), s.paths...),
	}
}

// Static exposes the embedded files for serving
func (s *Svc) Static() fs.FS { return s.files }
