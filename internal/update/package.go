package update

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"github.com/magiconair/properties"
)

const (
	manifestName = "version.properties"
	manifestCode = "version_code"
	binaryName   = "hymnchtv"
	maxManifest  = 64 << 10
)

var ErrNotInPackage = errors.New("entry not found in package")

func findEntry(r *zip.Reader, name string) (*zip.File, error) {
	for _, f := range r.File {
		if !f.FileInfo().IsDir() && path.Base(f.Name) == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotInPackage, name)
}

// PackageVersionCode reads the version code recorded in a release package.
func PackageVersionCode(pkg string) (int, error) {
	zr, err := zip.OpenReader(pkg)
	if err != nil {
		return 0, err
	}
	defer zr.Close()

	entry, err := findEntry(&zr.Reader, manifestName)
	if err != nil {
		return 0, err
	}
	rc, err := entry.Open()
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxManifest))
	if err != nil {
		return 0, err
	}
	p, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", manifestName, err)
	}
	raw, ok := p.Get(manifestCode)
	if !ok {
		return 0, fmt.Errorf("%s: missing %s", manifestName, manifestCode)
	}
	return strconv.Atoi(raw)
}

// Install replaces target with the executable from pkg. An empty target
// means the running binary.
func Install(pkg, target string) error {
	if target == "" {
		exe, err := os.Executable()
		if err != nil {
			return err
		}
		if target, err = filepath.EvalSymlinks(exe); err != nil {
			return err
		}
	}

	zr, err := zip.OpenReader(pkg)
	if err != nil {
		return err
	}
	defer zr.Close()

	entry, err := findEntry(&zr.Reader, binaryName)
	if err != nil {
		return err
	}
	rc, err := entry.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	tmp := target + ".new"
	out, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o755)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil { //nolint:gosec // size bounded by the release package
		out.Close()
		os.Remove(tmp)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", target, err)
	}
	return nil
}
