package pkg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pulumi/pulumi/sdk/v3/go/common/util/contract"
	"github.com/pulumi/pulumi/sdk/v3/go/common/util/logging"

	"github.com/wc-toolkit/cem-changelog/manifest"
)

// DefaultManifestPath is the repository relative location of a manifest
// when none is configured.
const DefaultManifestPath = "custom-elements.json"

const maxManifestSize = 64 << 20

// ErrManifestNotFound is returned when a repository has no manifest at the
// requested ref and path.
var ErrManifestNotFound = errors.New("manifest not found")

// LoadManifest loads the manifest found at manifestPath as of ref.
//
// With an empty repositoryURL, ref is the path of a local manifest file.
// A file: repository is a local directory holding one checkout per ref
// (ref may be empty for the directory itself). github:// and gitlab://
// repositories are read through the hosting API at ref.
func LoadManifest(ctx context.Context, repositoryURL, ref, manifestPath string) (*manifest.Manifest, error) {
	if manifestPath == "" {
		manifestPath = DefaultManifestPath
	}
	if repositoryURL == "" {
		return manifest.Load(ref)
	}

	u, err := url.Parse(repositoryURL)
	if err != nil {
		return nil, err
	}

	var gitSource GitSource
	switch u.Scheme {
	case "file":
		return loadLocalManifest(strings.TrimPrefix(repositoryURL, "file:"), ref, manifestPath)
	case "github":
		gitSource, err = newGithubSource(u)
	case "gitlab":
		gitSource, err = newGitlabSource(u)
	default:
		return nil, fmt.Errorf("unknown manifest source scheme: %s", u.Scheme)
	}
	if err != nil {
		return nil, err
	}

	location := fmt.Sprintf("%s@%s:%s", repositoryURL, ref, manifestPath)
	resp, _, err := gitSource.Download(ctx, ref, manifestPath, getHTTPResponse)
	if err != nil {
		var downErr *downloadError
		if errors.As(err, &downErr) && downErr.code == 404 {
			return nil, fmt.Errorf("%w: %s: %w", ErrManifestNotFound, location, err)
		}
		return nil, err
	}
	defer contract.IgnoreClose(resp)

	body, err := readManifestFile(resp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", location, err)
	}

	m, err := manifest.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", location, err)
	}
	logging.V(5).Infof("loaded manifest %s (%d bytes)", location, len(body))
	return m, nil
}

func loadLocalManifest(root, ref, manifestPath string) (*manifest.Manifest, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Join(manifest.ErrManifestRequired, err)
	}
	// A file: url naming the manifest itself is accepted as is.
	if !info.IsDir() {
		return manifest.Load(root)
	}

	path, err := resolveSafeRepoFilePath(root, filepath.Join(filepath.FromSlash(ref), filepath.FromSlash(manifestPath)))
	if err != nil {
		return nil, err
	}
	logging.V(5).Infof("loading local manifest %s", path)
	return manifest.Load(path)
}

func readManifestFile(r io.Reader) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, maxManifestSize+1))
	if err != nil {
		return nil, err
	}
	if len(body) > maxManifestSize {
		return nil, fmt.Errorf("manifest exceeds %d bytes", maxManifestSize)
	}
	return body, nil
}

// resolveSafeRepoFilePath resolves relPath under root, following symlinks,
// and rejects any result outside of root.
func resolveSafeRepoFilePath(root, relPath string) (string, error) {
	if filepath.IsAbs(relPath) || strings.HasPrefix(relPath, "/") {
		return "", fmt.Errorf("invalid manifest path %q: absolute path not allowed", relPath)
	}
	cleaned := filepath.Clean(relPath)
	if escapesRoot(cleaned) {
		return "", fmt.Errorf("invalid manifest path %q: traversal outside repository root", relPath)
	}

	realRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", err
	}
	candidate := filepath.Join(realRoot, cleaned)
	resolved, err := filepath.EvalSymlinks(candidate)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrManifestNotFound, candidate)
		}
		return "", err
	}

	rel, err := filepath.Rel(realRoot, resolved)
	if err != nil || escapesRoot(rel) {
		return "", fmt.Errorf("invalid manifest path %q: traversal outside repository root", relPath)
	}
	return resolved, nil
}

func escapesRoot(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
