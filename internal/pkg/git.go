package pkg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/pulumi/pulumi/sdk/v3/go/common/util/contract"
	"github.com/pulumi/pulumi/sdk/v3/go/common/util/logging"

	"github.com/wc-toolkit/cem-changelog/version"
)

type responseGetter func(*http.Request) (io.ReadCloser, int64, error)

// GitSource deals with downloading individual files from a specific git repository over HTTPS
type GitSource interface {
	// Download fetches the file at path as of commit and also returns the size of the response (if known).
	Download(ctx context.Context, commit, path string, getHTTPResponse responseGetter) (io.ReadCloser, int64, error)
}

// repositoryParts splits <host>/<owner>/<repository> out of a scheme url.
func repositoryParts(u *url.URL) (host, owner, repository string, err error) {
	host = u.Host
	if host == "" {
		return "", "", "", fmt.Errorf("%s:// url must have a host part, was: %s", u.Scheme, u)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", "", fmt.Errorf(
			"%s:// url must have the format <host>/<owner>/<repository>, was: %s", u.Scheme, u)
	}
	return host, parts[0], parts[1], nil
}

// gitlabSource downloads repository files through the GitLab files API.
type gitlabSource struct {
	host    string
	owner   string
	project string

	token string
}

// Creates a new GitLab source from a gitlab://<host>/<owner>/<project> url.
// Uses the GITLAB_TOKEN environment variable for authentication if it's set.
func newGitlabSource(u *url.URL) (*gitlabSource, error) {
	contract.Requiref(u.Scheme == "gitlab", "url", `scheme must be "gitlab", was %q`, u.Scheme)

	host, owner, project, err := repositoryParts(u)
	if err != nil {
		return nil, err
	}

	return &gitlabSource{
		host:    host,
		owner:   owner,
		project: project,

		token: os.Getenv("GITLAB_TOKEN"),
	}, nil
}

func (source *gitlabSource) newHTTPRequest(ctx context.Context, url, accept string) (*http.Request, error) {
	var authorization string
	if source.token != "" {
		authorization = fmt.Sprintf("Bearer %s", source.token)
	}

	req, err := buildHTTPRequest(ctx, url, authorization)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)
	return req, nil
}

func (source *gitlabSource) Download(
	ctx context.Context, commit, path string, getHTTPResponse responseGetter,
) (io.ReadCloser, int64, error) {
	project := url.QueryEscape(fmt.Sprintf("%s/%s", source.owner, source.project))

	// Gitlab Files API: https://docs.gitlab.com/ee/api/repository_files.html
	fileURL := fmt.Sprintf(
		"https://%s/api/v4/projects/%s/repository/files/%s/raw?ref=%s",
		source.host, project, encodeGitLabRepositoryPath(path), url.QueryEscape(commit))
	logging.V(1).Infof("%s/%s downloading from %s", source.owner, source.project, fileURL)

	req, err := source.newHTTPRequest(ctx, fileURL, "application/octet-stream")
	if err != nil {
		return nil, -1, err
	}
	return getHTTPResponse(req)
}

// githubSource downloads repository files through the GitHub contents API.
type githubSource struct {
	host         string
	organization string
	repository   string

	token string
}

// Creates a new github source adding authentication data in the environment, if it exists
func newGithubSource(u *url.URL) (*githubSource, error) {
	contract.Requiref(u.Scheme == "github", "url", `scheme must be "github", was %q`, u.Scheme)

	host, organization, repository, err := repositoryParts(u)
	if err != nil {
		return nil, err
	}

	return &githubSource{
		host:         host,
		organization: organization,
		repository:   repository,

		token: os.Getenv("GITHUB_TOKEN"),
	}, nil
}

func (source *githubSource) newHTTPRequest(ctx context.Context, url, accept string) (*http.Request, error) {
	var authorization string
	if source.token != "" {
		authorization = fmt.Sprintf("token %s", source.token)
	}

	req, err := buildHTTPRequest(ctx, url, authorization)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)
	return req, nil
}

func (source *githubSource) getHTTPResponse(
	getHTTPResponse responseGetter,
	req *http.Request,
) (io.ReadCloser, int64, error) {
	resp, length, err := getHTTPResponse(req)
	if err == nil {
		return resp, length, nil
	}

	// Wrap 403 rate limit errors with a more helpful message.
	var downErr *downloadError
	if !errors.As(err, &downErr) || downErr.code != http.StatusForbidden {
		return nil, -1, err
	}

	// This is a rate limiting error only if x-ratelimit-remaining is 0.
	// https://docs.github.com/en/rest/overview/resources-in-the-rest-api?apiVersion=2022-11-28#exceeding-the-rate-limit
	if downErr.header.Get("x-ratelimit-remaining") != "0" {
		return nil, -1, err
	}

	tryAgain := "."
	if reset, err := strconv.ParseInt(downErr.header.Get("x-ratelimit-reset"), 10, 64); err == nil {
		delay := time.Until(time.Unix(reset, 0).UTC())
		tryAgain = fmt.Sprintf(", try again in %s.", delay)
	}

	addAuth := ""
	if source.token == "" {
		addAuth = " You can set GITHUB_TOKEN to make an authenticated request with a higher rate limit."
	}

	logging.Errorf("GitHub rate limit exceeded for %s%s%s", req.URL, tryAgain, addAuth)
	return nil, -1, fmt.Errorf("rate limit exceeded: %w", err)
}

func (source *githubSource) Download(
	ctx context.Context, commit, path string, getHTTPResponse responseGetter,
) (io.ReadCloser, int64, error) {
	fileURL := fmt.Sprintf(
		"https://%s/repos/%s/%s/contents/%s?ref=%s",
		source.host, source.organization, source.repository, encodePathSegments(path), url.QueryEscape(commit))
	logging.V(9).Infof("GitHub manifest url: %s", fileURL)

	req, err := source.newHTTPRequest(ctx, fileURL, "application/vnd.github.v4.raw")
	if err != nil {
		return nil, -1, err
	}
	return source.getHTTPResponse(getHTTPResponse, req)
}

// encodePathSegments escapes each segment of a slash separated repository path.
func encodePathSegments(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}

// encodeGitLabRepositoryPath escapes a repository path as a single URL
// segment, slashes included, as the GitLab files API expects.
func encodeGitLabRepositoryPath(path string) string {
	return url.PathEscape(path)
}

func buildHTTPRequest(ctx context.Context, endpoint string, authorization string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	userAgent := fmt.Sprintf("cem-changelog/1 (%s; %s)", version.Version, runtime.GOOS)
	req.Header.Set("User-Agent", userAgent)

	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	return req, nil
}

func getHTTPResponse(req *http.Request) (io.ReadCloser, int64, error) {
	logging.V(9).Infof("full manifest download url: %s", req.URL)
	// This logs at level 11 because it could include authentication headers, we reserve log level 11 for
	// detailed api logs that may include credentials.
	logging.V(11).Infof("manifest download request headers: %v", req.Header)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, -1, err
	}

	logging.V(11).Infof("manifest download response headers: %v", resp.Header)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		contract.IgnoreClose(resp.Body)
		return nil, -1, newDownloadError(resp.StatusCode, req.URL, resp.Header)
	}

	return resp.Body, resp.ContentLength, nil
}

// downloadError is an error that happened during the HTTP download of a manifest.
type downloadError struct {
	msg    string
	code   int
	header http.Header
}

func (e *downloadError) Error() string {
	return e.msg
}

// Create a new downloadError with a message that indicates GITHUB_TOKEN should be set.
func newGithubPrivateRepoError(statusCode int, url *url.URL) error {
	return &downloadError{
		code: statusCode,
		msg: fmt.Sprintf("%d HTTP error fetching manifest from %s. "+
			"If this is a private GitHub repository, try "+
			"providing a token via the GITHUB_TOKEN environment variable. "+
			"See: https://github.com/settings/tokens",
			statusCode, url),
	}
}

// Create a new downloadError.
func newDownloadError(statusCode int, url *url.URL, header http.Header) error {
	if url.Host == "api.github.com" && statusCode == http.StatusNotFound {
		return newGithubPrivateRepoError(statusCode, url)
	}
	return &downloadError{
		code:   statusCode,
		msg:    fmt.Sprintf("%d HTTP error fetching manifest from %s", statusCode, url),
		header: header,
	}
}
