package rename_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/keboola/remote-files/internal/pkg/remote/remotepath"
	"github.com/keboola/remote-files/internal/pkg/remote/version"
	"github.com/keboola/remote-files/internal/pkg/remote/webdav"
)

const fakeURL = "https://fake.example.com/dav"

// fakeClient records calls, each returned response is tracked to check that it is exhausted exactly once.
type fakeClient struct {
	version *version.Version

	propfindStatus int
	propfindErr    error
	moveStatus     int
	moveBody       string
	moveErr        error

	propfindCalls    []string
	moveCalls        []moveCall
	moveResponse     *webdav.Response
	propfindResponse *webdav.Response
	exhausted        map[*webdav.Response]int
}

type moveCall struct {
	source      string
	destination string
	overwrite   bool
}

func newFakeClient(v *version.Version) *fakeClient {
	return &fakeClient{
		version:        v,
		propfindStatus: http.StatusNotFound,
		moveStatus:     http.StatusCreated,
		exhausted:      make(map[*webdav.Response]int),
	}
}

func (c *fakeClient) ServerVersion() *version.Version {
	return c.version
}

func (c *fakeClient) WebDAVURL(remotePath string) string {
	return fakeURL + remotepath.EncodePath(remotePath)
}

func (c *fakeClient) Propfind(_ context.Context, url string, _ string, _ ...webdav.RequestOption) (*webdav.Response, error) {
	c.propfindCalls = append(c.propfindCalls, url)
	if c.propfindErr != nil {
		return nil, c.propfindErr
	}
	c.propfindResponse = newFakeResponse(c.propfindStatus, "")
	return c.propfindResponse, nil
}

func (c *fakeClient) Move(_ context.Context, sourceURL, destinationURL string, overwrite bool, _ ...webdav.RequestOption) (*webdav.Response, error) {
	c.moveCalls = append(c.moveCalls, moveCall{source: sourceURL, destination: destinationURL, overwrite: overwrite})
	if c.moveErr != nil {
		return nil, c.moveErr
	}
	c.moveResponse = newFakeResponse(c.moveStatus, c.moveBody)
	return c.moveResponse, nil
}

func (c *fakeClient) Exhaust(res *webdav.Response) {
	if res == nil {
		return
	}
	c.exhausted[res]++
	_, _ = io.Copy(io.Discard, res.Body)
	_ = res.Body.Close()
}

func (c *fakeClient) networkCalls() int {
	return len(c.propfindCalls) + len(c.moveCalls)
}

func newFakeResponse(status int, body string) *webdav.Response {
	header := http.Header{}
	if body != "" {
		header.Set("Content-Type", "application/xml; charset=utf-8")
	}
	return &webdav.Response{
		StatusCode: status,
		Status:     fmt.Sprintf("%d %s", status, http.StatusText(status)),
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}
