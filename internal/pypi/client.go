package pypi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Project is the slice of the index JSON API response we care about.
type Project struct {
	Info struct {
		Name    string `json:"name"`
		Version string `json:"version"`
		Summary string `json:"summary"`
	} `json:"info"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient talks to the JSON API rooted at baseURL, typically
// https://pypi.org/pypi.
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (c *Client) GetProject(name string) (*Project, error) {
	u := fmt.Sprintf("%s/%s/json", c.baseURL, url.PathEscape(name))
	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("package %q not found on index", name)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("index API error: %d %s", resp.StatusCode, string(body))
	}

	var p Project
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// LatestVersion returns the current release version of a package.
func (c *Client) LatestVersion(name string) (string, error) {
	p, err := c.GetProject(name)
	if err != nil {
		return "", err
	}
	if p.Info.Version == "" {
		return "", fmt.Errorf("no release version for %q", name)
	}
	return p.Info.Version, nil
}
