package github

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-github/v81/github"
)

// PublishReport uploads a finished audit report as a GitHub gist and returns
// the gist's HTML URL.
func PublishReport(ctx context.Context, c *Client, path, description string, public bool) (string, error) {
	if c == nil || c.Client == nil {
		return "", fmt.Errorf("github client is nil")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read report: %w", err)
	}
	if strings.TrimSpace(string(content)) == "" {
		return "", fmt.Errorf("report %s is empty", path)
	}

	name := filepath.Base(path)
	gist := &github.Gist{
		Description: github.Ptr(description),
		Public:      github.Ptr(public),
		Files: map[github.GistFilename]github.GistFile{
			github.GistFilename(name): {Content: github.Ptr(string(content))},
		},
	}

	created, _, err := c.Client.Gists.Create(ctx, gist)
	if err != nil {
		return "", fmt.Errorf("create gist: %w", err)
	}
	if created == nil || created.HTMLURL == nil {
		return "", fmt.Errorf("create gist: no URL returned")
	}
	return created.GetHTMLURL(), nil
}
