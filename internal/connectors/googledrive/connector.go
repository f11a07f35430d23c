// Package googledrive lists and downloads documents from Google Drive.
package googledrive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/textagentur-labs/wortzahl/internal/core/domain"
	"github.com/textagentur-labs/wortzahl/internal/core/ports/driven"
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// SourceID identifies documents fetched through this connector.
const SourceID = "googledrive"

// Drive MIME types the connector deals with.
const (
	MimeTypeDOCX      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeTypeGoogleDoc = "application/vnd.google-apps.document"
	MimeTypeFolder    = "application/vnd.google-apps.folder"
)

// MaxDownloadSize caps a single file download (10MB).
const MaxDownloadSize = 10 * 1024 * 1024

// defaultPageSize is used when the caller does not set one.
const defaultPageSize = 100

// listFields limits the file metadata requested per listing page.
const listFields = "nextPageToken, files(id, name, mimeType, size, modifiedTime)"

// Connector lists and downloads word-processing documents from a Drive
// account. Google-native Docs are exported to DOCX on fetch.
type Connector struct {
	svc     *drive.Service
	limiter *RateLimiter
}

// NewConnector creates a Drive connector from an OAuth2 token source.
func NewConnector(ctx context.Context, ts oauth2.TokenSource) (*Connector, error) {
	svc, err := drive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("creating drive service: %w", err)
	}
	return &Connector{svc: svc, limiter: NewRateLimiter()}, nil
}

// NewConnectorWithService creates a connector over an existing Drive
// service, used in tests with a stub endpoint.
func NewConnectorWithService(svc *drive.Service) *Connector {
	return &Connector{svc: svc, limiter: NewRateLimiter()}
}

// TokenSourceFromFile loads a stored OAuth2 token and returns a static
// token source for it.
func TokenSourceFromFile(path string) (oauth2.TokenSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading token file: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("parsing token file: %w", err)
	}
	return oauth2.StaticTokenSource(&token), nil
}

// List returns the word-processing documents available in the account,
// newest first. Folder and full-text filters come from opts.
func (c *Connector) List(ctx context.Context, opts driven.ListOptions) ([]domain.RemoteFile, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	query := buildQuery(opts)

	var files []domain.RemoteFile
	pageToken := ""
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		call := c.svc.Files.List().
			Context(ctx).
			Q(query).
			PageSize(int64(pageSize)).
			OrderBy("modifiedTime desc").
			Fields(listFields)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		result, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("listing drive files: %w", err)
		}

		for _, file := range result.Files {
			files = append(files, toRemoteFile(file))
		}

		if len(files) >= pageSize || result.NextPageToken == "" {
			break
		}
		pageToken = result.NextPageToken
	}

	if len(files) > pageSize {
		files = files[:pageSize]
	}
	return files, nil
}

// Fetch downloads a single file. Google-native Docs are exported to
// DOCX so the regular extractor can handle them.
func (c *Connector) Fetch(ctx context.Context, id string) (*domain.RawDocument, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	file, err := c.svc.Files.Get(id).
		Context(ctx).
		Fields("id, name, mimeType, size").
		Do()
	if err != nil {
		return nil, fmt.Errorf("getting file metadata: %w", err)
	}

	if file.MimeType == MimeTypeFolder {
		return nil, domain.ErrUnsupportedFormat
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	name := file.Name
	var body io.ReadCloser

	if file.MimeType == MimeTypeGoogleDoc {
		resp, err := c.svc.Files.Export(id, MimeTypeDOCX).Context(ctx).Download()
		if err != nil {
			return nil, fmt.Errorf("exporting document: %w", err)
		}
		body = resp.Body
		if !strings.HasSuffix(strings.ToLower(name), ".docx") {
			name += ".docx"
		}
	} else {
		resp, err := c.svc.Files.Get(id).Context(ctx).Download()
		if err != nil {
			return nil, fmt.Errorf("downloading file: %w", err)
		}
		body = resp.Body
	}
	defer body.Close()

	content, err := io.ReadAll(io.LimitReader(body, MaxDownloadSize))
	if err != nil {
		return nil, fmt.Errorf("reading file content: %w", err)
	}

	return &domain.RawDocument{
		SourceID: SourceID,
		URI:      fmt.Sprintf("gdrive://files/%s", file.Id),
		Name:     name,
		Content:  content,
	}, nil
}

// buildQuery assembles the Drive search query: DOCX files plus
// Google-native Docs, never trashed, optionally scoped to a folder and
// a full-text term.
func buildQuery(opts driven.ListOptions) string {
	clauses := []string{
		fmt.Sprintf("(mimeType = '%s' or mimeType = '%s')", MimeTypeDOCX, MimeTypeGoogleDoc),
		"trashed = false",
	}
	if opts.Folder != "" {
		clauses = append(clauses, fmt.Sprintf("'%s' in parents", escapeQueryValue(opts.Folder)))
	}
	if opts.Query != "" {
		clauses = append(clauses, fmt.Sprintf("fullText contains '%s'", escapeQueryValue(opts.Query)))
	}
	return strings.Join(clauses, " and ")
}

// escapeQueryValue escapes single quotes and backslashes per the Drive
// query syntax.
func escapeQueryValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, `'`, `\'`)
}

// toRemoteFile converts Drive file metadata to the domain listing type.
func toRemoteFile(file *drive.File) domain.RemoteFile {
	modified, _ := time.Parse(time.RFC3339, file.ModifiedTime)
	return domain.RemoteFile{
		ID:           file.Id,
		Name:         file.Name,
		Size:         file.Size,
		ModifiedTime: modified,
	}
}
