// Package client implements the authenticated ThreatKB API client.
package client

import (
	"bytes"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/inquest/threatkb-go/internal/logging"
)

// DefaultBaseURI is the path prefix under which the API is mounted.
const DefaultBaseURI = "ThreatKB/"

// ErrUnauthorized is returned when the server rejects the token/secret pair.
var ErrUnauthorized = errors.New("invalid authentication token and secret key")

// Options configures a Client. Host may carry an http:// or https:// prefix
// (stripped; the scheme is picked via UseHTTPS) and need not end with a
// slash.
type Options struct {
	Host      string
	Token     string
	SecretKey string
	BaseURI   string // defaults to DefaultBaseURI
	UseHTTPS  bool

	// FilterKeys restricts FilterOutput to the given keys. Empty means no
	// filtering.
	FilterKeys []string

	// Diagnostics receives user-facing notices such as "IP not found".
	// Defaults to os.Stdout.
	Diagnostics io.Writer

	Logger     *zap.Logger
	HTTPClient *http.Client
}

// Client issues authenticated requests against a single ThreatKB host. It is
// immutable after construction and safe to reuse for the process lifetime.
type Client struct {
	host       string
	token      string
	secretKey  string
	baseURI    string
	useHTTPS   bool
	filterKeys []string
	diag       io.Writer
	log        *zap.Logger
	httpClient *http.Client
}

// New builds a Client from opts. The underlying HTTP client is reused across
// requests and, matching the original client, performs no certificate
// verification and sets no timeout.
func New(opts Options) *Client {
	host := strings.ToLower(opts.Host)
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimPrefix(host, "https://")
	if !strings.HasSuffix(host, "/") {
		host += "/"
	}

	baseURI := opts.BaseURI
	if baseURI == "" {
		baseURI = DefaultBaseURI
	}

	diag := opts.Diagnostics
	if diag == nil {
		diag = os.Stdout
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		}
	}

	return &Client{
		host:       host,
		token:      opts.Token,
		secretKey:  opts.SecretKey,
		baseURI:    baseURI,
		useHTTPS:   opts.UseHTTPS,
		filterKeys: opts.FilterKeys,
		diag:       diag,
		log:        log,
		httpClient: httpClient,
	}
}

// FileUpload describes a multipart POST: one file part plus extra form fields.
type FileUpload struct {
	Field   string // form field name for the file part
	Name    string // filename reported to the server
	Content io.Reader
	Extra   map[string]string
}

// Get issues a GET to endpoint, or endpoint/id when id is non-empty, and
// returns the raw response body.
func (c *Client) Get(endpoint, id string, params url.Values) ([]byte, error) {
	resp, err := c.request(http.MethodGet, joinID(endpoint, id), params, nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// Update issues a PUT with jsonData as the JSON body and returns the raw
// response body.
func (c *Client) Update(endpoint, id string, jsonData any) ([]byte, error) {
	resp, err := c.request(http.MethodPut, joinID(endpoint, id), nil, jsonData, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// Delete issues a DELETE to endpoint/id. It reports true iff the server
// responded 200.
func (c *Client) Delete(endpoint, id string) (bool, error) {
	resp, err := c.request(http.MethodDelete, endpoint+"/"+id, nil, nil, nil)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK, nil
}

// Create issues a POST. When upload is non-nil the request is a multipart
// file upload and jsonData is ignored, otherwise jsonData is sent as the JSON
// body. A 412 response (precondition failed, typically a duplicate) yields
// (nil, nil) so callers can treat it as a no-op.
func (c *Client) Create(endpoint string, jsonData any, upload *FileUpload) ([]byte, error) {
	resp, err := c.request(http.MethodPost, endpoint, nil, jsonData, upload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusPreconditionFailed {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, nil
	}
	return io.ReadAll(resp.Body)
}

// request builds and issues a single authenticated call. The token and secret
// key are always injected as query parameters, overwriting any caller-supplied
// values. There is no retry and no timeout; transport errors propagate.
func (c *Client) request(method, endpoint string, params url.Values, jsonData any, upload *FileUpload) (*http.Response, error) {
	q := url.Values{}
	for k, vs := range params {
		q[k] = vs
	}
	q.Set("token", c.token)
	q.Set("secret_key", c.secretKey)

	scheme := "http"
	if c.useHTTPS {
		scheme = "https"
	}
	u := fmt.Sprintf("%s://%s%s%s?%s", scheme, c.host, c.baseURI, endpoint, q.Encode())

	var body io.Reader
	contentType := "application/json;charset=UTF-8"
	if upload != nil {
		buf := &bytes.Buffer{}
		mw := multipart.NewWriter(buf)
		for k, v := range upload.Extra {
			if err := mw.WriteField(k, v); err != nil {
				return nil, fmt.Errorf("building multipart body: %w", err)
			}
		}
		part, err := mw.CreateFormFile(upload.Field, upload.Name)
		if err != nil {
			return nil, fmt.Errorf("building multipart body: %w", err)
		}
		if _, err := io.Copy(part, upload.Content); err != nil {
			return nil, fmt.Errorf("reading upload content: %w", err)
		}
		if err := mw.Close(); err != nil {
			return nil, fmt.Errorf("building multipart body: %w", err)
		}
		body = buf
		contentType = mw.FormDataContentType()
	} else if jsonData != nil {
		encoded, err := json.Marshal(jsonData)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	c.log.Debug("sending api request", logging.Method(method), logging.URL(u))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	c.log.Debug("received api response", logging.Endpoint(endpoint), logging.Status(resp.StatusCode))

	if resp.StatusCode == http.StatusUnauthorized {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%s %s: %w", method, endpoint, ErrUnauthorized)
	}

	return resp, nil
}

func joinID(endpoint, id string) string {
	if id == "" {
		return endpoint
	}
	return endpoint + "/" + id
}
