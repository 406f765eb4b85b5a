package practicum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	ierrors "github.com/ilyadubrovsky/homework-tracker/internal/errors"
)

const (
	HeaderAuthorization = "Authorization"
	QueryKeyFromDate    = "from_date"
)

const maxDetailLength = 200

type Client interface {
	HomeworkStatuses(ctx context.Context, fromDate int64) (any, error)
}

type client struct {
	httpClient *http.Client
	endpoint   string
	token      string
}

func NewClient(endpoint, token string, timeout time.Duration) Client {
	return &client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		token:      token,
	}
}

// HomeworkStatuses returns the decoded body as generic JSON, numbers are kept as json.Number.
func (c *client) HomeworkStatuses(ctx context.Context, fromDate int64) (any, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	request.Header.Set(HeaderAuthorization, "OAuth "+c.token)
	request.URL.RawQuery = url.Values{
		QueryKeyFromDate: {strconv.FormatInt(fromDate, 10)},
	}.Encode()

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, &ierrors.TransportError{Endpoint: c.endpoint, Err: err}
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, &ierrors.TransportError{Endpoint: c.endpoint, Err: fmt.Errorf("io.ReadAll (response.Body): %w", err)}
	}

	if response.StatusCode != http.StatusOK {
		return nil, &ierrors.InvalidResponseError{
			StatusCode: response.StatusCode,
			Detail:     describeBody(response.Header.Get("Content-Type"), body),
		}
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var payload any
	if err = decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ierrors.ErrResponseDecoding, err)
	}
	if err = decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after the json value", ierrors.ErrResponseDecoding)
	}

	return payload, nil
}

// describeBody makes a short human readable summary of an error response.
func describeBody(contentType string, body []byte) string {
	if len(bytes.TrimSpace(body)) == 0 {
		return ""
	}

	switch {
	case strings.Contains(contentType, "html"):
		return describeHTML(body)
	case strings.Contains(contentType, "json"):
		return describeJSON(body)
	}

	return truncate(strings.TrimSpace(string(body)))
}

func describeHTML(body []byte) string {
	document, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	title := strings.TrimSpace(document.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(document.Find("h1").First().Text())
	}

	return truncate(strings.Join(strings.Fields(title), " "))
}

// describeJSON picks the fields the API uses in its error answers.
func describeJSON(body []byte) string {
	var answer struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &answer); err != nil {
		return ""
	}

	switch {
	case answer.Code != "" && answer.Message != "":
		return truncate(answer.Code + ": " + answer.Message)
	case answer.Message != "":
		return truncate(answer.Message)
	}

	return truncate(answer.Code)
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxDetailLength {
		return s
	}
	return string(runes[:maxDetailLength]) + "…"
}
