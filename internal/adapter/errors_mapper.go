package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		if strings.Contains(strings.ToLower(body), "owner scope") {
			return fmt.Errorf("%w: %s", ErrOwnerScopeRequired, body)
		}
		return fmt.Errorf("%w: http %d: %s", ErrRemoteOperation, resp.StatusCode(), body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrRemoteOperation, resp.StatusCode(), body)
	}
}
