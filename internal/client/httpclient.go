package client

import (
	"errors"
	"log/slog"
	"net/http"
	"time"
)

const (
	requestTimeout = 10 * time.Second
	maxRedirects   = 5
)

var errTooManyRedirects = errors.New("stopped after too many redirects")

// CreateHTTPClient returns the client used to reach the employee API. It
// bounds every request and logs each followed redirect.
func CreateHTTPClient(log *slog.Logger) *http.Client {
	return &http.Client{
		Timeout: requestTimeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				log.Warn("Redirect limit reached", slog.String("url", req.URL.String()), slog.Int("hops", len(via)))
				return errTooManyRedirects
			}
			log.Debug("Redirected to URL", slog.String("url", req.URL.String()))

			return nil
		},
	}
}
