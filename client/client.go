// Package client talks to the external forms API. The session is passed in
// explicitly; requests carry its bearer token when present. There is no
// retry or timeout policy here beyond the caller's context, and in-flight
// requests are never cancelled on dependency change: the last state-setting
// response wins.
package client

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/geodatos/geoforms/session"
)

// Client is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	sess    *session.Session
}

// New builds a client against the API base URL, e.g.
// "https://apidata.geodatos.com.mx/api".
func New(baseURL string, sess *session.Session) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		sess:    sess,
	}
}

func (c *Client) url(format string, args ...any) string {
	return c.baseURL + fmt.Sprintf(format, args...)
}

func (c *Client) token() string {
	if c.sess == nil {
		return ""
	}
	return c.sess.Token()
}
