package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
)

// set of supported api header keys
const (
	HeaderAccept      = "Accept"
	HeaderContentType = "Content-Type"
)

// set of supported api media types
const (
	MediaTypeApplicationJSON = "application/json"
)

// RequestOptions are options to configure an *http.Request
type RequestOptions struct {
	Body    io.Reader
	Header  http.Header
	Query   url.Values
	UseAuth bool
}

// JSONRequestOptions returns RequestOptions configured to send the provided payload as JSON
func JSONRequestOptions(payload interface{}) (RequestOptions, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return RequestOptions{}, err
	}
	return RequestOptions{
		Body:   bytes.NewReader(body),
		Header: http.Header{HeaderContentType: []string{MediaTypeApplicationJSON}},
	}, nil
}

// HasBody reports whether the options carry a request body
func (opts RequestOptions) HasBody() bool {
	return opts.Body != nil
}

// IncludeQuery adds the query to the request url, keeping any existing parameters
func IncludeQuery(req *http.Request, query url.Values) {
	if len(query) == 0 {
		return
	}
	q := req.URL.Query()
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	req.URL.RawQuery = q.Encode()
}
