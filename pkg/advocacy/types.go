package advocacy

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	httpclient "github.com/natserract/advocacy/pkg/http"
)

// Params is an ordered list of query parameters. Order is preserved on the
// wire.
type Params []httpclient.QueryParam

// NewParams builds Params from alternating keys and values. A trailing key
// without a value gets an empty value.
func NewParams(kv ...string) Params {
	p := make(Params, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		v := ""
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		p = append(p, httpclient.QueryParam{Key: kv[i], Value: v})
	}
	return p
}

// Add appends a pair and returns the extended list.
func (p Params) Add(key, value string) Params {
	return append(p, httpclient.QueryParam{Key: key, Value: value})
}

// Get returns the first value stored under key.
func (p Params) Get(key string) (string, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

func (p Params) clone() Params {
	if p == nil {
		return nil
	}
	return append(Params(nil), p...)
}

// Fields are the body fields of POST and PUT requests.
type Fields map[string]string

func (f Fields) clone() Fields {
	if f == nil {
		return nil
	}
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Response is a normalized, successfully decoded service response.
type Response struct {
	StatusCode int
	Header     http.Header
	// Raw holds the trimmed JSON body.
	Raw json.RawMessage
	// Value is Raw decoded into an interface{} (map, slice or scalar).
	Value interface{}
}

// Decode unmarshals the raw body into v.
func (r *Response) Decode(v interface{}) error {
	if err := json.Unmarshal(r.Raw, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Object returns the payload as a JSON object, if it is one.
func (r *Response) Object() (map[string]interface{}, bool) {
	m, ok := r.Value.(map[string]interface{})
	return m, ok
}

// List returns the payload as a JSON array, if it is one.
func (r *Response) List() ([]interface{}, bool) {
	l, ok := r.Value.([]interface{})
	return l, ok
}

func (r *Response) String() string {
	return strings.TrimSpace(string(r.Raw))
}

// TokenResponse is the OAuth client-credentials grant result.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
