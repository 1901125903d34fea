package twocaptcha

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/h2non/gentleman.v2"
	gcontext "gopkg.in/h2non/gentleman.v2/context"
	"gopkg.in/h2non/gentleman.v2/plugins/body"
	"gopkg.in/h2non/gentleman.v2/plugins/multipart"
	"gopkg.in/h2non/gentleman.v2/plugins/query"
)

// doGET issues a GET request and returns the trimmed response body.
// Transport and HTTP-level failures are returned as errors; the body is
// never interpreted here.
func (c *Client) doGET(ctx context.Context, path string, params url.Values) (string, error) {
	req := c.http.Request()
	req.Path(path)
	req.Method("GET")
	for k, vs := range params {
		for _, v := range vs {
			req.Use(query.Add(k, v))
		}
	}
	return c.send(ctx, req)
}

// doPostForm issues a urlencoded POST and returns the trimmed response body.
func (c *Client) doPostForm(ctx context.Context, path string, form url.Values) (string, error) {
	req := c.http.Request()
	req.Path(path)
	req.Method("POST")
	req.Use(body.String(form.Encode()))
	// after the body plugin so our content type wins
	req.SetHeader("Content-Type", "application/x-www-form-urlencoded")
	return c.send(ctx, req)
}

// doPostMultipart issues a multipart POST carrying one file field alongside
// the form values.
func (c *Client) doPostMultipart(ctx context.Context, path string, form url.Values, fieldName string, file []byte) (string, error) {
	fields := multipart.DataFields{}
	for k, vs := range form {
		fields[k] = multipart.Values(vs)
	}
	data := multipart.FormData{
		Data:  fields,
		Files: []multipart.FormFile{{Name: fieldName, Reader: bytes.NewReader(file)}},
	}

	req := c.http.Request()
	req.Path(path)
	req.Method("POST")
	req.Use(multipart.Data(data))
	return c.send(ctx, req)
}

func (c *Client) send(ctx context.Context, req *gentleman.Request) (string, error) {
	// gentleman keeps its middleware store as a value on the request
	// context; carry it over so replacing the context doesn't drop it.
	store := req.Context.Request.Context().Value(gcontext.Key)
	req.Context.Request = req.Context.Request.WithContext(context.WithValue(ctx, gcontext.Key, store))

	res, err := req.Send()
	if err != nil {
		return "", err
	}
	if !res.Ok {
		return "", fmt.Errorf("HTTP %d: %s", res.StatusCode, truncate(res.String(), 200))
	}
	return strings.TrimSpace(res.String()), nil
}

// resRequest issues the standard res.php call: key + action + extra params.
func (c *Client) resRequest(ctx context.Context, action string, params url.Values) (string, error) {
	q := url.Values{}
	q.Set("key", c.cfg.APIKey)
	q.Set("action", action)
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	return c.doGET(ctx, resPath, q)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
