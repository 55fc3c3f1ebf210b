// Package test contains helpers shared by the HTTP tests.
package test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedor-app/backend/internal/router"
)

// Request is a helper method to simplify making a HTTP request for tests.
func Request(t *testing.T, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	byteBuffer := &bytes.Buffer{}

	if body != nil {
		// If the body is a string, convert it to bytes
		if reflect.TypeOf(body).Kind() == reflect.String {
			byteBuffer = bytes.NewBufferString(body.(string))
		} else if reflect.TypeOf(body).Kind() == reflect.Struct || reflect.TypeOf(body).Kind() == reflect.Map || reflect.TypeOf(body).Kind() == reflect.Slice {
			byteStr, err := json.Marshal(body)
			if err != nil {
				assert.Fail(t, "Request body could not be marshalled from struct input", err)
			}
			byteBuffer = bytes.NewBuffer(byteStr)
		} else {
			// Assume we got sent a *bytes.Buffer for e.g. a file
			byteBuffer = body.(*bytes.Buffer)
		}
	}

	r, err := router.Router()
	if err != nil {
		assert.FailNow(t, "Router could not be initialized")
	}

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, reqURL, byteBuffer)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), &target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// AssertHTTPStatus verifies that the HTTP response status is correct
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}

// CSVFile wraps CSV content into a multipart form body.
//
// File contents are returned as a buffer and a map for the HTTP request headers
func CSVFile(t *testing.T, name, content string) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)

	mw := multipart.NewWriter(body)

	w, err := mw.CreateFormFile("file", name)
	if err != nil {
		assert.Fail(t, err.Error())
	}

	if _, err := io.Copy(w, strings.NewReader(content)); err != nil {
		assert.Fail(t, err.Error())
	}

	mw.Close()

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
