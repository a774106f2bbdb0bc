// Package api provides low-level primitives for fetching resources from HTTP
// servers.
package api

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/apex/log"
)

var c = http.Client{
	Timeout: 60 * time.Second,
	Transport: &http.Transport{
		DisableKeepAlives: true,
	},
}

// Get runs and logs a GET request backed by an `http.Client`. The response
// body is returned as a string together with the HTTP status code. A non-nil
// error means the request never completed; a non-200 status is not an error.
func Get(endpoint string) (body string, statusCode int, err error) {
	log.WithFields(log.Fields{
		"endpoint": endpoint,
		"method":   http.MethodGet,
	}).Debug("making HTTP request")

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return "", 0, fmt.Errorf("could not construct HTTP request: %s", err.Error())
	}
	req.Close = true

	response, err := c.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("could not send HTTP request: %s", err.Error())
	}
	defer response.Body.Close()

	res, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return "", 0, fmt.Errorf("could not read HTTP response: %s", err.Error())
	}

	log.Debugf("got response: %d bytes, status %d", len(res), response.StatusCode)
	return string(res), response.StatusCode, nil
}
