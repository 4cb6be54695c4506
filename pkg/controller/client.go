package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"reflect"
	"syscall"
	"tenantry/internal/common"
	"tenantry/internal/types"
)

type NewClientOpts struct {
	// ControllerUrl is the URL where the controller service is
	// accessible at
	ControllerUrl string

	// BearerAuth holds the admin's session token if one is available
	BearerAuth *NewClientBearerAuthOpts

	// Id will be included in the user-agent for identification
	Id string
}

type NewClientBearerAuthOpts struct {
	Token string
}

func NewClient(opts NewClientOpts) (*Client, error) {
	client := &Client{
		BearerAuth: opts.BearerAuth,
		HttpClient: &http.Client{},
		Id:         opts.Id,
	}

	controllerUrl, err := url.Parse(opts.ControllerUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse provided controllerUrl[%s]: %s", opts.ControllerUrl, err)
	}
	if controllerUrl.Scheme == "" {
		return nil, fmt.Errorf("failed to determine url scheme of controllerUrl[%s]", opts.ControllerUrl)
	}
	client.ControllerUrl = controllerUrl

	return client, nil
}

type Client struct {
	// ControllerUrl is the URL where the controller service is
	// accessible at
	ControllerUrl *url.URL
	BearerAuth    *NewClientBearerAuthOpts

	// HttpClient is the HTTP client
	HttpClient *http.Client

	// Id will be included in the user-agent for identification
	Id string
}

type request struct {
	Method string
	Path   string
	Data   any
	Output any
}

type ClientOutput struct {
	// ErrorCode is the error code string returned by the controller
	// when the request was unsuccessful
	ErrorCode error

	http.Response
}

func (co *ClientOutput) GetErrorCode() error {
	if co == nil || co.ErrorCode == nil {
		return types.ErrorUnknown
	}
	return co.ErrorCode
}

func (co *ClientOutput) GetResponse() http.Response {
	if co == nil {
		return http.Response{}
	}
	return co.Response
}

// do executes a request against the controller and unmarshals the
// response's data payload into req.Output. The returned ClientOutput
// carries the raw response plus any error code the controller sent
func (c Client) do(req request) (*ClientOutput, error) {
	if req.Output == nil {
		return nil, types.ErrorOutputNil
	}
	if reflect.ValueOf(req.Output).Kind() != reflect.Ptr {
		return nil, types.ErrorOutputNotPointer
	}

	var requestBody io.Reader = nil
	if req.Data != nil {
		requestBodyData, err := json.Marshal(req.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request data: %w", types.ErrorClientMarshalInput)
		}
		requestBody = bytes.NewBuffer(requestBodyData)
	}

	requestUrl := *c.ControllerUrl
	requestUrl.Path = req.Path
	httpRequest, err := http.NewRequest(req.Method, requestUrl.String(), requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", types.ErrorClientRequestCreation)
	}
	httpRequest.Header.Add("Content-Type", "application/json")
	httpRequest.Header.Add("User-Agent", fmt.Sprintf("tenantry/controller-sdk/client-%s", c.Id))
	if c.BearerAuth != nil {
		httpRequest.Header.Add("Authorization", fmt.Sprintf("Bearer %s", c.BearerAuth.Token))
	}

	httpResponse, err := c.HttpClient.Do(httpRequest)
	if err != nil {
		if errors.Is(err, syscall.ECONNREFUSED) {
			return nil, types.ErrorConnectionRefused
		}
		if os.IsTimeout(err) {
			return nil, types.ErrorConnectionTimedOut
		}
		return nil, fmt.Errorf("failed to execute http request: %w", types.ErrorClientRequestExecution)
	}
	defer httpResponse.Body.Close()

	output := &ClientOutput{Response: *httpResponse}

	responseBody, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return output, fmt.Errorf("failed to read response body: %w", types.ErrorClientResponseReading)
	}
	if !isControllerResponse(httpResponse) {
		return output, fmt.Errorf("failed to receive a response from the controller: %w", types.ErrorClientResponseNotFromController)
	}

	var response common.HttpResponse
	if err := json.Unmarshal(responseBody, &response); err != nil {
		return output, fmt.Errorf("failed to parse response from controller service: %w", types.ErrorClientUnmarshalResponse)
	}

	if !response.Success {
		if errorCode, ok := response.Data.(string); ok {
			output.ErrorCode = errors.New(errorCode)
		}
		return output, fmt.Errorf("failed to receive a successful response (status code: %v): %w", httpResponse.StatusCode, types.ErrorClientUnsuccessfulResponse)
	}

	responseData, err := json.Marshal(response.Data)
	if err != nil {
		return output, fmt.Errorf("failed to parse response data from controller service: %w", types.ErrorClientMarshalResponseData)
	}
	if err := json.Unmarshal(responseData, req.Output); err != nil {
		return output, fmt.Errorf("failed to parse response data into the expected output: %w", types.ErrorClientUnmarshalOutput)
	}

	return output, nil
}
