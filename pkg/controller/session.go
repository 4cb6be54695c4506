package controller

import (
	"net/http"
	"tenantry/internal/types"
)

type CreateSessionV1Input struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateSessionV1Output struct {
	Data CreateSessionV1OutputData

	http.Response
}

type CreateSessionV1OutputData struct {
	AccessToken      string `json:"accessToken"`
	TokenType        string `json:"tokenType"`
	OrganizationName string `json:"organizationName"`
	AdminEmail       string `json:"adminEmail"`
}

func (c Client) CreateSessionV1(input CreateSessionV1Input) (*CreateSessionV1Output, error) {
	var outputData CreateSessionV1OutputData
	outputClient, err := c.do(request{
		Method: http.MethodPost,
		Path:   "/api/v1/session",
		Data:   input,
		Output: &outputData,
	})
	var output *CreateSessionV1Output = nil
	if outputClient != nil {
		output = &CreateSessionV1Output{
			Data:     outputData,
			Response: outputClient.Response,
		}
	}
	if err != nil && outputClient != nil {
		switch outputClient.GetErrorCode().Error() {
		case types.ErrorInvalidCredentials.Error():
			err = types.ErrorInvalidCredentials
		case types.ErrorAccountSuspended.Error():
			err = types.ErrorAccountSuspended
		case types.ErrorNotFound.Error():
			err = types.ErrorNotFound
		}
	}
	return output, err
}
