package controller

import (
	"fmt"
	"net/http"
	"tenantry/internal/types"
	"time"
)

type OrgV1OutputData struct {
	OrganizationId   string     `json:"organizationId"`
	OrganizationName string     `json:"organizationName"`
	PartitionKey     string     `json:"partitionKey"`
	AdminEmail       string     `json:"adminEmail"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}

type CreateOrgV1Input struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

type CreateOrgV1Output struct {
	Data OrgV1OutputData

	http.Response
}

func (c Client) CreateOrgV1(input CreateOrgV1Input) (*CreateOrgV1Output, error) {
	var outputData OrgV1OutputData
	outputClient, err := c.do(request{
		Method: http.MethodPost,
		Path:   "/api/v1/org",
		Data:   input,
		Output: &outputData,
	})
	var output *CreateOrgV1Output = nil
	if outputClient != nil {
		output = &CreateOrgV1Output{
			Data:     outputData,
			Response: outputClient.Response,
		}
	}
	if err != nil && outputClient != nil {
		switch outputClient.GetErrorCode().Error() {
		case types.ErrorOrgExists.Error():
			err = types.ErrorOrgExists
		case types.ErrorEmailExists.Error():
			err = types.ErrorEmailExists
		case types.ErrorInvalidInput.Error():
			err = types.ErrorInvalidInput
		}
	}
	return output, err
}

type GetOrgV1Input struct {
	Name string `json:"-"`
}

type GetOrgV1Output struct {
	Data OrgV1OutputData

	http.Response
}

func (c Client) GetOrgV1(input GetOrgV1Input) (*GetOrgV1Output, error) {
	var outputData OrgV1OutputData
	outputClient, err := c.do(request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/api/v1/org/%s", input.Name),
		Output: &outputData,
	})
	var output *GetOrgV1Output = nil
	if outputClient != nil {
		output = &GetOrgV1Output{
			Data:     outputData,
			Response: outputClient.Response,
		}
	}
	if err != nil && outputClient != nil {
		switch outputClient.GetErrorCode().Error() {
		case types.ErrorNotFound.Error():
			err = types.ErrorNotFound
		}
	}
	return output, err
}

type UpdateOrgV1Input struct {
	Name    string `json:"-"`
	NewName string `json:"newName"`
}

type UpdateOrgV1Output struct {
	Data OrgV1OutputData

	http.Response
}

func (c Client) UpdateOrgV1(input UpdateOrgV1Input) (*UpdateOrgV1Output, error) {
	var outputData OrgV1OutputData
	outputClient, err := c.do(request{
		Method: http.MethodPatch,
		Path:   fmt.Sprintf("/api/v1/org/%s", input.Name),
		Data:   input,
		Output: &outputData,
	})
	var output *UpdateOrgV1Output = nil
	if outputClient != nil {
		output = &UpdateOrgV1Output{
			Data:     outputData,
			Response: outputClient.Response,
		}
	}
	if err != nil && outputClient != nil {
		switch outputClient.GetErrorCode().Error() {
		case types.ErrorAuthRequired.Error():
			err = types.ErrorAuthRequired
		case types.ErrorInsufficientPermissions.Error():
			err = types.ErrorInsufficientPermissions
		case types.ErrorNotFound.Error():
			err = types.ErrorNotFound
		case types.ErrorOrgExists.Error():
			err = types.ErrorOrgExists
		case types.ErrorInvalidInput.Error():
			err = types.ErrorInvalidInput
		}
	}
	return output, err
}

type DeleteOrgV1Input struct {
	Name string `json:"-"`
}

type DeleteOrgV1Output struct {
	Data DeleteOrgV1OutputData

	http.Response
}

type DeleteOrgV1OutputData struct {
	OrganizationId string `json:"organizationId"`
	Message        string `json:"message"`
}

func (c Client) DeleteOrgV1(input DeleteOrgV1Input) (*DeleteOrgV1Output, error) {
	var outputData DeleteOrgV1OutputData
	outputClient, err := c.do(request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/api/v1/org/%s", input.Name),
		Output: &outputData,
	})
	var output *DeleteOrgV1Output = nil
	if outputClient != nil {
		output = &DeleteOrgV1Output{
			Data:     outputData,
			Response: outputClient.Response,
		}
	}
	if err != nil && outputClient != nil {
		switch outputClient.GetErrorCode().Error() {
		case types.ErrorAuthRequired.Error():
			err = types.ErrorAuthRequired
		case types.ErrorInsufficientPermissions.Error():
			err = types.ErrorInsufficientPermissions
		case types.ErrorNotFound.Error():
			err = types.ErrorNotFound
		}
	}
	return output, err
}
