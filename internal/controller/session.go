package controller

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"tenantry/internal/common"
	"tenantry/internal/organizations"
	"tenantry/internal/types"
)

func registerSessionRoutes(opts RouteRegistrationOpts) {
	v1 := opts.Router.PathPrefix("/v1/session").Subrouter()

	v1.HandleFunc("", handleCreateSessionV1).Methods(http.MethodPost)
}

type handleCreateSessionV1Input struct {
	// Email is the admin's email address
	Email string `json:"email"`

	// Password is the admin's password
	Password string `json:"password"`
}

// handleCreateSessionV1 authenticates an admin and issues a bearer
// token scoped to their organization
func handleCreateSessionV1(w http.ResponseWriter, r *http.Request) {
	log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)
	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to read request body", nil)
		return
	}
	var input handleCreateSessionV1Input
	if err := json.Unmarshal(requestBody, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to parse request body", nil)
		return
	}
	log(common.LogLevelDebug, "successfully parsed body into expected input class")

	if input.Email == "" {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a valid admin email", types.ErrorInvalidInput)
		return
	}

	output, err := organizations.AdminLoginV1(r.Context(), organizations.AdminLoginV1Opts{
		Store:     tenantStore,
		Email:     input.Email,
		Password:  input.Password,
		JwtSecret: jwtSecret,
		JwtIssuer: jwtIssuer,
		TokenTtl:  tokenTtl,
	})
	if err != nil {
		if errors.Is(err, organizations.ErrorInvalidCredentials) {
			common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "failed to create session", types.ErrorInvalidCredentials)
			return
		} else if errors.Is(err, organizations.ErrorAccountSuspended) {
			common.SendHttpFailResponse(w, r, http.StatusForbidden, "failed to create session", types.ErrorAccountSuspended)
			return
		} else if errors.Is(err, organizations.ErrorOrgNotFound) {
			common.SendHttpFailResponse(w, r, http.StatusNotFound, "failed to create session", types.ErrorNotFound)
			return
		}
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to create session", types.ErrorGeneric)
		return
	}
	log(common.LogLevelDebug, "successfully issued session token")

	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", output)
}
