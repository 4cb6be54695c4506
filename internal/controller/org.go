package controller

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"tenantry/internal/common"
	"tenantry/internal/organizations"
	"tenantry/internal/types"

	"github.com/gorilla/mux"
)

func registerOrgRoutes(opts RouteRegistrationOpts) {
	requiresAuth := getRouteAuther(opts.ServiceLogs)

	v1 := opts.Router.PathPrefix("/v1/org").Subrouter()

	v1.HandleFunc("", handleCreateOrgV1).Methods(http.MethodPost)
	v1.HandleFunc("/{name}", handleGetOrgV1).Methods(http.MethodGet)
	v1.Handle("/{name}", requiresAuth(http.HandlerFunc(handleUpdateOrgV1))).Methods(http.MethodPatch)
	v1.Handle("/{name}", requiresAuth(http.HandlerFunc(handleDeleteOrgV1))).Methods(http.MethodDelete)
}

type handleCreateOrgV1Input struct {
	// Name is the display name of the organization, it gets normalized
	// before storage
	Name string `json:"name"`

	// Description goes into the tenant partition's metadata record
	Description string `json:"description"`

	// Email is the admin account's email address
	Email string `json:"email"`

	// Password is the admin account's password
	Password string `json:"password"`
}

// handleCreateOrgV1 registers a new organization together with its
// admin account and tenant partition
func handleCreateOrgV1(w http.ResponseWriter, r *http.Request) {
	log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)
	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to read request body", nil)
		return
	}
	var input handleCreateOrgV1Input
	if err := json.Unmarshal(requestBody, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to parse request body", nil)
		return
	}
	log(common.LogLevelDebug, "successfully parsed body into expected input class")

	view, err := organizations.CreateOrgV1(r.Context(), organizations.CreateOrgV1Opts{
		Store:       tenantStore,
		Name:        input.Name,
		Description: input.Description,
		Email:       input.Email,
		Password:    input.Password,
	})
	if err != nil {
		if errors.Is(err, organizations.ErrorInvalidInput) {
			common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to create org", types.ErrorInvalidInput)
			return
		} else if errors.Is(err, organizations.ErrorOrgExists) {
			common.SendHttpFailResponse(w, r, http.StatusConflict, "failed to create org", types.ErrorOrgExists)
			return
		} else if errors.Is(err, organizations.ErrorEmailExists) {
			common.SendHttpFailResponse(w, r, http.StatusConflict, "failed to create org", types.ErrorEmailExists)
			return
		}
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to create org", types.ErrorGeneric)
		return
	}
	log(common.LogLevelInfo, "successfully created org["+view.OrganizationName+"]")

	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", view)
}

// handleGetOrgV1 returns the organization view for the name in the path
func handleGetOrgV1(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orgName := vars["name"]

	view, err := organizations.GetOrgV1(r.Context(), organizations.GetOrgV1Opts{
		Store: tenantStore,
		Name:  orgName,
	})
	if err != nil {
		if errors.Is(err, organizations.ErrorOrgNotFound) {
			common.SendHttpFailResponse(w, r, http.StatusNotFound, "failed to find org", types.ErrorNotFound)
			return
		}
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to get org", types.ErrorGeneric)
		return
	}

	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", view)
}

type handleUpdateOrgV1Input struct {
	// NewName is the organization's new display name, it gets
	// normalized before the migration starts
	NewName string `json:"newName"`
}

// handleUpdateOrgV1 renames an organization, the caller's token has to
// be scoped to the target organization
func handleUpdateOrgV1(w http.ResponseWriter, r *http.Request) {
	log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)
	identity := r.Context().Value(adminAuthRequestContext).(adminIdentity)
	vars := mux.Vars(r)
	orgName := vars["name"]

	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to read request body", nil)
		return
	}
	var input handleUpdateOrgV1Input
	if err := json.Unmarshal(requestBody, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to parse request body", nil)
		return
	}

	view, err := organizations.UpdateOrgV1(r.Context(), organizations.UpdateOrgV1Opts{
		Store:       tenantStore,
		Name:        orgName,
		NewName:     input.NewName,
		CallerOrgId: identity.OrgId,
	})
	if err != nil {
		if errors.Is(err, organizations.ErrorInvalidInput) {
			common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to rename org", types.ErrorInvalidInput)
			return
		} else if errors.Is(err, organizations.ErrorOrgNotFound) {
			common.SendHttpFailResponse(w, r, http.StatusNotFound, "failed to find org", types.ErrorNotFound)
			return
		} else if errors.Is(err, organizations.ErrorNotAuthorized) {
			common.SendHttpFailResponse(w, r, http.StatusForbidden, "failed to rename org", types.ErrorInsufficientPermissions)
			return
		} else if errors.Is(err, organizations.ErrorOrgExists) {
			common.SendHttpFailResponse(w, r, http.StatusConflict, "failed to rename org", types.ErrorOrgExists)
			return
		}
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to rename org", types.ErrorGeneric)
		return
	}
	log(common.LogLevelInfo, "successfully renamed org to ["+view.OrganizationName+"]")

	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", view)
}

// handleDeleteOrgV1 removes an organization, its admin account, and its
// tenant partition
func handleDeleteOrgV1(w http.ResponseWriter, r *http.Request) {
	log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)
	identity := r.Context().Value(adminAuthRequestContext).(adminIdentity)
	vars := mux.Vars(r)
	orgName := vars["name"]

	output, err := organizations.DeleteOrgV1(r.Context(), organizations.DeleteOrgV1Opts{
		Store:       tenantStore,
		Name:        orgName,
		CallerOrgId: identity.OrgId,
	})
	if err != nil {
		if errors.Is(err, organizations.ErrorOrgNotFound) {
			common.SendHttpFailResponse(w, r, http.StatusNotFound, "failed to find org", types.ErrorNotFound)
			return
		} else if errors.Is(err, organizations.ErrorNotAuthorized) {
			common.SendHttpFailResponse(w, r, http.StatusForbidden, "failed to delete org", types.ErrorInsufficientPermissions)
			return
		}
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to delete org", types.ErrorGeneric)
		return
	}
	log(common.LogLevelInfo, "successfully deleted org["+orgName+"]")

	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", output)
}
