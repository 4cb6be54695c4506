package controller

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"tenantry/internal/auth"
	"tenantry/internal/common"
	"tenantry/internal/types"
	"tenantry/internal/validate"
)

const adminAuthRequestContext common.HttpContextKey = "controller-auth"

type adminIdentity struct {
	// SourceIp is the IP address that the request came from
	SourceIp string `json:"sourceIp"`

	// UserAgent is the user agent of the request
	UserAgent string `json:"userAgent"`

	// AdminId is the ID of the current caller
	AdminId string `json:"adminId"`

	// Email is the email of the current caller
	Email string `json:"email"`

	// OrgId is the organization the caller's token is scoped to
	OrgId string `json:"orgId"`

	// OrgName is the organization name embedded in the caller's token
	OrgName string `json:"orgName"`
}

func getRouteAuther(serviceLogs chan<- common.ServiceLog) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)
			serviceLogs <- common.ServiceLogf(common.LogLevelTrace, "auth middleware is executing")
			authorizationHeader := r.Header.Get("Authorization")
			if strings.Index(authorizationHeader, "Bearer ") != 0 {
				common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "failed to receive an authorization header", types.ErrorAuthRequired)
				return
			}
			authorizationToken := strings.ReplaceAll(authorizationHeader, "Bearer ", "")
			claims, err := auth.ValidateJwt(jwtSecret, authorizationToken)
			if err != nil {
				common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "failed to validate bearer token", types.ErrorAuthRequired)
				return
			}
			if validate.Uuid(claims.AdminId) != nil || validate.Uuid(claims.OrgId) != nil {
				common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "failed to validate bearer token claims", types.ErrorAuthRequired)
				return
			}
			log(common.LogLevelInfo, fmt.Sprintf("processing request from admin[%s] of org[%s]", claims.AdminId, claims.OrgId))
			identityInstance := adminIdentity{
				SourceIp:  r.RemoteAddr,
				UserAgent: r.UserAgent(),
				AdminId:   claims.AdminId,
				Email:     claims.Email,
				OrgId:     claims.OrgId,
				OrgName:   claims.OrgName,
			}
			authContext := context.WithValue(r.Context(), adminAuthRequestContext, identityInstance)
			next.ServeHTTP(w, r.WithContext(authContext))
		})
	}
}
