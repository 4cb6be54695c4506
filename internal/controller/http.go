package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"tenantry/internal/common"
	"tenantry/internal/organizations"
	"tenantry/internal/persistence"
	"time"

	"github.com/gorilla/mux"
)

type HttpApplicationOpts struct {
	// DatabaseConnection provides a managed connection to a MongoDB
	// compatible database
	DatabaseConnection *persistence.Mongo

	// DatabaseName is the name of the database holding the master
	// catalog and the tenant partitions
	DatabaseName string

	// JwtIssuer goes into the issuer claim of issued tokens
	JwtIssuer string

	// JwtSecret signs issued tokens, change this to invalidate all
	// sessions with immediate effect
	JwtSecret string

	// TokenTtl is how long an issued token stays valid
	TokenTtl time.Duration

	// LivenessChecks are sequentially executed when the liveness probe endpoint is hit
	LivenessChecks []func() error

	// ReadinessChecks are sequentially executed when the readiness probe endpoint is hit
	ReadinessChecks []func() error

	// ServiceLogs is a centralised channel where logs get sent to
	ServiceLogs chan<- common.ServiceLog
}

func (o HttpApplicationOpts) Validate() error {
	errs := []error{}

	if o.DatabaseConnection == nil {
		errs = append(errs, fmt.Errorf("failed to receive a database connection: %w", ErrorMissingDatabaseConnection))
	}
	if o.DatabaseName == "" {
		errs = append(errs, fmt.Errorf("failed to receive a database name: %w", ErrorMissingDatabaseName))
	}
	if o.JwtSecret == "" {
		errs = append(errs, fmt.Errorf("failed to receive a token signing secret: %w", ErrorMissingJwtSecret))
	}
	if o.ServiceLogs == nil {
		errs = append(errs, fmt.Errorf("failed to receive a service log: %w", ErrorMissingServiceLog))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

type RouteRegistrationOpts struct {
	Router      *mux.Router
	ServiceLogs chan<- common.ServiceLog
}

func GetHttpApplication(opts HttpApplicationOpts) (http.Handler, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("failed to initialise http application: %w", err)
	}

	// initialise common globals

	serviceLogs = &opts.ServiceLogs

	jwtIssuer = opts.JwtIssuer
	jwtSecret = opts.JwtSecret
	tokenTtl = opts.TokenTtl
	if tokenTtl == 0 {
		tokenTtl = 30 * time.Minute
	}

	documents := persistence.NewDocumentDatabase(opts.DatabaseConnection.GetDatabase(opts.DatabaseName))
	tenantStore = organizations.NewTenantStore(documents)

	provisionCtx, cancelProvision := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelProvision()
	if err := tenantStore.Provision(provisionCtx); err != nil {
		return nil, fmt.Errorf("failed to provision the tenant catalog: %w", err)
	}
	*serviceLogs <- common.ServiceLogf(common.LogLevelInfo, "tenant catalog is provisioned on database[%s]", opts.DatabaseName)

	handler := mux.NewRouter()
	handler.NotFoundHandler = common.GetNotFoundHandler()
	common.RegisterCommonHttpEndpoints(common.CommonHttpEndpointsOpts{
		Router:          handler,
		ServiceLogs:     opts.ServiceLogs,
		LivenessChecks:  opts.LivenessChecks,
		ReadinessChecks: opts.ReadinessChecks,
	})

	api := handler.PathPrefix("/api").Subrouter()
	apiOpts := RouteRegistrationOpts{
		Router:      api,
		ServiceLogs: opts.ServiceLogs,
	}

	registerOrgRoutes(apiOpts)
	registerSessionRoutes(apiOpts)

	if err := handler.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		pathTemplate, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}
		methods, err := route.GetMethods()
		if err != nil {
			methods = []string{"*"}
		}
		*serviceLogs <- common.ServiceLogf(common.LogLevelDebug, "registered route[%s] with methods[%s]", pathTemplate, strings.Join(methods, "|"))
		return nil
	}); err != nil {
		return nil, err
	}

	return handler, nil
}
