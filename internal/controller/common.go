package controller

import (
	"tenantry/internal/common"
	"tenantry/internal/organizations"
	"time"
)

var jwtIssuer string
var jwtSecret string
var serviceLogs *chan<- common.ServiceLog
var tenantStore *organizations.TenantStore
var tokenTtl time.Duration
