package handler

import "github.com/gin-gonic/gin"

// RouteRegistrar is implemented by handlers that attach their routes to
// the router.
type RouteRegistrar interface {
	RegisterRoutes(router *gin.Engine)
}
