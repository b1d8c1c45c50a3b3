package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	taskHTTP "classsync/internal/task/delivery/http"
)

// setupTaskDomain initializes the task domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
