package modules

import "github.com/gin-gonic/gin"

// Guard is the middleware chain in front of authenticated routes:
// bearer auth first, then the per-user rate limit.
type Guard struct {
	Auth  gin.HandlerFunc
	Limit gin.HandlerFunc
}

func (g Guard) Group(rg *gin.RouterGroup, path string) *gin.RouterGroup {
	grp := rg.Group(path)
	grp.Use(g.Auth)
	if g.Limit != nil {
		grp.Use(g.Limit)
	}
	return grp
}
