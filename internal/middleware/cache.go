package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
)

// ResponseCache memoizes GET responses for reference data that changes
// rarely (clients, brands, operators). Any write through the same group
// flushes the whole cache, so a short TTL is enough to keep lists fresh.
type ResponseCache struct {
	store *gocache.Cache
}

type cachedResponse struct {
	status      int
	contentType string
	body        []byte
}

func NewResponseCache(ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		store: gocache.New(ttl, 2*ttl),
	}
}

type cacheWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *cacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (c *ResponseCache) Cache() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.Method != http.MethodGet {
			ctx.Next()
			if ctx.Writer.Status() < 400 {
				c.store.Flush()
			}
			return
		}

		key := ctx.Request.URL.RequestURI()
		if entry, found := c.store.Get(key); found {
			resp := entry.(*cachedResponse)
			ctx.Header("X-Cache", "HIT")
			ctx.Data(resp.status, resp.contentType, resp.body)
			ctx.Abort()
			return
		}

		w := &cacheWriter{ResponseWriter: ctx.Writer, body: &bytes.Buffer{}}
		ctx.Writer = w

		ctx.Next()

		if w.Status() == http.StatusOK {
			c.store.Set(key, &cachedResponse{
				status:      w.Status(),
				contentType: w.Header().Get("Content-Type"),
				body:        w.body.Bytes(),
			}, gocache.DefaultExpiration)
		}
	}
}
