package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"doris-art/config"
	"doris-art/internal/infra/cache"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// captureWriter keeps a copy of the body, up to limit bytes, while
// forwarding it to the client.
type captureWriter struct {
	gin.ResponseWriter
	buf   bytes.Buffer
	size  int64
	limit int64
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	if cw.limit <= 0 || cw.size < cw.limit {
		if remain := cw.limit - cw.size; cw.limit > 0 && int64(len(b)) > remain {
			cw.buf.Write(b[:remain])
		} else {
			cw.buf.Write(b)
		}
	}
	cw.size += int64(len(b))
	return cw.ResponseWriter.Write(b)
}

func (cw *captureWriter) WriteString(s string) (int, error) {
	return cw.Write([]byte(s))
}

func cacheKey(cfg config.CacheConfig, r *http.Request) string {
	sum := sha1.Sum([]byte(r.URL.Path + "?" + r.URL.RawQuery))
	return fmt.Sprintf("%s:%x", cfg.Prefix, sum[:])
}

// encodePayload packs: [4 bytes status][4 bytes headerLen][headerJSON][body]
func encodePayload(status int, header http.Header, body []byte) ([]byte, error) {
	hdrJSON, err := json.Marshal(header)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 8+len(hdrJSON)+len(body))
	binary.BigEndian.PutUint32(out[0:4], uint32(status))
	binary.BigEndian.PutUint32(out[4:8], uint32(len(hdrJSON)))
	copy(out[8:], hdrJSON)
	copy(out[8+len(hdrJSON):], body)
	return out, nil
}

func decodePayload(bs []byte) (status int, header http.Header, body []byte, ok bool) {
	if len(bs) < 8 {
		return 0, nil, nil, false
	}
	status = int(binary.BigEndian.Uint32(bs[0:4]))
	hlen := int(binary.BigEndian.Uint32(bs[4:8]))
	if hlen < 0 || 8+hlen > len(bs) {
		return 0, nil, nil, false
	}
	header = make(http.Header)
	if hlen > 0 {
		if err := json.Unmarshal(bs[8:8+hlen], &header); err != nil {
			return 0, nil, nil, false
		}
	}
	return status, header, bs[8+hlen:], true
}

// ResponseCache serves public GET responses from Redis and stores 200s on a
// miss. Bodies larger than MaxBodyBytes are never stored.
func ResponseCache(cfg config.CacheConfig, rdb *redis.Client) gin.HandlerFunc {
	if !cfg.Enabled || rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	limit := int64(cfg.MaxBodyBytes)

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		key := cacheKey(cfg, c.Request)

		if bs, err := rdb.Get(c.Request.Context(), key).Bytes(); err == nil {
			if status, hdr, body, ok := decodePayload(bs); ok {
				for k, vals := range hdr {
					if strings.EqualFold(k, "Content-Length") {
						continue
					}
					for _, v := range vals {
						c.Writer.Header().Add(k, v)
					}
				}
				c.Header("X-Cache", "HIT")
				c.Writer.WriteHeader(status)
				_, _ = c.Writer.Write(body)
				c.Abort()
				return
			}
		}

		cw := &captureWriter{ResponseWriter: c.Writer, limit: limit}
		c.Writer = cw
		c.Header("X-Cache", "MISS")
		c.Next()

		if cw.Status() != http.StatusOK || (limit > 0 && cw.size > limit) {
			return
		}
		hdr := cw.Header().Clone()
		hdr.Del("X-Cache")
		if payload, err := encodePayload(cw.Status(), hdr, cw.buf.Bytes()); err == nil {
			_ = rdb.SetEx(context.Background(), key, payload, ttl).Err()
		}
	}
}

// FlushCacheOnWrite drops every cached public response after a successful
// admin mutation.
func FlushCacheOnWrite(cfg config.CacheConfig, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if rdb == nil || c.Request.Method == http.MethodGet {
			return
		}
		if s := c.Writer.Status(); s < 200 || s >= 300 {
			return
		}
		if err := cache.Flush(context.Background(), rdb, cfg.Prefix); err != nil {
			log.Println("⚠️ Failed to flush response cache:", err)
		}
	}
}
