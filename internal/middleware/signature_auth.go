package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	"github.com/SscSPs/journal_entry_store/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// maxSignedBodyBytes bounds the body read for signature verification.
const maxSignedBodyBytes = 64 << 10

// seenSignatureCapacity bounds the replay cache.
const seenSignatureCapacity = 100_000

// seenSignatures remembers accepted signatures until their timestamp can no
// longer pass the skew check.
type seenSignatures struct {
	mu   sync.Mutex
	seen *expirable.LRU[string, struct{}]
}

func newSeenSignatures(maxSkew time.Duration) *seenSignatures {
	return &seenSignatures{
		seen: expirable.NewLRU[string, struct{}](seenSignatureCapacity, nil, 2*maxSkew+time.Second),
	}
}

// firstUse records sig and reports whether it had not been seen before.
func (s *seenSignatures) firstUse(sig []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := string(sig)
	if s.seen.Contains(key) {
		return false
	}
	s.seen.Add(key, struct{}{})
	return true
}

// SignatureAuth authenticates requests signed by the owner key. Requests
// without the owner header fall through to AuthMiddleware; requests that carry
// it but fail verification are rejected here. Each signature is accepted once.
func SignatureAuth(maxSkew time.Duration, now func() time.Time) gin.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	replays := newSeenSignatures(maxSkew)
	return func(c *gin.Context) {
		ownerHeader := c.GetHeader(utils.HeaderOwner)
		if ownerHeader == "" {
			c.Next() // No signature provided, let it continue
			return
		}
		logger := GetLoggerFromCtx(c.Request.Context())

		owner, err := domain.ParsePublicKey(ownerHeader)
		if err != nil {
			logger.Warn("Signed request owner invalid", slog.String("owner", ownerHeader))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid " + utils.HeaderOwner + " header"})
			return
		}

		ts, err := strconv.ParseInt(c.GetHeader(utils.HeaderTimestamp), 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid " + utils.HeaderTimestamp + " header"})
			return
		}
		if !utils.WithinSkew(ts, now(), maxSkew) {
			logger.Warn("Signed request outside allowed skew", slog.Int64("timestamp", ts))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Request timestamp outside allowed window"})
			return
		}

		nonce := c.GetHeader(utils.HeaderNonce)
		if nonce == "" || len(nonce) > utils.MaxNonceLength {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid " + utils.HeaderNonce + " header"})
			return
		}

		sig, err := utils.DecodeSignature(c.GetHeader(utils.HeaderSignature))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid " + utils.HeaderSignature + " header"})
			return
		}

		var body []byte
		if c.Request.Body != nil {
			body, err = io.ReadAll(io.LimitReader(c.Request.Body, maxSignedBodyBytes+1))
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
				return
			}
			if len(body) > maxSignedBodyBytes {
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Request body too large"})
				return
			}
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
		}

		msg := utils.CanonicalRequest(c.Request.Method, c.Request.URL.RequestURI(), ts, nonce, body)
		if !owner.Verify(msg, sig) {
			logger.Warn("Request signature rejected", slog.String("owner", owner.String()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid request signature"})
			return
		}
		if !replays.firstUse(sig) {
			logger.Warn("Signed request replayed", slog.String("owner", owner.String()), slog.String("nonce", nonce))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Request already processed"})
			return
		}

		setOwner(c, owner, AuthMethodSignature)
		c.Next()
	}
}
