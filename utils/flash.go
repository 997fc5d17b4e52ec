package utils

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"

	FlashCookieName = "flash"

	flashPendingKey = "flash.pending"
	flashIssuer     = "cafe-finder"
)

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

type flashClaims struct {
	Messages []Flash `json:"messages"`
	jwt.RegisteredClaims
}

// FlashStore carries notices across a redirect in an HS256-signed cookie so
// they cannot be forged by the client.
type FlashStore struct {
	secret []byte
	ttl    time.Duration
}

func NewFlashStore(secret []byte) *FlashStore {
	return &FlashStore{secret: secret, ttl: 5 * time.Minute}
}

// Add queues a notice for the next page render, in this request or after a
// redirect.
func (f *FlashStore) Add(c *gin.Context, level, text string) {
	pending := append(pendingFlashes(c), Flash{Level: level, Text: text})
	c.Set(flashPendingKey, pending)

	token, err := f.Encode(pending)
	if err != nil {
		ErrorLogger.Printf("Error signing flash cookie: %v", err)
		return
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     FlashCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(f.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Success and Error are shorthands for Add.
func (f *FlashStore) Success(c *gin.Context, text string) { f.Add(c, FlashSuccess, text) }
func (f *FlashStore) Error(c *gin.Context, text string)   { f.Add(c, FlashError, text) }

// Pop returns the notices carried by the request cookie plus the ones queued
// during this request, and clears both.
func (f *FlashStore) Pop(c *gin.Context) []Flash {
	var out []Flash
	if raw, err := c.Cookie(FlashCookieName); err == nil && raw != "" {
		msgs, err := f.Decode(raw)
		if err != nil {
			InfoLogger.Printf("Ignoring invalid flash cookie: %v", err)
		}
		out = append(out, msgs...)
	}
	out = append(out, pendingFlashes(c)...)

	c.Set(flashPendingKey, []Flash(nil))
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     FlashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return out
}

func (f *FlashStore) Encode(msgs []Flash) (string, error) {
	now := time.Now()
	claims := flashClaims{
		Messages: msgs,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    flashIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(f.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(f.secret)
}

func (f *FlashStore) Decode(token string) ([]Flash, error) {
	parsed, err := jwt.ParseWithClaims(token, &flashClaims{}, func(t *jwt.Token) (interface{}, error) {
		return f.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(flashIssuer))
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*flashClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid flash claims")
	}
	return claims.Messages, nil
}

func pendingFlashes(c *gin.Context) []Flash {
	if v, ok := c.Get(flashPendingKey); ok {
		if msgs, ok := v.([]Flash); ok {
			return msgs
		}
	}
	return nil
}
