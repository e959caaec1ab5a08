package handler

import (
	"encoding/json"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/didip/tollbooth_gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/weiawesome/library-id/internal/isbn"
	"github.com/weiawesome/library-id/pkg/log"
	"github.com/weiawesome/library-id/pkg/response"
)

var registerOnce sync.Once

// RegisterValidators adds the "isbn" binding tag to gin's validator. The tag
// accepts a hyphenated or plain ISBN-10/13 with a correct check character.
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("isbn", func(fl validator.FieldLevel) bool {
				return isbn.Validate(fl.Field().String()) == nil
			})
		}
	})
}

// CORS allows the browser front end to call the API. An origin of "*" allows
// every origin without credentials.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", log.HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", log.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}

// RateLimit limits each client IP to rps requests per second. The client IP
// is the connection address unless trustProxyHeaders is set, in which case
// X-Forwarded-For and X-Real-IP win. The rejection body uses the standard
// response envelope.
func RateLimit(rps float64, trustProxyHeaders bool) gin.HandlerFunc {
	lmt := tollbooth.NewLimiter(rps, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	if trustProxyHeaders {
		lmt.SetIPLookups([]string{"X-Forwarded-For", "X-Real-IP", "RemoteAddr"})
	} else {
		lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	}

	body, _ := json.Marshal(response.Response{
		Error: &response.ErrorInfo{
			Code:    response.CodeTooManyRequests,
			Message: "too many requests, please try again later",
		},
	})
	lmt.SetMessage(string(body))
	lmt.SetMessageContentType("application/json; charset=utf-8")

	return tollbooth_gin.LimitHandler(lmt)
}
