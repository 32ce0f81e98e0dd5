package api

import (
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio-backend/database"
	"portfolio-backend/errs"
)

type authMiddleware struct {
	responder Responder
	userRepo  *database.UserRepo
	jwtSecret string
}

func newAuthMiddleware(userRepo *database.UserRepo, jwtSecret string) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()
	return authMiddleware{
		responder: NewResponder(logger),
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// protect rejects the request unless it carries a valid bearer token whose
// subject resolves to a stored user. The resolved user is placed on the
// request context for handlers.
func (m authMiddleware) protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			m.responder.WriteError(w, errs.Unauthorized)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(m.jwtSecret), nil
		})
		if err != nil || !token.Valid {
			m.responder.WriteError(w, errs.NewUnauthorizedError("Not authorized, token failed"))
			return
		}

		subject, err := token.Claims.GetSubject()
		if err != nil {
			m.responder.WriteError(w, errs.NewUnauthorizedError("Not authorized, token failed"))
			return
		}

		userID, err := uuid.Parse(subject)
		if err != nil {
			m.responder.WriteError(w, errs.NewUnauthorizedError("Not authorized, token failed"))
			return
		}

		user, err := m.userRepo.FindByID(userID)
		if err != nil || user == nil {
			m.responder.WriteError(w, errs.NewUnauthorizedError("Not authorized, token failed"))
			return
		}

		next.ServeHTTP(w, r.WithContext(ctxWithUser(r.Context(), *user)))
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

// LogInternalServerErrors recovers from handler panics and logs every 500
// response with its method and path.
func LogInternalServerErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Msg("Recovered from panic")

				if !srw.wroteHeader {
					srw.WriteHeader(http.StatusInternalServerError)
				}
			}
		}()

		next.ServeHTTP(srw, r)

		if srw.status == http.StatusInternalServerError {
			log.Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("500 error response")
		}
	})
}

// RequestLoggingMiddleware logs HTTP requests, escalating the log level
// with the response status.
func RequestLoggingMiddleware(next http.Handler) http.Handler {
	accessLogger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		next.ServeHTTP(srw, r)

		var logEvent *zerolog.Event
		switch {
		case srw.status >= 500:
			logEvent = accessLogger.Error()
		case srw.status >= 400:
			logEvent = accessLogger.Warn()
		default:
			logEvent = accessLogger.Info()
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", srw.status).
			Dur("duration", time.Since(start)).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP Request")
	})
}
