package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dkarlsson/priceportal/internal/common"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// a body that cannot be decoded carries no credentials
		writeMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, err := s.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		s.writeLoginError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// writeLoginError is the single place where internal outcomes become outward
// responses. Unknown email and password mismatch both map to the same 401
// body; store and signing failures never do.
func (s *HTTPServer) writeLoginError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		writeMessage(w, http.StatusBadRequest, "Email and password are required")
	case errors.Is(err, common.ErrorUnauthorized):
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, common.ErrorConfiguration):
		writeMessage(w, http.StatusInternalServerError, "Server configuration error")
	default:
		s.logger.Error(r.Context(), "login handler error", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, "Server error")
	}
}

func (s *HTTPServer) handlePricelist(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	items, err := s.content.Pricelist(ctx)
	if err != nil {
		s.logger.Error(r.Context(), "pricelist handler error", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (s *HTTPServer) handleTerms(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	doc, err := s.content.Terms(ctx, r.PathValue("lang"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeMessage(w, http.StatusNotFound, "Terms not found")
			return
		}
		s.logger.Error(r.Context(), "terms handler error", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

func (s *HTTPServer) handleTexts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := s.content.Texts(ctx, r.PathValue("lang"))
	if err != nil {
		s.logger.Error(r.Context(), "texts handler error", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *HTTPServer) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
