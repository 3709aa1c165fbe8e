package newsletter

import (
	"encoding/json"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/bookfi/catalog-api/internal/api/httpx"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe handles POST /newsletter.
func Subscribe(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req subscribeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.ErrorJSON(w, http.StatusBadRequest, "Invalid email address")
			return
		}
		email := strings.TrimSpace(req.Email)
		if email == "" || !emailRe.MatchString(email) {
			httpx.ErrorJSON(w, http.StatusBadRequest, "Invalid email address")
			return
		}

		added, err := store.Add(r.Context(), email)
		if err != nil {
			log.Printf("[newsletter] store add failed: %v", err)
			httpx.ErrorJSON(w, http.StatusInternalServerError, "Failed to subscribe")
			return
		}
		if !added {
			httpx.ErrorJSON(w, http.StatusConflict, "Email is already subscribed")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "Successfully subscribed to newsletter",
			"email":   email,
		})
	}
}

// Stats handles GET /newsletter.
func Stats(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		total, err := store.Count(r.Context())
		if err != nil {
			log.Printf("[newsletter] store count failed: %v", err)
			httpx.ErrorJSON(w, http.StatusInternalServerError, "Failed to read stats")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"totalSubscribers": total,
			"message":          "Newsletter subscription stats",
		})
	}
}
