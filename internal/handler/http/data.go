package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-advert-board/models"
	"github.com/go-chi/chi/v5"
)

// loginRequest is the JSON body of POST /login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registerRequest is the JSON body of POST /user. A separate type is needed
// because [models.User] never serializes its password, while registration has
// to read the plaintext from the body.
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r registerRequest) toUser() models.User {
	return models.User{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

// createAdvertRequest is the JSON body of POST /advert. The creation date is
// not accepted from clients; it is assigned server-side.
type createAdvertRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	OwnerID     int64  `json:"owner_id"`
}

func (r createAdvertRequest) toAdvert() models.Advert {
	return models.Advert{
		Title:       r.Title,
		Description: r.Description,
		OwnerID:     r.OwnerID,
	}
}

// idFromRequest extracts and parses the numeric {id} URL parameter.
func idFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
