package handlers

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/pbkdf2"

	"github.com/spencer-p/tidedash/pkg/data"
)

const (
	sessionName = "tidedash"

	sessionLocationID = "location-id"
	sessionPlace      = "name"
	sessionLat        = "lat"
	sessionLng        = "lng"
	sessionStation    = "station"

	// See https://developer.chrome.com/blog/cookie-max-age-expires.
	defaultMaxAge = 60 * 60 * 24 * 400 // 400 days in seconds.

	defaultKey = "deadbeef"
)

// NewSessionStore returns a cookie store that signs with sessionKey and
// encrypts with a key derived from encryptionKey. Empty keys fall back to a
// compile-time default.
func NewSessionStore(sessionKey, encryptionKey string) *sessions.CookieStore {
	if sessionKey == "" {
		sessionKey = defaultKey
	}
	if encryptionKey == "" {
		encryptionKey = defaultKey
	}
	store := &sessions.CookieStore{
		Codecs: securecookie.CodecsFromPairs(
			[]byte(sessionKey),
			pbkdf2.Key([]byte(encryptionKey), []byte{}, 4096, 32, sha1.New),
		),
		Options: &sessions.Options{
			Path:     "/",
			MaxAge:   defaultMaxAge,
			Secure:   true,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
	}
	store.MaxAge(defaultMaxAge)
	return store
}

// sessionLocation returns the location saved in the visitor's cookie.
func (h *Handlers) sessionLocation(r *http.Request) (data.Location, bool) {
	session, err := h.sessions.Get(r, sessionName)
	if err != nil {
		h.logger.Debug("Ignoring unreadable session", "err", err)
		return data.Location{}, false
	}
	lat, latOK := session.Values[sessionLat].(float64)
	lng, lngOK := session.Values[sessionLng].(float64)
	if !latOK || !lngOK {
		return data.Location{}, false
	}
	loc := data.Location{Lat: lat, Lng: lng}
	loc.Name, _ = session.Values[sessionPlace].(string)
	loc.Station, _ = session.Values[sessionStation].(int)
	loc.ID, _ = session.Values[sessionLocationID].(uint)
	return loc, true
}

func (h *Handlers) serveGetLocation(w http.ResponseWriter, r *http.Request) {
	loc, ok := h.sessionLocation(r)
	if !ok {
		h.writeError(w, http.StatusNotFound, fmt.Errorf("no location saved"))
		return
	}
	h.writeJSON(w, http.StatusOK, loc)
}

type locationRequest struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Station int     `json:"station"`
}

func (l locationRequest) validate() error {
	if l.Lat < -90 || l.Lat > 90 {
		return fmt.Errorf("lat %g is outside [-90, 90]", l.Lat)
	}
	if l.Lng < -180 || l.Lng > 180 {
		return fmt.Errorf("lng %g is outside [-180, 180]", l.Lng)
	}
	if l.Station < 0 {
		return fmt.Errorf("station %d is negative", l.Station)
	}
	return nil
}

func (h *Handlers) servePostLocation(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("failed to read location: %w", err))
		return
	}
	if err := req.validate(); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	// An unreadable cookie is replaced by a fresh session.
	session, _ := h.sessions.Get(r, sessionName)

	loc := data.Location{
		Name:    req.Name,
		Lat:     req.Lat,
		Lng:     req.Lng,
		Station: req.Station,
	}
	if id, ok := session.Values[sessionLocationID].(uint); ok {
		// Read-modify-write the location this visitor saved before.
		loc.ID = id
	}
	if err := h.store.SaveLocation(r.Context(), &loc); err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	h.logger.Info("Saved location", "id", loc.ID, "name", loc.Name, "lat", loc.Lat, "lng", loc.Lng)

	session.Values[sessionLocationID] = loc.ID
	session.Values[sessionPlace] = loc.Name
	session.Values[sessionLat] = loc.Lat
	session.Values[sessionLng] = loc.Lng
	session.Values[sessionStation] = loc.Station
	if err := session.Save(r, w); err != nil {
		h.writeError(w, http.StatusInternalServerError, fmt.Errorf("failed to save session: %w", err))
		return
	}
	h.writeJSON(w, http.StatusOK, loc)
}

func (h *Handlers) serveLocations(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit", defaultLocationsLimit, 1, 1000)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	locs, err := h.store.Locations(r.Context(), limit)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if locs == nil {
		locs = []data.Location{}
	}
	h.writeJSON(w, http.StatusOK, locs)
}
