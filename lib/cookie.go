package lib

import (
	"net/http"
	"time"
	"treeuniformes_server/config"
)

const (
	AccessCookieName  = "access_token"
	RefreshCookieName = "refresh_token"
	CSRFCookieName    = "csrf"
)

func cookieDomain() string {
	if config.IsProduction() {
		return ".treeuniformes.mx"
	}
	return ""
}

// SetCookie sets an HttpOnly cookie scoped to the site
func SetCookie(w http.ResponseWriter, name, value string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   cookieDomain(),
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

// SetCSRFCookie sets the CSRF token cookie, readable by the frontend
func SetCSRFCookie(w http.ResponseWriter, value string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     CSRFCookieName,
		Value:    value,
		Path:     "/",
		Domain:   cookieDomain(),
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: false, // the frontend echoes this value in the X-CSRF-Token header
		Secure:   config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

// GetCookieValue returns the value of a named cookie
func GetCookieValue(name string, r *http.Request) (string, error) {
	cookie, err := r.Cookie(name)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}

// ClearCookie expires a cookie immediately
func ClearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   cookieDomain(),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}
