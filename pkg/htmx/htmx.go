package htmx

import "net/http"

const (
	HeaderRequest  = "HX-Request"
	HeaderPushURL  = "HX-Push-Url"
	HeaderRetarget = "HX-Retarget"
	HeaderReswap   = "HX-Reswap"
)

func IsHxRequest(r *http.Request) bool {
	return r.Header.Get(HeaderRequest) == "true"
}

func PushUrl(w http.ResponseWriter, url string) {
	w.Header().Set(HeaderPushURL, url)
}

func Retarget(w http.ResponseWriter, target string) {
	w.Header().Set(HeaderRetarget, target)
}

func Reswap(w http.ResponseWriter, swap string) {
	w.Header().Set(HeaderReswap, swap)
}
