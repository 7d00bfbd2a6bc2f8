package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"
)

// DocsResponse is the list envelope every collection read returns.
type DocsResponse struct {
	Docs any `json:"docs"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeDocs never emits a null docs array; an empty result is a valid state
// and clients key off `docs: []`.
func writeDocs[T any](w http.ResponseWriter, docs []T) {
	if docs == nil {
		docs = []T{}
	}
	writeJSON(w, http.StatusOK, DocsResponse{Docs: docs})
}

func writeHTML(w http.ResponseWriter, status int, html template.HTML) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(html))
}

func queryInt(r *http.Request, key string) int {
	n, _ := strconv.Atoi(r.URL.Query().Get(key))
	return n
}

// whereEquals reads the CMS-style equality filter syntax,
// e.g. where[programType][equals]=camp.
func whereEquals(r *http.Request, field string) string {
	return r.URL.Query().Get("where[" + field + "][equals]")
}
