package inkdrop

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeServer is an in-memory stand-in for the app's local HTTP API.
type fakeServer struct {
	*httptest.Server

	mu    sync.Mutex
	docs  map[string]map[string]any
	order []string
	seq   int

	// lastQuery and lastBody record the most recent request.
	lastQuery string
	lastBody  map[string]any
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()

	s := &fakeServer{docs: make(map[string]map[string]any)}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"version": "5.9.0", "ok": true})
	})
	for _, kind := range []Kind{KindNote, KindBook, KindTag, KindFile} {
		path := "/" + string(kind) + "s"
		mux.HandleFunc("GET "+path, s.handleList(kind))
		mux.HandleFunc("POST "+path, s.handleUpsert(kind))
	}
	mux.HandleFunc("GET /{id}", s.handleGet)
	mux.HandleFunc("DELETE /{id}", s.handleDelete)

	s.Server = httptest.NewServer(s.requireAuth(mux))
	t.Cleanup(s.Close)

	return s
}

func (s *fakeServer) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "user" || pass != "pass" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *fakeServer) put(doc map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := doc["_id"].(string)
	if _, ok := s.docs[id]; !ok {
		s.order = append(s.order, id)
	}
	s.docs[id] = doc
}

// LastQuery returns the raw query of the most recent list or get request.
func (s *fakeServer) LastQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastQuery
}

// LastBody returns the body of the most recent write as received.
func (s *fakeServer) LastBody() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastBody
}

func (s *fakeServer) handleList(kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.lastQuery = r.URL.RawQuery
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		out := []any{}
		for _, id := range s.order {
			if !strings.HasPrefix(id, kind.prefix()) {
				continue
			}
			if limit > 0 && len(out) == limit {
				break
			}
			out = append(out, s.docs[id])
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func (s *fakeServer) handleUpsert(kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var doc map[string]any
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "bad_request", "reason": err.Error()})
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		s.lastBody = make(map[string]any, len(doc))
		for k, v := range doc {
			s.lastBody[k] = v
		}
		now := float64(time.Now().UnixMilli())

		id, _ := doc["_id"].(string)
		if id == "" {
			id = NewID(kind)
		}
		if existing, ok := s.docs[id]; ok {
			if doc["_rev"] != existing["_rev"] {
				writeJSON(w, http.StatusConflict, map[string]any{"error": "conflict", "reason": "Document update conflict."})
				return
			}
			doc["createdAt"] = existing["createdAt"]
		} else {
			s.order = append(s.order, id)
			doc["createdAt"] = now
		}

		s.seq++
		rev := fmt.Sprintf("%d-%08x", s.seq, s.seq)
		doc["_id"] = id
		doc["_rev"] = rev
		doc["updatedAt"] = now
		if kind == KindFile {
			for name, att := range doc["_attachments"].(map[string]any) {
				a := att.(map[string]any)
				delete(a, "data")
				a["digest"] = "md5-" + name
				a["revpos"] = 1
				a["stub"] = true
			}
		}
		s.docs[id] = doc

		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id, "rev": rev})
	}
}

func (s *fakeServer) handleGet(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastQuery = r.URL.RawQuery
	doc, ok := s.docs[r.PathValue("id")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "not_found", "reason": "missing"})
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *fakeServer) handleDelete(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := r.PathValue("id")
	if _, ok := s.docs[id]; !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "not_found", "reason": "deleted"})
		return
	}
	delete(s.docs, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	s.seq++
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id, "rev": fmt.Sprintf("%d-deleted", s.seq)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
