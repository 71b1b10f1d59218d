/*

Package main provides a toy example use of the response toolkit.

*/
package main

import (
	"net/http"

	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/time/rate"

	"github.com/fastpress/response"
	"github.com/fastpress/response/http/middleware"
	"github.com/fastpress/response/http/resp"
	"github.com/fastpress/response/logger"
)

// Handler shares the initialized Responder across all example responses.
type Handler struct {
	*resp.Responder
}

func (h *Handler) json(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"sick": "such data",
		"wow":  "so data",
	}

	rr := h.Response(w, r)
	if err := rr.WithSuccess(data, "here you go"); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) redirect(w http.ResponseWriter, r *http.Request) {
	rr := h.Response(w, r)
	if err := rr.Back("/json"); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	rr := h.Response(w, r)
	if err := rr.Download("example.txt", ""); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
	}
}

func (h *Handler) stream(w http.ResponseWriter, r *http.Request) {
	chunks := []string{"one\n", "two\n", "three\n"}

	rr := h.Response(w, r)
	rr.SetContentType("text/plain", "utf-8")
	rr.Stream(func(size int) []byte {
		if len(chunks) == 0 {
			return nil
		}

		next := chunks[0]
		chunks = chunks[1:]
		return []byte(next)
	})
}

func main() {
	l := logger.New(logger.WithLevel(logger.LogLevelDebug))
	h := &Handler{resp.NewResponder(
		resp.WithLogger(l),
		resp.WithThrottle(rate.Limit(1<<20), 1<<20),
	)}

	mux := http.NewServeMux()
	mux.HandleFunc("/json", h.json)
	mux.HandleFunc("/redirect", h.redirect)
	mux.HandleFunc("/download", h.download)
	mux.HandleFunc("/stream", h.stream)

	srv := middleware.Chain(
		mux,
		middleware.ForceHTTPS(response.CurrentEnv()),
		middleware.RequestID(response.RequestIDKey),
		middleware.NoCache(),
		middleware.InjectResponder(h.Responder, response.ResponderKey),
	)

	l.Info("listening on :8080", nil)
	if err := http.ListenAndServe(":8080", srv); err != nil {
		l.Fatal(err.Error(), nil)
	}
}
