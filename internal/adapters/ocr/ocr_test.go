package ocr

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "mathgate/internal/platform/errors"
)

func TestRecognize_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recognize" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("langs"); got != DefaultLangs {
			t.Errorf("langs = %q want %q", got, DefaultLangs)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != "imagebytes" {
			t.Errorf("unexpected body %q", body)
		}
		_, _ = w.Write([]byte(`{"text": "٣x+٢"}`))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})
	got, err := c.Recognize(context.Background(), []byte("imagebytes"), "")
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if got != "٣x+٢" {
		t.Fatalf("text = %q", got)
	}
}

func TestRecognize_FailuresMapToOCR(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"non 2xx", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
		{"empty text", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"text": ""}`))
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := httptest.NewServer(c.handler)
			defer srv.Close()

			cl := New(Options{BaseURL: srv.URL})
			_, err := cl.Recognize(context.Background(), []byte("img"), "ara+eng")
			if !perr.IsCode(err, perr.ErrorCodeOCR) {
				t.Fatalf("expected OCR error, got %v", err)
			}
		})
	}
}

func TestRecognize_EmptyImage(t *testing.T) {
	t.Parallel()

	c := New(Options{BaseURL: "http://127.0.0.1:1"})
	_, err := c.Recognize(context.Background(), nil, "")
	if !perr.IsCode(err, perr.ErrorCodeOCR) {
		t.Fatalf("expected OCR error, got %v", err)
	}
}
