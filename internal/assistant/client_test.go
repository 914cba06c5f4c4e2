package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rfalcao/stockwatch/internal/models"
)

var testProducts = []models.Product{
	{Name: "Widget", Quantity: 5, PricePerUnit: 2.5, Category: "Hardware"},
	{Name: "Gadget", Quantity: 40, PricePerUnit: 9.99, Category: "Tools"},
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(testProducts, "Which products are low on stock?")

	for _, want := range []string{
		"Product: Widget, Quantity: 5, Price per unit: 2.5, Category: Hardware",
		"Product: Gadget, Quantity: 40, Price per unit: 9.99, Category: Tools",
		`The user has asked: "Which products are low on stock?"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestAsk_ReturnsAnswerVerbatim(t *testing.T) {
	var gotPath string
	var gotBody generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Widget is low on stock."}]}}]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, "gemini-1.5-flash")
	answer, err := c.Ask(context.Background(), testProducts, "Which products are low on stock?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if answer != "Widget is low on stock." {
		t.Errorf("unexpected answer: %q", answer)
	}
	if gotPath != "/v1beta/models/gemini-1.5-flash:generateContent" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if len(gotBody.Contents) != 1 || len(gotBody.Contents[0].Parts) != 1 {
		t.Fatalf("unexpected request shape: %+v", gotBody)
	}
	if !strings.Contains(gotBody.Contents[0].Parts[0].Text, "Widget") {
		t.Errorf("prompt does not carry the inventory: %q", gotBody.Contents[0].Parts[0].Text)
	}
}

func TestAsk_APIErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, "gemini-1.5-flash")
	_, err := c.Ask(context.Background(), testProducts, "anything")
	if err == nil {
		t.Fatal("expected an error for a non-200 status")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error should carry the status code, got: %v", err)
	}
}

func TestAsk_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, "gemini-1.5-flash")
	_, err := c.Ask(context.Background(), testProducts, "anything")
	if err == nil {
		t.Fatal("expected an error for an empty response")
	}
}
