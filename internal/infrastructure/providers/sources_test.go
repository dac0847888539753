package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/albumhub/album-api/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{
		RandomUserURL:   srv.URL + "/api",
		RandommerURL:    srv.URL + "/randommer/",
		RandommerAPIKey: "secret-key",
		QuoteURL:        srv.URL + "/quotable",
		JokeURL:         srv.URL + "/jokes",
		CountryCode:     "FR",
	}, srv.Client())
}

func TestClient_RandomUser(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"name":{"first":"Ada","last":"Lovelace"},"email":"ada@example.com","gender":"female","location":{"city":"London","country":"United Kingdom"},"picture":{"large":"https://img/ada.jpg"}}]}`))
	})

	u, err := c.RandomUser(context.Background())
	if err != nil {
		t.Fatalf("RandomUser: %v", err)
	}
	want := domain.RandomUser{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Gender:   "female",
		Location: "London, United Kingdom",
		Picture:  "https://img/ada.jpg",
	}
	if u != want {
		t.Errorf("got %+v, want %+v", u, want)
	}
}

func TestClient_RandomUser_EmptyResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	})
	if _, err := c.RandomUser(context.Background()); !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Errorf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestClient_RandommerEndpoints(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Api-Key"); got != "secret-key" {
			t.Errorf("X-Api-Key = %q", got)
		}
		switch r.URL.Path {
		case "/randommer/Phone/Generate":
			if r.URL.Query().Get("CountryCode") != "FR" || r.URL.Query().Get("Quantity") != "1" {
				t.Errorf("unexpected query %s", r.URL.RawQuery)
			}
			_, _ = w.Write([]byte(`["+33 1 23 45 67 89"]`))
		case "/randommer/Finance/Iban":
			if r.URL.Query().Get("countryCode") != "FR" {
				t.Errorf("unexpected query %s", r.URL.RawQuery)
			}
			_, _ = w.Write([]byte(`"FR7630006000011234567890189"`))
		case "/randommer/Finance/CreditCard":
			_, _ = w.Write([]byte(`{"cardNumber":"5555444433331111","type":"MasterCard","date":"2029-03-01T00:00:00","cvv":"987"}`))
		case "/randommer/Name/FirstNames":
			_, _ = w.Write([]byte(`["Margaux"]`))
		case "/randommer/Misc/RandomAnimal":
			_, _ = w.Write([]byte(`"Otter"`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	phone, err := c.PhoneNumber(ctx)
	if err != nil || phone != "+33 1 23 45 67 89" {
		t.Errorf("PhoneNumber = %q, %v", phone, err)
	}
	iban, err := c.IBAN(ctx)
	if err != nil || iban != "FR7630006000011234567890189" {
		t.Errorf("IBAN = %q, %v", iban, err)
	}
	card, err := c.CreditCard(ctx)
	if err != nil {
		t.Fatalf("CreditCard: %v", err)
	}
	wantCard := domain.CreditCard{CardNumber: "5555444433331111", CardType: "MasterCard", ExpirationDate: "3/2029", CVV: "987"}
	if card != wantCard {
		t.Errorf("CreditCard = %+v, want %+v", card, wantCard)
	}
	name, err := c.FirstName(ctx)
	if err != nil || name != "Margaux" {
		t.Errorf("FirstName = %q, %v", name, err)
	}
	animal, err := c.Animal(ctx)
	if err != nil || animal != "Otter" {
		t.Errorf("Animal = %q, %v", animal, err)
	}
}

func TestClient_CreditCard_MonthYear(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"cardNumber":"4000","cardType":"Visa","month":7,"year":2030,"cvv":"111"}`))
	})
	card, err := c.CreditCard(context.Background())
	if err != nil {
		t.Fatalf("CreditCard: %v", err)
	}
	if card.ExpirationDate != "7/2030" || card.CardType != "Visa" {
		t.Errorf("got %+v", card)
	}
}

func TestClient_QuoteAndJoke(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/quotable/random":
			_, _ = w.Write([]byte(`{"_id":"x","content":"Simplicity is prerequisite for reliability.","author":"Edsger Dijkstra"}`))
		case "/jokes/joke/Programming":
			_, _ = w.Write([]byte(`{"error":false,"category":"Programming","type":"twopart","setup":"Why?","delivery":"Because."}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	q, err := c.Quote(ctx)
	if err != nil || q.Author != "Edsger Dijkstra" {
		t.Errorf("Quote = %+v, %v", q, err)
	}
	j, err := c.Joke(ctx)
	if err != nil {
		t.Fatalf("Joke: %v", err)
	}
	if j.Kind != "twopart" || j.Setup != "Why?" || j.Delivery != "Because." || j.Category != "Programming" {
		t.Errorf("Joke = %+v", j)
	}
}

func TestClient_UpstreamFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{}`},
		{"unauthorized", http.StatusUnauthorized, `{"message":"bad key"}`},
		{"malformed body", http.StatusOK, `not json`},
		{"empty array", http.StatusOK, `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			if _, err := c.PhoneNumber(context.Background()); !errors.Is(err, domain.ErrProviderUnavailable) {
				t.Errorf("expected ErrProviderUnavailable, got %v", err)
			}
		})
	}
}

func TestClient_HonoursContextDeadline(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.Animal(ctx)
	if !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Errorf("expected ErrProviderUnavailable, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Errorf("request did not stop at the context deadline")
	}
}
