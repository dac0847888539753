package providers

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/albumhub/album-api/internal/core/domain"
)

var errEmptyPayload = fmt.Errorf("%w: empty payload", domain.ErrProviderUnavailable)

type randomUserResponse struct {
	Results []struct {
		Name struct {
			First string `json:"first"`
			Last  string `json:"last"`
		} `json:"name"`
		Email    string `json:"email"`
		Gender   string `json:"gender"`
		Location struct {
			City    string `json:"city"`
			Country string `json:"country"`
		} `json:"location"`
		Picture struct {
			Large string `json:"large"`
		} `json:"picture"`
	} `json:"results"`
}

// RandomUser fetches one identity from randomuser.me.
func (c *Client) RandomUser(ctx context.Context) (domain.RandomUser, error) {
	var resp randomUserResponse
	if err := c.getJSON(ctx, c.cfg.RandomUserURL+"/", nil, nil, &resp); err != nil {
		return domain.RandomUser{}, err
	}
	if len(resp.Results) == 0 {
		return domain.RandomUser{}, errEmptyPayload
	}
	u := resp.Results[0]
	return domain.RandomUser{
		Name:     strings.TrimSpace(u.Name.First + " " + u.Name.Last),
		Email:    u.Email,
		Gender:   u.Gender,
		Location: u.Location.City + ", " + u.Location.Country,
		Picture:  u.Picture.Large,
	}, nil
}

func (c *Client) PhoneNumber(ctx context.Context) (string, error) {
	var numbers []string
	q := url.Values{"CountryCode": {c.cfg.CountryCode}, "Quantity": {"1"}}
	if err := c.randommer(ctx, "/Phone/Generate", q, &numbers); err != nil {
		return "", err
	}
	return first(numbers)
}

func (c *Client) IBAN(ctx context.Context) (string, error) {
	var iban string
	if err := c.randommer(ctx, "/Finance/Iban", url.Values{"countryCode": {c.cfg.CountryCode}}, &iban); err != nil {
		return "", err
	}
	if iban == "" {
		return "", errEmptyPayload
	}
	return iban, nil
}

// creditCardResponse accepts both the Month/Year and the ISO date variants
// of the card payload.
type creditCardResponse struct {
	CardNumber string `json:"cardNumber"`
	CardType   string `json:"cardType"`
	Type       string `json:"type"`
	Month      any    `json:"month"`
	Year       any    `json:"year"`
	Date       string `json:"date"`
	CVV        string `json:"cvv"`
}

func (r creditCardResponse) expiration() string {
	if r.Month != nil && r.Year != nil {
		return fmt.Sprint(r.Month) + "/" + fmt.Sprint(r.Year)
	}
	if len(r.Date) >= 7 {
		year := r.Date[:4]
		if month, err := strconv.Atoi(r.Date[5:7]); err == nil {
			return strconv.Itoa(month) + "/" + year
		}
	}
	return ""
}

func (c *Client) CreditCard(ctx context.Context) (domain.CreditCard, error) {
	var resp creditCardResponse
	if err := c.randommer(ctx, "/Finance/CreditCard", nil, &resp); err != nil {
		return domain.CreditCard{}, err
	}
	if resp.CardNumber == "" {
		return domain.CreditCard{}, errEmptyPayload
	}
	cardType := resp.CardType
	if cardType == "" {
		cardType = resp.Type
	}
	return domain.CreditCard{
		CardNumber:     resp.CardNumber,
		CardType:       cardType,
		ExpirationDate: resp.expiration(),
		CVV:            resp.CVV,
	}, nil
}

func (c *Client) FirstName(ctx context.Context) (string, error) {
	var names []string
	if err := c.randommer(ctx, "/Name/FirstNames", url.Values{"quantity": {"1"}}, &names); err != nil {
		return "", err
	}
	return first(names)
}

func (c *Client) Animal(ctx context.Context) (string, error) {
	var animal string
	if err := c.randommer(ctx, "/Misc/RandomAnimal", nil, &animal); err != nil {
		return "", err
	}
	if animal == "" {
		return "", errEmptyPayload
	}
	return animal, nil
}

func (c *Client) Quote(ctx context.Context) (domain.Quote, error) {
	var resp struct {
		Content string `json:"content"`
		Author  string `json:"author"`
	}
	if err := c.getJSON(ctx, c.cfg.QuoteURL+"/random", nil, nil, &resp); err != nil {
		return domain.Quote{}, err
	}
	if resp.Content == "" {
		return domain.Quote{}, errEmptyPayload
	}
	return domain.Quote{Content: resp.Content, Author: resp.Author}, nil
}

// Joke returns the raw joke; shape normalization happens in the generator.
func (c *Client) Joke(ctx context.Context) (domain.RawJoke, error) {
	var resp struct {
		Error    bool   `json:"error"`
		Category string `json:"category"`
		Type     string `json:"type"`
		Joke     string `json:"joke"`
		Setup    string `json:"setup"`
		Delivery string `json:"delivery"`
	}
	if err := c.getJSON(ctx, c.cfg.JokeURL+"/joke/Programming", nil, nil, &resp); err != nil {
		return domain.RawJoke{}, err
	}
	if resp.Error {
		return domain.RawJoke{}, errors.Join(domain.ErrProviderUnavailable, errors.New("joke api reported an error"))
	}
	return domain.RawJoke{
		Category: resp.Category,
		Kind:     resp.Type,
		Joke:     resp.Joke,
		Setup:    resp.Setup,
		Delivery: resp.Delivery,
	}, nil
}

func first(values []string) (string, error) {
	if len(values) == 0 || values[0] == "" {
		return "", errEmptyPayload
	}
	return values[0], nil
}
