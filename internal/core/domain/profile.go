package domain

// CompositeProfile is assembled per request from independent upstream
// providers and is never persisted.
type CompositeProfile struct {
	User        RandomUser `json:"user"`
	PhoneNumber string     `json:"phone_number"`
	IBAN        string     `json:"iban"`
	CreditCard  CreditCard `json:"credit_card"`
	RandomName  string     `json:"random_name"`
	Pet         string     `json:"pet"`
	Quote       Quote      `json:"quote"`
	Joke        Joke       `json:"joke"`
}

type RandomUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Gender   string `json:"gender"`
	Location string `json:"location"`
	Picture  string `json:"picture"`
}

type CreditCard struct {
	CardNumber     string `json:"card_number"`
	CardType       string `json:"card_type"`
	ExpirationDate string `json:"expiration_date"`
	CVV            string `json:"cvv"`
}

type Quote struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

type Joke struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// RawJoke is the joke provider payload before normalization. Kind is
// "single" or "twopart".
type RawJoke struct {
	Category string
	Kind     string
	Joke     string
	Setup    string
	Delivery string
}

// NormalizeJoke flattens either joke shape into a Joke. Anything that is not
// a single-line joke is treated as setup plus delivery.
func NormalizeJoke(raw RawJoke) Joke {
	if raw.Kind == "single" || (raw.Kind == "" && raw.Joke != "") {
		return Joke{Type: raw.Category, Content: raw.Joke}
	}
	return Joke{Type: raw.Category, Content: raw.Setup + " " + raw.Delivery}
}

// Static values substituted when a provider fails.
var (
	FallbackRandomUser = RandomUser{
		Name:     "Jane Doe",
		Email:    "jane.doe@example.com",
		Gender:   "female",
		Location: "Paris, France",
		Picture:  "https://randomuser.me/api/portraits/women/1.jpg",
	}
	FallbackPhoneNumber = "+33 6 12 34 56 78"
	FallbackIBAN        = "FR1420041010050500013M02606"
	FallbackCreditCard  = CreditCard{
		CardNumber:     "4111111111111111",
		CardType:       "VISA",
		ExpirationDate: "12/2026",
		CVV:            "123",
	}
	FallbackName  = "Alice"
	FallbackPet   = "Cat"
	FallbackQuote = Quote{
		Content: "The only way to do great work is to love what you do.",
		Author:  "Steve Jobs",
	}
	FallbackJoke = Joke{
		Type:    "Programming",
		Content: "Why do programmers prefer dark mode? Because light attracts bugs.",
	}
)
