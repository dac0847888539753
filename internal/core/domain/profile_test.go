package domain

import "testing"

func TestNormalizeJoke(t *testing.T) {
	tests := []struct {
		name string
		raw  RawJoke
		want Joke
	}{
		{
			name: "two part",
			raw:  RawJoke{Category: "Programming", Kind: "twopart", Setup: "Why?", Delivery: "Because."},
			want: Joke{Type: "Programming", Content: "Why? Because."},
		},
		{
			name: "single",
			raw:  RawJoke{Category: "Misc", Kind: "single", Joke: "A joke."},
			want: Joke{Type: "Misc", Content: "A joke."},
		},
		{
			name: "untyped with setup",
			raw:  RawJoke{Category: "Pun", Setup: "Knock knock.", Delivery: "Who's there?"},
			want: Joke{Type: "Pun", Content: "Knock knock. Who's there?"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeJoke(tt.raw); got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}
