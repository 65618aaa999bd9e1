package poker

import (
	"errors"
	"testing"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()
	aceSpades := NewCard(Ace, Spades)
	if aceSpades.Rank() != Ace {
		t.Errorf("Expected rank Ace, got %d", aceSpades.Rank())
	}
	if aceSpades.Suit() != Spades {
		t.Errorf("Expected suit Spades, got %d", aceSpades.Suit())
	}
	if aceSpades.String() != "As" {
		t.Errorf("Expected 'As', got %s", aceSpades.String())
	}
	if aceSpades.Index() != 51 {
		t.Errorf("Expected index 51, got %d", aceSpades.Index())
	}

	// Two of clubs is the lowest card
	twoClubs := NewCard(Two, Clubs)
	if twoClubs.String() != "2c" || twoClubs.Index() != 0 {
		t.Errorf("Expected '2c' at index 0, got %s at %d", twoClubs, twoClubs.Index())
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{name: "ace of spades", input: "As", wantCard: NewCard(Ace, Spades)},
		{name: "two of hearts", input: "2h", wantCard: NewCard(Two, Hearts)},
		{name: "king of diamonds", input: "Kd", wantCard: NewCard(King, Diamonds)},
		{name: "ten lower case", input: "tc", wantCard: NewCard(Ten, Clubs)},
		{name: "upper case suit", input: "9S", wantCard: NewCard(Nine, Spades)},
		{name: "bad rank", input: "1s", wantErr: true},
		{name: "bad suit", input: "Ax", wantErr: true},
		{name: "too long", input: "10s", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCard) {
					t.Fatalf("ParseCard(%q) error = %v, want ErrInvalidCard", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCard(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.wantCard {
				t.Errorf("ParseCard(%q) = %s, want %s", tt.input, got, tt.wantCard)
			}
		})
	}
}

func TestCardIndexBijection(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)
	for i := range NumCards {
		c := CardFromIndex(i)
		if c.Index() != i {
			t.Fatalf("CardFromIndex(%d).Index() = %d", i, c.Index())
		}
		if NewCard(c.Rank(), c.Suit()) != c {
			t.Fatalf("rank/suit round trip failed for %s", c)
		}
		if seen[c.String()] {
			t.Fatalf("duplicate card string %s", c)
		}
		seen[c.String()] = true

		parsed, err := ParseCard(c.String())
		if err != nil || parsed != c {
			t.Fatalf("ParseCard(%s) = %v, %v", c, parsed, err)
		}
	}

	// Index order is rank-major
	if NewCard(Three, Clubs) <= NewCard(Two, Spades) {
		t.Error("expected 3c to sort above 2s")
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "board", input: "3s7d8c", want: "3s7d8c"},
		{name: "spaces ignored", input: "As Kd 2c", want: "AsKd2c"},
		{name: "empty", input: "", want: ""},
		{name: "odd length", input: "AsK", wantErr: ErrInvalidCard},
		{name: "duplicate", input: "AsKdAs", wantErr: ErrDuplicateCard},
		{name: "bad card", input: "AsZz", wantErr: ErrInvalidCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cards, err := ParseCards(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseCards(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCards(%q) unexpected error: %v", tt.input, err)
			}
			if got := FormatCards(cards); got != tt.want {
				t.Errorf("ParseCards(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func BenchmarkCardString(b *testing.B) {
	card := NewCard(Ace, Spades)
	for b.Loop() {
		_ = card.String()
	}
}

func BenchmarkParseCard(b *testing.B) {
	for b.Loop() {
		_, _ = ParseCard("As")
	}
}
