package game

import "testing"

func TestHashID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{
			name: "empty input",
			id:   "",
			want: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name: "abc",
			id:   "abc",
			want: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HashID(tt.id); got != tt.want {
				t.Errorf("HashID(%q) = %s, want %s", tt.id, got, tt.want)
			}
		})
	}
}

func TestHashIDDeterministic(t *testing.T) {
	a := HashID("demo-s3e21")
	b := HashID("demo-s3e21")
	if a != b {
		t.Errorf("same input hashed differently: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Errorf("digest length = %d, want 64", len(a))
	}
}

func TestValidateGuess(t *testing.T) {
	answerHash := HashID("episode-42")

	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"correct id", "episode-42", true},
		{"wrong id", "episode-43", false},
		{"empty candidate", "", false},
		{"case matters", "Episode-42", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateGuess(tt.candidate, answerHash); got != tt.want {
				t.Errorf("ValidateGuess(%q) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}
