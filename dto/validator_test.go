package dto

import "testing"

func intPtr(n int) *int { return &n }

func TestSubmitOutcomeRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     SubmitOutcomeRequest
		wantErr bool
	}{
		{"valid win", SubmitOutcomeRequest{Date: "2026-01-01", GuessNumber: intPtr(3)}, false},
		{"valid loss", SubmitOutcomeRequest{Date: "2026-01-01", GuessNumber: intPtr(0)}, false},
		{"valid last guess", SubmitOutcomeRequest{Date: "2026-01-01", GuessNumber: intPtr(6)}, false},
		{"guess number too high", SubmitOutcomeRequest{Date: "2026-01-01", GuessNumber: intPtr(7)}, true},
		{"negative guess number", SubmitOutcomeRequest{Date: "2026-01-01", GuessNumber: intPtr(-1)}, true},
		{"missing guess number", SubmitOutcomeRequest{Date: "2026-01-01"}, true},
		{"missing date", SubmitOutcomeRequest{GuessNumber: intPtr(2)}, true},
		{"wrong date layout", SubmitOutcomeRequest{Date: "01/02/2026", GuessNumber: intPtr(2)}, true},
		{"impossible date", SubmitOutcomeRequest{Date: "2026-02-30", GuessNumber: intPtr(2)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoginRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     LoginRequest
		wantErr bool
	}{
		{"valid", LoginRequest{Email: "editor@burgerofthe.day", Password: "hunter2hunter2"}, false},
		{"bad email", LoginRequest{Email: "not-an-email", Password: "hunter2hunter2"}, true},
		{"short password", LoginRequest{Email: "editor@burgerofthe.day", Password: "short"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateValidationErrorResponse(t *testing.T) {
	req := SubmitOutcomeRequest{Date: "nope"}
	err := req.Validate()
	if err == nil {
		t.Fatal("expected a validation error")
	}

	resp := CreateValidationErrorResponse(err)
	if resp.Code != 400 {
		t.Errorf("code = %d, want 400", resp.Code)
	}
	if len(resp.Errors) != 2 {
		t.Errorf("got %d field errors, want 2 (date and guess number): %+v", len(resp.Errors), resp.Errors)
	}
}
