package form

import (
	"testing"
	"time"
)

func TestDateLayout(t *testing.T) {
	testCases := []struct {
		Format    string
		Expected  string
		ExpectErr bool
	}{
		{Format: "MM/dd/yyyy", Expected: "01/02/2006"},
		{Format: "MM/dd/yyyy - h:mm aa", Expected: "01/02/2006 - 3:04 PM"},
		{Format: "EEEE dd MMMM yy", Expected: "Monday 02 January 06"},
		{Format: "yyyy-MM-dd HH:mm:ss", Expected: "2006-01-02 15:04:05"},
		{Format: "dd 'de' MMM", Expected: "02 de Jan"},
		{Format: "qq/yyyy", ExpectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.Format, func(t *testing.T) {
			layout, err := DateLayout(tc.Format)
			if tc.ExpectErr {
				if err == nil {
					t.Errorf("expected an error, got layout %q", layout)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if layout != tc.Expected {
				t.Errorf("expected layout %q, got %q", tc.Expected, layout)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	expected := time.Date(1990, time.April, 12, 0, 0, 0, 0, time.UTC)

	for _, value := range []string{"1990-04-12", "04/12/1990", " 04/12/1990 "} {
		got, err := ParseDate(value, "")
		if err != nil {
			t.Fatalf("could not parse %q: %v", value, err)
		}

		if !got.Equal(expected) {
			t.Errorf("expected %v, got %v", expected, got)
		}
	}

	got, err := ParseDate("12/04/1990", "dd/MM/yyyy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !got.Equal(expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}

	if _, err := ParseDate("not a date", ""); err == nil {
		t.Error("expected an error")
	}
}
