package errors

import (
	"testing"
)

func TestFieldErrors(t *testing.T) {
	err := Append(
		Field("Admins.0", ErrInput, "too short"),
		Field("Admins.2", ErrInput, "not normalized"),
		Field("DonationDenom", ErrCurrency, "invalid %q", "$"),
	)

	cases := map[string]struct {
		field string
		want  int
		kind  *Error
	}{
		"first admin":                   {field: "Admins.0", want: 1, kind: ErrInput},
		"third admin":                   {field: "Admins.2", want: 1, kind: ErrInput},
		"denomination":                  {field: "DonationDenom", want: 1, kind: ErrCurrency},
		"no error for the second admin": {field: "Admins.1", want: 0},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			errs := FieldErrors(err, tc.field)
			if len(errs) != tc.want {
				t.Fatalf("want %d errors, got %d", tc.want, len(errs))
			}
			for _, e := range errs {
				if !tc.kind.Is(e) {
					t.Fatalf("unexpected error kind: %v", e)
				}
			}
		})
	}
}

func TestFieldNil(t *testing.T) {
	if err := Field("Name", nil, "ignored"); err != nil {
		t.Fatalf("want nil, got %v", err)
	}
	if err := AppendField(nil, "Name", nil); err != nil {
		t.Fatalf("want nil, got %v", err)
	}
}

func TestFieldErrorMessage(t *testing.T) {
	err := Field("DonationDenom", ErrCurrency, "invalid %q", "$")
	want := `field "DonationDenom": invalid "$": invalid currency`
	if got := err.Error(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}
