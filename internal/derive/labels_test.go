package derive

import "testing"

func TestDefaultLabeler(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "name", want: "Name"},
		{in: "petId", want: "Pet Id"},
		{in: "order_status", want: "Order Status"},
		{in: "shipping-address", want: "Shipping Address"},
		{in: "HTTPTimeout", want: "Httptimeout"},
		{in: "retryCount2", want: "Retry Count 2"},
		{in: "  padded  ", want: "Padded"},
	}

	for _, tc := range cases {
		if got := DefaultLabeler(tc.in); got != tc.want {
			t.Errorf("DefaultLabeler(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
