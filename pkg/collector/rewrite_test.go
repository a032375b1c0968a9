package collector

import "testing"

func TestRewritePathVariables(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		path string
		want string
	}{
		{
			name: "no placeholders",
			path: "/pets",
			want: "/pets",
		},
		{
			name: "single placeholder",
			path: "/pets/{petId}",
			want: `=/pets/{{$parameter["petId"]}}`,
		},
		{
			name: "multiple placeholders",
			path: "/stores/{storeId}/orders/{orderId}",
			want: `=/stores/{{$parameter["storeId"]}}/orders/{{$parameter["orderId"]}}`,
		},
		{
			name: "trailing segment",
			path: "/pets/{petId}/photos",
			want: `=/pets/{{$parameter["petId"]}}/photos`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := RewritePathVariables(tc.path); got != tc.want {
				t.Fatalf("RewritePathVariables(%q) = %q, want %q", tc.path, got, tc.want)
			}
		})
	}
}
