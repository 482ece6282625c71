package app

import "testing"

func TestRunDispatch(t *testing.T) {
	cases := []struct {
		name string
		args []string
		code int
	}{
		{name: "no args", args: nil, code: 2},
		{name: "help", args: []string{"help"}, code: 0},
		{name: "unknown command", args: []string{"conjugate"}, code: 2},
		{name: "providers", args: []string{"providers"}, code: 0},
		{name: "languages", args: []string{"languages", "--provider", "google"}, code: 0},
		{name: "languages unknown provider", args: []string{"languages", "--provider", "babelfish"}, code: 1},
		{name: "translate without target", args: []string{"translate", "hello"}, code: 2},
		{name: "translate without texts", args: []string{"translate", "--target", "de"}, code: 2},
		{name: "file without path", args: []string{"file", "--target", "de"}, code: 2},
		{name: "batch without job", args: []string{"batch"}, code: 2},
		{name: "detect without texts", args: []string{"detect"}, code: 2},
		{name: "detect bad engine", args: []string{"detect", "--engine", "psychic", "hello"}, code: 2},
	}

	for _, tc := range cases {
		if got := Run(tc.args); got != tc.code {
			t.Errorf("%s: Run(%v) = %d, want %d", tc.name, tc.args, got, tc.code)
		}
	}
}

func TestRunDetectOffline(t *testing.T) {
	if got := Run([]string{"detect", "--engine", "offline", "Der schnelle braune Fuchs springt über den faulen Hund."}); got != 0 {
		t.Fatalf("offline detect exit code = %d", got)
	}
}
