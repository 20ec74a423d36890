package cd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"minishell/internal/testutil"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		rest    string
		want    string
		wantErr error
	}{
		{name: "none", rest: ""},
		{name: "newline only", rest: "\n"},
		{name: "plain", rest: "foo\n", want: "foo"},
		{name: "tilde", rest: "~\n"},
		{name: "tilde path", rest: "~/src", want: "~/src"},
		{name: "leading tab", rest: "\tfoo", want: "foo"},
		{name: "quoted space", rest: `"a b"` + "\n", want: `"a b"`},
		{name: "inner quotes", rest: `"a"b" c"`, want: `"a"b" c"`},
		{name: "two words", rest: "foo bar\n", wantErr: ErrTooManyArgs},
		{name: "tab separated", rest: "foo\tbar", wantErr: ErrTooManyArgs},
		{name: "leading space", rest: " foo", wantErr: ErrTooManyArgs},
		{name: "space after quoted word", rest: `"a" b`, wantErr: ErrTooManyArgs},
		{name: "word then quoted", rest: `a "b c"`, wantErr: ErrTooManyArgs},
		{name: "unterminated", rest: `"a b`, wantErr: ErrMalformed},
		{name: "lone quote", rest: `"`, wantErr: ErrMalformed},
		{name: "stray quote", rest: `ab"c`, wantErr: ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs(tt.rest)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseArgs(%q) error = %v, want %v", tt.rest, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseArgs(%q) = %q, want %q", tt.rest, got, tt.want)
			}
		})
	}
}

func TestParseArgsOddQuotesAlwaysMalformed(t *testing.T) {
	base := "abcd"
	for i := 0; i <= len(base); i++ {
		for j := i; j <= len(base); j++ {
			for k := j; k <= len(base); k++ {
				one := base[:i] + `"` + base[i:]
				three := base[:i] + `"` + base[i:j] + `"` + base[j:k] + `"` + base[k:]
				for _, arg := range []string{one, three} {
					if _, err := ParseArgs(arg); !errors.Is(err, ErrMalformed) {
						t.Errorf("ParseArgs(%q) error = %v, want %v", arg, err, ErrMalformed)
					}
				}
			}
		}
	}
}

func fakeHome() (string, error) { return "/home/u", nil }

func TestResolve(t *testing.T) {
	r := &Resolver{Home: fakeHome}
	tests := []struct {
		target  string
		want    string
		wantErr error
	}{
		{target: "", want: "/home/u"},
		{target: "~", want: "/home/u"},
		{target: "~/src", want: "/home/u/src"},
		{target: "~x", want: "/home/ux"},
		{target: "/tmp", want: "/tmp"},
		{target: "rel/dir", want: "rel/dir"},
		{target: `a"b`, want: `a"b`},
		{target: `"a b"`, want: "a b"},
		{target: `"a"b" c"`, want: "ab c"},
		{target: `"~/my dir"`, want: "/home/u/my dir"},
		{target: `"~"`, want: "/home/u"},
		{target: `""`, want: ""},
		{target: `"`, wantErr: ErrMalformed},
		{target: `"abc`, wantErr: ErrMalformed},
	}
	for _, tt := range tests {
		got, err := r.Resolve(tt.target)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Resolve(%q) error = %v, want %v", tt.target, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.target, got, tt.want)
		}
	}
}

func TestResolveEmptyAndTildeAgree(t *testing.T) {
	r := NewResolver()
	a, errA := r.Resolve("")
	b, errB := r.Resolve("~")
	if a != b || (errA == nil) != (errB == nil) {
		t.Fatalf("Resolve(\"\") = %q, %v; Resolve(\"~\") = %q, %v", a, errA, b, errB)
	}
}

func TestResolveIdentityError(t *testing.T) {
	lookupErr := errors.New("no such user")
	r := &Resolver{Home: func() (string, error) { return "", lookupErr }}

	for _, target := range []string{"", "~", "~/x"} {
		_, err := r.Resolve(target)
		var ie *IdentityError
		if !errors.As(err, &ie) {
			t.Fatalf("Resolve(%q) error = %v, want *IdentityError", target, err)
		}
		if !errors.Is(err, lookupErr) {
			t.Errorf("Resolve(%q) error does not wrap the lookup error", target)
		}
	}

	// Targets without a tilde never need the home directory.
	if got, err := r.Resolve("/tmp"); err != nil || got != "/tmp" {
		t.Errorf("Resolve(/tmp) = %q, %v", got, err)
	}
}

func TestChange(t *testing.T) {
	dir := testutil.TempDirWithFiles(t, map[string]string{
		"a b/":      "",
		"plain/":    "",
		"file.txt":  "x",
		"home/sub/": "",
	})
	testutil.Chdir(t, dir)
	home := filepath.Join(dir, "home")
	r := &Resolver{Home: func() (string, error) { return home, nil }}

	if _, err := r.Change(`"a b"`); err != nil {
		t.Fatalf("Change(quoted) = %v", err)
	}
	testutil.AssertOutput(t, testutil.Getwd(t), testutil.RealPath(t, filepath.Join(dir, "a b")))

	if _, err := r.Change("~/sub"); err != nil {
		t.Fatalf("Change(~/sub) = %v", err)
	}
	testutil.AssertOutput(t, testutil.Getwd(t), testutil.RealPath(t, filepath.Join(home, "sub")))

	if _, err := r.Change(""); err != nil {
		t.Fatalf("Change(home) = %v", err)
	}
	testutil.AssertOutput(t, testutil.Getwd(t), testutil.RealPath(t, home))
}

func TestChangeFailureKeepsCwd(t *testing.T) {
	dir := testutil.TempDirWithFiles(t, map[string]string{"file.txt": "x"})
	testutil.Chdir(t, dir)
	before := testutil.Getwd(t)
	r := &Resolver{Home: fakeHome}

	for _, target := range []string{"missing", filepath.Join(dir, "file.txt")} {
		path, err := r.Change(target)
		var ce *ChangeError
		if !errors.As(err, &ce) {
			t.Fatalf("Change(%q) error = %v, want *ChangeError", target, err)
		}
		if ce.Path != path || path != target {
			t.Errorf("ChangeError.Path = %q, want %q", ce.Path, target)
		}
		if !strings.Contains(err.Error(), "'"+target+"'") {
			t.Errorf("error %q does not name the target", err)
		}
		if strings.Contains(err.Error(), "chdir ") {
			t.Errorf("error %q repeats the syscall name", err)
		}
	}
	testutil.AssertOutput(t, testutil.Getwd(t), before)

	_, err := r.Change("missing")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Change(missing) error = %v, want os.ErrNotExist", err)
	}
}

func FuzzParseArgs(f *testing.F) {
	f.Add("foo")
	f.Add(`"a b"`)
	f.Add(`"a"b" c"`)
	f.Add("foo bar")
	f.Add("~/x\ty")
	f.Fuzz(func(t *testing.T, rest string) {
		target, err := ParseArgs(rest)
		if err != nil {
			return
		}
		if strings.ContainsAny(target, "\t\n") {
			t.Fatalf("ParseArgs(%q) = %q contains a field separator", rest, target)
		}
		if strings.Count(target, `"`)%2 != 0 {
			t.Fatalf("ParseArgs(%q) accepted an odd quote count", rest)
		}
		r := &Resolver{Home: fakeHome}
		if len(target) > 1 && strings.HasPrefix(target, `"`) && strings.HasSuffix(target, `"`) {
			if _, err := r.Resolve(target); errors.Is(err, ErrMalformed) {
				t.Fatalf("balanced target %q failed quote parsing", target)
			}
		}
	})
}
