package bvec

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

// TestCursorTypeIsInvariant type-checks snippets under testdata/compilefail.
// Each snippet tries to use a cursor over *bytes.Buffer elements as a cursor
// over io.Reader elements and must be rejected by the type checker. The
// control snippet uses the cursor correctly and must type-check.
func TestCursorTypeIsInvariant(t *testing.T) {
	if testing.Short() {
		t.Skip("loading packages is slow")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go command not available")
	}
	cases := []struct {
		dir  string
		want string // expected fragment of the type error, empty for success
	}{
		{"control", ""},
		{"widen_assign", "cannot use c"},
		{"widen_convert", "cannot convert c"},
		{"widen_interface", "cannot use c"},
	}
	for _, c := range cases {
		t.Run(c.dir, func(t *testing.T) {
			errs := typeCheck(t, "./testdata/compilefail/"+c.dir)
			if c.want == "" {
				require.Empty(t, errs)
				return
			}
			require.NotEmpty(t, errs, "snippet %s must not type-check", c.dir)
			require.Contains(t, strings.Join(errs, "\n"), c.want)
		})
	}
}

func typeCheck(t *testing.T, pattern string) []string {
	t.Helper()
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir:  ".",
		Logf: t.Logf,
	}
	pkgs, err := packages.Load(cfg, pattern)
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	var errs []string
	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			errs = append(errs, e.Msg)
		}
	})
	return errs
}
