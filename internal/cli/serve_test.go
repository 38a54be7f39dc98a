package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestResolveSimplify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		args       []string
		configured bool
		want       bool
	}{
		{name: "unset flags keep config on", configured: true, want: true},
		{name: "unset flags keep config off", configured: false, want: false},
		{name: "simplify re-enables over config", args: []string{"--simplify"}, configured: false, want: true},
		{name: "simplify=false disables", args: []string{"--simplify=false"}, configured: true, want: false},
		{name: "no-simplify disables", args: []string{"--no-simplify"}, configured: true, want: false},
		{name: "no-simplify wins over simplify", args: []string{"--simplify", "--no-simplify"}, configured: true, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cmd := &cobra.Command{Use: "serve"}
			bindSimplifyFlags(cmd)
			require.NoError(t, cmd.Flags().Parse(tc.args))
			require.Equal(t, tc.want, resolveSimplify(cmd, tc.configured))
		})
	}
}
