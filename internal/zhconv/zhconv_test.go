package zhconv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertTraditionalText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "common phrase", in: "語音識別", want: "语音识别"},
		{name: "mixed sentence", in: "這是一個測試", want: "这是一个测试"},
		{name: "already simplified", in: "这是一个测试", want: "这是一个测试"},
		{name: "ascii untouched", in: "hello, world", want: "hello, world"},
		{name: "mixed scripts", in: "開會 at 3pm", want: "开会 at 3pm"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Convert(tt.in))
		})
	}
}

func TestConvertIsIdempotent(t *testing.T) {
	t.Parallel()

	once := Convert("電腦網絡無線傳輸")
	require.Equal(t, once, Convert(once))
}

func TestConvertReturnsSameStringWhenUnchanged(t *testing.T) {
	t.Parallel()

	in := "plain ascii only"
	require.Equal(t, in, Convert(in))
}

func TestHasTraditional(t *testing.T) {
	t.Parallel()

	require.True(t, HasTraditional("聽寫"))
	require.False(t, HasTraditional("听写"))
	require.False(t, HasTraditional("abc"))
}

func TestTableHasNoIdentityMappings(t *testing.T) {
	t.Parallel()

	for k, v := range t2s {
		require.NotEqual(t, k, v, "identity mapping for %q", string(k))
	}
}
