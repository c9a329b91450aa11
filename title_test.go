package poster_test

import (
	"testing"

	"github.com/fwojciec/poster"
	"github.com/stretchr/testify/assert"
)

func TestSplitTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  poster.TitleParts
	}{
		{
			name:  "middle dot",
			input: "Photon · 光子编辑器",
			want:  poster.TitleParts{EngName: "Photon", CnName: "光子编辑器"},
		},
		{
			name:  "bracketed middle dot",
			input: "【Photon·光子编辑器】",
			want:  poster.TitleParts{EngName: "Photon", CnName: "光子编辑器"},
		},
		{
			name:  "bracketed middle dot with padding",
			input: "  【 Photon  ·  光子 】  ",
			want:  poster.TitleParts{EngName: "Photon", CnName: "光子"},
		},
		{
			name:  "ascii brackets after trail are kept",
			input: "Photon · 光子 [beta]",
			want:  poster.TitleParts{EngName: "Photon", CnName: "光子 [beta]"},
		},
		{
			name:  "ascii brackets before lead are kept",
			input: "[Hot] Photon · 光子",
			want:  poster.TitleParts{EngName: "[Hot] Photon", CnName: "光子"},
		},
		{
			name:  "ascii bracket pair is not unwrapped",
			input: "[Photon · 光子]",
			want:  poster.TitleParts{EngName: "[Photon", CnName: "光子]"},
		},
		{
			name:  "unpaired lenticular bracket is kept",
			input: "【Hot Photon · 光子",
			want:  poster.TitleParts{EngName: "【Hot Photon", CnName: "光子"},
		},
		{
			name:  "inner lenticular brackets are kept",
			input: "【Hot】 Photon · 光子【新】",
			want:  poster.TitleParts{EngName: "【Hot】 Photon", CnName: "光子【新】"},
		},
		{
			name:  "second middle dot stays in trail",
			input: "A · B · C",
			want:  poster.TitleParts{EngName: "A", CnName: "B · C"},
		},
		{
			name:  "spaced hyphen splits on first occurrence",
			input: "Zen Browser - 禅 - 浏览器",
			want:  poster.TitleParts{EngName: "Zen Browser", CnName: "禅 - 浏览器"},
		},
		{
			name:  "bare hyphen after alphanumeric run",
			input: "GPT4-聊天助手",
			want:  poster.TitleParts{EngName: "GPT4", CnName: "聊天助手"},
		},
		{
			name:  "bare hyphen after non-latin lead is not split",
			input: "光子-编辑器",
			want:  poster.TitleParts{CnName: "光子-编辑器"},
		},
		{
			name:  "no separator",
			input: "  纯中文标题  ",
			want:  poster.TitleParts{CnName: "纯中文标题"},
		},
		{
			name:  "latin only without separator",
			input: "Photon Editor",
			want:  poster.TitleParts{CnName: "Photon Editor"},
		},
		{
			name:  "empty",
			input: "",
			want:  poster.TitleParts{},
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  poster.TitleParts{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, poster.SplitTitle(tt.input))
		})
	}
}

func TestSplitTitle_Idempotent(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"纯中文标题", "Photon Editor", "  ", "光子-编辑器"} {
		first := poster.SplitTitle(input)
		second := poster.SplitTitle(first.CnName)

		assert.Equal(t, first, second, "input %q", input)
	}
}
