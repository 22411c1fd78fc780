package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "single paragraph",
			in:   `<doc><title>Oil Prices</title><text><p>Oil prices rose sharply today amid supply concerns</p></text></doc>`,
			want: "Oil Prices Oil prices rose sharply today amid supply concerns",
		},
		{
			name: "several paragraphs in order",
			in:   `<doc><title>T</title><text><p>one</p><p>two</p><p>three</p></text></doc>`,
			want: "T one two three",
		},
		{
			name: "nested text element and declared charset",
			in: `<?xml version="1.0" encoding="iso-8859-1" ?>
<newsitem itemid="2286">
  <title>USA: Stocks rally</title>
  <headline>ignored headline</headline>
  <body><text><p>Wall Street rallied.</p></text></body>
  <metadata><codes class="bip:topics:1.0"/></metadata>
</newsitem>`,
			want: "USA: Stocks rally Wall Street rallied.",
		},
		{
			name: "inline markup inside a paragraph",
			in:   `<doc><title>T</title><text><p>prices <b>rose</b></p></text></doc>`,
			want: "T prices  rose",
		},
		{
			name: "text around inline markup keeps document order",
			in:   `<doc><title>T</title><text><p>a <b>b</b> c</p></text></doc>`,
			want: "T a  b c",
		},
		{
			name: "nested inline markup and title markup",
			in:   `<doc><title>Oil <i>up</i> again</title><text><p>x<b>y<i>z</i>w</b>v</p></text></doc>`,
			want: "Oil  up again x y zwv",
		},
		{
			name: "no body",
			in:   `<doc><title>Only title</title></doc>`,
			want: "Only title",
		},
		{
			name: "empty paragraph",
			in:   `<doc><title>T</title><text><p/><p>x</p></text></doc>`,
			want: "T  x",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Text(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTextErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"plain text", "just words"},
		{"unclosed", "<doc><title>x</title>"},
		{"mismatched", "<doc><title>x</doc>"},
		{"missing title", "<doc><text><p>x</p></text></doc>"},
		{"title not a direct child", "<doc><head><title>x</title></head></doc>"},
		{"junk after root", "<doc><title>x</title></doc><doc/>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Text(tt.in)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func FuzzText(f *testing.F) {
	f.Add(`<doc><title>Oil</title><text><p>x</p></text></doc>`)
	f.Add("")
	f.Add("<a>")
	f.Add("\xff")

	f.Fuzz(func(t *testing.T, in string) {
		a, errA := Text(in)
		b, errB := Text(in)
		if a != b || (errA == nil) != (errB == nil) {
			t.Errorf("non-deterministic for %q", in)
		}
	})
}
