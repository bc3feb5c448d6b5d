package tbrowser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const listing = `<body>` +
	`<div id="main" class=content>` +
	`<ul class=menu><li class=item><a href="/one">one</a></li><li><a href="/two">two</a></li></ul>` +
	`<div class=note><p>inner <a href="/three">three</a></p></div>` +
	`</div>` +
	`<div class=note><span>outside</span></div>` +
	`</body>`

func hrefs(nodes []*Node) []string {
	result := make([]string, len(nodes))

	for i, n := range nodes {
		result[i] = n.Attributes["href"]
	}

	return result
}

func TestQuery(t *testing.T) {
	r := Parse(listing)

	tests := []struct {
		query string
		want  []string
	}{
		{"a", []string{"a", "a", "a"}},
		{"div", []string{"div", "div", "div"}},
		{"#main", []string{"div"}},
		{".note", []string{"div", "div"}},
		{"div.note", []string{"div", "div"}},
		{"span.note", nil},
		{"ul > li", []string{"li", "li"}},
		{"ul>li.item", []string{"li"}},
		{"#main > div", []string{"div"}},
		{"#main > ul > li > a", []string{"a", "a"}},
		{"body > a", nil},
		{"div p", []string{"p"}},
		{".note span", []string{"span"}},
		{"div *", []string{"ul", "li", "a", "li", "a", "div", "p", "a", "span"}},
		{"*", []string{"body", "div", "ul", "li", "a", "li", "a", "div", "p", "a", "div", "span"}},
		{"body > *", []string{"div", "div"}},
		{"table", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := r.Query(tt.query)
			require.NoError(t, err)

			if tt.want == nil {
				require.Nil(t, got)
				return
			}

			require.Equal(t, tt.want, names(got))
		})
	}
}

func TestQueryDocumentOrderWithoutDuplicates(t *testing.T) {
	r := Parse(listing)

	// The third link sits inside two matching divs and must appear once.
	got := MustCompile("div a").Match(r)
	require.Equal(t, []string{"/one", "/two", "/three"}, hrefs(got))

	got = MustCompile("div > * a").Match(r)
	require.Equal(t, []string{"/one", "/two", "/three"}, hrefs(got))
}

func TestQueryChecksEveryQualifier(t *testing.T) {
	r := Parse("<#main>a</#main><.note>b</.note><p id=main class=note>c</p>")

	tests := []struct {
		query string
		want  []string
	}{
		{"#main", []string{"p"}},
		{".note", []string{"p"}},
		{"p#main.note", []string{"p"}},
		{"*", []string{"#main", ".note", "p"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			require.Equal(t, tt.want, names(MustCompile(tt.query).Match(r)))
		})
	}

	idx := NewIndex(r)
	idx.tags["#main"] = append([]*Node{r.Children[0]}, idx.tags["#main"]...)
	require.Equal(t, []string{"p"}, names(MustCompile("#main").MatchIndex(idx)))
}

func TestQueryExcludesRoot(t *testing.T) {
	r := Parse("<root><root>x</root></root>")

	got := MustCompile("root").Match(r)
	require.Len(t, got, 2)
	require.NotSame(t, r, got[0])
}

func TestQueryOnSubtree(t *testing.T) {
	r := Parse(listing)
	menu := MustCompile(".menu").Match(r)[0]

	require.Equal(t, []string{"/one", "/two"}, hrefs(MustCompile("a").Match(menu)))
}

func TestMatchIndexReuse(t *testing.T) {
	idx := NewIndex(Parse(listing))

	require.Len(t, MustCompile("li").MatchIndex(idx), 2)
	require.Len(t, MustCompile("a").MatchIndex(idx), 3)

	got := MustCompile("*").MatchIndex(idx)
	got[0] = nil
	require.NotNil(t, idx.Get("*")[0])
}

func TestCompile(t *testing.T) {
	s, err := Compile("  div.note#x > a  ")
	require.NoError(t, err)
	require.Equal(t, "  div.note#x > a  ", s.String())
	require.Equal(t, []step{
		{combinator: descendant, qualifiers: []string{"#x", "div", ".note"}},
		{combinator: child, qualifiers: []string{"a"}},
	}, s.steps)
}

func TestCompileErrors(t *testing.T) {
	for _, query := range []string{
		"",
		"   ",
		"> a",
		"a >",
		"a > > b",
		"a.",
		"#",
		"a + b",
		"[href]",
	} {
		t.Run(query, func(t *testing.T) {
			_, err := Compile(query)
			require.Error(t, err)
			require.Contains(t, err.Error(), "invalid query")
		})
	}
}

func TestMustCompilePanics(t *testing.T) {
	require.Panics(t, func() {
		MustCompile("a >")
	})
}

func TestHasClass(t *testing.T) {
	require.True(t, hasClass("a rofl lol", "lol"))
	require.True(t, hasClass(" a ", "a"))
	require.False(t, hasClass("rofl", "rof"))
	require.False(t, hasClass("", "a"))
}
