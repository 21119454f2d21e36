package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `<!DOCTYPE html>
<html>
<head><title>Sample</title><link rel="stylesheet" href="/main.css"></head>
<body>
  <header>
    <a href="/"><img src="/img/logo.svg" alt="Acme Logo" class="logo"></a>
    <nav class="navbar main-nav">
      <a href="/about" class="nav-link">About</a>
      <a href="/shop" class="nav-link">Shop</a>
    </nav>
  </header>
  <main>
    <button id="cta" class="btn btn-primary" role="button">Buy</button>
    <div class="card shadow" style="display: none">hidden card</div>
    <div class="card">visible card</div>
    <img src="/pics/hero.png" alt="Hero">
    <input type="text" name="q">
    <i class="fa fa-home"></i>
  </main>
</body>
</html>`

func TestQueryAllByTagClassAndID(t *testing.T) {
	t.Parallel()

	root, err := Parse(sampleDoc)
	require.NoError(t, err)

	assert.Len(t, QueryAll(root, "img"), 2)
	assert.Len(t, QueryAll(root, ".card"), 2)
	assert.Len(t, QueryAll(root, ".nav-link"), 2)

	btn := First(root, "#cta")
	require.NotNil(t, btn)
	assert.Equal(t, "button", btn.Data)

	assert.Nil(t, First(root, ".missing"))
}

func TestQueryAllClassMatchesWholeTokens(t *testing.T) {
	t.Parallel()

	root, err := Parse(`<div class="navbar"></div><div class="navbar-brand"></div>`)
	require.NoError(t, err)

	assert.Len(t, QueryAll(root, ".navbar"), 1)
}

func TestAttributeOperators(t *testing.T) {
	t.Parallel()

	root, err := Parse(sampleDoc)
	require.NoError(t, err)

	tests := []struct {
		name     string
		selector string
		count    int
	}{
		{name: "presence", selector: "[role]", count: 1},
		{name: "exact", selector: "a[href='/']", count: 1},
		{name: "contains", selector: "[class*='logo']", count: 1},
		{name: "prefix", selector: "a[href^='/ab']", count: 1},
		{name: "suffix", selector: "img[src$='.svg']", count: 1},
		{name: "case insensitive", selector: "img[alt*='LOGO' i]", count: 1},
		{name: "case sensitive miss", selector: "img[alt*='LOGO']", count: 0},
		{name: "typed input", selector: "input[type='text']", count: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Len(t, QueryAll(root, tt.selector), tt.count)
		})
	}
}

func TestDescendantCombinator(t *testing.T) {
	t.Parallel()

	root, err := Parse(sampleDoc)
	require.NoError(t, err)

	logo := First(root, "header a[href='/'] img")
	require.NotNil(t, logo)
	assert.Equal(t, "/img/logo.svg", Attr(logo, "src"))

	assert.Len(t, QueryAll(root, "nav a"), 2)
	assert.Empty(t, QueryAll(root, "footer a"))
}

func TestSelectorGroupKeepsDocumentOrder(t *testing.T) {
	t.Parallel()

	root, err := Parse(`<div><span class="b">one</span><p class="a">two</p><span class="b">three</span></div>`)
	require.NoError(t, err)

	matches := QueryAll(root, ".a, .b")
	require.Len(t, matches, 3)
	assert.Equal(t, "span", matches[0].Data)
	assert.Equal(t, "p", matches[1].Data)
	assert.Equal(t, "span", matches[2].Data)
}

func TestVisible(t *testing.T) {
	t.Parallel()

	root, err := Parse(sampleDoc)
	require.NoError(t, err)

	link := First(root, "link")
	require.NotNil(t, link)
	assert.False(t, Visible(link), "head content should not count as visible")

	cards := QueryAll(root, ".card")
	require.Len(t, cards, 2)
	assert.False(t, Visible(cards[0]))
	assert.True(t, Visible(cards[1]))

	visible := FirstVisible(root, ".card")
	require.NotNil(t, visible)
	assert.True(t, Visible(visible))
}

func TestVisibleChecksAncestors(t *testing.T) {
	t.Parallel()

	root, err := Parse(`<div hidden><p class="note">text</p></div><p class="note">shown</p>`)
	require.NoError(t, err)

	notes := QueryAll(root, ".note")
	require.Len(t, notes, 2)
	assert.False(t, Visible(notes[0]))
	assert.True(t, Visible(notes[1]))
}

func TestAttrOnMissingNode(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Attr(nil, "href"))
}
