package extractor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleListingHTML = `<!doctype html><html lang="en"><head>
<title>Fashion Studio</title>
</head><body>
<div class="collection-grid">
  <div class="collection-card">
    <div class="product-details">
      <h3 class="product-title">T-shirt 2</h3>
      <div class="price-container"><span class="price">$102.15</span></div>
      <p>Rating: ⭐ 3.9 / 5</p>
      <p>3 Colors</p>
      <p>Size: M</p>
      <p>Gender: Women</p>
    </div>
  </div>
  <div class="collection-card">
    <div class="product-details">
      <h3 class="product-title">Hoodie 3</h3>
      <p>Rating: ⭐ 4.8 / 5</p>
      <p>5 Colors</p>
      <p>Size: L</p>
      <p>Gender: Men</p>
    </div>
  </div>
  <div class="collection-card">
    <div class="product-details">
      <div class="price-container"><span class="price">$49.99</span></div>
      <p>Invalid Rating</p>
      <p>2 Colors</p>
      <p>Size: S</p>
      <p>Gender: Unisex</p>
    </div>
  </div>
</div>
</body></html>`

func TestParsePage(t *testing.T) {
	p := NewParser()

	records, err := p.ParsePage(sampleListingHTML, 4)
	require.NoError(t, err)
	require.Len(t, records, 3)

	first := records[0]
	require.Equal(t, "T-shirt 2", first.Title)
	require.Equal(t, "$102.15", first.Price)
	require.Equal(t, "Rating: ⭐ 3.9 / 5", first.Rating)
	require.Equal(t, "3 Colors", first.Colors)
	require.Equal(t, "Size: M", first.Size)
	require.Equal(t, "Gender: Women", first.Gender)
	require.Equal(t, 4, first.SourcePage)
}

func TestParsePageMissingFieldsGetSentinels(t *testing.T) {
	p := NewParser()

	records, err := p.ParsePage(sampleListingHTML, 1)
	require.NoError(t, err)

	// second card has no price, third has no title
	require.Equal(t, SentinelPrice, records[1].Price)
	require.Equal(t, SentinelTitle, records[2].Title)
	// sentinel rating text must survive extraction unfiltered
	require.Equal(t, "Invalid Rating", records[2].Rating)
}

func TestParsePageWithoutCards(t *testing.T) {
	p := NewParser()

	_, err := p.ParsePage("<html><body><h1>404</h1></body></html>", 9)
	require.ErrorIs(t, err, ErrPageStructure)
}
