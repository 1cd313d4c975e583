package banner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/fashion-storefront/internal/i18n"
)

func TestSlides(t *testing.T) {
	en := Slides(i18n.English, 0)
	require.Len(t, en, 3)
	assert.Equal(t, "Your Unique Style", en[0].Subtitle)
	assert.Equal(t, "/shop?sale=true", en[1].Link)

	ar := Slides("ar-EG", 2)
	require.Len(t, ar, 2)
	assert.Equal(t, "اكتشفي", ar[0].Title)

	assert.Equal(t, "اكتشفي", Slides("", 1)[0].Title)
}
