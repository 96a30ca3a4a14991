package apod

import (
	"fmt"
	"strings"
)

// WatchURLTemplate builds a directly watchable page for a video identifier
// extracted from an embed URL.
const WatchURLTemplate = "https://www.youtube.com/watch?v=%s"

const embedPathMarker = "embed/"

// IsEmbedURL reports whether a video URL looks like an embedded-player
// address rather than a plain watch page.
func IsEmbedURL(rawURL string) bool {
	return strings.Contains(rawURL, "embed")
}

// WatchURL derives a watchable page URL from an embedded-player URL by
// lifting the trailing path-segment video identifier into WatchURLTemplate.
// When no embed/{id} segment can be recognized, the original URL is returned
// verbatim so the caller always has something to open.
func WatchURL(embedURL string) string {
	i := strings.LastIndex(embedURL, embedPathMarker)
	if i < 0 {
		return embedURL
	}
	id := embedURL[i+len(embedPathMarker):]
	if j := strings.IndexAny(id, "/?#"); j >= 0 {
		id = id[:j]
	}
	if id == "" {
		return embedURL
	}
	return fmt.Sprintf(WatchURLTemplate, id)
}
