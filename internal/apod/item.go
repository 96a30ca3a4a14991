package apod

// MediaKind discriminates the rendering path for a feed item.
type MediaKind int

const (
	KindImage MediaKind = iota
	KindVideo
	KindUnsupported
)

func (k MediaKind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	default:
		return "unsupported"
	}
}

// Item is the subset of APOD feed fields required by the app.
type Item struct {
	Title        string `json:"title"`
	Date         string `json:"date"`
	MediaType    string `json:"media_type"`
	URL          string `json:"url"`
	HDURL        string `json:"hdurl"`
	ThumbnailURL string `json:"thumbnail_url"`
	Explanation  string `json:"explanation"`
	Copyright    string `json:"copyright"`
}

// Kind maps the wire media_type onto the tagged variant. Anything the feed
// invents beyond image and video degrades to KindUnsupported.
func (i Item) Kind() MediaKind {
	switch i.MediaType {
	case "image":
		return KindImage
	case "video":
		return KindVideo
	default:
		return KindUnsupported
	}
}

// PreviewURL returns the standard-resolution image source, preferring it
// over the high-resolution one. Grid thumbnails favor bandwidth over fidelity.
func (i Item) PreviewURL() string {
	if i.URL != "" {
		return i.URL
	}
	return i.HDURL
}

// DetailURL returns the large image source for the detail view, preferring
// the high-resolution URL.
func (i Item) DetailURL() string {
	if i.HDURL != "" {
		return i.HDURL
	}
	return i.URL
}

// BrowseURL returns the address worth opening in a browser for this item:
// the derived watch URL for embedded videos, the raw video URL otherwise,
// and the best image URL for pictures. Empty when the item has nothing to open.
func (i Item) BrowseURL() string {
	switch i.Kind() {
	case KindVideo:
		if i.URL == "" {
			return ""
		}
		if IsEmbedURL(i.URL) {
			return WatchURL(i.URL)
		}
		return i.URL
	case KindImage:
		return i.DetailURL()
	default:
		return ""
	}
}

// DisplayTitle returns the item title with the documented fallback for
// items the feed ships untitled.
func (i Item) DisplayTitle() string {
	if i.Title == "" {
		return "Untitled"
	}
	return i.Title
}
