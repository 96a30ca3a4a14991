package apod

import "testing"

func TestItemKind(t *testing.T) {
	tests := []struct {
		mediaType string
		want      MediaKind
	}{
		{mediaType: "image", want: KindImage},
		{mediaType: "video", want: KindVideo},
		{mediaType: "other", want: KindUnsupported},
		{mediaType: "asteroid", want: KindUnsupported},
		{mediaType: "", want: KindUnsupported},
	}

	for _, tt := range tests {
		item := Item{MediaType: tt.mediaType}
		if got := item.Kind(); got != tt.want {
			t.Errorf("Kind() for media_type %q = %v, want %v", tt.mediaType, got, tt.want)
		}
	}
}

func TestItemPreviewURL_PrefersStandardResolution(t *testing.T) {
	item := Item{URL: "https://example.com/std.jpg", HDURL: "https://example.com/hd.jpg"}
	if got := item.PreviewURL(); got != "https://example.com/std.jpg" {
		t.Fatalf("PreviewURL() = %q, want standard-resolution URL", got)
	}

	item.URL = ""
	if got := item.PreviewURL(); got != "https://example.com/hd.jpg" {
		t.Fatalf("PreviewURL() without URL = %q, want high-resolution fallback", got)
	}

	item.HDURL = ""
	if got := item.PreviewURL(); got != "" {
		t.Fatalf("PreviewURL() without any source = %q, want empty", got)
	}
}

func TestItemDetailURL_PrefersHighResolution(t *testing.T) {
	item := Item{URL: "https://example.com/std.jpg", HDURL: "https://example.com/hd.jpg"}
	if got := item.DetailURL(); got != "https://example.com/hd.jpg" {
		t.Fatalf("DetailURL() = %q, want high-resolution URL", got)
	}

	item.HDURL = ""
	if got := item.DetailURL(); got != "https://example.com/std.jpg" {
		t.Fatalf("DetailURL() without HDURL = %q, want standard fallback", got)
	}
}

func TestItemBrowseURL(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{
			name: "embedded video derives watch URL",
			item: Item{MediaType: "video", URL: "https://www.youtube.com/embed/abc123?rel=0"},
			want: "https://www.youtube.com/watch?v=abc123",
		},
		{
			name: "plain video URL is reused",
			item: Item{MediaType: "video", URL: "https://player.vimeo.com/video/99"},
			want: "https://player.vimeo.com/video/99",
		},
		{
			name: "video without URL has nothing to open",
			item: Item{MediaType: "video"},
			want: "",
		},
		{
			name: "image prefers high resolution",
			item: Item{MediaType: "image", URL: "https://example.com/std.jpg", HDURL: "https://example.com/hd.jpg"},
			want: "https://example.com/hd.jpg",
		},
		{
			name: "unsupported media has nothing to open",
			item: Item{MediaType: "widget", URL: "https://example.com/thing"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.BrowseURL(); got != tt.want {
				t.Fatalf("BrowseURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestItemDisplayTitle(t *testing.T) {
	if got := (Item{Title: "Crab Nebula"}).DisplayTitle(); got != "Crab Nebula" {
		t.Fatalf("DisplayTitle() = %q, want title", got)
	}
	if got := (Item{}).DisplayTitle(); got != "Untitled" {
		t.Fatalf("DisplayTitle() for empty title = %q, want %q", got, "Untitled")
	}
}
