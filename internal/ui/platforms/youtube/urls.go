package youtube

import "strings"

const (
	embedPrefix = "https://www.youtube.com/embed/"
	watchPrefix = "https://www.youtube.com/watch?v="
)

// EmbedURL builds the iframe source for a video.
func EmbedURL(videoID string) string {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return ""
	}
	return embedPrefix + videoID
}

// WatchURL builds the public watch page link for a video.
func WatchURL(videoID string) string {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return ""
	}
	return watchPrefix + videoID
}

// ThumbnailURL returns the default high quality thumbnail for a video.
func ThumbnailURL(videoID string) string {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return ""
	}
	return "https://i.ytimg.com/vi/" + videoID + "/hqdefault.jpg"
}
