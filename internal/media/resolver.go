package media

import (
	"mime"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// Action is the outcome of resolving a stored media location.
type Action interface {
	action()
}

// PlayEmbedded plays URL in the embedded video player.
type PlayEmbedded struct {
	URL string
}

// OpenExternal hands URI to the desktop's default handler for MIME.
// An empty MIME means the type could not be determined.
type OpenExternal struct {
	URI  string
	MIME string
}

// LocalAudio returns a local audio file to the caller's audio player.
type LocalAudio struct {
	Path string
}

// NoAction means nothing playable was found.
type NoAction struct{}

func (PlayEmbedded) action() {}
func (OpenExternal) action() {}
func (LocalAudio) action()   {}
func (NoAction) action()     {}

var youtubeLink = regexp.MustCompile(`^https*://[w.]*youtu\.*be`)

// Extensions missing from most system MIME tables.
var mediaTypes = map[string]string{
	".mp3":  "audio/mpeg",
	".m4a":  "audio/mp4",
	".aac":  "audio/aac",
	".flac": "audio/flac",
	".wav":  "audio/wav",
	".ogg":  "audio/ogg",
	".opus": "audio/opus",
	".mid":  "audio/midi",
	".midi": "audio/midi",
	".mp4":  "video/mp4",
	".m4v":  "video/mp4",
	".webm": "video/webm",
	".mkv":  "video/x-matroska",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".3gp":  "video/3gpp",
	".m3u8": "application/vnd.apple.mpegurl",
	".mpd":  "application/dash+xml",
	".pdf":  "application/pdf",
}

// streaming manifests are played even though their MIME is not audio/video.
var manifestExts = map[string]bool{".m3u8": true, ".mpd": true}

// Resolver turns a stored record into an Action.
type Resolver struct {
	exists   func(path string) bool
	mimeType func(location string) string
}

// NewResolver creates a resolver that checks the local filesystem.
func NewResolver() *Resolver {
	return &Resolver{exists: fileExists, mimeType: DetectMIME}
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

// Resolve picks the action for rec. The local file path is preferred over
// the URI; the first location that resolves wins.
func (r *Resolver) Resolve(rec Record) Action {
	for _, loc := range []string{rec.FilePath, rec.URI} {
		if a := r.resolveLocation(loc); a != nil {
			return a
		}
	}
	return NoAction{}
}

func (r *Resolver) resolveLocation(loc string) Action {
	loc = strings.TrimSpace(loc)
	if loc == "" {
		return nil
	}

	if IsRemoteURL(loc) {
		return r.ForURL(loc)
	}

	p := localPath(loc)
	if !r.exists(p) {
		return nil
	}

	mt := r.mimeType(p)
	if mt == "" || strings.Contains(mt, "video") {
		return r.ForURL(p)
	}
	return LocalAudio{Path: p}
}

// ForURL decides between the embedded player and the external viewer for
// a location that is already known to be reachable.
func (r *Resolver) ForURL(loc string) Action {
	mt := r.mimeType(loc)
	if strings.Contains(mt, "video") || strings.Contains(mt, "audio") ||
		manifestExts[extOf(loc)] || IsYouTube(loc) {
		return PlayEmbedded{URL: loc}
	}
	return OpenExternal{URI: loc, MIME: mt}
}

// IsRemoteURL reports whether s is an absolute http(s) URL with a host.
func IsRemoteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsYouTube reports whether s is a YouTube watch or short link.
func IsYouTube(s string) bool {
	return youtubeLink.MatchString(s)
}

// localPath strips a file:// scheme.
func localPath(loc string) string {
	if u, err := url.Parse(loc); err == nil && u.Scheme == "file" {
		return u.Path
	}
	return loc
}

func extOf(loc string) string {
	if u, err := url.Parse(loc); err == nil && u.Scheme != "" && u.Path != "" {
		return strings.ToLower(path.Ext(u.Path))
	}
	return strings.ToLower(filepath.Ext(loc))
}

// DetectMIME guesses the MIME type of a path or URL from its extension.
// It returns "" when the type is unknown.
func DetectMIME(loc string) string {
	ext := extOf(loc)
	if ext == "" {
		return ""
	}
	if mt, ok := mediaTypes[ext]; ok {
		return mt
	}
	if guessed := mime.TypeByExtension(ext); guessed != "" {
		return strings.TrimSpace(strings.Split(guessed, ";")[0])
	}
	return ""
}
