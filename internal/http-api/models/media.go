package models

// MediaType is the kind of item being rated or favorited.
type MediaType string

const (
	MediaMovie MediaType = "movie"
	MediaTV    MediaType = "tv"
	MediaBook  MediaType = "book"
)

// Valid reports whether t is one of the known media types.
func (t MediaType) Valid() bool {
	switch t {
	case MediaMovie, MediaTV, MediaBook:
		return true
	}
	return false
}
