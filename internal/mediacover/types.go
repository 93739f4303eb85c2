package mediacover

// Category classifies a cover image. The string form is the lowercase name
// and doubles as the cached filename stem.
type Category int

const (
	// CategoryUnknown is any category this service has no handling for.
	CategoryUnknown Category = iota
	// CategoryPoster is the primary portrait artwork for an item.
	CategoryPoster
	// CategoryBanner is wide, short artwork used in list headers.
	CategoryBanner
	// CategoryFanart is full-bleed background artwork.
	CategoryFanart
	// CategoryScreenshot is a still frame from the media itself.
	CategoryScreenshot
	// CategoryHeadshot is portrait artwork for a person.
	CategoryHeadshot
	// CategoryClearlogo is a transparent title logo. Cached but never resized.
	CategoryClearlogo
)

// String returns the lowercase category name used in cache paths and URLs.
func (c Category) String() string {
	switch c {
	case CategoryPoster:
		return "poster"
	case CategoryBanner:
		return "banner"
	case CategoryFanart:
		return "fanart"
	case CategoryScreenshot:
		return "screenshot"
	case CategoryHeadshot:
		return "headshot"
	case CategoryClearlogo:
		return "clearlogo"
	default:
		return "unknown"
	}
}

// ParseCategory maps a lowercase category name back to its Category.
// Unrecognized names yield CategoryUnknown.
func ParseCategory(name string) Category {
	switch name {
	case "poster":
		return CategoryPoster
	case "banner":
		return CategoryBanner
	case "fanart":
		return CategoryFanart
	case "screenshot":
		return CategoryScreenshot
	case "headshot":
		return CategoryHeadshot
	case "clearlogo":
		return CategoryClearlogo
	default:
		return CategoryUnknown
	}
}

// Cover describes one cover image attached to an item. RemoteURL points at
// the upstream source; LocalURL is derived by ConvertToLocalURLs and is the
// only field this service mutates.
type Cover struct {
	Category  Category `json:"category"`
	RemoteURL string   `json:"remoteUrl"`
	LocalURL  string   `json:"localUrl,omitempty"`
}

// Item is the slice of a tracked media item this service cares about.
// Cover list membership and ordering belong to the item's own domain model.
type Item struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	Covers []Cover `json:"covers"`
}

// ItemUpdated signals that an item's metadata (covers included) changed and
// the local cache should be brought up to date.
type ItemUpdated struct {
	Item Item
}

// ItemDeleted signals that an item was removed and its cache directory
// should be purged.
type ItemDeleted struct {
	Item Item
}

// CoversUpdated is published after a cache pass for an item completes,
// successfully or not, so consumers know local URLs are as fresh as they
// are going to get.
type CoversUpdated struct {
	Item Item
}
