package api

// Visibility gates where a photo is listed
type Visibility string

const (
	Public         Visibility = "PUBLIC"
	CollectionOnly Visibility = "COLLECTION_ONLY"
	Private        Visibility = "PRIVATE"
)

// Scope selects which visibility tiers a listing may return
type Scope string

const (
	ScopePublic     Scope = "public"
	ScopeCollection Scope = "collection"
	ScopeAdmin      Scope = "admin"
)

func (s Scope) Allows(v Visibility) bool {
	switch s {
	case ScopeAdmin:
		return true
	case ScopeCollection:
		return v == Public || v == CollectionOnly
	default:
		return v == Public
	}
}

// Precomputed derivative urls assigned by the backend
type ImgSrc struct {
	Thumbnail string `json:"thumbnail"`
	Medium    string `json:"medium"`
	Full      string `json:"full"`
}

type CollectionRef struct {
	Id   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Exif struct {
	Camera   string `json:"camera,omitempty"`
	Lens     string `json:"lens,omitempty"`
	Aperture string `json:"aperture,omitempty"`
	Shutter  string `json:"shutter,omitempty"`
	Iso      int    `json:"iso,omitempty"`
}

type Photo struct {
	Id          string          `json:"id"`
	Src         ImgSrc          `json:"src"`
	AspectRatio float64         `json:"aspectRatio"`
	Title       string          `json:"title,omitempty"`
	Description string          `json:"description,omitempty"`
	Location    string          `json:"location,omitempty"`
	Tags        []string        `json:"tags"`
	Collections []CollectionRef `json:"collections"`
	Featured    bool            `json:"featured"`
	Visibility  Visibility      `json:"visibility"`
	CapturedAt  string          `json:"capturedAt,omitempty"`
	CreatedAt   string          `json:"createdAt"`
	Exif        *Exif           `json:"exif,omitempty"`
}

type Collection struct {
	Id           string  `json:"id"`
	Slug         string  `json:"slug"`
	Title        string  `json:"title"`
	Description  string  `json:"description,omitempty"`
	CoverPhotoId string  `json:"coverPhotoId"`
	PhotoCount   int     `json:"photoCount"`
	Photos       []Photo `json:"photos,omitempty"`
}

type User struct {
	Id       string `json:"id"`
	Username string `json:"username"`
}
