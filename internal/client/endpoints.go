package client

// Backend routes. Collection detail, update and delete all use the
// /collections/slug/ form, the bare /collections/{slug} variant from
// older revisions is not used
const (
	loginPath      = "/auth/login"
	healthPath     = "/health"
	userHealthPath = "/user/health"
)

func PhotosPath() string {
	return "/photos"
}

func PhotoPath(id string) string {
	return "/photos/" + id
}

func CollectionsPath() string {
	return "/collections"
}

func CollectionPath(slug string) string {
	return "/collections/slug/" + slug
}
