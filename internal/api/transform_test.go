package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawPhoto(tags, collections, metadata string) RawPhoto {
	p := RawPhoto{
		Id:        "p1",
		Title:     "Dusk",
		Featured:  true,
		UrlSmall:  "http://img/p1_s.jpg",
		UrlMedium: "http://img/p1_m.jpg",
		UrlLarge:  "http://img/p1_l.jpg",
		CreatedAt: "2024-03-01T10:00:00Z",
	}
	if tags != "" {
		p.Tags = json.RawMessage(tags)
	}
	if collections != "" {
		p.Collections = json.RawMessage(collections)
	}
	if metadata != "" {
		p.Metadata = json.RawMessage(metadata)
	}
	return p
}

func TestTagShapes(t *testing.T) {
	tests := []struct {
		name  string
		tags  string
		shape Shape
		want  []string
	}{
		{"flat", `["sunset","beach","sunset"]`, Flat, []string{"sunset", "beach", "sunset"}},
		{"junction", `[{"photoId":"p1","tag":"sunset"},{"photoId":"p1","tag":"beach"}]`, Junction, []string{"sunset", "beach"}},
		{"absent", "", Absent, []string{}},
		{"empty", `[]`, Absent, []string{}},
		{"null", `null`, Absent, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := rawPhoto(tt.tags, "", "")
			assert.Equal(t, tt.shape, TagShape(p.Tags))
			got := TransformPhoto(p)
			assert.Equal(t, tt.want, got.Tags, "tag order must match input order")
		})
	}
}

func TestCollectionRefShapes(t *testing.T) {
	want := []CollectionRef{
		{Id: "c1", Name: "Iceland", Slug: "iceland"},
		{Id: "c2", Name: "Japan", Slug: "japan"},
	}
	flat := `[{"id":"c1","name":"Iceland","slug":"iceland"},{"id":"c2","name":"Japan","slug":"japan"}]`
	junction := `[{"collection":{"id":"c1","name":"Iceland","slug":"iceland"}},{"collection":{"id":"c2","name":"Japan","slug":"japan"}}]`

	assert.Equal(t, Flat, RefShape(json.RawMessage(flat)))
	assert.Equal(t, Junction, RefShape(json.RawMessage(junction)))

	flatPhoto := TransformPhoto(rawPhoto("", flat, ""))
	junctionPhoto := TransformPhoto(rawPhoto("", junction, ""))
	assert.Equal(t, want, flatPhoto.Collections)
	assert.Equal(t, want, junctionPhoto.Collections, "junction shape must normalize to the same refs as flat")

	absent := TransformPhoto(rawPhoto("", "", ""))
	assert.Empty(t, absent.Collections)
	assert.NotNil(t, absent.Collections)
}

func TestTransformPhotoDefaults(t *testing.T) {
	got := TransformPhoto(rawPhoto("", "", ""))
	assert.Equal(t, "p1", got.Id)
	assert.Equal(t, "http://img/p1_s.jpg", got.Src.Thumbnail)
	assert.Equal(t, "http://img/p1_m.jpg", got.Src.Medium)
	assert.Equal(t, "http://img/p1_l.jpg", got.Src.Full)
	assert.Equal(t, DefaultAspectRatio, got.AspectRatio)
	assert.Equal(t, Public, got.Visibility)
	assert.Nil(t, got.Exif)
}

func TestTransformExifShapes(t *testing.T) {
	direct := `{"camera":"X100V","lens":"23mm","aperture":"f/2.0","shutter":"1/250s","iso":400}`
	nested := `{"exif":` + direct + `}`
	want := &Exif{Camera: "X100V", Lens: "23mm", Aperture: "f/2.0", Shutter: "1/250s", Iso: 400}

	assert.Equal(t, want, TransformPhoto(rawPhoto("", "", direct)).Exif)
	assert.Equal(t, want, TransformPhoto(rawPhoto("", "", nested)).Exif)
	assert.Nil(t, TransformPhoto(rawPhoto("", "", `{}`)).Exif)
	assert.Nil(t, TransformPhoto(rawPhoto("", "", `null`)).Exif)
}

func TestTransformCollection(t *testing.T) {
	raw := RawCollection{
		Id:           "c1",
		Slug:         "iceland",
		Name:         "Iceland",
		Description:  "North light",
		CoverPhotoId: "p1",
		Photos: []RawPhoto{
			rawPhoto(`["sunset"]`, "", ""),
			rawPhoto("", "", ""),
		},
	}

	got := TransformCollection(raw)
	assert.Equal(t, "Iceland", got.Title)
	assert.Equal(t, "iceland", got.Slug)
	require.Len(t, got.Photos, 2)
	assert.Equal(t, 2, got.PhotoCount, "count inferred from embedded photos")
	assert.Equal(t, []string{"sunset"}, got.Photos[0].Tags)

	raw.Count = &RawCount{Photos: 17}
	assert.Equal(t, 17, TransformCollection(raw).PhotoCount, "explicit server count wins")

	raw.Count = nil
	raw.Photos = nil
	assert.Equal(t, 0, TransformCollection(raw).PhotoCount)
}

func TestTransformOrderPreserved(t *testing.T) {
	raws := []RawPhoto{rawPhoto("", "", ""), rawPhoto("", "", ""), rawPhoto("", "", "")}
	raws[0].Id = "a"
	raws[1].Id = "b"
	raws[2].Id = "c"
	photos := TransformPhotos(raws)
	require.Len(t, photos, 3)
	assert.Equal(t, "a", photos[0].Id)
	assert.Equal(t, "b", photos[1].Id)
	assert.Equal(t, "c", photos[2].Id)
}
